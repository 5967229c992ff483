package service

import (
	"educrate/internal/model"
	"educrate/internal/repository"
	"educrate/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type QAService struct {
	Repo      *repository.QASessionRepository
	KitRepo   *repository.LearningKitRepository
	UserRepo  *repository.UserRepository
	Generator *GeneratorService
}

func NewQAService(repo *repository.QASessionRepository, kitRepo *repository.LearningKitRepository, userRepo *repository.UserRepository, gen *GeneratorService) *QAService {
	return &QAService{Repo: repo, KitRepo: kitRepo, UserRepo: userRepo, Generator: gen}
}

type AskRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	KitID    string `json:"kit_id" binding:"required"`
	Question string `json:"question" binding:"required"`
}

// Ask 用学习包原文作为上下文回答问题，答案按用户第一个主导风格定制
func (s *QAService) Ask(req AskRequest) (*model.QASession, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, errors.New("question is required")
	}

	kit, err := s.KitRepo.FindByID(req.KitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrKitNotFound
		}
		return nil, err
	}

	style := model.Textual
	if user, err := s.UserRepo.FindByID(req.UserID); err == nil && len(user.LearningStyles) > 0 {
		style = user.LearningStyles[0]
	}

	answer := s.Generator.AnswerQuestion(req.Question, kit.SourceContent, style)

	session := &model.QASession{
		UserID:   req.UserID,
		KitID:    req.KitID,
		Question: req.Question,
		Answer:   answer,
		Context:  kit.SourceContent,
	}
	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}
