package service

import (
	"educrate/internal/model"
	"educrate/internal/repository"
	"educrate/internal/util"
	"errors"

	"gorm.io/gorm"
)

type StudySessionService struct {
	Repo       *repository.StudySessionRepository
	UserRepo   *repository.UserRepository
	Generator  *GeneratorService
	Motivation *MotivationService
}

func NewStudySessionService(repo *repository.StudySessionRepository, userRepo *repository.UserRepository, gen *GeneratorService, motivation *MotivationService) *StudySessionService {
	return &StudySessionService{
		Repo:       repo,
		UserRepo:   userRepo,
		Generator:  gen,
		Motivation: motivation,
	}
}

type StartSessionRequest struct {
	Mood                  model.MoodType      `json:"mood" binding:"required"`
	AvailableTime         int                 `json:"available_time" binding:"required,min=1"`
	EnergyLevel           int                 `json:"energy_level" binding:"min=1,max=10"`
	FocusLevel            int                 `json:"focus_level" binding:"min=1,max=10"`
	PreferredContentTypes []model.ContentType `json:"preferred_content_types"`
}

// Start 记录会话并返回建议
func (s *StudySessionService) Start(userID string, req StartSessionRequest) (*model.StudySession, error) {
	if !req.Mood.Valid() {
		return nil, util.ErrInvalidMood
	}
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	suggestion := s.Generator.SuggestStudyApproach(req.Mood, req.AvailableTime)
	if msg, err := s.Motivation.GetCurrentMotivation(); err == nil && msg != "" {
		suggestion.MotivationMessage = msg
	} else {
		suggestion.MotivationMessage = "Perfect time to explore something new!"
	}

	session := &model.StudySession{
		UserID:                userID,
		Mood:                  req.Mood,
		AvailableTime:         req.AvailableTime,
		EnergyLevel:           req.EnergyLevel,
		FocusLevel:            req.FocusLevel,
		PreferredContentTypes: req.PreferredContentTypes,
		Suggestion:            &suggestion,
	}
	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// End 显式关闭会话。重复关闭返回 ErrSessionEnded
func (s *StudySessionService) End(id string) error {
	session, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}
	if session.EndedAt != nil {
		return util.ErrSessionEnded
	}
	return s.Repo.MarkEnded(id)
}
