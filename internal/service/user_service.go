package service

import (
	"educrate/internal/model"
	"educrate/internal/repository"
	"educrate/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type CreateUserRequest struct {
	Name              string                `json:"name" binding:"required"`
	Email             string                `json:"email" binding:"required,email"`
	PreferredLanguage string                `json:"preferred_language"`
	Timezone          string                `json:"timezone"`
	LearningStyles    []model.LearningStyle `json:"learning_styles"`
}

func (s *UserService) Register(req CreateUserRequest) (*model.User, error) {
	if req.PreferredLanguage == "" {
		req.PreferredLanguage = "en"
	}
	if !model.LanguageSupported(req.PreferredLanguage) {
		return nil, util.ErrUnsupportedLanguage
	}
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}
	for _, st := range req.LearningStyles {
		if !st.Valid() {
			return nil, util.ErrInvalidStyle
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.Repo.FindByEmail(email); err == nil {
		return nil, util.ErrEmailRegistered
	}

	user := &model.User{
		Name:              strings.TrimSpace(req.Name),
		Email:             email,
		PreferredLanguage: req.PreferredLanguage,
		Timezone:          req.Timezone,
		LearningStyles:    req.LearningStyles,
	}
	if user.LearningStyles == nil {
		user.LearningStyles = []model.LearningStyle{}
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(id string) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
