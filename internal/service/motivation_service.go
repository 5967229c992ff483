package service

import (
	"educrate/internal/model"
	"educrate/internal/repository"
	"math/rand"
	"time"
)

// 同一条短句最长展示时长，到期后从启用池里随机换一条
const motivationRotation = 12 * time.Hour

type MotivationService struct {
	Repo *repository.MotivationRepository
}

func NewMotivationService(repo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{Repo: repo}
}

// GetCurrentMotivation 获取当前展示的激励短句，必要时轮换
func (s *MotivationService) GetCurrentMotivation() (string, error) {
	current, err := s.Repo.GetCurrent()
	if err != nil {
		enabled, err := s.Repo.GetEnabled()
		if err != nil || len(enabled) == 0 {
			return "", err
		}
		s.Repo.SetCurrent(enabled[0].ID)
		return enabled[0].Content, nil
	}

	enabled, err := s.Repo.GetEnabled()
	if err == nil && len(enabled) > 1 && time.Since(current.LastUsedAt) >= motivationRotation {
		var candidates []*model.Motivation
		for _, m := range enabled {
			if m.ID != current.ID {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			next := candidates[rand.Intn(len(candidates))]
			s.Repo.SetCurrent(next.ID)
			return next.Content, nil
		}
	}

	return current.Content, nil
}
