package service

import (
	"educrate/internal/model"
	"educrate/internal/repository"
	"time"
)

const recentKitCount = 5

type AnalyticsService struct {
	KitRepo *repository.LearningKitRepository
	QARepo  *repository.QASessionRepository
}

func NewAnalyticsService(kitRepo *repository.LearningKitRepository, qaRepo *repository.QASessionRepository) *AnalyticsService {
	return &AnalyticsService{KitRepo: kitRepo, QARepo: qaRepo}
}

type UserAnalytics struct {
	TotalKitsCreated    int64                       `json:"total_kits_created"`
	TotalQuestionsAsked int64                       `json:"total_questions_asked"`
	LearningStyleUsage  map[model.LearningStyle]int `json:"learning_style_usage"`
	RecentActivity      []model.LearningKit         `json:"recent_activity"`
	GeneratedAt         time.Time                   `json:"analytics_generated_at"`
}

func (s *AnalyticsService) ForUser(userID string) (*UserAnalytics, error) {
	totalKits, err := s.KitRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	totalQA, err := s.QARepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	kits, err := s.KitRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	usage := map[model.LearningStyle]int{}
	for _, kit := range kits {
		for _, style := range kit.LearningStyles {
			usage[style]++
		}
	}

	recent, err := s.KitRepo.FindRecentByUser(userID, recentKitCount)
	if err != nil {
		return nil, err
	}

	return &UserAnalytics{
		TotalKitsCreated:    totalKits,
		TotalQuestionsAsked: totalQA,
		LearningStyleUsage:  usage,
		RecentActivity:      recent,
		GeneratedAt:         time.Now().UTC(),
	}, nil
}
