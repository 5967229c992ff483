package service

import (
	"educrate/internal/model"
	"educrate/internal/repository"
	"educrate/internal/util"
	"errors"

	"gorm.io/gorm"
)

// 某风格得分达到该阈值即视为主导风格
const dominantScoreThreshold = 7

type AssessmentService struct {
	Repo     *repository.AssessmentRepository
	UserRepo *repository.UserRepository
}

func NewAssessmentService(repo *repository.AssessmentRepository, userRepo *repository.UserRepository) *AssessmentService {
	return &AssessmentService{Repo: repo, UserRepo: userRepo}
}

func (s *AssessmentService) ListQuestions() ([]model.AssessmentQuestion, error) {
	return s.Repo.ListQuestions()
}

type AssessmentSubmissionRequest struct {
	VisualScore      int                    `json:"visual_score" binding:"min=0"`
	AuditoryScore    int                    `json:"auditory_score" binding:"min=0"`
	TextualScore     int                    `json:"textual_score" binding:"min=0"`
	KinestheticScore int                    `json:"kinesthetic_score" binding:"min=0"`
	Answers          map[string]interface{} `json:"answers"`
}

type AssessmentResult struct {
	DominantStyles []model.LearningStyle       `json:"dominant_styles"`
	Scores         map[model.LearningStyle]int `json:"scores"`
}

// SubmitAssessment 保存提交并回写用户的主导学习风格。
// 主导风格取得分 >= 7 的全部风格，一个都没有时取最高分的那个。
func (s *AssessmentService) SubmitAssessment(userID string, req AssessmentSubmissionRequest) (*AssessmentResult, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	sub := &model.AssessmentSubmission{
		UserID:           userID,
		VisualScore:      req.VisualScore,
		AuditoryScore:    req.AuditoryScore,
		TextualScore:     req.TextualScore,
		KinestheticScore: req.KinestheticScore,
		Answers:          req.Answers,
	}

	scores := sub.Scores()
	dominant := DominantStyles(scores)

	if err := s.UserRepo.UpdateLearningStyles(userID, dominant); err != nil {
		return nil, err
	}
	if err := s.Repo.CreateSubmission(sub); err != nil {
		return nil, err
	}

	return &AssessmentResult{DominantStyles: dominant, Scores: scores}, nil
}

// DominantStyles 遍历顺序固定为 AllLearningStyles，保证结果可复现
func DominantStyles(scores map[model.LearningStyle]int) []model.LearningStyle {
	var dominant []model.LearningStyle
	for _, style := range model.AllLearningStyles {
		if scores[style] >= dominantScoreThreshold {
			dominant = append(dominant, style)
		}
	}
	if len(dominant) > 0 {
		return dominant
	}

	best := model.AllLearningStyles[0]
	for _, style := range model.AllLearningStyles[1:] {
		if scores[style] > scores[best] {
			best = style
		}
	}
	return []model.LearningStyle{best}
}
