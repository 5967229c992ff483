package repository

import (
	"educrate/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) ListQuestions() ([]model.AssessmentQuestion, error) {
	var qs []model.AssessmentQuestion
	err := r.DB.Order("`order` ASC").Find(&qs).Error
	return qs, err
}

func (r *AssessmentRepository) CreateSubmission(sub *model.AssessmentSubmission) error {
	return r.DB.Create(sub).Error
}

func (r *AssessmentRepository) LatestByUser(userID string) (*model.AssessmentSubmission, error) {
	var sub model.AssessmentSubmission
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error
	return &sub, err
}
