package repository

import (
	"educrate/internal/model"

	"gorm.io/gorm"
)

type QASessionRepository struct {
	DB *gorm.DB
}

func NewQASessionRepository(db *gorm.DB) *QASessionRepository {
	return &QASessionRepository{DB: db}
}

func (r *QASessionRepository) Create(session *model.QASession) error {
	return r.DB.Create(session).Error
}

func (r *QASessionRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QASession{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
