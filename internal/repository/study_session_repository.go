package repository

import (
	"educrate/internal/model"
	"time"

	"gorm.io/gorm"
)

type StudySessionRepository struct {
	DB *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{DB: db}
}

func (r *StudySessionRepository) Create(session *model.StudySession) error {
	return r.DB.Create(session).Error
}

func (r *StudySessionRepository) FindByID(id string) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Where("id = ?", id).First(&session).Error
	return &session, err
}

func (r *StudySessionRepository) MarkEnded(id string) error {
	now := time.Now()
	return r.DB.Model(&model.StudySession{}).
		Where("id = ?", id).
		Update("ended_at", &now).
		Error
}
