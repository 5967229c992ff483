package repository

import (
	"educrate/internal/model"

	"gorm.io/gorm"
)

// 列表接口单用户最多返回的学习包数
const kitListLimit = 50

type LearningKitRepository struct {
	DB *gorm.DB
}

func NewLearningKitRepository(db *gorm.DB) *LearningKitRepository {
	return &LearningKitRepository{DB: db}
}

func (r *LearningKitRepository) Create(kit *model.LearningKit) error {
	return r.DB.Create(kit).Error
}

func (r *LearningKitRepository) FindByID(id string) (*model.LearningKit, error) {
	var kit model.LearningKit
	err := r.DB.Where("id = ?", id).First(&kit).Error
	return &kit, err
}

// FindByUser 按创建时间倒序
func (r *LearningKitRepository) FindByUser(userID string) ([]model.LearningKit, error) {
	var kits []model.LearningKit
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(kitListLimit).
		Find(&kits).Error
	return kits, err
}

func (r *LearningKitRepository) FindRecentByUser(userID string, limit int) ([]model.LearningKit, error) {
	var kits []model.LearningKit
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&kits).Error
	return kits, err
}

func (r *LearningKitRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningKit{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
