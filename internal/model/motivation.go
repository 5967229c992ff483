package model

import "time"

// Motivation 轮换展示的激励短句，学习会话建议从这里取文案
type Motivation struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	IsEnabled       bool      `gorm:"default:true" json:"is_enabled"`
	IsCurrentlyUsed bool      `gorm:"default:false" json:"is_currently_used"`
	LastUsedAt      time.Time `gorm:"autoCreateTime" json:"last_used_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Motivation) TableName() string {
	return "motivations"
}
