package model

import "time"

// StudySuggestion 开始学习会话时返回的建议，随会话以 JSON 存储
type StudySuggestion struct {
	RecommendedContentTypes []ContentType `json:"recommended_content_types"`
	StudyDuration           int           `json:"study_duration"`  // 分钟
	BreakIntervals          int           `json:"break_intervals"` // 分钟
	DifficultyAdjustment    string        `json:"difficulty_adjustment"`
	MotivationMessage       string        `json:"motivation_message"`
}

// swagger:model StudySession
type StudySession struct {
	UUIDBase
	UserID                string           `gorm:"index;type:varchar(36);not null" json:"user_id"`
	Mood                  MoodType         `gorm:"size:20;not null" json:"mood"`
	AvailableTime         int              `gorm:"not null" json:"available_time"` // 分钟
	EnergyLevel           int              `json:"energy_level"`                   // 1-10
	FocusLevel            int              `json:"focus_level"`                    // 1-10
	PreferredContentTypes []ContentType    `gorm:"serializer:json;type:json" json:"preferred_content_types"`
	Suggestion            *StudySuggestion `gorm:"serializer:json;type:json" json:"suggestion,omitempty"`
	EndedAt               *time.Time       `json:"ended_at,omitempty"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
