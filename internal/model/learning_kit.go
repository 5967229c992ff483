package model

// FlashcardPair 单张闪卡
type FlashcardPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContentItem 学习包中的一项生成内容，随 LearningKit 以 JSON 存储，不单独建表
// Content 与 Cards 二选一：flashcards 类型填 Cards，其余类型填 Content
type ContentItem struct {
	Type          ContentType            `json:"type"`
	LearningStyle LearningStyle          `json:"learning_style"`
	Content       string                 `json:"content,omitempty"`
	Cards         []FlashcardPair        `json:"cards,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// swagger:model LearningKit
type LearningKit struct {
	UUIDBase
	UserID          string          `gorm:"index;type:varchar(36);not null" json:"user_id"`
	Topic           string          `gorm:"size:255;not null" json:"topic"`
	SourceContent   string          `gorm:"type:longtext" json:"source_content"`
	ContentItems    []ContentItem   `gorm:"serializer:json;type:json" json:"content_items"`
	LearningStyles  []LearningStyle `gorm:"serializer:json;type:json" json:"learning_styles"`
	DifficultyLevel string          `gorm:"size:20;default:'medium'" json:"difficulty_level"`
	EstimatedTime   int             `gorm:"default:30" json:"estimated_time"` // 分钟
}

func (LearningKit) TableName() string {
	return "learning_kits"
}
