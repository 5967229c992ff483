package model

import "time"

// AssessmentOption 每个选项绑定一种学习风格
type AssessmentOption struct {
	Value LearningStyle `json:"value"`
	Text  string        `json:"text"`
}

// AssessmentQuestion 学习风格测评题，固定五题，迁移时种子写入
// swagger:model AssessmentQuestion
type AssessmentQuestion struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Question  string             `gorm:"type:text;not null" json:"question"`
	Options   []AssessmentOption `gorm:"serializer:json;type:json" json:"options"`
	Order     int                `gorm:"default:0" json:"order"`
	CreatedAt time.Time          `json:"-"`
	UpdatedAt time.Time          `json:"-"`
}

func (AssessmentQuestion) TableName() string {
	return "assessment_questions"
}

// AssessmentSubmission 一次完整的测评提交，分数由客户端累计后上报
type AssessmentSubmission struct {
	UUIDBase
	UserID           string                 `gorm:"index;type:varchar(36);not null" json:"user_id"`
	VisualScore      int                    `json:"visual_score"`
	AuditoryScore    int                    `json:"auditory_score"`
	TextualScore     int                    `json:"textual_score"`
	KinestheticScore int                    `json:"kinesthetic_score"`
	Answers          map[string]interface{} `gorm:"serializer:json;type:json" json:"answers"`
}

func (AssessmentSubmission) TableName() string {
	return "assessment_submissions"
}

// Scores 按固定风格顺序展开
func (s *AssessmentSubmission) Scores() map[LearningStyle]int {
	return map[LearningStyle]int{
		Visual:      s.VisualScore,
		Auditory:    s.AuditoryScore,
		Textual:     s.TextualScore,
		Kinesthetic: s.KinestheticScore,
	}
}
