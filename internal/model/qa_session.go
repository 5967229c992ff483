package model

// swagger:model QASession
type QASession struct {
	UUIDBase
	UserID   string `gorm:"index;type:varchar(36);not null" json:"user_id"`
	KitID    string `gorm:"index;type:varchar(36);not null" json:"kit_id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text" json:"answer"`
	Context  string `gorm:"type:longtext" json:"context"`
}

func (QASession) TableName() string {
	return "qa_sessions"
}
