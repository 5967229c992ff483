package model

// swagger:model User
type User struct {
	UUIDBase
	Name              string          `gorm:"size:100;not null" json:"name"`
	Email             string          `gorm:"size:100;unique;not null" json:"email"`
	PreferredLanguage string          `gorm:"size:10;default:'en'" json:"preferred_language"`
	Timezone          string          `gorm:"size:64;default:'UTC'" json:"timezone"`
	LearningStyles    []LearningStyle `gorm:"serializer:json;type:json" json:"learning_styles"`
}

func (User) TableName() string {
	return "users"
}
