package database

import (
	"educrate/internal/config"
	"educrate/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 建表并写入种子数据，测试环境用 sqlite 时同样走这里
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.AssessmentQuestion{},
		&model.AssessmentSubmission{},
		&model.LearningKit{},
		&model.StudySession{},
		&model.QASession{},
		&model.Motivation{},
	)
	if err != nil {
		return err
	}

	seedAssessmentQuestions(db)
	seedMotivations(db)
	return nil
}

// 默认五道学习风格测评题，客户端按 order 逐题展示
func seedAssessmentQuestions(db *gorm.DB) {
	var count int64
	db.Model(&model.AssessmentQuestion{}).Count(&count)
	if count > 0 {
		return
	}

	questions := []model.AssessmentQuestion{
		{
			ID:       1,
			Order:    1,
			Question: "When learning something new, I prefer to:",
			Options: []model.AssessmentOption{
				{Value: model.Visual, Text: "See diagrams, charts, or visual demonstrations"},
				{Value: model.Auditory, Text: "Listen to explanations or discussions"},
				{Value: model.Textual, Text: "Read detailed written instructions"},
				{Value: model.Kinesthetic, Text: "Try it hands-on with practice exercises"},
			},
		},
		{
			ID:       2,
			Order:    2,
			Question: "I remember information best when it's:",
			Options: []model.AssessmentOption{
				{Value: model.Visual, Text: "Presented with images, colors, or mind maps"},
				{Value: model.Auditory, Text: "Explained through verbal discussions"},
				{Value: model.Textual, Text: "Written in detailed notes or summaries"},
				{Value: model.Kinesthetic, Text: "Connected to real-world activities"},
			},
		},
		{
			ID:       3,
			Order:    3,
			Question: "When solving problems, I tend to:",
			Options: []model.AssessmentOption{
				{Value: model.Visual, Text: "Draw sketches or visualize solutions"},
				{Value: model.Auditory, Text: "Talk through the problem aloud"},
				{Value: model.Textual, Text: "Write out step-by-step procedures"},
				{Value: model.Kinesthetic, Text: "Work through examples physically"},
			},
		},
		{
			ID:       4,
			Order:    4,
			Question: "My ideal study environment includes:",
			Options: []model.AssessmentOption{
				{Value: model.Visual, Text: "Good lighting with colorful materials and visual aids"},
				{Value: model.Auditory, Text: "Background music or the ability to discuss topics"},
				{Value: model.Textual, Text: "Quiet space with books and written materials"},
				{Value: model.Kinesthetic, Text: "Space to move around and manipulate objects"},
			},
		},
		{
			ID:       5,
			Order:    5,
			Question: "I understand concepts better when:",
			Options: []model.AssessmentOption{
				{Value: model.Visual, Text: "I can see the big picture through diagrams"},
				{Value: model.Auditory, Text: "I hear multiple perspectives and explanations"},
				{Value: model.Textual, Text: "I can analyze detailed written information"},
				{Value: model.Kinesthetic, Text: "I can apply them to real situations"},
			},
		},
	}
	for _, q := range questions {
		db.Create(&q)
	}
}

// 默认的激励短句
func seedMotivations(db *gorm.DB) {
	var count int64
	db.Model(&model.Motivation{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []string{
		"Perfect time to explore something new!",
		"Small study sessions add up to big understanding.",
		"Your learning style is a strength, not a limit.",
		"Every flashcard you flip is one step closer to mastery.",
	}
	for i, content := range defaults {
		db.Create(&model.Motivation{
			Content:         content,
			IsEnabled:       true,
			IsCurrentlyUsed: i == 0,
		})
	}
}
