package tui

import (
	"educrate/internal/client"
	"educrate/internal/model"
	"time"
)

// requestTimeout 是 TUI 发起的所有后端请求的统一超时
const requestTimeout = 15 * time.Second

type errMsg struct {
	err error
}

type userRegisteredMsg struct {
	user *model.User
}

type userRestoredMsg struct {
	user *model.User
}

type sessionRestoreFailedMsg struct{}

type questionsLoadedMsg struct {
	questions []model.AssessmentQuestion
}

type assessmentSubmittedMsg struct {
	result *client.AssessmentResult
}

type kitsLoadedMsg struct {
	kits []model.LearningKit
}

type kitCreatedMsg struct {
	kit *model.LearningKit
}

type studyStartedMsg struct {
	result *client.StartSessionResult
}

type studyEndedMsg struct{}

type answerReceivedMsg struct {
	result *client.AskResult
}
