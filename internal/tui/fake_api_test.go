package tui

import (
	"context"
	"educrate/internal/client"
	"educrate/internal/model"
	"errors"
)

// fakeAPI 按需覆盖各方法，未覆盖的方法直接报错，顺便防止误触网络
type fakeAPI struct {
	createUserFn   func(req client.CreateUserRequest) (*model.User, error)
	getUserFn      func(userID string) (*model.User, error)
	questionsFn    func() ([]model.AssessmentQuestion, error)
	submitFn       func(userID string, req client.SubmitAssessmentRequest) (*client.AssessmentResult, error)
	createKitFn    func(req client.CreateKitRequest) (*model.LearningKit, error)
	listKitsFn     func(userID string) ([]model.LearningKit, error)
	startSessionFn func(userID string, req client.StartSessionRequest) (*client.StartSessionResult, error)
	endSessionFn   func(sessionID string) error
	askFn          func(req client.AskRequest) (*client.AskResult, error)

	calls map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int)}
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeAPI) CreateUser(_ context.Context, req client.CreateUserRequest) (*model.User, error) {
	f.calls["CreateUser"]++
	if f.createUserFn == nil {
		return nil, errNotStubbed
	}
	return f.createUserFn(req)
}

func (f *fakeAPI) GetUser(_ context.Context, userID string) (*model.User, error) {
	f.calls["GetUser"]++
	if f.getUserFn == nil {
		return nil, errNotStubbed
	}
	return f.getUserFn(userID)
}

func (f *fakeAPI) AssessmentQuestions(_ context.Context) ([]model.AssessmentQuestion, error) {
	f.calls["AssessmentQuestions"]++
	if f.questionsFn == nil {
		return nil, errNotStubbed
	}
	return f.questionsFn()
}

func (f *fakeAPI) SubmitAssessment(_ context.Context, userID string, req client.SubmitAssessmentRequest) (*client.AssessmentResult, error) {
	f.calls["SubmitAssessment"]++
	if f.submitFn == nil {
		return nil, errNotStubbed
	}
	return f.submitFn(userID, req)
}

func (f *fakeAPI) CreateKit(_ context.Context, req client.CreateKitRequest) (*model.LearningKit, error) {
	f.calls["CreateKit"]++
	if f.createKitFn == nil {
		return nil, errNotStubbed
	}
	return f.createKitFn(req)
}

func (f *fakeAPI) ListKits(_ context.Context, userID string) ([]model.LearningKit, error) {
	f.calls["ListKits"]++
	if f.listKitsFn == nil {
		return nil, errNotStubbed
	}
	return f.listKitsFn(userID)
}

func (f *fakeAPI) StartStudySession(_ context.Context, userID string, req client.StartSessionRequest) (*client.StartSessionResult, error) {
	f.calls["StartStudySession"]++
	if f.startSessionFn == nil {
		return nil, errNotStubbed
	}
	return f.startSessionFn(userID, req)
}

func (f *fakeAPI) EndStudySession(_ context.Context, sessionID string) error {
	f.calls["EndStudySession"]++
	if f.endSessionFn == nil {
		return errNotStubbed
	}
	return f.endSessionFn(sessionID)
}

func (f *fakeAPI) AskQuestion(_ context.Context, req client.AskRequest) (*client.AskResult, error) {
	f.calls["AskQuestion"]++
	if f.askFn == nil {
		return nil, errNotStubbed
	}
	return f.askFn(req)
}

// seedQuestions 生成 n 道题，每道题四个选项覆盖全部风格
func seedQuestions(n int) []model.AssessmentQuestion {
	qs := make([]model.AssessmentQuestion, n)
	for i := range qs {
		opts := make([]model.AssessmentOption, 0, len(model.AllLearningStyles))
		for _, style := range model.AllLearningStyles {
			opts = append(opts, model.AssessmentOption{Value: style, Text: string(style)})
		}
		qs[i] = model.AssessmentQuestion{ID: uint(i + 1), Order: i + 1, Question: "q", Options: opts}
	}
	return qs
}
