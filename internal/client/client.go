package client

import (
	"bytes"
	"context"
	"educrate/internal/model"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// API 是 TUI 依赖的后端接口，测试时可以用假实现替换
type API interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	AssessmentQuestions(ctx context.Context) ([]model.AssessmentQuestion, error)
	SubmitAssessment(ctx context.Context, userID string, req SubmitAssessmentRequest) (*AssessmentResult, error)
	CreateKit(ctx context.Context, req CreateKitRequest) (*model.LearningKit, error)
	ListKits(ctx context.Context, userID string) ([]model.LearningKit, error)
	StartStudySession(ctx context.Context, userID string, req StartSessionRequest) (*StartSessionResult, error)
	EndStudySession(ctx context.Context, sessionID string) error
	AskQuestion(ctx context.Context, req AskRequest) (*AskResult, error)
}

type CreateUserRequest struct {
	Name              string                `json:"name"`
	Email             string                `json:"email"`
	PreferredLanguage string                `json:"preferred_language,omitempty"`
	Timezone          string                `json:"timezone,omitempty"`
	LearningStyles    []model.LearningStyle `json:"learning_styles,omitempty"`
}

type SubmitAssessmentRequest struct {
	VisualScore      int                    `json:"visual_score"`
	AuditoryScore    int                    `json:"auditory_score"`
	TextualScore     int                    `json:"textual_score"`
	KinestheticScore int                    `json:"kinesthetic_score"`
	Answers          map[string]interface{} `json:"answers,omitempty"`
}

type AssessmentResult struct {
	DominantStyles []model.LearningStyle       `json:"dominant_styles"`
	Scores         map[model.LearningStyle]int `json:"scores"`
}

type CreateKitRequest struct {
	UserID        string
	Topic         string
	SourceContent string
	TargetStyles  []model.LearningStyle
}

type StartSessionRequest struct {
	Mood                  model.MoodType      `json:"mood"`
	AvailableTime         int                 `json:"available_time"`
	EnergyLevel           int                 `json:"energy_level"`
	FocusLevel            int                 `json:"focus_level"`
	PreferredContentTypes []model.ContentType `json:"preferred_content_types,omitempty"`
}

type StartSessionResult struct {
	SessionID   string                 `json:"session_id"`
	Suggestions *model.StudySuggestion `json:"suggestions"`
}

type AskRequest struct {
	UserID   string `json:"user_id"`
	KitID    string `json:"kit_id"`
	Question string `json:"question"`
}

type AskResult struct {
	Answer    string `json:"answer"`
	SessionID string `json:"session_id"`
}

// APIError 携带后端返回的状态码和 message，调用方可按状态码分流
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// envelope 对应后端统一的 {code, message, data} 响应结构
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "invalid response body"}
	}

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	var data struct {
		UserID string      `json:"user_id"`
		User   *model.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", req, &data); err != nil {
		return nil, err
	}
	if data.User == nil || data.UserID == "" {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "registration response missing user_id"}
	}
	return data.User, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) AssessmentQuestions(ctx context.Context) ([]model.AssessmentQuestion, error) {
	var data struct {
		Questions []model.AssessmentQuestion `json:"questions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/learning-assessment-questions", nil, &data); err != nil {
		return nil, err
	}
	return data.Questions, nil
}

func (c *Client) SubmitAssessment(ctx context.Context, userID string, req SubmitAssessmentRequest) (*AssessmentResult, error) {
	var result AssessmentResult
	path := "/api/users/" + url.PathEscape(userID) + "/assessment"
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateKit 的参数走查询串而不是请求体
func (c *Client) CreateKit(ctx context.Context, req CreateKitRequest) (*model.LearningKit, error) {
	q := url.Values{}
	q.Set("user_id", req.UserID)
	q.Set("topic", req.Topic)
	q.Set("source_content", req.SourceContent)
	for _, style := range req.TargetStyles {
		q.Add("target_styles", string(style))
	}

	var data struct {
		Kit          *model.LearningKit `json:"kit"`
		ContentCount int                `json:"content_count"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/learning-kits?"+q.Encode(), nil, &data); err != nil {
		return nil, err
	}
	return data.Kit, nil
}

func (c *Client) ListKits(ctx context.Context, userID string) ([]model.LearningKit, error) {
	var data struct {
		Kits []model.LearningKit `json:"kits"`
	}
	path := "/api/users/" + url.PathEscape(userID) + "/learning-kits"
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data.Kits, nil
}

func (c *Client) StartStudySession(ctx context.Context, userID string, req StartSessionRequest) (*StartSessionResult, error) {
	var result StartSessionResult
	path := "/api/users/" + url.PathEscape(userID) + "/study-session"
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) EndStudySession(ctx context.Context, sessionID string) error {
	path := "/api/study-sessions/" + url.PathEscape(sessionID) + "/end"
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) AskQuestion(ctx context.Context, req AskRequest) (*AskResult, error) {
	var result AskResult
	if err := c.do(ctx, http.MethodPost, "/api/qa-sessions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
