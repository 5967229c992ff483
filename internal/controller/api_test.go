package controller

import (
	"bytes"
	"educrate/internal/config"
	"educrate/internal/model"
	"educrate/internal/repository"
	"educrate/internal/service"
	"educrate/pkg/database"
	"educrate/pkg/logger"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// setupRouter 用内存库拼出和正式服务一致的路由
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	genCfg := config.GeneratorConfig{
		FlashcardCount:   10,
		SummaryMaxChars:  200,
		DefaultKitTime:   30,
		MaxStudyDuration: 30,
		BreakInterval:    5,
	}
	cfg := &config.Config{Generator: genCfg}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	userRepo := repository.NewUserRepository(db)
	kitRepo := repository.NewLearningKitRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	sessionRepo := repository.NewStudySessionRepository(db)
	qaRepo := repository.NewQASessionRepository(db)
	motivationRepo := repository.NewMotivationRepository(db)

	gen := service.NewGeneratorService(genCfg)
	userSvc := service.NewUserService(userRepo)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, userRepo)
	kitSvc := service.NewKitService(kitRepo, userRepo, gen, nil, genCfg)
	motivationSvc := service.NewMotivationService(motivationRepo)
	sessionSvc := service.NewStudySessionService(sessionRepo, userRepo, gen, motivationSvc)
	qaSvc := service.NewQAService(qaRepo, kitRepo, userRepo, gen)
	analyticsSvc := service.NewAnalyticsService(kitRepo, qaRepo)
	storageSvc := service.NewStorageService(cfg)

	userCtrl := NewUserController(userSvc)
	assessmentCtrl := NewAssessmentController(assessmentSvc)
	kitCtrl := NewKitController(kitSvc, storageSvc)
	sessionCtrl := NewStudySessionController(sessionSvc)
	qaCtrl := NewQAController(qaSvc)
	analyticsCtrl := NewAnalyticsController(analyticsSvc)
	motivationCtrl := NewMotivationController(motivationSvc)
	healthCtrl := NewHealthController(db)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/health", healthCtrl.HealthCheck)
	api.GET("/motivation", motivationCtrl.GetCurrent)
	api.POST("/users", userCtrl.Create)
	api.GET("/learning-assessment-questions", assessmentCtrl.ListQuestions)
	api.POST("/learning-kits", kitCtrl.Create)
	api.GET("/learning-kits/:id", kitCtrl.Get)
	api.POST("/learning-kits/source-upload", kitCtrl.UploadSource)
	api.POST("/qa-sessions", qaCtrl.Ask)
	api.POST("/study-sessions/:id/end", sessionCtrl.End)
	users := api.Group("/users/:id")
	users.GET("", userCtrl.Get)
	users.POST("/assessment", assessmentCtrl.Submit)
	users.GET("/learning-kits", kitCtrl.ListByUser)
	users.POST("/study-session", sessionCtrl.Start)
	users.GET("/analytics", analyticsCtrl.ForUser)
	return router
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w, env := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":  "Flow Tester",
		"email": email,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.UserID)
	return data.UserID
}

func TestFullLearningFlow(t *testing.T) {
	router := setupRouter(t)

	userID := registerUser(t, router, "flow@example.com")

	// 问卷固定五道题
	w, env := doJSON(t, router, http.MethodGet, "/api/learning-assessment-questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var qData struct {
		Questions []model.AssessmentQuestion `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &qData))
	require.Len(t, qData.Questions, 5)

	// 全选 visual：visual 得 10 分，其余各 4 分
	w, env = doJSON(t, router, http.MethodPost, "/api/users/"+userID+"/assessment", gin.H{
		"visual_score":      10,
		"auditory_score":    4,
		"textual_score":     4,
		"kinesthetic_score": 4,
		"answers":           gin.H{"1": "visual"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		DominantStyles []model.LearningStyle `json:"dominant_styles"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, []model.LearningStyle{model.Visual}, result.DominantStyles)

	// 不传 target_styles 时用测评结果生成 visual 内容
	q := url.Values{}
	q.Set("user_id", userID)
	q.Set("topic", "solar system")
	q.Set("source_content", "planets orbit the sun")
	w, env = doJSON(t, router, http.MethodPost, "/api/learning-kits?"+q.Encode(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var kitData struct {
		Kit          model.LearningKit `json:"kit"`
		ContentCount int               `json:"content_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &kitData))
	assert.Equal(t, 1, kitData.ContentCount)
	require.Len(t, kitData.Kit.ContentItems, 1)
	assert.Equal(t, model.ContentVisualDoodle, kitData.Kit.ContentItems[0].Type)

	// 列表里能看到刚建的包
	w, env = doJSON(t, router, http.MethodGet, "/api/users/"+userID+"/learning-kits", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listData struct {
		Kits []model.LearningKit `json:"kits"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listData))
	require.Len(t, listData.Kits, 1)
	assert.Equal(t, "solar system", listData.Kits[0].Topic)

	// 开始学习会话拿到建议
	w, env = doJSON(t, router, http.MethodPost, "/api/users/"+userID+"/study-session", gin.H{
		"mood":           "focused",
		"available_time": 60,
		"energy_level":   7,
		"focus_level":    8,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var sessionData struct {
		SessionID   string                 `json:"session_id"`
		Suggestions *model.StudySuggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sessionData))
	require.NotNil(t, sessionData.Suggestions)
	assert.Equal(t, 30, sessionData.Suggestions.StudyDuration)
	assert.NotEmpty(t, sessionData.Suggestions.MotivationMessage)

	// 结束会话，重复结束报冲突
	w, _ = doJSON(t, router, http.MethodPost, "/api/study-sessions/"+sessionData.SessionID+"/end", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/api/study-sessions/"+sessionData.SessionID+"/end", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// 基于学习包提问
	w, env = doJSON(t, router, http.MethodPost, "/api/qa-sessions", gin.H{
		"user_id":  userID,
		"kit_id":   kitData.Kit.ID,
		"question": "what orbits the sun?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var qaData struct {
		Answer    string `json:"answer"`
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &qaData))
	assert.Contains(t, qaData.Answer, "visual learner")
	assert.NotEmpty(t, qaData.SessionID)

	// 统计数据
	w, env = doJSON(t, router, http.MethodGet, "/api/users/"+userID+"/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var analytics service.UserAnalytics
	require.NoError(t, json.Unmarshal(env.Data, &analytics))
	assert.EqualValues(t, 1, analytics.TotalKitsCreated)
	assert.EqualValues(t, 1, analytics.TotalQuestionsAsked)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	router := setupRouter(t)
	registerUser(t, router, "dup@example.com")

	w, env := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":  "Other",
		"email": "dup@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "该邮箱已被注册", env.Message)
}

func TestRegisterValidation(t *testing.T) {
	router := setupRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/users", gin.H{"email": "no-name@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":               "A",
		"email":              "bad-lang@example.com",
		"preferred_language": "xx",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserNotFound(t *testing.T) {
	router := setupRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/users/does-not-exist", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateKitForUnknownUser(t *testing.T) {
	router := setupRouter(t)

	q := url.Values{}
	q.Set("user_id", "ghost")
	q.Set("topic", "x")
	q.Set("source_content", "y")
	w, _ := doJSON(t, router, http.MethodPost, "/api/learning-kits?"+q.Encode(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetKitNotFound(t *testing.T) {
	router := setupRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/learning-kits/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudySessionInvalidMood(t *testing.T) {
	router := setupRouter(t)
	userID := registerUser(t, router, "mood@example.com")

	w, _ := doJSON(t, router, http.MethodPost, "/api/users/"+userID+"/study-session", gin.H{
		"mood":           "sleepy",
		"available_time": 30,
		"energy_level":   5,
		"focus_level":    5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEndUnknownSession(t *testing.T) {
	router := setupRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/study-sessions/missing/end", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSourceUpload(t *testing.T) {
	router := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("uploaded study material"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/learning-kits/source-upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data struct {
		SourceContent string `json:"source_content"`
		URL           string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "uploaded study material", data.SourceContent)
	assert.True(t, strings.HasPrefix(data.URL, "/uploads/sources/"))
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"status":"ok"`)
}

func TestMotivationEndpoint(t *testing.T) {
	router := setupRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/api/motivation", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Content)
}
