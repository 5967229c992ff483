package app

import (
	"context"
	"educrate/internal/config"
	"educrate/internal/controller"
	"educrate/internal/repository"
	"educrate/internal/service"
	"educrate/pkg/database"
	"educrate/pkg/logger"
	"educrate/pkg/monitoring"
	"educrate/pkg/security"
	"educrate/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user         *repository.UserRepository
	kit          *repository.LearningKitRepository
	assessment   *repository.AssessmentRepository
	studySession *repository.StudySessionRepository
	qaSession    *repository.QASessionRepository
	motivation   *repository.MotivationRepository
}

type services struct {
	generator    *service.GeneratorService
	storage      *service.StorageService
	user         *service.UserService
	assessment   *service.AssessmentService
	kit          *service.KitService
	motivation   *service.MotivationService
	studySession *service.StudySessionService
	qa           *service.QAService
	analytics    *service.AnalyticsService
}

type controllers struct {
	user         *controller.UserController
	assessment   *controller.AssessmentController
	kit          *controller.KitController
	studySession *controller.StudySessionController
	qa           *controller.QAController
	analytics    *controller.AnalyticsController
	motivation   *controller.MotivationController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		kit:          repository.NewLearningKitRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
		studySession: repository.NewStudySessionRepository(db),
		qaSession:    repository.NewQASessionRepository(db),
		motivation:   repository.NewMotivationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.generator = service.NewGeneratorService(cfg.Generator)
	s.storage = service.NewStorageService(cfg)
	s.user = service.NewUserService(repos.user)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.user)
	s.kit = service.NewKitService(repos.kit, repos.user, s.generator, rdb, cfg.Generator)
	s.motivation = service.NewMotivationService(repos.motivation)
	s.studySession = service.NewStudySessionService(repos.studySession, repos.user, s.generator, s.motivation)
	s.qa = service.NewQAService(repos.qaSession, repos.kit, repos.user, s.generator)
	s.analytics = service.NewAnalyticsService(repos.kit, repos.qaSession)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		user:         controller.NewUserController(s.user),
		assessment:   controller.NewAssessmentController(s.assessment),
		kit:          controller.NewKitController(s.kit, s.storage),
		studySession: controller.NewStudySessionController(s.studySession),
		qa:           controller.NewQAController(s.qa),
		analytics:    controller.NewAnalyticsController(s.analytics),
		motivation:   controller.NewMotivationController(s.motivation),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("educrate", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
