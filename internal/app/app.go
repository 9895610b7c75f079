package app

import (
	"attendance_backend/internal/config"
	"attendance_backend/internal/controller"
	"attendance_backend/internal/middleware"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/service"
	"attendance_backend/internal/util"
	"attendance_backend/pkg/configwatcher"
	"attendance_backend/pkg/database"
	"attendance_backend/pkg/logger"
	"attendance_backend/pkg/monitoring"
	"attendance_backend/pkg/security"
	"attendance_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConfigFile 热更新监听的配置文件
var ConfigFile = filepath.Join("configs", "config.yaml")

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	class         *repository.ClassRepository
	group         *repository.GroupRepository
	student       *repository.StudentRepository
	session       *repository.SessionRepository
	attendance    *repository.AttendanceRepository
	rosterCache   *repository.RosterCacheRepository
	studentImport *repository.StudentImportRepository
}

type services struct {
	storage    *service.StorageService
	class      *service.ClassService
	group      *service.GroupService
	student    *service.StudentService
	session    *service.SessionService
	attendance *service.AttendanceService
	importer   *service.ImportService
}

type controllers struct {
	class      *controller.ClassController
	group      *controller.GroupController
	student    *controller.StudentController
	session    *controller.SessionController
	attendance *controller.AttendanceController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		class:         repository.NewClassRepository(db),
		group:         repository.NewGroupRepository(db),
		student:       repository.NewStudentRepository(db),
		session:       repository.NewSessionRepository(db),
		attendance:    repository.NewAttendanceRepository(db),
		rosterCache:   repository.NewRosterCacheRepository(rdb, cfg.Redis.RosterTTL()),
		studentImport: repository.NewStudentImportRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(&cfg.Storage)
	s.class = service.NewClassService(repos.class)
	s.group = service.NewGroupService(repos.group, repos.class)
	s.student = service.NewStudentService(repos.student, repos.group, repos.rosterCache)
	s.session = service.NewSessionService(repos.session, repos.group)
	s.attendance = service.NewAttendanceService(repos.attendance, repos.session, repos.student, repos.rosterCache)
	s.importer = service.NewImportService(repos.studentImport, repos.group, s.storage, cfg.Import)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		class:      controller.NewClassController(s.class),
		group:      controller.NewGroupController(s.group),
		student:    controller.NewStudentController(s.student, s.importer),
		session:    controller.NewSessionController(s.session),
		attendance: controller.NewAttendanceController(s.attendance),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 用已建立的连接组装应用，rdb 为 nil 时不启用点名册缓存
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode, gin.DebugMode:
		gin.SetMode(cfg.Server.Mode)
	}
	util.RegisterValidation()
	monitoring.Init()

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	app.services = app.initServices(repos, cfg)
	controllers := app.initControllers(app.services, db, rdb)

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 导入策略支持热更新
	importer := app.services.importer
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		importer.UpdatePolicy(newCfg.Import)
		logger.Log.Info("Import policy updated",
			zap.Bool("allow_empty_names", newCfg.Import.AllowEmptyNames),
			zap.Int("max_rows", newCfg.Import.MaxRows),
		)
	})

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// release 模式默认不迁移，需显式传 -migrate
	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		err := configwatcher.WatchConfig(watchCtx, ConfigFile, func(cfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(cfg)
			}
		})
		if err != nil {
			logger.Log.Warn("Config watcher stopped", zap.Error(err))
		}
	}()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stopWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
}
