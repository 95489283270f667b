package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lessonlab/backend/config"
	"github.com/lessonlab/backend/database"
	"github.com/lessonlab/backend/internal/auth"
	studentctrl "github.com/lessonlab/backend/internal/controller/student"
	teacherctrl "github.com/lessonlab/backend/internal/controller/teacher"
	usersctrl "github.com/lessonlab/backend/internal/controller/users"
	"github.com/lessonlab/backend/internal/logger"
	"github.com/lessonlab/backend/internal/model"
	"github.com/lessonlab/backend/internal/repository"
	"github.com/lessonlab/backend/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Lessonlab API
// @version 1.0
// @description REST backend for a small learning-management system: teachers publish lessons with quizzes and tasks, students submit answers, teachers review engagement and assign marks.
// @host localhost:4000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			auth.NewManager,
		),

		// Repositories
		fx.Provide(
			repository.NewStudentRepository,
			repository.NewTeacherRepository,
			repository.NewLessonRepository,
			repository.NewQuestionRepository,
			repository.NewTaskRepository,
			repository.NewAttemptRepository,
			repository.NewSubmissionRepository,
			repository.NewViewRepository,
		),

		// Services
		fx.Provide(
			service.NewLessonService,
			service.NewSubmissionService,
			service.NewEngagementService,
			service.NewUserService,
		),

		// Controllers
		fx.Provide(
			studentctrl.NewStudentController,
			teacherctrl.NewTeacherController,
			usersctrl.NewUsersController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI, spec regenerated with `swag init -g cmd/main.go`
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authManager *auth.Manager,
	studentCtrl *studentctrl.StudentController,
	teacherCtrl *teacherctrl.TeacherController,
	usersCtrl *usersctrl.UsersController,
) {
	started := time.Now()
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "uptime_seconds": time.Since(started).Seconds()})
	})

	api := router.Group("/api")
	{
		api.GET("/users", usersCtrl.List)
		api.POST("/users/token", usersCtrl.IssueToken)

		lessons := api.Group("/lessons")
		lessons.GET("", studentCtrl.GetAllLessons)
		lessons.GET("/:id", studentCtrl.GetLesson)
		lessons.GET("/:id/status", studentCtrl.GetStatus)
		lessons.POST("/view", studentCtrl.RecordView)
		lessons.POST("/quiz", studentCtrl.SubmitQuiz)
		lessons.POST("/task", studentCtrl.SubmitTask)

		teacherGroup := api.Group("/teacher")
		teacherGroup.Use(authManager.RequireRoles(auth.RoleTeacher, auth.RoleAdmin))
		teacherGroup.POST("/lessons", teacherCtrl.CreateLesson)
		teacherGroup.GET("/lessons/:id/attempts", teacherCtrl.GetAttempts)
		teacherGroup.GET("/lessons/:id/submissions", teacherCtrl.GetSubmissions)
		teacherGroup.GET("/lessons/:id/engagement", teacherCtrl.GetEngagement)
		teacherGroup.POST("/mark/task", teacherCtrl.MarkTask)
		teacherGroup.POST("/mark/quiz", teacherCtrl.MarkQuiz)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Lessonlab API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Student{},
		&model.Teacher{},
		&model.Lesson{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.QuizAnswer{},
		&model.LessonTask{},
		&model.TaskSubmission{},
		&model.LessonView{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
