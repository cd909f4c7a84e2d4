package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/config"
	"github.com/yourusername/trivia-game-api/internal/handler"
	"github.com/yourusername/trivia-game-api/internal/middleware"
	pgRepo "github.com/yourusername/trivia-game-api/internal/repository/postgres"
	"github.com/yourusername/trivia-game-api/internal/service"
	"github.com/yourusername/trivia-game-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы. Источник случайности передается явно,
	// в тестах его подменяет детерминированный.
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo, rand.New(rand.NewSource(time.Now().UnixNano())))

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService, cfg.App.DefaultPageLimit)
	categoryHandler := handler.NewCategoryHandler(questionService, cfg.App.DefaultPageLimit)
	quizHandler := handler.NewQuizHandler(quizService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	allowedOrigins := cfg.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Неизвестный маршрут и неподдерживаемый метод отвечают
	// тем же фиксированным конвертом, что и прикладные ошибки
	router.HandleMethodNotAllowed = true
	router.NoRoute(handler.NotFoundHandler())
	router.NoMethod(handler.MethodNotAllowedHandler())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// Категории
	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.List)

		categoryWithID := categories.Group("/:id")
		categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID")) // Применяем middleware
		{
			categoryWithID.GET("/questions", categoryHandler.ListQuestions)
		}
	}

	// Вопросы
	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.List)
		questions.POST("", questionHandler.CreateOrSearch)
		questions.POST("/import", questionHandler.Import)

		questionWithID := questions.Group("/:id")
		questionWithID.Use(middleware.ExtractUintParam("id", "questionID")) // Применяем middleware
		{
			questionWithID.GET("", questionHandler.Get)
			questionWithID.DELETE("", questionHandler.Delete)
		}
	}

	// Викторина
	router.POST("/quizzes", quizHandler.NextQuestion)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
