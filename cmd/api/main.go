package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/trimkart/task-tracker/internal/api/http"
	"github.com/trimkart/task-tracker/internal/api/http/handlers"
	"github.com/trimkart/task-tracker/internal/config"
	"github.com/trimkart/task-tracker/internal/events"
	"github.com/trimkart/task-tracker/internal/observability"
	"github.com/trimkart/task-tracker/internal/persistence"
	"github.com/trimkart/task-tracker/internal/repository"
	"github.com/trimkart/task-tracker/internal/service"
	"github.com/trimkart/task-tracker/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to init document store client", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	db := mongo.DatabaseHandle()
	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	directoryService := service.NewDirectoryService(service.DirectoryDependencies{
		DepartmentRepo: departmentRepo,
		UserRepo:       userRepo,
		Dispatcher:     dispatcher,
	})
	taskService := service.NewTaskService(service.TaskDependencies{
		TaskRepo:   taskRepo,
		Dispatcher: dispatcher,
	})
	analyticsService := service.NewAnalyticsService(service.AnalyticsDependencies{
		UserRepo: userRepo,
		TaskRepo: taskRepo,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo),
		Auth:        handlers.NewAuthHandler(authService),
		Departments: handlers.NewDepartmentsHandler(directoryService),
		Users:       handlers.NewUsersHandler(directoryService),
		Tasks:       handlers.NewTasksHandler(taskService),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
