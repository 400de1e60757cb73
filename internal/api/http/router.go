package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trimkart/task-tracker/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Departments *handlers.DepartmentsHandler
	Users       *handlers.UsersHandler
	Tasks       *handlers.TasksHandler
	Analytics   *handlers.AnalyticsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/test", cfg.Health.Test)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	app.Post("/departments", cfg.Departments.Create)
	app.Get("/departments", cfg.Departments.List)

	app.Get("/users", cfg.Users.List)

	app.Post("/tasks", cfg.Tasks.Create)
	app.Get("/tasks", cfg.Tasks.List)
	app.Post("/tasks/:id/update", cfg.Tasks.AddUpdate)
	app.Post("/tasks/:id/status", cfg.Tasks.SetStatus)

	app.Get("/analytics/overview", cfg.Analytics.Overview)
}
