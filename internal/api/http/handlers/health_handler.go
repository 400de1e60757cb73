package handlers

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trimkart/task-tracker/internal/persistence"
)

// HealthHandler serves the root status message and the store diagnostic.
type HealthHandler struct {
	serviceName string
	version     string
	mongo       *persistence.Mongo
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, mongo *persistence.Mongo) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, mongo: mongo}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Trimkart backend is running",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Test handles GET /test. Connectivity problems are reported inside the
// response body; this endpoint never fails.
func (h *HealthHandler) Test(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "running",
		"database":          "not_available",
		"database_url":      setFlag(os.Getenv("DATABASE_URL") != ""),
		"database_name":     setFlag(os.Getenv("DATABASE_NAME") != ""),
		"connection_status": "not_connected",
		"collections":       []string{},
	}

	if h.mongo == nil {
		return c.JSON(response)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.mongo.Ping(ctx); err != nil {
		response["database"] = "error: " + truncate(err.Error(), 50)
		return c.JSON(response)
	}

	response["database"] = "available"
	response["connection_status"] = "connected"

	if names, err := h.mongo.CollectionNames(ctx, 10); err != nil {
		response["database"] = "connected_with_error: " + truncate(err.Error(), 50)
	} else {
		response["collections"] = names
		response["database"] = "connected_and_working"
	}
	return c.JSON(response)
}

func setFlag(set bool) string {
	if set {
		return "set"
	}
	return "not_set"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
