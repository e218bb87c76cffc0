// Package health provides the storage health check handler.
package health

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/config"
	"github.com/voicegate/phonemode/internal/web/handler"
)

const (
	// Path is the path of the health check route.
	Path = handler.RootPath + "health"

	pingTimeout = 2 * time.Second
)

// Service is the health handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get pings the storage layer and reports service health.
func (s *Service) Get(c *fiber.Ctx) error {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	sqlDB, err := s.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		err = sqlDB.PingContext(ctx)
	}

	if err != nil {
		log.Error().Err(err).Msg("health check failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":    "error",
			"database":  "disconnected",
			"timestamp": timestamp,
		})
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"database":  "connected",
		"timestamp": timestamp,
	})
}
