// Package info provides the root service info handler.
package info

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/config"
	"github.com/voicegate/phonemode/internal/web/handler"
)

// Path is the path of the service info route.
const Path = handler.RootPath

// Service is the info handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the info handler.
var Handler = Service{}

// Init initializes the info handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get returns basic service information.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"service": s.cfg.Title,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
