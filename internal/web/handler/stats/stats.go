// Package stats provides the aggregate count handler.
package stats

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/config"
	"github.com/voicegate/phonemode/internal/db/controller/phonenumber"
	"github.com/voicegate/phonemode/internal/db/models"
	"github.com/voicegate/phonemode/internal/web/handler"
)

// Path is the path of the stats route.
const Path = handler.RootPath + "stats"

// Service is the stats handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the stats handler.
var Handler = Service{}

// Init initializes the stats handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get returns the total and per-mode record counts as of the call.
func (s *Service) Get(c *fiber.Ctx) error {
	total, err := phonenumber.Count(s.db)
	if err != nil {
		return handler.ServerError(c, err)
	}

	call, err := phonenumber.CountByMode(s.db, models.ModeCall)
	if err != nil {
		return handler.ServerError(c, err)
	}

	otp, err := phonenumber.CountByMode(s.db, models.ModeOTP)
	if err != nil {
		return handler.ServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"total":     total,
		"call":      call,
		"otp":       otp,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
