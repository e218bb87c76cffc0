// Package lookup resolves an incoming call webhook to a handling mode.
package lookup

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/config"
	"github.com/voicegate/phonemode/internal/db/controller/phonenumber"
	"github.com/voicegate/phonemode/internal/db/models"
	"github.com/voicegate/phonemode/internal/phone"
	"github.com/voicegate/phonemode/internal/web/handler"
)

// Path is the path of the lookup route.
const Path = handler.RootPath + "lookup"

// calledNumberFields are the input fields that may carry the called number,
// evaluated in priority order, stopping at the first non-empty normalized value.
var calledNumberFields = []string{"Called", "To"}

// Service is the lookup handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the lookup handler.
var Handler = Service{}

// Init initializes the lookup handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Post(Path, s.Post)
}

// Post looks up the handling mode for the called number.
// A number without a record yields the UNKNOWN sentinel, never an error;
// from and callSid are passed through verbatim.
func (s *Service) Post(c *fiber.Ctx) error {
	fields := requestFields(c)

	var calledNumber string

	for _, field := range calledNumberFields {
		if calledNumber = phone.Normalize(fields(field)); calledNumber != "" {
			break
		}
	}

	mode := models.ModeUnknown

	if calledNumber != "" {
		record, err := phonenumber.FindByNumber(s.db, calledNumber)

		switch {
		case err == nil:
			mode = string(record.Mode)
		case errors.Is(err, phonenumber.ErrNumberNotFound):
			// no record, keep the sentinel
		default:
			return handler.ServerError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"calledNumber": calledNumber,
		"mode":         mode,
		"from":         fields("From"),
		"callSid":      fields("CallSid"),
	})
}

// requestFields returns a getter resolving a field from the JSON body,
// the form body or the query string, in that order.
func requestFields(c *fiber.Ctx) func(key string) any {
	var body map[string]any

	ctype := string(c.Request().Header.ContentType())
	if strings.HasPrefix(ctype, fiber.MIMEApplicationJSON) {
		// a malformed body is treated as empty, lookup never rejects
		_ = json.Unmarshal(c.Body(), &body)
	}

	return func(key string) any {
		if v, ok := body[key]; ok {
			return v
		}

		if v := c.FormValue(key); v != "" {
			return v
		}

		if v := c.Query(key); v != "" {
			return v
		}

		return nil
	}
}
