// Package number provides the CRUD handlers for phone number records.
package number

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/config"
	"github.com/voicegate/phonemode/internal/db/controller/phonenumber"
	"github.com/voicegate/phonemode/internal/db/models"
	"github.com/voicegate/phonemode/internal/phone"
	"github.com/voicegate/phonemode/internal/web/handler"
)

const (
	// ListPath is the path of the list route.
	ListPath = handler.RootPath + "numbers"

	// AddPath is the path of the add route.
	AddPath = handler.RootPath + "add-number"

	// UpdateModePath is the path of the update-mode route.
	UpdateModePath = handler.RootPath + "update-mode"

	// DeletePath is the path of the delete route.
	DeletePath = handler.RootPath + "delete-number/:id"

	// BulkAddPath is the path of the bulk add route.
	BulkAddPath = handler.RootPath + "bulk-add"
)

var validate = validator.New()

type addRequest struct {
	Number any    `json:"number" validate:"required"`
	Mode   string `json:"mode"   validate:"required,oneof=CALL OTP"`
}

type updateModeRequest struct {
	ID   uint64 `json:"id"   validate:"required"`
	Mode string `json:"mode" validate:"required,oneof=CALL OTP"`
}

// Service is the phone number CRUD handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the phone number CRUD handler.
var Handler = Service{}

// Init initializes the phone number CRUD handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(ListPath, s.List)
	app.Post(AddPath, s.Add)
	app.Put(UpdateModePath, s.UpdateMode)
	app.Delete(DeletePath, s.Delete)
	app.Post(BulkAddPath, s.BulkAdd)
}

// List returns all records, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	records, err := phonenumber.GetAll(s.db)
	if err != nil {
		return handler.ServerError(c, err)
	}

	if records == nil {
		records = []models.PhoneNumber{}
	}

	return c.JSON(records)
}

// Add creates a new record from a number/mode pair.
func (s *Service) Add(c *fiber.Ctx) error {
	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, validationMessage(err, "number and mode are required"))
	}

	record, err := phonenumber.Create(s.db, phone.Normalize(req.Number), models.Mode(req.Mode))
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

// UpdateMode changes the mode of an existing record.
func (s *Service) UpdateMode(c *fiber.Ctx) error {
	var req updateModeRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, validationMessage(err, "id and mode are required"))
	}

	record, err := phonenumber.UpdateMode(s.db, req.ID, models.Mode(req.Mode))
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

// Delete removes a record by id and returns the removed record.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	record, err := phonenumber.Delete(s.db, id)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

// storeError maps controller errors onto the HTTP error taxonomy.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, phonenumber.ErrNumberNotFound):
		return handler.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, phonenumber.ErrNumberExists),
		errors.Is(err, phonenumber.ErrInvalidMode),
		errors.Is(err, phonenumber.ErrNumberEmpty):
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return handler.ServerError(c, err)
	}
}

// validationMessage turns a validator error into a client facing message.
func validationMessage(err error, missingMsg string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if verrs[0].Tag() == "oneof" {
			return phonenumber.ErrInvalidMode.Error()
		}

		return missingMsg
	}

	return "invalid request"
}
