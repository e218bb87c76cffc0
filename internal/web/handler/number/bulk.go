package number

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/voicegate/phonemode/internal/db/controller/phonenumber"
	"github.com/voicegate/phonemode/internal/db/models"
	"github.com/voicegate/phonemode/internal/phone"
	"github.com/voicegate/phonemode/internal/web/handler"
)

type bulkItem struct {
	Number any    `json:"number"`
	Mode   string `json:"mode"`
}

type bulkRequest struct {
	Numbers json.RawMessage `json:"numbers"`
}

type skippedEntry struct {
	Number string `json:"number"`
	Reason string `json:"reason"`
}

type errorEntry struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

// BulkAdd inserts a batch of number/mode pairs.
// Each item is processed independently: an invalid or duplicate item is
// reported in the result lists and never aborts the remaining items.
func (s *Service) BulkAdd(c *fiber.Ctx) error {
	var req bulkRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || req.Numbers == nil {
		return handler.Error(c, fiber.StatusBadRequest, "numbers must be an array")
	}

	var items []bulkItem
	if err := json.Unmarshal(req.Numbers, &items); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "numbers must be an array")
	}

	var (
		added   = make([]models.PhoneNumber, 0, len(items))
		skipped = make([]skippedEntry, 0)
		errs    = make([]errorEntry, 0)
	)

	for _, item := range items {
		number := phone.Normalize(item.Number)
		if number == "" {
			errs = append(errs, errorEntry{Number: number, Message: phonenumber.ErrNumberEmpty.Error()})
			continue
		}

		mode := models.Mode(item.Mode)
		if item.Mode == "" {
			mode = models.ModeCall
		}

		if !mode.Valid() {
			errs = append(errs, errorEntry{Number: number, Message: phonenumber.ErrInvalidMode.Error()})
			continue
		}

		record, err := phonenumber.Create(s.db, number, mode)

		switch {
		case err == nil:
			added = append(added, *record)
		case errors.Is(err, phonenumber.ErrNumberExists):
			skipped = append(skipped, skippedEntry{Number: number, Reason: "exists"})
		default:
			log.Error().Err(err).Str("number", number).Msg("bulk add item failed")
			errs = append(errs, errorEntry{Number: number, Message: handler.MsgInternalServerError})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"results": fiber.Map{
			"added":   added,
			"skipped": skipped,
			"errors":  errs,
		},
	})
}
