package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/config"
	"github.com/voicegate/phonemode/internal/db/controller/phonenumber"
	"github.com/voicegate/phonemode/internal/db/models"
)

// defaultSeed is the baseline set of number/mode pairs the service
// guarantees to exist. Config [[seed]] entries replace it wholesale.
var defaultSeed = []config.SeedEntry{
	{Number: "+14155550100", Mode: string(models.ModeCall)},
	{Number: "+14155550101", Mode: string(models.ModeOTP)},
}

// seed upserts the configured number/mode pairs, in order.
// A failing pair is logged and does not stop the remaining pairs,
// so running it twice leaves the store in the same state.
func seed(cfg *config.Config, db *gorm.DB) {
	entries := defaultSeed
	if len(cfg.Seed) > 0 {
		entries = cfg.Seed
	}

	for _, entry := range entries {
		record, err := phonenumber.UpsertMode(db, entry.Number, models.Mode(entry.Mode))
		if err != nil {
			log.Error().Err(err).Str("number", entry.Number).Str("mode", entry.Mode).
				Msg("failed to seed phone number")

			continue
		}

		log.Debug().Str("number", record.Number).Str("mode", string(record.Mode)).
			Msg("seeded phone number")
	}
}
