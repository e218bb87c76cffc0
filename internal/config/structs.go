package config

import (
	"github.com/voicegate/phonemode/internal/logger"
)

// SeedEntry is one number/mode pair applied by the startup seeder.
// When at least one [[seed]] entry is present in the config, the
// list replaces the built-in defaults wholesale.
type SeedEntry struct {
	Number string
	Mode   string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Seed      []SeedEntry
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // comma separated allowed origins for CORS
}
