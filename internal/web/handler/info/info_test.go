package info

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/config"
)

func TestInfoReturnsServiceIdentity(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{Immutable: true})

	cfg := &config.Config{
		Title:     "phonemode-test",
		Webserver: config.Webserver{Port: 8080, URL: "http://localhost"},
	}

	Handler.Init(app, cfg, db)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Path, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "phonemode-test", body["service"])
	assert.NotEmpty(t, body["time"])
}
