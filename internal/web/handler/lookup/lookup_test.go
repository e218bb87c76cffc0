package lookup

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/config"
	"github.com/voicegate/phonemode/internal/db/controller/phonenumber"
	"github.com/voicegate/phonemode/internal/db/models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.AutoMigrate(&models.PhoneNumber{})
	require.NoError(t, err, "failed to migrate phone number model")

	app := fiber.New(fiber.Config{Immutable: true})

	cfg := &config.Config{
		Title:     "phonemode-test",
		Webserver: config.Webserver{Port: 8080, URL: "http://localhost"},
	}

	Handler.Init(app, cfg, db)

	return app, db
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	return body
}

func TestLookupMissReturnsUnknown(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{}
	form.Set("Called", "+19998887777")

	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "lookup miss must never be an error")

	body := decodeBody(t, resp)
	assert.Equal(t, "+19998887777", body["calledNumber"])
	assert.Equal(t, models.ModeUnknown, body["mode"])
}

func TestLookupHitReturnsStoredMode(t *testing.T) {
	app, db := newTestApp(t)

	_, err := phonenumber.Create(db, "+14155550100", models.ModeOTP)
	require.NoError(t, err)

	payload := `{"Called":" +14155550100 ","From":"+1222","CallSid":"CA123"}`
	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "+14155550100", body["calledNumber"], "called number must be normalized")
	assert.Equal(t, string(models.ModeOTP), body["mode"])
	assert.Equal(t, "+1222", body["from"], "from is passed through verbatim")
	assert.Equal(t, "CA123", body["callSid"], "callSid is passed through verbatim")
}

func TestLookupFallsBackToToField(t *testing.T) {
	app, db := newTestApp(t)

	_, err := phonenumber.Create(db, "+14155550100", models.ModeCall)
	require.NoError(t, err)

	payload := `{"To":"+14155550100"}`
	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	body := decodeBody(t, resp)
	assert.Equal(t, "+14155550100", body["calledNumber"])
	assert.Equal(t, string(models.ModeCall), body["mode"])
}

func TestLookupPrefersCalledOverTo(t *testing.T) {
	app, db := newTestApp(t)

	_, err := phonenumber.Create(db, "+14155550100", models.ModeCall)
	require.NoError(t, err)
	_, err = phonenumber.Create(db, "+14155550101", models.ModeOTP)
	require.NoError(t, err)

	payload := `{"Called":"+14155550101","To":"+14155550100"}`
	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	body := decodeBody(t, resp)
	assert.Equal(t, "+14155550101", body["calledNumber"])
	assert.Equal(t, string(models.ModeOTP), body["mode"])
}

func TestLookupAcceptsQueryParameters(t *testing.T) {
	app, db := newTestApp(t)

	_, err := phonenumber.Create(db, "+14155550100", models.ModeCall)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, Path+"?Called=%2B14155550100&From=%2B1222", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "+14155550100", body["calledNumber"])
	assert.Equal(t, string(models.ModeCall), body["mode"])
	assert.Equal(t, "+1222", body["from"])
}

func TestLookupWithoutAnyNumberReturnsUnknown(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, Path, nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "", body["calledNumber"])
	assert.Equal(t, models.ModeUnknown, body["mode"])
}
