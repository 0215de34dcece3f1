package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-reports-api/internal/config"
	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Location = time.UTC
	cfg.Reports.DefaultPreset = string(domain.PresetToday)
	cfg.Reports.Variance = 0.15
	cfg.Server.AllowedOrigins = []string{"*"}
	return cfg
}

func newTestHandler(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	clock := reporting.ClockFunc(func() time.Time {
		return time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	})
	h, err := NewHandler(cfg, Dependencies{Reporter: reporting.NewService(cfg, clock)})
	require.NoError(t, err)
	return h
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_BusinessReport(t *testing.T) {
	h := newTestHandler(t, testConfig())

	rec := get(h, "/v1/reports/business?preset=yesterday&seed=42")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	var report domain.BusinessReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, domain.PresetYesterday, report.Preset)
	assert.Equal(t, "Yesterday - 3/14/2026", report.PresetLabel)
	assert.Equal(t, int64(42), report.Seed)
	assert.Len(t, report.Rows, 7)
	assert.Len(t, report.Table.Rows, 7)

	again := get(h, "/v1/reports/business?preset=yesterday&seed=42")
	var second domain.BusinessReport
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &second))
	assert.Equal(t, report.Current, second.Current)
	assert.Equal(t, report.Table, second.Table)
}

func TestNewHandler_UnknownPresetFallsBack(t *testing.T) {
	h := newTestHandler(t, testConfig())

	rec := get(h, "/v1/reports/business?preset=fortnight&channel=mars&view=pie&seed=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.BusinessReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, domain.PresetToday, report.Preset)
	assert.Equal(t, domain.ChannelBoth, report.FulfillmentChannel)
	assert.Equal(t, domain.ViewModeTable, report.ViewMode)
}

func TestNewHandler_NotFound(t *testing.T) {
	h := newTestHandler(t, testConfig())

	rec := get(h, "/v1/nothing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrNotFound, body.Code)
}

func TestNewHandler_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 0.001
	cfg.RateLimit.Burst = 2
	h := newTestHandler(t, cfg)

	assert.Equal(t, http.StatusOK, get(h, "/v1/reports/presets").Code)
	assert.Equal(t, http.StatusOK, get(h, "/v1/reports/presets").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(h, "/v1/reports/presets").Code)

	// healthcheck is not limited
	assert.Equal(t, http.StatusOK, get(h, "/healthcheck").Code)
}

func TestNewHandler_AuthRequiresAuthenticator(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Enabled = true

	_, err := NewHandler(cfg, Dependencies{Reporter: reporting.NewService(cfg, nil)})
	assert.Error(t, err)

	_, err = NewHandler(cfg, Dependencies{})
	assert.Error(t, err)
}

type rejectingAuthenticator struct{}

func (rejectingAuthenticator) Login(string, string) (string, error) {
	return "", errors.New("invalid credentials")
}

func (rejectingAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return nil, errors.New("invalid token")
}

func TestNewHandler_RateLimitsLogin(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Enabled = true
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 0.001
	cfg.RateLimit.Burst = 2

	h, err := NewHandler(cfg, Dependencies{
		Reporter:      reporting.NewService(cfg, nil),
		Authenticator: rejectingAuthenticator{},
	})
	require.NoError(t, err)

	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"seller_id":"seller-1","api_key":"guess"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, login())
	assert.Equal(t, http.StatusUnauthorized, login())
	assert.Equal(t, http.StatusTooManyRequests, login())
}

func TestNewHandler_InvalidTrustedProxy(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.TrustedProxies = []string{"not-a-proxy"}

	_, err := NewHandler(cfg, Dependencies{Reporter: reporting.NewService(cfg, nil)})
	assert.Error(t, err)
}
