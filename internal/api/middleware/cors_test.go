package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"prodcopy-utils/internal/config"
)

func preflight(e *echo.Echo, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set(echo.HeaderOrigin, origin)
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCORSConfiguredOrigins(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.CORSOrigins = []string{"https://app.acme.example"}

	e := echo.New()
	e.Use(CORSConfig(cfg))
	e.POST("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := preflight(e, "https://app.acme.example")
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "https://app.acme.example" {
		t.Errorf("allow-origin = %q, want configured origin echoed", got)
	}

	rec = preflight(e, "https://evil.example")
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got == "https://evil.example" {
		t.Errorf("allow-origin = %q, unlisted origin must not be allowed", got)
	}
}

func TestCORSDefaultsToWildcard(t *testing.T) {
	cfg := &config.Config{}

	e := echo.New()
	e.Use(CORSConfig(cfg))
	e.POST("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := preflight(e, "https://anywhere.example")
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "*" {
		t.Errorf("allow-origin = %q, want * with no origins configured", got)
	}
}
