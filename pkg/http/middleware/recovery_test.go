package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	xlogger "BondRV/pkg/logger"

	"github.com/labstack/echo/v4"
)

func TestRecoverConvertsPanicTo500(t *testing.T) {
	e := echo.New()
	e.Use(Recover(xlogger.Nop()))
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
}

func TestRecoverPassesThroughNormalRequests(t *testing.T) {
	e := echo.New()
	e.Use(Recover(xlogger.Nop()))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want 204", rec.Code)
	}
}
