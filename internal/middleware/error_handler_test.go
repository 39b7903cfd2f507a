package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eursukkul/vendor-dashboard/internal/dto"
	"github.com/Eursukkul/vendor-dashboard/internal/ingest"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func handle(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/x/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(zerolog.Nop())(err, c)

	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestErrorHandler_HTTPError(t *testing.T) {
	code, resp := handle(t, echo.NewHTTPError(http.StatusNotFound, "no current event"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "no current event", resp.Message)
}

func TestErrorHandler_InvalidRecord(t *testing.T) {
	code, resp := handle(t, fmt.Errorf("%w: summary failed required", ingest.ErrInvalidRecord))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp.Message, "summary failed required")
}

func TestErrorHandler_Internal(t *testing.T) {
	code, resp := handle(t, errors.New("db connection failed"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "db connection failed", resp.Message)
}

func TestErrorHandler_Committed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.String(http.StatusOK, "ok")

	ErrorHandler(zerolog.Nop())(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
