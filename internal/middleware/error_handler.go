package middleware

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/vendor-dashboard/internal/dto"
	"github.com/Eursukkul/vendor-dashboard/internal/ingest"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrorHandler renders every error as {"message": ...}. Server-side failures
// are logged; their text still reaches the client.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := err.Error()

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		case errors.Is(err, ingest.ErrInvalidRecord):
			code = http.StatusBadRequest
		}

		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Request().Method).Str("uri", c.Request().RequestURI).Msg("request failed")
		}

		_ = c.JSON(code, dto.ErrorResponse{Message: msg})
	}
}
