package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/castromatias32878-collab/WebVastum2025/internal/dto"
	middlewarepkg "github.com/castromatias32878-collab/WebVastum2025/internal/middleware"
	"github.com/castromatias32878-collab/WebVastum2025/internal/service"
)

// errorMessages holds the endpoint specific details for failures that do
// not carry their own message.
type errorMessages struct {
	NotFound string
	Internal string
}

// writeError maps service errors to HTTP responses. Unknown errors are
// logged and answered with a generic 500.
func writeError(c echo.Context, err error, msgs errorMessages) error {
	var (
		shapeErr  *service.ShapeError
		domainErr *service.DomainError
	)
	switch {
	case errors.As(err, &shapeErr):
		return ValidationFailed(c, shapeErr.Fields)
	case errors.As(err, &domainErr):
		return c.JSON(http.StatusBadRequest, dto.InvalidCompanyTypeResponse{
			Detail:     domainErr.Message,
			ValidTypes: domainErr.Allowed,
		})
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, msgs.NotFound)
	default:
		log.Error().
			Err(err).
			Str("request_id", middlewarepkg.RequestIDFromContext(c)).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("request failed")
		return Error(c, http.StatusInternalServerError, msgs.Internal)
	}
}

// bindBody decodes the JSON body into dst. Undecodable bodies are reported
// as a validation failure on the "body" field.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return &service.ShapeError{Fields: map[string]string{"body": "JSON inválido"}}
	}
	return nil
}

// HTTPErrorHandler renders errors raised by echo itself (unknown routes,
// body limits, panics caught by Recover) with the {"detail": ...} envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := "Error interno del servidor"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok && status < http.StatusInternalServerError {
			detail = msg
		}
	}
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", middlewarepkg.RequestIDFromContext(c)).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = Error(c, status, detail)
	}
	if writeErr != nil {
		log.Error().Err(writeErr).Msg("failed to write error response")
	}
}
