package middlewares

import (
	"context"
	"errors"
	"net/http"

	"MediCare/models"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
)

// StatusClientClosedRequest is returned when the caller went away before the
// request finished. Nothing reads the response.
const StatusClientClosedRequest = 499

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// HttpError writes the error response for a service error. Internal errors
// are logged and never shown to the client.
func HttpError(c *gin.Context, err error) {
	status := StatusFor(err)
	body := gin.H{"error": err.Error()}

	switch status {
	case http.StatusUnauthorized:
		if errors.Is(err, models.ErrUnauthenticated) {
			body["error"] = models.ErrUnauthenticated.Error()
		}
	case http.StatusUnprocessableEntity:
		body["error"] = models.ErrValidation.Error()
		var fields validation.Errors
		if errors.As(err, &fields) {
			body["fields"] = fields
		}
	case StatusClientClosedRequest:
		log.Debug().Str("path", c.Request.URL.Path).Msg("Client closed request")
		body["error"] = "request canceled"
	case http.StatusInternalServerError, http.StatusGatewayTimeout:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		body["error"] = http.StatusText(status)
	}

	c.JSON(status, body)
}
