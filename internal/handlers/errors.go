// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gematelier/atelier-backend/internal/apperrors"
	"github.com/gematelier/atelier-backend/internal/utils"
)

// respondError maps the domain error taxonomy onto transport responses.
// Anything outside the taxonomy is treated as internal and never echoed to
// the client.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var conflictErr *apperrors.ConflictError
	var notFoundErr *apperrors.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		details := gin.H{}
		if validationErr.Field != "" {
			details["field"] = validationErr.Field
		}
		utils.ErrorResponse(c, 400, "VALIDATION_ERROR", validationErr.Message, details)
	case errors.As(err, &conflictErr):
		utils.ConflictResponse(c, conflictErr.Message)
	case errors.As(err, &notFoundErr):
		utils.NotFoundResponse(c, notFoundErr.Resource)
	default:
		logrus.WithError(err).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}
