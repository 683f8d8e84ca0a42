package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/echomap/echomap/internal/application"
	"github.com/echomap/echomap/pkg/response"
)

// writeServiceError maps application errors to the HTTP error taxonomy.
// Anything unrecognized is a storage or internal failure: logged with its
// internals, surfaced as a bare 500.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	if ve, ok := application.AsValidation(err); ok {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "user already exists", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusBadRequest, "invalid credentials", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrSoundNotFound):
		response.Error[any](c, http.StatusNotFound, "sound not found", nil)
	default:
		logger.WithError(err).Error("request failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
	}
}
