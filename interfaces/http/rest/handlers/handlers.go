// Package handlers implements the REST endpoints. Each handler decodes and
// validates its request, delegates to a service or repository, and maps
// errors onto HTTP statuses through pkg/errors.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/pkg/common"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
)

const maxRequestBody = 1 << 20 // 1 MiB

// writeError maps an error to its HTTP status and message. Non-AppErrors
// become opaque 500s.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	message := "internal server error"
	if appErr := apperrors.GetAppError(err); appErr != nil {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}
	common.RespondError(w, status, message)
}
