package adaptor

import (
	"errors"
	"net/http"

	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps usecase sentinels to status codes. Anything else is
// logged and answered with a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		log.Warn("Invalid id for "+operation, zap.Error(err))
		utils.ResponseInvalidID(w, "Invalid id parameter")

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "forbidden access")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeAndValidate reads a JSON body into req and runs its validate tags.
// It writes the 400 itself and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, log *zap.Logger, req any) bool {
	if err := decodeJSON(w, r, req); err != nil {
		log.Debug("Invalid request body", zap.Error(err), zap.String("path", r.URL.Path))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		log.Debug("Request validation failed",
			zap.String("path", r.URL.Path),
			zap.String("errors", utils.FormatValidationErrors(validationErrors)),
		)
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}
