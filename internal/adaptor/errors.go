package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps domain errors onto HTTP statuses. Anything
// not matched by a sentinel is treated as an internal error and its
// detail stays out of the response body.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found")

	case errors.Is(err, entity.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Operation not permitted")

	case errors.Is(err, entity.ErrAgreementRequired):
		log.Warn(operation + " failed - policy agreement missing")
		utils.ResponseBadRequest(w, "Cancellation policy agreement is required", nil)

	case errors.Is(err, entity.ErrSlotUnavailable):
		log.Warn(operation + " failed - slot unavailable")
		utils.ResponseConflict(w, "This slot is no longer available")

	case errors.Is(err, entity.ErrSlotInUse):
		log.Warn(operation + " failed - slot in use")
		utils.ResponseConflict(w, "An active reservation still references this item")

	case errors.Is(err, entity.ErrNotCancellable):
		log.Warn(operation + " failed - not cancellable")
		utils.ResponseConflict(w, "This reservation cannot be cancelled")

	case errors.Is(err, entity.ErrInvalidStateTransition):
		log.Warn(operation + " failed - invalid state transition")
		utils.ResponseConflict(w, "This status change is not allowed")

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "already registered"),
		strings.Contains(err.Error(), "email or password"):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
