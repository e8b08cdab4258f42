package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-arena/internal/auctionerrors"
	"auction-arena/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAssetNotFound):
		return http.StatusNotFound, "asset not found"
	case errors.Is(err, auctionerrors.ErrTeamNotFound):
		return http.StatusNotFound, "team not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput),
		errors.Is(err, auctionerrors.ErrInvalidBid),
		errors.Is(err, auctionerrors.ErrBidBelowMin),
		errors.Is(err, auctionerrors.ErrBidOverBudget):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is not running"
	case errors.Is(err, auctionerrors.ErrAlreadyRunning):
		return http.StatusConflict, "auction already running"
	case errors.Is(err, auctionerrors.ErrAlreadyStopped):
		return http.StatusConflict, "auction already stopped"
	case errors.Is(err, auctionerrors.ErrNeedsReset):
		return http.StatusConflict, "round must be reset before starting"
	case errors.Is(err, auctionerrors.ErrRunningLocked):
		return http.StatusConflict, "operation not allowed while auction is running"
	case errors.Is(err, auctionerrors.ErrDuplicateID):
		return http.StatusConflict, "id already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
