package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"calcutta-auction/internal/auctionerrors"
	"calcutta-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/engine errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrEventNotFound):
		return http.StatusNotFound, "event not found"
	case errors.Is(err, auctionerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, auctionerrors.ErrPlayerNotFound):
		return http.StatusNotFound, "player not found"
	case errors.Is(err, auctionerrors.ErrInvalidRuleSet):
		return http.StatusBadRequest, "invalid rule set"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrLotNotOpen):
		return http.StatusConflict, "lot not open"
	case errors.Is(err, auctionerrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid lot transition"
	case errors.Is(err, auctionerrors.ErrNoBidToAccept):
		return http.StatusConflict, "no bid to accept"
	case errors.Is(err, auctionerrors.ErrCannotUndoBid):
		return http.StatusConflict, "cannot undo bid"
	case errors.Is(err, auctionerrors.ErrNothingToUndo):
		return http.StatusBadRequest, "nothing to undo"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
