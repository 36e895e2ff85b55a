package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"agrimarket/internal/marketerrors"
	"agrimarket/utils"

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
	case errors.Is(err, marketerrors.ErrSessionNotFound):
		return http.StatusNotFound, "session not found"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, marketerrors.ErrCartItemMissing):
		return http.StatusNotFound, "item not in cart"
	case errors.Is(err, marketerrors.ErrBidNonPositive):
		return http.StatusBadRequest, "bid amount missing or not positive"
	case errors.Is(err, marketerrors.ErrBidNotHigher):
		return http.StatusConflict, "bid not higher than current highest"
	case errors.Is(err, marketerrors.ErrBidExceedsWallet):
		return http.StatusPaymentRequired, "bid exceeds wallet balance"
	case errors.Is(err, marketerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient wallet balance"
	case errors.Is(err, marketerrors.ErrSessionClosed):
		return http.StatusConflict, "bidding session closed"
	case errors.Is(err, marketerrors.ErrAuctionNotOpen):
		return http.StatusConflict, "auction is not open for bidding"
	case errors.Is(err, marketerrors.ErrBadStateChange):
		return http.StatusConflict, "invalid portal state transition"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, marketerrors.ErrUnknownRole):
		return http.StatusBadRequest, "unknown portal role"
	case errors.Is(err, marketerrors.ErrMissingFields):
		return http.StatusBadRequest, "required fields missing"
	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps, sends, and logs a service error in one step
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": "+message, ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
