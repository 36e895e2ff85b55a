package marketerrors

import "errors"

// Repository-level errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCartItemMissing = errors.New("item not in cart")
)

// Bid validation errors, one per rejection reason
var (
	ErrBidNonPositive   = errors.New("bid amount missing or not positive")
	ErrBidNotHigher     = errors.New("bid not higher than current highest")
	ErrBidExceedsWallet = errors.New("bid exceeds wallet balance")
)

// Session lifecycle errors
var (
	ErrSessionClosed  = errors.New("bidding session closed")
	ErrAuctionNotOpen = errors.New("auction is not open for bidding")
	ErrBadStateChange = errors.New("invalid portal state transition")
)

// Portal business errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingFields      = errors.New("required fields missing")
	ErrInsufficientFunds  = errors.New("insufficient wallet balance")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown portal role")
)
