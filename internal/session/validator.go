package session

import (
	"fmt"

	"agrimarket/internal/marketerrors"
)

// ValidateBid decides whether a proposed amount may enter the ledger.
// It is a pure predicate: no session state is touched and it may be called
// any number of times. Checks run in a fixed order, so a bid that is both
// too low and over the wallet ceiling reports the too-low reason.
func ValidateBid(amount, currentHighest, walletBalance int64) error {
	if amount <= 0 {
		return fmt.Errorf("validate bid: %w", marketerrors.ErrBidNonPositive)
	}
	if amount <= currentHighest {
		return fmt.Errorf("validate bid: %w - current highest bid is %d", marketerrors.ErrBidNotHigher, currentHighest)
	}
	if amount > walletBalance {
		return fmt.Errorf("validate bid: %w - wallet balance is %d", marketerrors.ErrBidExceedsWallet, walletBalance)
	}
	return nil
}
