package session

import (
	"fmt"

	"agrimarket/internal/marketerrors"
)

// PortalState is the screen-level state of the industry portal flow.
type PortalState string

const (
	StateSelection     PortalState = "selection"
	StateBiddingActive PortalState = "bidding_active"
	StateBiddingClosed PortalState = "bidding_closed"
	StateWasteBrowsing PortalState = "waste_browsing"
)

// transitions is the full set of legal state changes. Countdown expiry is
// the only way into BiddingClosed; every non-selection state can go back.
var transitions = map[PortalState][]PortalState{
	StateSelection:     {StateBiddingActive, StateWasteBrowsing},
	StateBiddingActive: {StateBiddingClosed, StateSelection},
	StateBiddingClosed: {StateSelection},
	StateWasteBrowsing: {StateSelection},
}

// Transition returns the next state, or ErrBadStateChange when the move is
// not in the transition table.
func (s PortalState) Transition(to PortalState) (PortalState, error) {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return to, nil
		}
	}
	return s, fmt.Errorf("transition %s -> %s: %w", s, to, marketerrors.ErrBadStateChange)
}
