package session

import (
	"errors"
	"math/rand"
	"testing"

	"agrimarket/internal/marketerrors"

	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return New(Params{
		SessionID:       "sess1",
		Product:         "Premium Wheat",
		Quantity:        "50 tons",
		Location:        "Golden Fields Farm, Kansas, USA",
		BasePrice:       200000,
		ReferenceHigh:   217200,
		WalletBalance:   250000,
		DurationSeconds: 3542,
		SeedBidders:     []string{"Arnav", "Disha", "Krrish"},
		Rng:             rand.New(rand.NewSource(1)),
	})
}

// Reference scenario: base price 200000, wallet 250000.
func TestSession_BidScenario(t *testing.T) {
	t.Parallel()

	s := newTestSession()

	first, err := s.SubmitBid("Krrish", 201000)
	require.NoError(t, err)
	require.True(t, first.IsHighest)
	require.Equal(t, int64(201000), s.Snapshot().CurrentHighestBid)

	_, err = s.SubmitBid("Krrish", 201000)
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrBidNotHigher))

	_, err = s.SubmitBid("Krrish", 260000)
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrBidExceedsWallet))

	second, err := s.SubmitBid("Arnav", 205000)
	require.NoError(t, err)
	require.True(t, second.IsHighest)
	require.Equal(t, int64(205000), s.Snapshot().CurrentHighestBid)

	// Previous leader's flag flipped false
	for _, rec := range s.Bids() {
		if rec.BidID == first.BidID {
			require.False(t, rec.IsHighest)
		}
	}

	// Rejections never mutate the ledger: 3 seeds + 2 accepted bids
	require.Len(t, s.Bids(), 5)
}

// The highest-flagged record's amount always equals the session's current
// highest bid after any sequence of accepted bids.
func TestSession_HighestMatchesLedger(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	amounts := []int64{200100, 200200, 201000, 205000, 249999}
	for _, amount := range amounts {
		_, err := s.SubmitBid("Disha", amount)
		require.NoError(t, err)

		snap := s.Snapshot()
		var flagged int64
		for _, rec := range s.Bids() {
			if rec.IsHighest {
				flagged = rec.Amount
			}
		}
		require.Equal(t, snap.CurrentHighestBid, flagged)
	}
	require.Equal(t, int64(249999), s.Snapshot().CurrentHighestBid)
}

// Each accepted bid appends exactly one market sample at the bid price.
func TestSession_AcceptedBidAppendsSample(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	require.Len(t, s.MarketSeries(), 2)

	_, err := s.SubmitBid("Arnav", 200500)
	require.NoError(t, err)

	samples := s.MarketSeries()
	require.Len(t, samples, 3)
	last := samples[len(samples)-1]
	require.Equal(t, int64(200500), last.Price)
	require.Equal(t, int64(500), last.Change)
	require.Equal(t, "59:02", last.TimeLabel)

	// A rejected bid appends nothing
	_, err = s.SubmitBid("Arnav", 100)
	require.Error(t, err)
	require.Len(t, s.MarketSeries(), 3)
}

// The clock closes the session at zero and late bids are rejected.
func TestSession_ExpiryRejectsLateBids(t *testing.T) {
	t.Parallel()

	s := New(Params{
		SessionID:       "sess-short",
		Product:         "Premium Wheat",
		BasePrice:       200000,
		ReferenceHigh:   217200,
		WalletBalance:   250000,
		DurationSeconds: 2,
		Rng:             rand.New(rand.NewSource(1)),
	})

	remaining, closed := s.Tick()
	require.Equal(t, int64(1), remaining)
	require.False(t, closed)

	remaining, closed = s.Tick()
	require.Equal(t, int64(0), remaining)
	require.True(t, closed)
	require.Equal(t, StateBiddingClosed, s.State())

	_, err := s.SubmitBid("Krrish", 210000)
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrSessionClosed))

	// Idempotent at the floor
	remaining, closed = s.Tick()
	require.Equal(t, int64(0), remaining)
	require.True(t, closed)

	// Ledger remains readable after close
	require.Len(t, s.Bids(), 0)
	require.Len(t, s.MarketSeries(), 2)
}

// Test Close transitions and double close
func TestSession_Close(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	require.Equal(t, StateBiddingActive, s.State())

	require.NoError(t, s.Close())
	require.Equal(t, StateSelection, s.State())

	err := s.Close()
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrBadStateChange))

	// A closed-out session accepts no bids
	_, err = s.SubmitBid("Krrish", 201000)
	require.True(t, errors.Is(err, marketerrors.ErrSessionClosed))
}

// Test progress percentage against the historical reference high
func TestSession_ProgressPercent(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	require.Equal(t, float64(0), s.Snapshot().ProgressPercent, "zero before any bid")

	_, err := s.SubmitBid("Disha", 208600)
	require.NoError(t, err)

	// (208600 - 200000) / (217200 - 200000) * 100 = 50
	require.InDelta(t, 50.0, s.Snapshot().ProgressPercent, 0.001)
}

// Test the portal state transition table
func TestPortalState_Transition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    PortalState
		to      PortalState
		wantErr bool
	}{
		{name: "selection_to_bidding", from: StateSelection, to: StateBiddingActive, wantErr: false},
		{name: "selection_to_waste", from: StateSelection, to: StateWasteBrowsing, wantErr: false},
		{name: "bidding_to_closed", from: StateBiddingActive, to: StateBiddingClosed, wantErr: false},
		{name: "bidding_back_to_selection", from: StateBiddingActive, to: StateSelection, wantErr: false},
		{name: "waste_back_to_selection", from: StateWasteBrowsing, to: StateSelection, wantErr: false},
		{name: "closed_back_to_selection", from: StateBiddingClosed, to: StateSelection, wantErr: false},
		{name: "selection_to_closed_forbidden", from: StateSelection, to: StateBiddingClosed, wantErr: true},
		{name: "waste_to_bidding_forbidden", from: StateWasteBrowsing, to: StateBiddingActive, wantErr: true},
		{name: "closed_to_bidding_forbidden", from: StateBiddingClosed, to: StateBiddingActive, wantErr: true},
		{name: "selection_self_forbidden", from: StateSelection, to: StateSelection, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			next, err := tc.from.Transition(tc.to)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, marketerrors.ErrBadStateChange))
				require.Equal(t, tc.from, next, "failed transition keeps the current state")
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.to, next)
			}
		})
	}
}
