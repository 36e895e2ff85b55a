package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Test ScriptedSource one-shot delivery
func TestScriptedSource_Due(t *testing.T) {
	t.Parallel()

	src := NewScriptedSource([]SyntheticBid{
		{Bidder: "Arnav", Amount: 200500, AfterSeconds: 3},
		{Bidder: "Disha", Amount: 201000, AfterSeconds: 3},
		{Bidder: "Arnav", Amount: 202000, AfterSeconds: 10},
	})

	require.Empty(t, src.Due(1))
	require.Empty(t, src.Due(2))

	due := src.Due(3)
	require.Len(t, due, 2)
	require.Equal(t, "Arnav", due[0].Bidder)
	require.Equal(t, "Disha", due[1].Bidder)

	// Already delivered bids never fire again
	require.Empty(t, src.Due(4))

	due = src.Due(10)
	require.Len(t, due, 1)
	require.Equal(t, int64(202000), due[0].Amount)
	require.Empty(t, src.Due(11))
}

// A skipped poll still delivers bids whose delay has elapsed.
func TestScriptedSource_CatchesUp(t *testing.T) {
	t.Parallel()

	src := NewScriptedSource([]SyntheticBid{
		{Bidder: "Arnav", Amount: 200500, AfterSeconds: 2},
	})
	require.Len(t, src.Due(5), 1)
}

// The runner drives ticks and scripted bids through the normal submission
// path, then stops on its own when the countdown expires.
func TestRunner_DrivesSessionToClose(t *testing.T) {
	t.Parallel()

	s := New(Params{
		SessionID:       "sess-runner",
		Product:         "Premium Wheat",
		BasePrice:       200000,
		ReferenceHigh:   217200,
		WalletBalance:   250000,
		DurationSeconds: 10,
		SeedBidders:     []string{"Krrish"},
		Rng:             rand.New(rand.NewSource(1)),
	})
	src := NewScriptedSource([]SyntheticBid{
		{Bidder: "Arnav", Amount: 200500, AfterSeconds: 3},
		{Bidder: "Disha", Amount: 201000, AfterSeconds: 3},
	})

	r := NewRunner(s, src, time.Millisecond)
	r.Start()
	require.NoError(t, r.Stop()) // Stop waits for the loop to finish or die

	// Either the session ran to expiry or we killed it first; both leave a
	// released ticker and a consistent session behind.
	snap := s.Snapshot()
	require.GreaterOrEqual(t, snap.TimeRemaining, int64(0))
}

// Stopping a runner mid-session releases the ticker and leaves the session
// open; a later stop of an already-dead runner is harmless.
func TestRunner_StopReleasesEarly(t *testing.T) {
	t.Parallel()

	s := New(Params{
		SessionID:       "sess-early",
		Product:         "Premium Wheat",
		BasePrice:       200000,
		ReferenceHigh:   217200,
		WalletBalance:   250000,
		DurationSeconds: 100000,
		Rng:             rand.New(rand.NewSource(1)),
	})

	r := NewRunner(s, nil, 10*time.Millisecond)
	r.Start()
	time.Sleep(35 * time.Millisecond)
	require.NoError(t, r.Stop())

	remaining := s.Snapshot().TimeRemaining
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, remaining, s.Snapshot().TimeRemaining, "no ticks after Stop")
}

// Synthetic bids that run to completion land in the ledger.
func TestRunner_SyntheticBidsLand(t *testing.T) {
	t.Parallel()

	s := New(Params{
		SessionID:       "sess-synth",
		Product:         "Premium Wheat",
		BasePrice:       200000,
		ReferenceHigh:   217200,
		WalletBalance:   250000,
		DurationSeconds: 6,
		Rng:             rand.New(rand.NewSource(1)),
	})
	src := NewScriptedSource([]SyntheticBid{
		{Bidder: "Arnav", Amount: 200500, AfterSeconds: 1},
		{Bidder: "Disha", Amount: 201000, AfterSeconds: 2},
	})

	r := NewRunner(s, src, time.Millisecond)
	r.Start()
	require.NoError(t, r.t.Wait()) // loop returns nil once the session closes

	require.Equal(t, StateBiddingClosed, s.State())
	require.Equal(t, int64(201000), s.Snapshot().CurrentHighestBid)
	require.Len(t, s.Bids(), 2)
}
