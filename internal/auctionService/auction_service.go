package auction

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"agrimarket/internal/marketerrors"
	model "agrimarket/internal/models"
	"agrimarket/internal/notify"
	"agrimarket/internal/repository"
	"agrimarket/internal/session"
	"agrimarket/utils"
)

// Defaults carries the session parameters not found on the auction lot
// itself. They come from configuration, not from shared globals.
type Defaults struct {
	DurationSeconds int64
	ReferenceHigh   int64
	WalletBalance   int64
	TopBidderCount  int
	SeedBidders     []string
	Script          []session.SyntheticBid // nil disables the simulator
}

// Summary is the roll-up shown next to the chart.
type Summary struct {
	SessionID         string  `json:"session_id"`
	CurrentHighestBid int64   `json:"current_highest_bid"`
	SessionHigh       int64   `json:"session_high"`
	TotalVolume       int64   `json:"total_volume"`
	ProgressPercent   float64 `json:"progress_percent"`
	TimeLabel         string  `json:"time_label"`
}

// AuctionService owns the live bidding sessions: opening them from auction
// lots, routing bids, and tearing them down together with their runners.
type AuctionService struct {
	repo     repository.MarketDB
	defaults Defaults
	notifier notify.Notifier

	mu           sync.Mutex
	runners      map[string]*session.Runner
	tickInterval time.Duration
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.MarketDB, defaults Defaults, notifier notify.Notifier) *AuctionService {
	return &AuctionService{
		repo:         repo,
		defaults:     defaults,
		notifier:     notifier,
		runners:      make(map[string]*session.Runner),
		tickInterval: time.Second,
	}
}

// SetTickInterval overrides the runner tick interval. Intended for tests.
func (s *AuctionService) SetTickInterval(d time.Duration) {
	s.tickInterval = d
}

// ListAuctions returns auction lots, optionally filtered by status
func (s *AuctionService) ListAuctions(status string) ([]model.Auction, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	if status == "" {
		return auctions, nil
	}
	filtered := make([]model.Auction, 0, len(auctions))
	for _, a := range auctions {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// OpenSession starts a bidding session for an ongoing auction lot. The
// session gets a fresh state container; when a simulator script is
// configured a runner starts ticking it on wall-clock time.
func (s *AuctionService) OpenSession(auctionID string) (session.Snapshot, error) {
	if auctionID == "" {
		return session.Snapshot{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}

	lot, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("service: failed to open session for auction %s: %w", auctionID, err)
	}
	if lot.Status != "ongoing" {
		return session.Snapshot{}, fmt.Errorf("service: auction %s has status %q: %w", auctionID, lot.Status, marketerrors.ErrAuctionNotOpen)
	}

	duration := lot.DurationSeconds
	if duration <= 0 {
		duration = s.defaults.DurationSeconds
	}

	sess := session.New(session.Params{
		SessionID:       utils.GenerateID(),
		Product:         lot.Product,
		Quantity:        lot.Quantity,
		Location:        lot.Location,
		Description:     lot.Description,
		BasePrice:       lot.BasePrice,
		ReferenceHigh:   s.defaults.ReferenceHigh,
		WalletBalance:   s.defaults.WalletBalance,
		DurationSeconds: duration,
		SeedBidders:     s.defaults.SeedBidders,
	})

	if err := s.repo.PutSession(sess); err != nil {
		return session.Snapshot{}, fmt.Errorf("service: failed to store session for auction %s: %w", auctionID, err)
	}

	runner := session.NewRunner(sess, s.scriptSource(), s.tickInterval)
	s.mu.Lock()
	s.runners[sess.ID()] = runner
	s.mu.Unlock()
	runner.Start()

	utils.Info("bidding session opened", map[string]any{
		"session_id": sess.ID(),
		"auction_id": auctionID,
		"product":    lot.Product,
		"base_price": lot.BasePrice,
	})
	return sess.Snapshot(), nil
}

// scriptSource builds a one-shot event source from the configured script.
// Sources are stateful, so every session gets its own.
func (s *AuctionService) scriptSource() session.EventSource {
	if len(s.defaults.Script) == 0 {
		return nil
	}
	script := make([]session.SyntheticBid, len(s.defaults.Script))
	copy(script, s.defaults.Script)
	return session.NewScriptedSource(script)
}

// GetSession returns a point-in-time view of a session
func (s *AuctionService) GetSession(sessionID string) (session.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// PlaceBid validates and records a bid, surfacing the outcome on the
// notification surface. Rejections leave the session untouched and usable.
func (s *AuctionService) PlaceBid(sessionID, bidder string, amount int64) (model.BidRecord, error) {
	if bidder == "" {
		return model.BidRecord{}, fmt.Errorf("service: %w - missing bidder name", marketerrors.ErrInvalidInput)
	}
	sess, err := s.lookup(sessionID)
	if err != nil {
		return model.BidRecord{}, err
	}

	rec, err := sess.SubmitBid(bidder, amount)
	if err != nil {
		s.notifier.Notify(rejectionNotice(err))
		return model.BidRecord{}, fmt.Errorf("service: failed to place bid on session %s: %w", sessionID, err)
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Bid Placed Successfully",
		Message:  fmt.Sprintf("Your bid of %s has been placed", utils.FormatINR(amount)),
		Severity: notify.SeverityInfo,
	})
	return rec, nil
}

// rejectionNotice maps a bid rejection to the toast the reference shows.
func rejectionNotice(err error) notify.Notification {
	n := notify.Notification{Title: "Invalid Bid", Severity: notify.SeverityDestructive}
	switch {
	case errors.Is(err, marketerrors.ErrBidExceedsWallet):
		n.Title = "Insufficient Funds"
		n.Message = "Your bid exceeds your wallet balance"
	case errors.Is(err, marketerrors.ErrBidNotHigher):
		n.Message = "Your bid must be higher than the current highest bid"
	case errors.Is(err, marketerrors.ErrSessionClosed):
		n.Title = "Bidding Closed"
		n.Message = "This session is no longer accepting bids"
	default:
		n.Message = "Enter a valid bid amount"
	}
	return n
}

// TopBidders returns the leading bids, sorted by amount descending
func (s *AuctionService) TopBidders(sessionID string) ([]model.BidRecord, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.TopBidders(s.defaults.TopBidderCount), nil
}

// Bids returns a session's full ledger, newest first
func (s *AuctionService) Bids(sessionID string) ([]model.BidRecord, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Bids(), nil
}

// MarketSeries returns a session's price/volume history
func (s *AuctionService) MarketSeries(sessionID string) ([]model.MarketSample, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.MarketSeries(), nil
}

// Summary returns the roll-up values for the chart header
func (s *AuctionService) Summary(sessionID string) (Summary, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return Summary{}, err
	}
	high, volume := sess.SeriesSummary()
	snap := sess.Snapshot()
	return Summary{
		SessionID:         snap.SessionID,
		CurrentHighestBid: snap.CurrentHighestBid,
		SessionHigh:       high,
		TotalVolume:       volume,
		ProgressPercent:   snap.ProgressPercent,
		TimeLabel:         snap.TimeLabel,
	}, nil
}

// CloseSession tears a session down: its runner is stopped first, so no
// tick can fire after the session is gone, then the session leaves the
// store. Works on every exit path, including navigating away mid-countdown.
func (s *AuctionService) CloseSession(sessionID string) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	s.stopRunner(sessionID)

	if err := sess.Close(); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := s.repo.RemoveSession(sessionID); err != nil {
		return fmt.Errorf("service: failed to remove session %s: %w", sessionID, err)
	}

	utils.Info("bidding session closed", map[string]any{"session_id": sessionID})
	return nil
}

// Shutdown stops every live runner. Called on server teardown.
func (s *AuctionService) Shutdown() {
	s.mu.Lock()
	runners := make([]*session.Runner, 0, len(s.runners))
	for id, r := range s.runners {
		runners = append(runners, r)
		delete(s.runners, id)
	}
	s.mu.Unlock()

	for _, r := range runners {
		if err := r.Stop(); err != nil {
			utils.Error("runner stop failed", map[string]any{"error": err.Error()})
		}
	}
}

func (s *AuctionService) stopRunner(sessionID string) {
	s.mu.Lock()
	runner, ok := s.runners[sessionID]
	delete(s.runners, sessionID)
	s.mu.Unlock()

	if ok {
		if err := runner.Stop(); err != nil {
			utils.Error("runner stop failed", map[string]any{"session_id": sessionID, "error": err.Error()})
		}
	}
}

func (s *AuctionService) lookup(sessionID string) (*session.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("service: %w - empty session ID", marketerrors.ErrInvalidInput)
	}
	sess, err := s.repo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get session %s: %w", sessionID, err)
	}
	return sess, nil
}
