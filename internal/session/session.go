package session

import (
	"fmt"
	"math/rand"
	"sync"

	"agrimarket/internal/marketerrors"
	model "agrimarket/internal/models"
	"agrimarket/utils"
)

// Params configures a new bidding session. Every session owns a fresh state
// container built from these values; nothing is shared between sessions.
type Params struct {
	SessionID       string
	Product         string
	Quantity        string
	Location        string
	Description     string
	BasePrice       int64
	ReferenceHigh   int64 // historical comparison value for progress display
	WalletBalance   int64 // fixed ceiling on bid size, never debited
	DurationSeconds int64
	SeedBidders     []string // placeholder bidders shown at amount 0
	Rng             *rand.Rand
}

// Session is one timed auction round: countdown clock, bid ledger, and the
// derived market series. All mutation happens under one mutex, so a bid's
// validate-and-append is atomic with respect to clock ticks.
type Session struct {
	mu sync.Mutex

	id            string
	product       string
	quantity      string
	location      string
	description   string
	basePrice     int64
	referenceHigh int64
	walletBalance int64

	state          PortalState
	clock          Clock
	ledger         Ledger
	series         *Series
	currentHighest int64
}

// Snapshot is a point-in-time read of session state for display.
type Snapshot struct {
	SessionID         string      `json:"session_id"`
	Product           string      `json:"product"`
	Quantity          string      `json:"quantity"`
	Location          string      `json:"location"`
	Description       string      `json:"description,omitempty"`
	State             PortalState `json:"state"`
	BasePrice         int64       `json:"base_price"`
	ReferenceHigh     int64       `json:"reference_high"`
	WalletBalance     int64       `json:"wallet_balance"`
	CurrentHighestBid int64       `json:"current_highest_bid"`
	TimeRemaining     int64       `json:"time_remaining_seconds"`
	TimeLabel         string      `json:"time_label"`
	ProgressPercent   float64     `json:"progress_percent"`
}

// New opens a bidding session in the BiddingActive state, with the ledger
// seeded from placeholder bidders and the series seeded at the base price.
func New(p Params) *Session {
	if p.Rng == nil {
		p.Rng = rand.New(rand.NewSource(p.BasePrice))
	}
	seed := make([]model.BidRecord, 0, len(p.SeedBidders))
	for _, name := range p.SeedBidders {
		seed = append(seed, model.BidRecord{
			BidID:            utils.GenerateID(),
			SessionID:        p.SessionID,
			BidderName:       name,
			Amount:           0,
			SubmittedAtLabel: "Starting",
		})
	}
	return &Session{
		id:            p.SessionID,
		product:       p.Product,
		quantity:      p.Quantity,
		location:      p.Location,
		description:   p.Description,
		basePrice:     p.BasePrice,
		referenceHigh: p.ReferenceHigh,
		walletBalance: p.WalletBalance,
		state:         StateBiddingActive,
		clock:         NewClock(p.DurationSeconds),
		ledger:        NewLedger(seed),
		series:        NewSeries(p.BasePrice, p.Rng),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SubmitBid validates and records a bid as one uninterruptible step.
// Bids are rejected outright once the session has left BiddingActive or the
// countdown has expired, so a late submission can never mutate the ledger.
func (s *Session) SubmitBid(bidder string, amount int64) (model.BidRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateBiddingActive || s.clock.Expired() {
		return model.BidRecord{}, fmt.Errorf("submit bid for session %s: %w", s.id, marketerrors.ErrSessionClosed)
	}
	if err := ValidateBid(amount, s.currentHighest, s.walletBalance); err != nil {
		return model.BidRecord{}, err
	}

	rec := model.BidRecord{
		BidID:            utils.GenerateID(),
		SessionID:        s.id,
		BidderName:       bidder,
		Amount:           amount,
		SubmittedAtLabel: s.clock.Label(),
	}
	s.ledger = s.ledger.Append(rec)
	s.currentHighest = amount
	s.series.AppendSample(amount, s.clock.Label())

	rec.IsHighest = true
	return rec, nil
}

// Tick advances the countdown by one second. When the clock reaches zero
// the session moves to BiddingClosed; the ledger stays readable. Returns
// the remaining seconds and whether the session is now closed.
func (s *Session) Tick() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock = s.clock.Tick()
	if s.clock.Expired() && s.state == StateBiddingActive {
		s.state = StateBiddingClosed
	}
	return s.clock.Remaining(), s.state == StateBiddingClosed
}

// Close returns the session to the selection screen. Valid from the active
// and closed states; closing twice is an error.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.Transition(StateSelection)
	if err != nil {
		return fmt.Errorf("close session %s: %w", s.id, err)
	}
	s.state = next
	return nil
}

// State returns the current portal state.
func (s *Session) State() PortalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// TopBidders returns up to n ledger records sorted by amount descending.
func (s *Session) TopBidders(n int) []model.BidRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TopBidders(n)
}

// Bids returns the full ledger, newest first.
func (s *Session) Bids() []model.BidRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Records()
}

// MarketSeries returns the derived price/volume history, oldest first.
func (s *Session) MarketSeries() []model.MarketSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series.Samples()
}

// SeriesSummary returns the session high and total traded volume.
func (s *Session) SeriesSummary() (high int64, totalVolume int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series.CurrentHigh(), s.series.TotalVolume()
}

// Snapshot returns a consistent view of the session for display.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		SessionID:         s.id,
		Product:           s.product,
		Quantity:          s.quantity,
		Location:          s.location,
		Description:       s.description,
		State:             s.state,
		BasePrice:         s.basePrice,
		ReferenceHigh:     s.referenceHigh,
		WalletBalance:     s.walletBalance,
		CurrentHighestBid: s.currentHighest,
		TimeRemaining:     s.clock.Remaining(),
		TimeLabel:         s.clock.Label(),
		ProgressPercent:   s.progressPercent(),
	}
}

// progressPercent compares the current highest bid against the historical
// reference high. Zero until a first bid lands. Caller holds the mutex.
func (s *Session) progressPercent() float64 {
	if s.currentHighest == 0 || s.referenceHigh <= s.basePrice {
		return 0
	}
	return float64(s.currentHighest-s.basePrice) / float64(s.referenceHigh-s.basePrice) * 100
}
