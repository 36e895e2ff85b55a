package session

import (
	"errors"
	"time"

	"agrimarket/internal/marketerrors"
	"agrimarket/utils"

	tomb "gopkg.in/tomb.v2"
)

// SyntheticBid is a scripted bid injected by the simulator to mimic other
// bidders in the room.
type SyntheticBid struct {
	Bidder       string
	Amount       int64
	AfterSeconds int64
}

// EventSource yields synthetic bids as session time elapses. Implementations
// must be safe to call once per elapsed second from a single goroutine.
type EventSource interface {
	Due(elapsedSeconds int64) []SyntheticBid
}

// ScriptedSource replays a fixed script of synthetic bids. Each bid is
// delivered once, at the first poll where its delay has elapsed.
type ScriptedSource struct {
	script    []SyntheticBid
	delivered []bool
}

// NewScriptedSource builds an event source from a bid script.
func NewScriptedSource(script []SyntheticBid) *ScriptedSource {
	return &ScriptedSource{
		script:    script,
		delivered: make([]bool, len(script)),
	}
}

// Due returns the not-yet-delivered bids whose delay has elapsed.
func (s *ScriptedSource) Due(elapsedSeconds int64) []SyntheticBid {
	var due []SyntheticBid
	for i, bid := range s.script {
		if !s.delivered[i] && bid.AfterSeconds <= elapsedSeconds {
			s.delivered[i] = true
			due = append(due, bid)
		}
	}
	return due
}

// Runner drives a session from wall-clock time: one Tick per second plus
// synthetic bids from the event source, all through the session's normal
// submission path. The tomb guarantees the ticker is released on every exit
// path, so a torn-down session never keeps counting in the background.
type Runner struct {
	t        tomb.Tomb
	sess     *Session
	source   EventSource
	interval time.Duration
}

// NewRunner creates a runner for the session. A nil source disables
// synthetic bidding. The interval is one second in production; tests that
// need wall-clock runs can shrink it.
func NewRunner(sess *Session, source EventSource, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{
		sess:     sess,
		source:   source,
		interval: interval,
	}
}

// Start launches the tick loop.
func (r *Runner) Start() {
	r.t.Go(r.loop)
}

// Stop kills the loop and waits for it to release the ticker.
func (r *Runner) Stop() error {
	r.t.Kill(nil)
	return r.t.Wait()
}

func (r *Runner) loop() error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var elapsed int64
	for {
		select {
		case <-r.t.Dying():
			return nil
		case <-ticker.C:
			elapsed++
			r.injectDue(elapsed)
			if _, closed := r.sess.Tick(); closed {
				return nil
			}
		}
	}
}

// injectDue submits any scripted bids that have come due. Rejections are
// logged and dropped; a synthetic bidder gets no retry.
func (r *Runner) injectDue(elapsed int64) {
	if r.source == nil {
		return
	}
	for _, bid := range r.source.Due(elapsed) {
		if _, err := r.sess.SubmitBid(bid.Bidder, bid.Amount); err != nil {
			if errors.Is(err, marketerrors.ErrSessionClosed) {
				return
			}
			utils.Warn("runner: synthetic bid rejected", map[string]any{
				"session_id": r.sess.ID(),
				"bidder":     bid.Bidder,
				"amount":     bid.Amount,
				"error":      err.Error(),
			})
		}
	}
}
