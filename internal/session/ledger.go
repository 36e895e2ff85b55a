package session

import (
	"sort"

	model "agrimarket/internal/models"
)

// Ledger is the insertion-ordered collection of bid records for one session.
// It is immutable: Append returns a new snapshot and never touches the
// records of the ledger it was called on, so invariants can be checked
// between steps.
type Ledger struct {
	records []model.BidRecord // oldest first
}

// NewLedger builds a ledger from seed records. Seeds are copied; any
// highest flags on them are cleared (a seed with amount 0 is a placeholder
// and all-zero ledgers have no highest record).
func NewLedger(seed []model.BidRecord) Ledger {
	records := make([]model.BidRecord, len(seed))
	copy(records, seed)
	for i := range records {
		records[i].IsHighest = false
	}
	return Ledger{records: records}
}

// Append returns a new ledger snapshot containing the accepted bid.
// The new record carries the highest flag; every prior record has its flag
// cleared. Append assumes the record passed validation, which guarantees
// its amount strictly exceeds every earlier amount.
func (l Ledger) Append(rec model.BidRecord) Ledger {
	records := make([]model.BidRecord, 0, len(l.records)+1)
	for _, prev := range l.records {
		prev.IsHighest = false
		records = append(records, prev)
	}
	rec.IsHighest = true
	records = append(records, rec)
	return Ledger{records: records}
}

// Records returns the ledger newest first, the order the bid feed displays.
func (l Ledger) Records() []model.BidRecord {
	out := make([]model.BidRecord, len(l.records))
	for i, rec := range l.records {
		out[len(l.records)-1-i] = rec
	}
	return out
}

// TopBidders returns up to n records sorted by amount descending.
// The sort is stable over submission order, so equal amounts keep the order
// they were placed in.
func (l Ledger) TopBidders(n int) []model.BidRecord {
	sorted := make([]model.BidRecord, len(l.records))
	copy(sorted, l.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Highest returns the record carrying the highest flag, if any.
func (l Ledger) Highest() (model.BidRecord, bool) {
	for _, rec := range l.records {
		if rec.IsHighest {
			return rec, true
		}
	}
	return model.BidRecord{}, false
}

// Len returns the number of records in the ledger.
func (l Ledger) Len() int {
	return len(l.records)
}
