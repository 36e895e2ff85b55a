package session

import (
	"math/rand"

	model "agrimarket/internal/models"
)

// Volume magnitudes are cosmetic: a bounded pseudo-random value that makes
// the chart look alive. They carry no trade semantics.
const (
	volumeMin  = 5
	volumeSpan = 50
)

// Series is the append-only price/volume history derived from accepted
// bids. The random source is injected so tests can seed it.
type Series struct {
	samples []model.MarketSample
	rng     *rand.Rand
}

// NewSeries seeds the history with two samples at the base price and zero
// change, mirroring a freshly opened session.
func NewSeries(basePrice int64, rng *rand.Rand) *Series {
	return &Series{
		samples: []model.MarketSample{
			{TimeLabel: "60:00", Price: basePrice, Volume: 0, Change: 0},
			{TimeLabel: "59:00", Price: basePrice, Volume: 0, Change: 0},
		},
		rng: rng,
	}
}

// AppendSample records a new price point. Change is derived from the
// previous sample's price; the first sample of an unseeded series gets
// change zero.
func (s *Series) AppendSample(price int64, timeLabel string) model.MarketSample {
	var change int64
	if len(s.samples) > 0 {
		change = price - s.samples[len(s.samples)-1].Price
	}
	sample := model.MarketSample{
		TimeLabel: timeLabel,
		Price:     price,
		Volume:    int64(s.rng.Intn(volumeSpan)) + volumeMin,
		Change:    change,
	}
	s.samples = append(s.samples, sample)
	return sample
}

// Samples returns a copy of the history, oldest first.
func (s *Series) Samples() []model.MarketSample {
	out := make([]model.MarketSample, len(s.samples))
	copy(out, s.samples)
	return out
}

// CurrentHigh returns the maximum price across all samples.
func (s *Series) CurrentHigh() int64 {
	var high int64
	for _, sample := range s.samples {
		if sample.Price > high {
			high = sample.Price
		}
	}
	return high
}

// TotalVolume returns the sum of volume magnitudes across all samples.
func (s *Series) TotalVolume() int64 {
	var total int64
	for _, sample := range s.samples {
		total += sample.Volume
	}
	return total
}
