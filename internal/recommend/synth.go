package recommend

import (
	"fmt"
	"math/rand"
	"time"
)

// Price range in whole dollars for synthesized prices.
const (
	minPriceDollars = 5
	priceSpread     = 25
)

// Synthesizer fills in the presentation fields the generator does not
// supply. The random source is injected so tests can pin outputs.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a Synthesizer backed by rng. A nil rng gets a
// time-seeded source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rng: rng}
}

// Price returns a currency-formatted pseudo-random price between
// $5.99 and $29.99.
func (s *Synthesizer) Price() string {
	return fmt.Sprintf("$%d.99", minPriceDollars+s.rng.Intn(priceSpread))
}

// Rating returns a pseudo-random rating in [3.5, 5.0] with one decimal.
func (s *Synthesizer) Rating() float64 {
	return 3.5 + float64(s.rng.Intn(16))/10
}

// Bestseller flags roughly one book in five.
func (s *Synthesizer) Bestseller() bool {
	return s.rng.Float64() < 0.2
}

// CoverURL derives a cover image reference deterministically from the
// book ID.
func (s *Synthesizer) CoverURL(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/300/450", id)
}
