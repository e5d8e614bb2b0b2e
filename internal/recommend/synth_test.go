package recommend

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizer_PriceWithinRange(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		assert.Regexp(t, `^\$([5-9]|1\d|2\d)\.99$`, s.Price())
	}
}

func TestSynthesizer_RatingWithinRange(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		r := s.Rating()
		assert.GreaterOrEqual(t, r, 3.5)
		assert.LessOrEqual(t, r, 5.0)
	}
}

func TestSynthesizer_DeterministicWithSeed(t *testing.T) {
	a := NewSynthesizer(rand.New(rand.NewSource(7)))
	b := NewSynthesizer(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Price(), b.Price())
		assert.Equal(t, a.Rating(), b.Rating())
		assert.Equal(t, a.Bestseller(), b.Bestseller())
	}
}

func TestSynthesizer_CoverURLDerivedFromID(t *testing.T) {
	s := NewSynthesizer(nil)

	u := s.CoverURL("book-123")
	assert.Equal(t, "https://picsum.photos/seed/book-123/300/450", u)
	// Deterministic: same ID, same URL.
	assert.Equal(t, u, s.CoverURL("book-123"))
}
