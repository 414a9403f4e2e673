// Package random provides the random source threaded through fault
// injection, response generation and fake data.
//
// Every consumer takes a Source. Production code uses Default, which draws
// from the process-wide math/rand/v2 generator; tests and `start --seed`
// use NewSeeded or NewLocked for reproducible output.
package random

import (
	"errors"
	"math"
	mathrand "math/rand/v2"
	"sync"
)

// Source is the subset of *math/rand/v2.Rand the mock pipeline needs.
type Source interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// ErrEmptyRange is returned when the lower bound exceeds the upper bound.
var ErrEmptyRange = errors.New("empty range")

type globalSource struct{}

func (globalSource) IntN(n int) int    { return mathrand.IntN(n) }
func (globalSource) Float64() float64 { return mathrand.Float64() }

// Default returns the process-wide source. It is safe for concurrent use.
func Default() Source { return globalSource{} }

// NewSeeded returns a deterministic source. It is not safe for concurrent
// use; wrap it with NewLocked when shared between requests.
func NewSeeded(seed uint64) *mathrand.Rand {
	return mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Locked serializes access to a Source.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked returns a concurrency-safe deterministic source.
func NewLocked(seed uint64) *Locked {
	return &Locked{src: NewSeeded(seed)}
}

// IntN implements Source.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Float64 implements Source.
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// OrDefault returns src, or Default when src is nil.
func OrDefault(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}

// IntBetween returns an integer in the closed range [lo, hi].
func IntBetween(src Source, lo, hi int64) (int64, error) {
	if lo > hi {
		return 0, ErrEmptyRange
	}
	span := hi - lo + 1
	if span <= 0 || span > math.MaxInt {
		// Overflowed the int range; fall back to float scaling.
		return lo + int64(OrDefault(src).Float64()*float64(hi-lo)), nil
	}
	return lo + int64(OrDefault(src).IntN(int(span))), nil
}

// Uniform returns a float in [a, b] (or [b, a] when b < a).
func Uniform(src Source, a, b float64) float64 {
	return a + (b-a)*OrDefault(src).Float64()
}

// Round rounds x to prec decimal places, halves to even.
func Round(x float64, prec int) float64 {
	if prec < 0 {
		return x
	}
	pow := math.Pow(10, float64(prec))
	if math.IsInf(pow, 0) {
		return x
	}
	return math.RoundToEven(x*pow) / pow
}

// Shuffle permutes n elements with a Fisher-Yates pass.
func Shuffle(src Source, n int, swap func(i, j int)) {
	src = OrDefault(src)
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		swap(i, j)
	}
}

// Choice returns a random index into a collection of length n.
func Choice(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return OrDefault(src).IntN(n)
}
