// Package payment provides the simulated card gateway used by the booking
// wizard. There is no real authorization round trip: the simulator waits a
// fixed delay and settles the attempt pseudo-randomly.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrDeclined is returned when the simulated gateway declines the charge or
// the amount is invalid.
var ErrDeclined = errors.New("payment declined")

const (
	// DefaultSuccessRate mirrors the fixed 90% chance the checkout was
	// designed around.
	DefaultSuccessRate = 0.9

	// DefaultDelay stands in for the gateway round trip.
	DefaultDelay = 2 * time.Second
)

// Simulator fakes a payment gateway. Safe for concurrent use.
type Simulator struct {
	successRate float64
	delay       time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator builds a simulator with the default 90% success rate and
// gateway delay, seeded from the clock.
func NewSimulator() *Simulator {
	return New(DefaultSuccessRate, DefaultDelay, rand.NewSource(time.Now().UnixNano()))
}

// New builds a simulator with explicit settings. Tests inject a fixed seed
// or a zero delay here.
func New(successRate float64, delay time.Duration, src rand.Source) *Simulator {
	return &Simulator{
		successRate: successRate,
		delay:       delay,
		rng:         rand.New(src),
	}
}

// Process executes one simulated charge for the given booking reference.
// It blocks for the configured delay (or until ctx is done), then settles
// the attempt. On success it returns a gateway correlation reference; on
// decline it returns an error wrapping ErrDeclined.
func (s *Simulator) Process(ctx context.Context, amount int64, bookingRef string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("process %s: invalid amount %d: %w", bookingRef, amount, ErrDeclined)
	}

	if err := waitOrCancel(ctx, s.delay); err != nil {
		return "", err
	}

	if !s.draw() {
		return "", fmt.Errorf("process %s: %w", bookingRef, ErrDeclined)
	}

	return uuid.NewString(), nil
}

func (s *Simulator) draw() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < s.successRate
}

// waitOrCancel blocks for d or until ctx is canceled. It returns nil if the
// duration elapses, or ctx.Err() if the context is done first.
func waitOrCancel(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
