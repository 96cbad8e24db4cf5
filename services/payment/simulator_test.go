package payment

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sync/errgroup"
)

func TestProcessSucceedsWithFullSuccessRate(t *testing.T) {
	sim := New(1.0, 0, rand.NewSource(1))

	ref, err := sim.Process(context.Background(), 50000, "BK0000001")
	require.NoError(t, err)
	assert.NotEmpty(t, ref)
}

func TestProcessDeclinesWithZeroSuccessRate(t *testing.T) {
	sim := New(0.0, 0, rand.NewSource(1))

	ref, err := sim.Process(context.Background(), 50000, "BK0000001")
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Empty(t, ref)
}

func TestProcessRejectsNonPositiveAmount(t *testing.T) {
	sim := New(1.0, 0, rand.NewSource(1))

	for _, amount := range []int64{0, -1} {
		_, err := sim.Process(context.Background(), amount, "BK0000001")
		assert.ErrorIs(t, err, ErrDeclined)
	}
}

func TestProcessHonorsContextCancellation(t *testing.T) {
	sim := New(1.0, 10*time.Second, rand.NewSource(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Process(ctx, 50000, "BK0000001")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrDeclined)
}

func TestProcessSuccessRateDistribution(t *testing.T) {
	const runs = 1000
	sim := New(DefaultSuccessRate, 0, rand.NewSource(42))

	var succeeded int64
	g := new(errgroup.Group)
	g.SetLimit(16)

	for i := 0; i < runs; i++ {
		g.Go(func() error {
			_, err := sim.Process(context.Background(), 50000, "BK0000001")
			if err == nil {
				atomic.AddInt64(&succeeded, 1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	rate := float64(succeeded) / float64(runs)
	assert.InDelta(t, DefaultSuccessRate, rate, 0.05)
}
