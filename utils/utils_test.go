package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingReferenceFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference()
		assert.Regexp(t, `^BK\d{7}$`, ref)
	}
}

func TestGenerateBookingReferenceVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateBookingReference()] = true
	}

	// 50 draws from a 10-million space should essentially never collide
	// down to a single value.
	assert.Greater(t, len(seen), 1)
}
