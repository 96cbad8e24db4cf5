package invoice

import (
	"testing"

	bookingModel "venue-booking/models/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPDF(t *testing.T) {
	b := &bookingModel.Booking{
		Reference:   "BK0001234",
		ItemName:    "Luxury Banquet Hall",
		Date:        "2026-10-15",
		Guests:      250,
		TotalAmount: 50000,
	}

	pdf, err := Render(b)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	// Every PDF starts with the %PDF magic bytes.
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderNilBooking(t *testing.T) {
	pdf, err := Render(nil)
	assert.Error(t, err)
	assert.Nil(t, pdf)
}
