// Package invoice renders the downloadable booking confirmation PDF.
package invoice

import (
	"bytes"
	"fmt"

	bookingModel "venue-booking/models/booking"

	"github.com/jung-kurt/gofpdf"
)

// Render produces the invoice PDF for a confirmed booking. It is a pure
// function of the record; rendering errors are returned, never swallowed.
func Render(b *bookingModel.Booking) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("render invoice: booking is nil")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(10, 20, "Invoice")

	pdf.SetLineWidth(0.5)
	pdf.Line(10, 25, 200, 25)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID: %s", b.Reference),
		fmt.Sprintf("Item: %s", b.ItemName),
		fmt.Sprintf("Date: %s", b.Date),
		fmt.Sprintf("Guests: %d", b.Guests),
		fmt.Sprintf("Total Amount: Rs. %d", b.TotalAmount),
	}
	y := 35.0
	for _, line := range lines {
		pdf.Text(10, y, line)
		y += 10
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(10, y+10, "Thank you for booking with EventHive!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", b.Reference, err)
	}
	return buf.Bytes(), nil
}
