package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	bookingModel "venue-booking/models/booking"
)

// Client posts transactional mail to an HTTP mail gateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// SendBookingConfirmation emails the booking summary to the customer.
func (c *Client) SendBookingConfirmation(ctx context.Context, b *bookingModel.Booking) error {
	req := SendRequest{
		To:      b.Email,
		Subject: fmt.Sprintf("Booking Confirmed - %s", b.Reference),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour booking %s for %s on %s (%d guests) is confirmed.\nTotal amount: %d.\n\nThank you for booking with EventHive!",
			b.Name, b.Reference, b.ItemName, b.Date, b.Guests, b.TotalAmount,
		),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mail/send/", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.New("mail gateway returned non-OK status: " + resp.Status)
	}

	var apiResp SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return err
	}

	return nil
}
