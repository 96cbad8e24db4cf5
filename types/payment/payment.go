package payment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// CardRequest is the card form submitted on the wizard's payment step. The
// checks are format-only (no issuer checksum) and never influence the
// simulated gateway outcome; they only gate whether the gateway is called.
type CardRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	CardName   string `json:"card_name" validate:"required,min=1,max=255"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// Validate checks the card form against the submission time. Reports only
// the first failing rule.
func (r CardRequest) Validate(at time.Time) error {
	if !cardNumberPattern.MatchString(r.Number()) {
		return fmt.Errorf("please enter a valid 16-digit card number")
	}
	if strings.TrimSpace(r.CardName) == "" {
		return fmt.Errorf("please enter the name on card")
	}
	m := expiryPattern.FindStringSubmatch(r.ExpiryDate)
	if m == nil {
		return fmt.Errorf("please enter a valid expiry date (MM/YY)")
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	// A card is valid through the last day of its expiry month.
	expiry := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, at.Location())
	if now.With(expiry).EndOfMonth().Before(at) {
		return fmt.Errorf("card has expired")
	}
	if !cvvPattern.MatchString(r.CVV) {
		return fmt.Errorf("please enter a valid CVV (3 or 4 digits)")
	}
	return nil
}

// Number returns the card number with spaces stripped.
func (r CardRequest) Number() string {
	return strings.ReplaceAll(r.CardNumber, " ", "")
}

// Last4 returns the trailing four digits of the card number.
func (r CardRequest) Last4() string {
	n := r.Number()
	if len(n) < 4 {
		return n
	}
	return n[len(n)-4:]
}
