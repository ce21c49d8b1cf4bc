package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	taxRate    = 0.12
	serviceFee = 25.0
	dateLayout = "2006-01-02"
)

// Quote is the checkout price breakdown. The arithmetic matches what the
// checkout screen shows: nights × rate, 12% tax on the subtotal, flat
// 25-unit service fee. It is computed in one place so the displayed and
// the submitted totals cannot drift apart.
type Quote struct {
	Nights   int
	Subtotal float64
	Taxes    float64
	Fees     float64
	Total    float64
}

// NewQuote prices a stay. Nights is the ceiling of the day difference
// between check-in and check-out; a non-positive stay is an error.
func NewQuote(checkIn, checkOut time.Time, pricePerNight float64) (Quote, error) {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		return Quote{}, fmt.Errorf("check-out %s is not after check-in %s",
			checkOut.Format(dateLayout), checkIn.Format(dateLayout))
	}
	sub := pricePerNight * float64(nights)
	tax := sub * taxRate
	return Quote{
		Nights:   nights,
		Subtotal: sub,
		Taxes:    tax,
		Fees:     serviceFee,
		Total:    sub + tax + serviceFee,
	}, nil
}

// MinorUnits converts the total to cents for the payment intent,
// rounded to the nearest whole cent.
func (q Quote) MinorUnits() int64 {
	return int64(math.Round(q.Total * 100))
}

// ParseStayDates parses YYYY-MM-DD check-in/check-out strings.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check-in date: %w", err)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check-out date: %w", err)
	}
	return in, out, nil
}
