package services

import (
	"math"
	"time"
)

// Pricing rates applied to every reservation at creation time.
const (
	taxRate        = 0.10
	serviceFeeRate = 0.014
)

// Quote is the money breakdown attached to a reservation when it is created.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	Taxes       float64 `json:"taxes"`
	ServiceFee  float64 `json:"serviceFee"`
	TotalAmount float64 `json:"totalAmount"`
}

// Nights returns the whole-day difference between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// CalculateQuote prices a stay of the given night count at the given nightly
// rate: 10% taxes and a 1.4% service fee on top of the subtotal, every figure
// rounded half away from zero to 2 decimals.
func CalculateQuote(nightlyRate float64, nights int) (Quote, error) {
	if nights < 1 {
		return Quote{}, &ValidationError{Field: "nights", Reason: "stay must be at least one night"}
	}

	subtotal := nightlyRate * float64(nights)
	taxes := subtotal * taxRate
	serviceFee := subtotal * serviceFeeRate

	return Quote{
		Subtotal:    roundMoney(subtotal),
		Taxes:       roundMoney(taxes),
		ServiceFee:  roundMoney(serviceFee),
		TotalAmount: roundMoney(subtotal + taxes + serviceFee),
	}, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
