package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuote(t *testing.T) {
	tests := []struct {
		name   string
		rate   float64
		nights int
		want   Quote
	}{
		{
			name:   "three nights at 100",
			rate:   100.00,
			nights: 3,
			want:   Quote{Subtotal: 300.00, Taxes: 30.00, ServiceFee: 4.20, TotalAmount: 334.20},
		},
		{
			name:   "three nights at 200",
			rate:   200.00,
			nights: 3,
			want:   Quote{Subtotal: 600.00, Taxes: 60.00, ServiceFee: 8.40, TotalAmount: 668.40},
		},
		{
			name:   "one night with rounding",
			rate:   99.99,
			nights: 1,
			want:   Quote{Subtotal: 99.99, Taxes: 10.00, ServiceFee: 1.40, TotalAmount: 111.39},
		},
		{
			name:   "free stay",
			rate:   0,
			nights: 2,
			want:   Quote{Subtotal: 0, Taxes: 0, ServiceFee: 0, TotalAmount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateQuote(tt.rate, tt.nights)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateQuoteRejectsZeroNights(t *testing.T) {
	_, err := CalculateQuote(100, 0)
	require.Error(t, err)
	assert.NotNil(t, IsValidationError(err))

	_, err = CalculateQuote(100, -3)
	require.Error(t, err)
	assert.NotNil(t, IsValidationError(err))
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, Nights(checkIn, checkOut))
	assert.Equal(t, 0, Nights(checkIn, checkIn))
	assert.Equal(t, -3, Nights(checkOut, checkIn))
}
