package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuote_Deterministic(t *testing.T) {
	b, err := Quote(100, 3, 20, 0.12)

	assert.NoError(t, err)
	assert.Equal(t, 300.0, b.Subtotal)
	assert.Equal(t, 20.0, b.CleaningFee)
	assert.Equal(t, 36.0, b.ServiceFee)
	assert.Equal(t, 356.0, b.Total)
}

func TestQuote_NoCleaningFee(t *testing.T) {
	b, err := Quote(100, 3, 0, 0.12)

	assert.NoError(t, err)
	assert.Equal(t, 336.0, b.Total)
}

func TestQuote_ServiceFeeRoundsHalfUp(t *testing.T) {
	// 85 * 1 * 0.1 = 8.5 -> 9
	b, err := Quote(85, 1, 0, 0.1)

	assert.NoError(t, err)
	assert.Equal(t, 9.0, b.ServiceFee)
	assert.Equal(t, 94.0, b.Total)
}

func TestQuote_RejectsNonPositiveNights(t *testing.T) {
	_, err := Quote(100, 0, 0, 0.12)
	assert.ErrorIs(t, err, ErrInvalidNights)

	_, err = Quote(100, -2, 0, 0.12)
	assert.ErrorIs(t, err, ErrInvalidNights)
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 3, Nights(day(1), day(4)))
	assert.Equal(t, 1, Nights(day(1), day(2)))
	assert.Equal(t, 0, Nights(day(4), day(4)))
	assert.Equal(t, 0, Nights(day(4), day(1)))

	// partial days round up
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(start, end))
}
