package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkinn/internal/domain"
)

func TestMapSession_CoercesAndStamps(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2024-06-01")
	payload := map[string]any{
		"data": map[string]any{
			"user": map[string]any{
				"id":           float64(42), // backend sends a number
				"fullName":     "Alex Johnson",
				"email":        "alex@example.com",
				"phone":        "+1 555 123",
				"profileImage": "https://img.example/a.png",
			},
			"token": "tok-42",
		},
	}
	s, err := mapSession(payload, now)
	require.NoError(t, err)

	assert.Equal(t, "42", s.ID)
	assert.Equal(t, "Alex Johnson", s.Name)
	assert.Equal(t, "https://img.example/a.png", s.Avatar)
	assert.Equal(t, "2024-06-01", s.JoinDate) // stamped, never taken from the backend
	assert.Equal(t, "tok-42", s.Token)
}

func TestMapSession_EmptyAvatarStaysAbsent(t *testing.T) {
	s, err := mapSession(envelope("7", "Ana", "ana@example.com", "t"), time.Now())
	require.NoError(t, err)
	assert.Empty(t, s.Avatar)
}

func TestMapSession_MissingUserIsMalformed(t *testing.T) {
	_, err := mapSession(map[string]any{"data": map[string]any{"token": "t"}}, time.Now())
	require.ErrorIs(t, err, domain.ErrMalformed)

	_, err = mapSession(map[string]any{}, time.Now())
	require.ErrorIs(t, err, domain.ErrMalformed)
}

func TestMapHotel_LegacyShape(t *testing.T) {
	h := mapHotel(map[string]any{
		"id":       "1",
		"name":     "Grand Palazzo Resort",
		"location": "Santorini, Greece",
		"price":    float64(420),
		"rating":   float64(4.9),
		"reviews":  float64(847),
		"image":    "https://img.example/1.jpg",
		"type":     "Resort",
		"coordinates": map[string]any{
			"latitude":  float64(36.39),
			"longitude": float64(25.46),
		},
	})
	assert.Equal(t, "Santorini", h.City)
	assert.Equal(t, "Greece", h.Country)
	assert.Equal(t, "Santorini, Greece", h.Address)
	assert.InDelta(t, 420, h.PricePerNight, 1e-9)
	assert.Equal(t, "https://img.example/1.jpg", h.ImageURL)
	require.NotNil(t, h.Coords)
	assert.InDelta(t, 36.39, h.Coords.Lat, 1e-9)
}

func TestMapHotel_CanonicalShape(t *testing.T) {
	h := mapHotel(map[string]any{
		"id":            float64(2),
		"name":          "Urban Boutique Hotel",
		"address":       "5th Avenue 120",
		"city":          "New York",
		"country":       "USA",
		"pricePerNight": float64(285),
		"imageUrl":      "https://img.example/2.jpg",
		"type":          "Boutique",
	})
	assert.Equal(t, "2", h.ID)
	assert.Equal(t, "New York", h.City)
	assert.Equal(t, "5th Avenue 120", h.Address)
	assert.InDelta(t, 285, h.PricePerNight, 1e-9)
	assert.Nil(t, h.Coords)
}

func TestExtractBookingID(t *testing.T) {
	assert.Equal(t, "bk_1", extractBookingID(map[string]any{
		"data": map[string]any{"booking": map[string]any{"id": "bk_1"}},
	}))
	// numeric id coerced
	assert.Equal(t, "12", extractBookingID(map[string]any{
		"data": map[string]any{"booking": map[string]any{"id": float64(12)}},
	}))
	// flat fallback
	assert.Equal(t, "bk_2", extractBookingID(map[string]any{
		"data": map[string]any{"id": "bk_2"},
	}))
	assert.Empty(t, extractBookingID(map[string]any{"data": map[string]any{}}))
	assert.Empty(t, extractBookingID(map[string]any{}))
}
