package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitetracker/internal/domain"
)

// validRestaurant returns a restaurant with sensible defaults for use in
// tests. Callers can override individual fields after calling this function.
func validRestaurant() domain.Restaurant {
	return domain.Restaurant{
		Name:       "Trattoria Roma",
		Location:   "Rome",
		Country:    "Italy",
		PriceRange: 2,
	}
}

func TestNewRestaurant_Valid(t *testing.T) {
	got, err := domain.NewRestaurant(validRestaurant())

	require.NoError(t, err)
	assert.Equal(t, "Trattoria Roma", got.Name)
	assert.Equal(t, "Italy", got.Country)
}

func TestNewRestaurant_TrimsStringFields(t *testing.T) {
	r := validRestaurant()
	r.Name = "  Trattoria Roma  "
	r.Location = "\tRome "
	r.Country = " Italy\n"
	r.CuisineType = "  Italian "

	got, err := domain.NewRestaurant(r)

	require.NoError(t, err)
	assert.Equal(t, "Trattoria Roma", got.Name)
	assert.Equal(t, "Rome", got.Location)
	assert.Equal(t, "Italy", got.Country)
	assert.Equal(t, "Italian", got.CuisineType)
}

func TestNewRestaurant_OptionalFieldsMayBeEmpty(t *testing.T) {
	got, err := domain.NewRestaurant(validRestaurant())

	require.NoError(t, err)
	assert.Empty(t, got.CuisineType)
	assert.Empty(t, got.Phone)
	assert.Empty(t, got.Website)
	assert.Empty(t, got.SocialMedia)
}

func TestNewRestaurant_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Restaurant)
	}{
		{"missing name", func(r *domain.Restaurant) { r.Name = "" }},
		{"whitespace-only name", func(r *domain.Restaurant) { r.Name = "   " }},
		{"name too long", func(r *domain.Restaurant) { r.Name = strings.Repeat("a", 101) }},
		{"missing location", func(r *domain.Restaurant) { r.Location = "" }},
		{"location too long", func(r *domain.Restaurant) { r.Location = strings.Repeat("a", 151) }},
		{"missing country", func(r *domain.Restaurant) { r.Country = "  " }},
		{"country too long", func(r *domain.Restaurant) { r.Country = strings.Repeat("a", 101) }},
		{"price range zero", func(r *domain.Restaurant) { r.PriceRange = 0 }},
		{"price range five", func(r *domain.Restaurant) { r.PriceRange = 5 }},
		{"price range negative", func(r *domain.Restaurant) { r.PriceRange = -1 }},
		{"cuisine too long", func(r *domain.Restaurant) { r.CuisineType = strings.Repeat("a", 51) }},
		{"phone too long", func(r *domain.Restaurant) { r.Phone = strings.Repeat("1", 21) }},
		{"website too long", func(r *domain.Restaurant) { r.Website = strings.Repeat("a", 201) }},
		{"social media too long", func(r *domain.Restaurant) { r.SocialMedia = strings.Repeat("a", 201) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRestaurant()
			tt.mutate(&r)

			_, err := domain.NewRestaurant(r)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewRestaurant_LimitsCountCharactersNotBytes(t *testing.T) {
	r := validRestaurant()
	r.Name = strings.Repeat("é", 60) // 60 characters, 120 bytes

	_, err := domain.NewRestaurant(r)
	assert.NoError(t, err, "a 60-character accented name is within the 100-character limit")

	r.Name = strings.Repeat("é", 101)
	_, err = domain.NewRestaurant(r)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewRestaurant_EveryPriceRangeAccepted(t *testing.T) {
	for tier := 1; tier <= 4; tier++ {
		r := validRestaurant()
		r.PriceRange = tier

		_, err := domain.NewRestaurant(r)

		assert.NoError(t, err, "tier %d", tier)
	}
}

func TestRestaurant_PriceSymbol(t *testing.T) {
	r := validRestaurant()
	r.PriceRange = 3

	assert.Equal(t, "€€€", r.PriceSymbol())
}
