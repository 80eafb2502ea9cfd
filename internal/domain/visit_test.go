package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitetracker/internal/domain"
)

// validVisit returns a visit with sensible defaults for use in tests.
func validVisit() domain.Visit {
	return domain.Visit{
		RestaurantID: 1,
		VisitDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Rating:       5,
		MealType:     "dinner",
		WouldReturn:  true,
	}
}

func TestNewVisit_Valid(t *testing.T) {
	got, err := domain.NewVisit(validVisit())

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.RestaurantID)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, "dinner", got.MealType)
}

func TestNewVisit_NormalizesMealType(t *testing.T) {
	v := validVisit()
	v.MealType = "  DiNNeR "

	got, err := domain.NewVisit(v)

	require.NoError(t, err)
	assert.Equal(t, "dinner", got.MealType)
}

func TestNewVisit_TrimsFreeText(t *testing.T) {
	v := validVisit()
	v.DishesOrdered = "  carbonara, tiramisu "
	v.Notes = " great evening\n"

	got, err := domain.NewVisit(v)

	require.NoError(t, err)
	assert.Equal(t, "carbonara, tiramisu", got.DishesOrdered)
	assert.Equal(t, "great evening", got.Notes)
}

func TestNewVisit_EveryMealTypeAccepted(t *testing.T) {
	for _, mt := range domain.MealTypes {
		v := validVisit()
		v.MealType = mt

		_, err := domain.NewVisit(v)

		assert.NoError(t, err, "meal type %s", mt)
	}
}

func TestNewVisit_TodayAccepted(t *testing.T) {
	v := validVisit()
	v.VisitDate = time.Now()

	_, err := domain.NewVisit(v)

	assert.NoError(t, err, "a visit dated today must be accepted regardless of time of day")
}

func TestNewVisit_FutureDateRejected(t *testing.T) {
	v := validVisit()
	v.VisitDate = time.Now().AddDate(0, 0, 1)

	_, err := domain.NewVisit(v)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewVisit_Invalid(t *testing.T) {
	badServiceRating := 6
	zeroServiceRating := 0
	negativeCost := -1.50

	tests := []struct {
		name   string
		mutate func(*domain.Visit)
	}{
		{"missing restaurant id", func(v *domain.Visit) { v.RestaurantID = 0 }},
		{"missing visit date", func(v *domain.Visit) { v.VisitDate = time.Time{} }},
		{"rating zero", func(v *domain.Visit) { v.Rating = 0 }},
		{"rating six", func(v *domain.Visit) { v.Rating = 6 }},
		{"missing meal type", func(v *domain.Visit) { v.MealType = "" }},
		{"unknown meal type", func(v *domain.Visit) { v.MealType = "snack" }},
		{"service rating too high", func(v *domain.Visit) { v.ServiceRating = &badServiceRating }},
		{"service rating zero", func(v *domain.Visit) { v.ServiceRating = &zeroServiceRating }},
		{"dishes too long", func(v *domain.Visit) { v.DishesOrdered = strings.Repeat("a", 501) }},
		{"recommended too long", func(v *domain.Visit) { v.RecommendedDishes = strings.Repeat("a", 501) }},
		{"beverage too long", func(v *domain.Visit) { v.BeverageOrdered = strings.Repeat("a", 501) }},
		{"negative total cost", func(v *domain.Visit) { v.TotalCost = &negativeCost }},
		{"notes too long", func(v *domain.Visit) { v.Notes = strings.Repeat("a", 1001) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVisit()
			tt.mutate(&v)

			_, err := domain.NewVisit(v)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewVisit_LimitsCountCharactersNotBytes(t *testing.T) {
	v := validVisit()
	v.Notes = strings.Repeat("ü", 600) // 600 characters, 1200 bytes

	_, err := domain.NewVisit(v)
	assert.NoError(t, err, "600 accented characters are within the 1000-character limit")

	v.Notes = strings.Repeat("ü", 1001)
	_, err = domain.NewVisit(v)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewVisit_ZeroTotalCostAccepted(t *testing.T) {
	free := 0.0
	v := validVisit()
	v.TotalCost = &free

	_, err := domain.NewVisit(v)

	assert.NoError(t, err)
}

func TestValidMealType(t *testing.T) {
	assert.True(t, domain.ValidMealType("brunch"))
	assert.False(t, domain.ValidMealType("supper"))
	assert.False(t, domain.ValidMealType(""))
}
