package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits for Visit.
const (
	MaxDishTextLen = 500
	MaxNotesLen    = 1000
)

// MealTypes lists the recognized meal types in menu order.
// Input is matched case-insensitively and stored lowercase.
var MealTypes = []string{"breakfast", "lunch", "dinner", "brunch", "other"}

// ValidMealType reports whether s (already lowercased and trimmed) is one of
// the recognized meal types.
func ValidMealType(s string) bool {
	for _, mt := range MealTypes {
		if s == mt {
			return true
		}
	}
	return false
}

// Visit represents a single recorded visit to exactly one restaurant.
// A restaurant has at most one visit; the service layer enforces that rule,
// the entity only validates its own fields. VisitDate carries a calendar date
// at midnight UTC. ServiceRating and TotalCost are nil when not provided.
type Visit struct {
	ID           int64
	RestaurantID int64
	VisitDate    time.Time
	Rating       int // 1–5
	MealType     string

	ServiceRating     *int // 1–5
	DishesOrdered     string
	RecommendedDishes string
	BeverageOrdered   string
	TotalCost         *float64
	Notes             string
	WouldReturn       bool
}

// NewVisit validates and normalizes a visit value.
// The meal type is lowercased, free-text fields are trimmed, and the visit
// date must not be after the current day. Whether the referenced restaurant
// exists is the service's concern, not checked here.
func NewVisit(v Visit) (Visit, error) {
	v.MealType = strings.ToLower(strings.TrimSpace(v.MealType))
	v.DishesOrdered = strings.TrimSpace(v.DishesOrdered)
	v.RecommendedDishes = strings.TrimSpace(v.RecommendedDishes)
	v.BeverageOrdered = strings.TrimSpace(v.BeverageOrdered)
	v.Notes = strings.TrimSpace(v.Notes)

	if v.RestaurantID <= 0 {
		return Visit{}, fmt.Errorf("%w: restaurant id is required", ErrValidation)
	}
	if v.VisitDate.IsZero() {
		return Visit{}, fmt.Errorf("%w: visit date is required", ErrValidation)
	}
	if dayOf(v.VisitDate).After(dayOf(time.Now())) {
		return Visit{}, fmt.Errorf("%w: visit date cannot be in the future", ErrValidation)
	}
	if v.Rating < 1 || v.Rating > 5 {
		return Visit{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if v.MealType == "" {
		return Visit{}, fmt.Errorf("%w: meal type is required", ErrValidation)
	}
	if !ValidMealType(v.MealType) {
		return Visit{}, fmt.Errorf("%w: meal type must be one of %s", ErrValidation, strings.Join(MealTypes, ", "))
	}
	if v.ServiceRating != nil && (*v.ServiceRating < 1 || *v.ServiceRating > 5) {
		return Visit{}, fmt.Errorf("%w: service rating must be between 1 and 5", ErrValidation)
	}
	if utf8.RuneCountInString(v.DishesOrdered) > MaxDishTextLen {
		return Visit{}, fmt.Errorf("%w: dishes ordered must not exceed %d characters", ErrValidation, MaxDishTextLen)
	}
	if utf8.RuneCountInString(v.RecommendedDishes) > MaxDishTextLen {
		return Visit{}, fmt.Errorf("%w: recommended dishes must not exceed %d characters", ErrValidation, MaxDishTextLen)
	}
	if utf8.RuneCountInString(v.BeverageOrdered) > MaxDishTextLen {
		return Visit{}, fmt.Errorf("%w: beverage ordered must not exceed %d characters", ErrValidation, MaxDishTextLen)
	}
	if v.TotalCost != nil && *v.TotalCost < 0 {
		return Visit{}, fmt.Errorf("%w: total cost must not be negative", ErrValidation)
	}
	if utf8.RuneCountInString(v.Notes) > MaxNotesLen {
		return Visit{}, fmt.Errorf("%w: notes must not exceed %d characters", ErrValidation, MaxNotesLen)
	}

	return v, nil
}

// dayOf truncates a timestamp to its calendar day in UTC, so the future-date
// check never depends on the wall-clock time of day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
