// Package domain contains the core data types for Bite Tracker.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, input, cli).
package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits for Restaurant, counted in characters, not bytes. Enforced by
// NewRestaurant and mirrored by CHECK-free TEXT columns in the schema; the
// constructor is the gate.
const (
	MaxRestaurantNameLen = 100
	MaxLocationLen       = 150
	MaxCountryLen        = 100
	MaxCuisineTypeLen    = 50
	MaxPhoneLen          = 20
	MaxWebsiteLen        = 200
	MaxSocialMediaLen    = 200
)

// Restaurant represents a place that can be visited.
// ID is zero before the record has been persisted; the storage layer assigns
// it and it never changes afterwards. Optional string fields use the empty
// string for "not provided" and are stored as NULL.
type Restaurant struct {
	ID         int64
	Name       string
	Location   string
	Country    string
	PriceRange int // 1–4, rendered as € symbols

	CuisineType string
	Phone       string
	Website     string
	SocialMedia string
}

// NewRestaurant validates and normalizes a restaurant value.
// String fields are trimmed of surrounding whitespace. Checks run in a fixed
// order (required presence and length first, then the price range, then
// optional fields) and the first broken rule is reported as ErrValidation.
// On success the returned value is fully normalized; the input is not mutated.
func NewRestaurant(r Restaurant) (Restaurant, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Country = strings.TrimSpace(r.Country)
	r.CuisineType = strings.TrimSpace(r.CuisineType)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Website = strings.TrimSpace(r.Website)
	r.SocialMedia = strings.TrimSpace(r.SocialMedia)

	if r.Name == "" {
		return Restaurant{}, fmt.Errorf("%w: restaurant name is required", ErrValidation)
	}
	if utf8.RuneCountInString(r.Name) > MaxRestaurantNameLen {
		return Restaurant{}, fmt.Errorf("%w: restaurant name must not exceed %d characters", ErrValidation, MaxRestaurantNameLen)
	}
	if r.Location == "" {
		return Restaurant{}, fmt.Errorf("%w: location is required", ErrValidation)
	}
	if utf8.RuneCountInString(r.Location) > MaxLocationLen {
		return Restaurant{}, fmt.Errorf("%w: location must not exceed %d characters", ErrValidation, MaxLocationLen)
	}
	if r.Country == "" {
		return Restaurant{}, fmt.Errorf("%w: country is required", ErrValidation)
	}
	if utf8.RuneCountInString(r.Country) > MaxCountryLen {
		return Restaurant{}, fmt.Errorf("%w: country must not exceed %d characters", ErrValidation, MaxCountryLen)
	}
	if r.PriceRange < 1 || r.PriceRange > 4 {
		return Restaurant{}, fmt.Errorf("%w: price range must be between 1 and 4", ErrValidation)
	}
	if utf8.RuneCountInString(r.CuisineType) > MaxCuisineTypeLen {
		return Restaurant{}, fmt.Errorf("%w: cuisine type must not exceed %d characters", ErrValidation, MaxCuisineTypeLen)
	}
	if utf8.RuneCountInString(r.Phone) > MaxPhoneLen {
		return Restaurant{}, fmt.Errorf("%w: phone number must not exceed %d characters", ErrValidation, MaxPhoneLen)
	}
	if utf8.RuneCountInString(r.Website) > MaxWebsiteLen {
		return Restaurant{}, fmt.Errorf("%w: website URL must not exceed %d characters", ErrValidation, MaxWebsiteLen)
	}
	if utf8.RuneCountInString(r.SocialMedia) > MaxSocialMediaLen {
		return Restaurant{}, fmt.Errorf("%w: social media URL must not exceed %d characters", ErrValidation, MaxSocialMediaLen)
	}

	return r, nil
}

// PriceSymbol returns the price range as a run of euro signs ("€€" for 2).
func (r Restaurant) PriceSymbol() string {
	return strings.Repeat("€", r.PriceRange)
}
