// Package input converts raw textual user input into validated values for
// the service layer. This is presentation-side validation, separate from the
// domain entity rules.
package input

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"bitetracker/internal/domain"
)

// dateLayouts are the accepted visit date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02", // 2024-03-15
	"02/01/2006", // 15/03/2024
	"02-01-2006", // 15-03-2024
}

// ParseVisitDate parses a free-form date string in one of the accepted
// formats and rejects dates after the current day. Failures are reported as
// domain.ErrValidation so the caller can treat them like any other input error.
func ParseVisitDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if parsed.After(endOfToday()) {
			return time.Time{}, fmt.Errorf("%w: visit date cannot be in the future", domain.ErrValidation)
		}
		return parsed, nil
	}

	return time.Time{}, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD, DD/MM/YYYY, or DD-MM-YYYY", domain.ErrValidation)
}

// NonEmptyString trims value and enforces presence and, when maxLen > 0, a
// length ceiling. The field name is included in the error for display.
func NonEmptyString(value, field string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", domain.ErrValidation, field)
	}
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		return "", fmt.Errorf("%w: %s must not exceed %d characters", domain.ErrValidation, field, maxLen)
	}
	return trimmed, nil
}

// endOfToday returns the last instant of the current calendar day in UTC.
// Parsed dates sit at midnight UTC, so anything up to and including today
// compares as not-after.
func endOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
