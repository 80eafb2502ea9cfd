package input_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitetracker/internal/domain"
	"bitetracker/internal/input"
)

func TestParseVisitDate_AcceptedFormats(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2024-03-15", "15/03/2024", "15-03-2024", "  2024-03-15 "} {
		got, err := input.ParseVisitDate(raw)

		require.NoError(t, err, "input %q", raw)
		assert.True(t, got.Equal(want), "input %q parsed to %v", raw, got)
	}
}

func TestParseVisitDate_Today(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")

	_, err := input.ParseVisitDate(today)

	assert.NoError(t, err)
}

func TestParseVisitDate_FutureRejected(t *testing.T) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	_, err := input.ParseVisitDate(tomorrow)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "future")
}

func TestParseVisitDate_Garbage(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "15.03.2024", "2024/03/15", "32-01-2024"} {
		_, err := input.ParseVisitDate(raw)

		require.ErrorIs(t, err, domain.ErrValidation, "input %q", raw)
		assert.Contains(t, err.Error(), "format", "input %q", raw)
	}
}

func TestNonEmptyString_Trims(t *testing.T) {
	got, err := input.NonEmptyString("  Trattoria Roma ", "name", 100)

	require.NoError(t, err)
	assert.Equal(t, "Trattoria Roma", got)
}

func TestNonEmptyString_Blank(t *testing.T) {
	_, err := input.NonEmptyString("   ", "name", 100)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "name")
}

func TestNonEmptyString_TooLong(t *testing.T) {
	_, err := input.NonEmptyString(strings.Repeat("a", 11), "name", 10)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNonEmptyString_CeilingCountsCharactersNotBytes(t *testing.T) {
	got, err := input.NonEmptyString(strings.Repeat("é", 10), "name", 10)

	require.NoError(t, err, "10 accented characters fit a 10-character ceiling")
	assert.Equal(t, strings.Repeat("é", 10), got)
}

func TestNonEmptyString_NoCeiling(t *testing.T) {
	long := strings.Repeat("a", 5000)

	got, err := input.NonEmptyString(long, "notes", 0)

	require.NoError(t, err)
	assert.Equal(t, long, got)
}
