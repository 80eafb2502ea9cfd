package cli

import (
	"fmt"
	"strings"
	"time"
)

// formatDate formats a visit date for display ("Jan 02, 2006").
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("Jan 02, 2006")
}

// formatStars renders a 1–5 rating as filled and empty stars ("★★★☆☆").
func formatStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// formatWouldReturn renders the would-return flag as a symbol.
func formatWouldReturn(wouldReturn bool) string {
	if wouldReturn {
		return "✓"
	}
	return "✗"
}

// formatCost renders an optional total cost, or a dash when not recorded.
func formatCost(cost *float64) string {
	if cost == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f", *cost)
}

// orDash substitutes a dash for empty optional text fields.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// truncate shortens a string to maxLen runes, appending "..." when cut.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
