// Package cli implements the menu-driven text interface.
// It collects raw field values, runs them through internal/input, calls the
// services, and renders results or error messages. All four error kinds plus
// a generic fallback are reported without ever crashing the loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"bitetracker/internal/domain"
	"bitetracker/internal/service"
)

// Menu drives the main interaction loop.
type Menu struct {
	rl          *readline.Instance
	restaurants *service.RestaurantService
	visits      *service.VisitService
	export      *service.ExportService
	log         *slog.Logger
	out         io.Writer
}

// New constructs the menu and its readline instance.
// Call Close when done to restore the terminal.
func New(restaurants *service.RestaurantService, visits *service.VisitService, export *service.ExportService, log *slog.Logger) (*Menu, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("cli.New: %w", err)
	}
	return &Menu{
		rl:          rl,
		restaurants: restaurants,
		visits:      visits,
		export:      export,
		log:         log,
		out:         rl.Stdout(),
	}, nil
}

// Close releases the readline instance.
func (m *Menu) Close() error {
	return m.rl.Close()
}

// Run executes the main menu loop until the user exits or the input stream
// closes. Ctrl-C at the menu prompt exits cleanly; inside a form it cancels
// the current operation and returns to the menu.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, titleStyle.Render("BITE TRACKER — Restaurant Visit Manager"))

	for {
		m.renderMenu()
		choice, err := m.promptLine("Enter your choice: ")
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out, mutedStyle.Render("Goodbye!"))
				return nil
			}
			return fmt.Errorf("cli.Menu.Run: %w", err)
		}

		if choice == "0" {
			fmt.Fprintln(m.out, successStyle.Render("Thank you for using Bite Tracker!"))
			return nil
		}
		m.dispatch(ctx, choice)
	}
}

func (m *Menu) renderMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, sectionStyle.Render("[RESTAURANTS]"))
	fmt.Fprintln(m.out, itemStyle.Render("  1. Add Restaurant"))
	fmt.Fprintln(m.out, itemStyle.Render("  2. View All Restaurants"))
	fmt.Fprintln(m.out, itemStyle.Render("  3. Search Restaurants"))
	fmt.Fprintln(m.out, itemStyle.Render("  4. Filter by Country"))
	fmt.Fprintln(m.out, itemStyle.Render("  5. Delete Restaurant"))
	fmt.Fprintln(m.out, sectionStyle.Render("[VISITS]"))
	fmt.Fprintln(m.out, itemStyle.Render("  6. Add Visit"))
	fmt.Fprintln(m.out, itemStyle.Render("  7. View All Visits"))
	fmt.Fprintln(m.out, itemStyle.Render("  8. Filter Visits by Rating"))
	fmt.Fprintln(m.out, itemStyle.Render("  9. Filter Visits by Meal Type"))
	fmt.Fprintln(m.out, itemStyle.Render("  10. Delete Visit"))
	fmt.Fprintln(m.out, sectionStyle.Render("[OTHER]"))
	fmt.Fprintln(m.out, itemStyle.Render("  11. Export to CSV"))
	fmt.Fprintln(m.out, itemStyle.Render("  0. Exit"))
}

// dispatch routes a menu choice to its handler and reports any failure.
func (m *Menu) dispatch(ctx context.Context, choice string) {
	var err error
	switch choice {
	case "1":
		err = m.addRestaurant(ctx)
	case "2":
		err = m.viewAllRestaurants(ctx)
	case "3":
		err = m.searchRestaurants(ctx)
	case "4":
		err = m.filterByCountry(ctx)
	case "5":
		err = m.deleteRestaurant(ctx)
	case "6":
		err = m.addVisit(ctx)
	case "7":
		err = m.viewAllVisits(ctx)
	case "8":
		err = m.filterVisitsByRating(ctx)
	case "9":
		err = m.filterVisitsByMealType(ctx)
	case "10":
		err = m.deleteVisit(ctx)
	case "11":
		err = m.exportCSV(ctx)
	default:
		fmt.Fprintln(m.out, warnStyle.Render("Invalid choice. Please enter a number from the menu."))
		return
	}
	if err != nil {
		m.printError(err)
	}
}

// printError renders an error according to its kind without stopping the loop.
func (m *Menu) printError(err error) {
	switch {
	case errors.Is(err, errCancelled):
		fmt.Fprintln(m.out, mutedStyle.Render("Cancelled."))
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintln(m.out, errorStyle.Render("Invalid input: "+messageAfter(err, domain.ErrValidation)))
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(m.out, warnStyle.Render("Not found: "+messageAfter(err, domain.ErrNotFound)))
	case errors.Is(err, domain.ErrBusinessRule):
		fmt.Fprintln(m.out, warnStyle.Render("Not allowed: "+messageAfter(err, domain.ErrBusinessRule)))
	case errors.Is(err, domain.ErrStorage):
		m.log.Error("storage failure", "error", err)
		fmt.Fprintln(m.out, errorStyle.Render("Storage error: "+err.Error()))
	default:
		m.log.Error("unexpected failure", "error", err)
		fmt.Fprintln(m.out, errorStyle.Render("Unexpected error: "+err.Error()))
	}
}

// messageAfter extracts the human-readable part following the sentinel text,
// e.g. "service.VisitService.Create: validation error: rating must be between
// 1 and 5" → "rating must be between 1 and 5". Falls back to the full message
// when the sentinel has no suffix.
func messageAfter(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	if i := strings.LastIndex(msg, sentinel.Error()); i >= 0 {
		return "the requested record does not exist"
	}
	return msg
}

// errCancelled marks a form abandoned with Ctrl-C; handled quietly.
var errCancelled = errors.New("cancelled")

// ---- prompt helpers --------------------------------------------------------

// promptLine reads one trimmed line with the given prompt.
func (m *Menu) promptLine(label string) (string, error) {
	m.rl.SetPrompt(label)
	defer m.rl.SetPrompt("> ")

	line, err := m.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptField reads a line inside a form, converting Ctrl-C and EOF into a
// quiet cancellation of the current operation.
func (m *Menu) promptField(label string) (string, error) {
	line, err := m.promptLine(label)
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", errCancelled
		}
		return "", err
	}
	return line, nil
}

// promptInt reads a required integer field.
func (m *Menu) promptInt(label string) (int, error) {
	raw, err := m.promptField(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrValidation, raw)
	}
	return n, nil
}

// promptID reads a required record identifier.
func (m *Menu) promptID(label string) (int64, error) {
	raw, err := m.promptField(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", domain.ErrValidation, raw)
	}
	return id, nil
}

// promptOptionalInt reads an optional integer field; blank means absent.
func (m *Menu) promptOptionalInt(label string) (*int, error) {
	raw, err := m.promptField(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", domain.ErrValidation, raw)
	}
	return &n, nil
}

// promptOptionalFloat reads an optional decimal field; blank means absent.
func (m *Menu) promptOptionalFloat(label string) (*float64, error) {
	raw, err := m.promptField(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", domain.ErrValidation, raw)
	}
	return &f, nil
}

// promptYesNo reads a y/n field; blank selects the default.
func (m *Menu) promptYesNo(label string, def bool) (bool, error) {
	raw, err := m.promptField(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(raw) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: answer y or n", domain.ErrValidation)
	}
}
