package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bitetracker/internal/domain"
	"bitetracker/internal/input"
)

// ---- restaurant operations -------------------------------------------------

func (m *Menu) addRestaurant(ctx context.Context) error {
	fmt.Fprintln(m.out, sectionStyle.Render("Add Restaurant"))

	name, err := m.promptField("Name: ")
	if err != nil {
		return err
	}
	location, err := m.promptField("Location (address/city): ")
	if err != nil {
		return err
	}
	country, err := m.promptField("Country: ")
	if err != nil {
		return err
	}
	priceRange, err := m.promptInt("Price range (1-4): ")
	if err != nil {
		return err
	}
	cuisine, err := m.promptField("Cuisine type (optional): ")
	if err != nil {
		return err
	}
	phone, err := m.promptField("Phone (optional): ")
	if err != nil {
		return err
	}
	website, err := m.promptField("Website (optional): ")
	if err != nil {
		return err
	}
	socialMedia, err := m.promptField("Social media (optional): ")
	if err != nil {
		return err
	}

	created, err := m.restaurants.Create(ctx, domain.Restaurant{
		Name:        name,
		Location:    location,
		Country:     country,
		PriceRange:  priceRange,
		CuisineType: cuisine,
		Phone:       phone,
		Website:     website,
		SocialMedia: socialMedia,
	})
	if err != nil {
		return err
	}

	m.log.Info("restaurant created", "id", created.ID, "name", created.Name)
	fmt.Fprintln(m.out, successStyle.Render(fmt.Sprintf("Added %q with id %d.", created.Name, created.ID)))
	return nil
}

func (m *Menu) viewAllRestaurants(ctx context.Context) error {
	restaurants, err := m.restaurants.List(ctx)
	if err != nil {
		return err
	}
	m.renderRestaurants("All Restaurants", restaurants)
	return nil
}

func (m *Menu) searchRestaurants(ctx context.Context) error {
	term, err := m.promptField("Search term: ")
	if err != nil {
		return err
	}
	restaurants, err := m.restaurants.Search(ctx, term)
	if err != nil {
		return err
	}
	m.renderRestaurants(fmt.Sprintf("Restaurants matching %q", term), restaurants)
	return nil
}

func (m *Menu) filterByCountry(ctx context.Context) error {
	country, err := m.promptField("Country: ")
	if err != nil {
		return err
	}
	restaurants, err := m.restaurants.FilterByCountry(ctx, country)
	if err != nil {
		return err
	}
	m.renderRestaurants(fmt.Sprintf("Restaurants in %s", country), restaurants)
	return nil
}

func (m *Menu) deleteRestaurant(ctx context.Context) error {
	id, err := m.promptID("Restaurant id: ")
	if err != nil {
		return err
	}
	if err := m.restaurants.Delete(ctx, id); err != nil {
		return err
	}
	m.log.Info("restaurant deleted", "id", id)
	fmt.Fprintln(m.out, successStyle.Render(fmt.Sprintf("Deleted restaurant %d.", id)))
	return nil
}

// ---- visit operations ------------------------------------------------------

func (m *Menu) addVisit(ctx context.Context) error {
	fmt.Fprintln(m.out, sectionStyle.Render("Add Visit"))

	restaurantID, err := m.promptID("Restaurant id: ")
	if err != nil {
		return err
	}
	rawDate, err := m.promptField("Visit date (YYYY-MM-DD, DD/MM/YYYY, or DD-MM-YYYY): ")
	if err != nil {
		return err
	}
	visitDate, err := input.ParseVisitDate(rawDate)
	if err != nil {
		return err
	}
	rating, err := m.promptInt("Rating (1-5): ")
	if err != nil {
		return err
	}
	mealType, err := m.promptField("Meal type (" + strings.Join(domain.MealTypes, "/") + "): ")
	if err != nil {
		return err
	}
	serviceRating, err := m.promptOptionalInt("Service rating (1-5, optional): ")
	if err != nil {
		return err
	}
	dishes, err := m.promptField("Dishes ordered (optional): ")
	if err != nil {
		return err
	}
	recommended, err := m.promptField("Recommended dishes (optional): ")
	if err != nil {
		return err
	}
	beverage, err := m.promptField("Beverages (optional): ")
	if err != nil {
		return err
	}
	totalCost, err := m.promptOptionalFloat("Total cost (optional): ")
	if err != nil {
		return err
	}
	notes, err := m.promptField("Notes (optional): ")
	if err != nil {
		return err
	}
	wouldReturn, err := m.promptYesNo("Would you return? (Y/n): ", true)
	if err != nil {
		return err
	}

	created, err := m.visits.Create(ctx, domain.Visit{
		RestaurantID:      restaurantID,
		VisitDate:         visitDate,
		Rating:            rating,
		MealType:          mealType,
		ServiceRating:     serviceRating,
		DishesOrdered:     dishes,
		RecommendedDishes: recommended,
		BeverageOrdered:   beverage,
		TotalCost:         totalCost,
		Notes:             notes,
		WouldReturn:       wouldReturn,
	})
	if err != nil {
		return err
	}

	m.log.Info("visit created", "id", created.ID, "restaurant_id", created.RestaurantID)
	fmt.Fprintln(m.out, successStyle.Render(fmt.Sprintf("Recorded visit %d.", created.ID)))
	return nil
}

func (m *Menu) viewAllVisits(ctx context.Context) error {
	visits, err := m.visits.List(ctx)
	if err != nil {
		return err
	}
	return m.renderVisits(ctx, "All Visits", visits)
}

func (m *Menu) filterVisitsByRating(ctx context.Context) error {
	minRating, err := m.promptInt("Minimum rating (1-5): ")
	if err != nil {
		return err
	}
	visits, err := m.visits.FilterByMinRating(ctx, minRating)
	if err != nil {
		return err
	}
	return m.renderVisits(ctx, fmt.Sprintf("Visits rated %d+", minRating), visits)
}

func (m *Menu) filterVisitsByMealType(ctx context.Context) error {
	mealType, err := m.promptField("Meal type (" + strings.Join(domain.MealTypes, "/") + "): ")
	if err != nil {
		return err
	}
	visits, err := m.visits.FilterByMealType(ctx, mealType)
	if err != nil {
		return err
	}
	return m.renderVisits(ctx, fmt.Sprintf("%s visits", mealType), visits)
}

func (m *Menu) deleteVisit(ctx context.Context) error {
	id, err := m.promptID("Visit id: ")
	if err != nil {
		return err
	}
	if err := m.visits.Delete(ctx, id); err != nil {
		return err
	}
	m.log.Info("visit deleted", "id", id)
	fmt.Fprintln(m.out, successStyle.Render(fmt.Sprintf("Deleted visit %d.", id)))
	return nil
}

// ---- export ----------------------------------------------------------------

func (m *Menu) exportCSV(ctx context.Context) error {
	path, err := m.promptField("Output file [bitetracker_export.csv]: ")
	if err != nil {
		return err
	}
	if path == "" {
		path = "bitetracker_export.csv"
	}

	rows, err := m.export.Export(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli.Menu.exportCSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"restaurant_id", "name", "location", "country", "price_range",
		"cuisine_type", "visited", "visit_date", "rating", "meal_type", "total_cost", "would_return"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("cli.Menu.exportCSV: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.RestaurantID, 10),
			row.Name,
			row.Location,
			row.Country,
			strconv.Itoa(row.PriceRange),
			row.CuisineType,
			strconv.FormatBool(row.Visited),
			row.VisitDate,
			"",
			row.MealType,
			"",
			"",
		}
		if row.Visited {
			record[8] = strconv.Itoa(row.Rating)
			record[11] = strconv.FormatBool(row.WouldReturn)
			if row.TotalCost != nil {
				record[10] = strconv.FormatFloat(*row.TotalCost, 'f', 2, 64)
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("cli.Menu.exportCSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cli.Menu.exportCSV: %w", err)
	}

	m.log.Info("export written", "path", path, "rows", len(rows))
	fmt.Fprintln(m.out, successStyle.Render(fmt.Sprintf("Wrote %d rows to %s.", len(rows), path)))
	return nil
}

// ---- rendering -------------------------------------------------------------

func (m *Menu) renderRestaurants(title string, restaurants []domain.Restaurant) {
	fmt.Fprintln(m.out, sectionStyle.Render(title))
	if len(restaurants) == 0 {
		fmt.Fprintln(m.out, mutedStyle.Render("  No restaurants found."))
		return
	}

	fmt.Fprintln(m.out, tableHeaderStyle.Render(fmt.Sprintf("  %-4s %-30s %-20s %-15s %-8s %s",
		"ID", "Name", "Location", "Country", "Price", "Cuisine")))
	for _, r := range restaurants {
		fmt.Fprintln(m.out, itemStyle.Render(fmt.Sprintf("  %-4d %-30s %-20s %-15s %-8s %s",
			r.ID, truncate(r.Name, 30), truncate(r.Location, 20), truncate(r.Country, 15),
			r.PriceSymbol(), orDash(r.CuisineType))))
	}
}

// renderVisits prints visits with the restaurant name resolved per row.
// One lookup per visit is fine at personal-collection scale.
func (m *Menu) renderVisits(ctx context.Context, title string, visits []domain.Visit) error {
	fmt.Fprintln(m.out, sectionStyle.Render(title))
	if len(visits) == 0 {
		fmt.Fprintln(m.out, mutedStyle.Render("  No visits found."))
		return nil
	}

	fmt.Fprintln(m.out, tableHeaderStyle.Render(fmt.Sprintf("  %-4s %-30s %-14s %-7s %-10s %-8s %s",
		"ID", "Restaurant", "Date", "Stars", "Meal", "Cost", "Return")))
	for _, v := range visits {
		name := fmt.Sprintf("restaurant %d", v.RestaurantID)
		if r, err := m.restaurants.GetByID(ctx, v.RestaurantID); err == nil {
			name = r.Name
		}
		fmt.Fprintln(m.out, itemStyle.Render(fmt.Sprintf("  %-4d %-30s %-14s %-7s %-10s %-8s %s",
			v.ID, truncate(name, 30), formatDate(v.VisitDate), formatStars(v.Rating),
			v.MealType, formatCost(v.TotalCost), formatWouldReturn(v.WouldReturn))))
	}
	return nil
}
