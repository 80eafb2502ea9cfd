package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bitetracker/internal/domain"
)

// visitDateLayout is the storage format for visit_date TEXT columns.
// Lexicographic order on this layout equals chronological order, which the
// date-descending listings rely on.
const visitDateLayout = "2006-01-02"

// VisitRepo defines the persistence operations for Visits.
type VisitRepo interface {
	// Create inserts a new visit and returns the persisted record with the
	// database-assigned id populated.
	Create(ctx context.Context, v domain.Visit) (domain.Visit, error)

	// GetByID retrieves a single visit by primary key.
	// Returns domain.ErrNotFound if no visit with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Visit, error)

	// List returns all visits ordered by visit date descending.
	List(ctx context.Context) ([]domain.Visit, error)

	// Update overwrites the mutable fields of an existing visit and returns
	// the updated record. Returns domain.ErrNotFound if no row matched.
	Update(ctx context.Context, v domain.Visit) (domain.Visit, error)

	// Delete removes a visit by ID. Returns domain.ErrNotFound if no row matched.
	Delete(ctx context.Context, id int64) error

	// GetByRestaurantID retrieves the single visit recorded for a restaurant.
	// Returns domain.ErrNotFound if the restaurant has no visit.
	GetByRestaurantID(ctx context.Context, restaurantID int64) (domain.Visit, error)

	// DeleteByRestaurantID removes the visit recorded for a restaurant.
	// Returns domain.ErrNotFound if the restaurant has no visit.
	DeleteByRestaurantID(ctx context.Context, restaurantID int64) error

	// FilterByMealType returns all visits with the given meal type,
	// ordered by visit date descending.
	FilterByMealType(ctx context.Context, mealType string) ([]domain.Visit, error)

	// FilterByMinRating returns all visits with rating >= minRating,
	// ordered by visit date descending.
	FilterByMinRating(ctx context.Context, minRating int) ([]domain.Visit, error)
}

// sqliteVisitRepo is the SQLite implementation of VisitRepo.
type sqliteVisitRepo struct {
	db db
}

// NewVisitRepo constructs a VisitRepo backed by the provided database handle.
func NewVisitRepo(db db) VisitRepo {
	return &sqliteVisitRepo{db: db}
}

const visitColumns = `id, restaurant_id, visit_date, rating, meal_type, service_rating,
	dishes_ordered, recommended_dishes, beverage_ordered, total_cost, notes, would_return`

// Create inserts a new visit row and returns the full persisted record.
// The UNIQUE constraint on restaurant_id backs the one-visit-per-restaurant
// rule; a violation surfaces here as a storage error, but the service checks
// the rule first so callers normally see a business rule violation instead.
func (r *sqliteVisitRepo) Create(ctx context.Context, in domain.Visit) (domain.Visit, error) {
	const q = `
		INSERT INTO visits (restaurant_id, visit_date, rating, meal_type, service_rating,
			dishes_ordered, recommended_dishes, beverage_ordered, total_cost, notes, would_return)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + visitColumns

	row := r.db.QueryRowContext(ctx, q, visitArgs(in)...)
	result, err := scanVisit(row)
	if err != nil {
		return domain.Visit{}, storageErr("repo.VisitRepo.Create", err)
	}
	return result, nil
}

// GetByID retrieves a visit by primary key.
func (r *sqliteVisitRepo) GetByID(ctx context.Context, id int64) (domain.Visit, error) {
	const q = `SELECT ` + visitColumns + ` FROM visits WHERE id = ?`

	result, err := scanVisit(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Visit{}, fmt.Errorf("repo.VisitRepo.GetByID: %w", err)
		}
		return domain.Visit{}, storageErr("repo.VisitRepo.GetByID", err)
	}
	return result, nil
}

// List returns all visits, most recent visit date first.
func (r *sqliteVisitRepo) List(ctx context.Context) ([]domain.Visit, error) {
	const q = `SELECT ` + visitColumns + ` FROM visits ORDER BY visit_date DESC`
	return r.queryVisits(ctx, "repo.VisitRepo.List", q)
}

// Update overwrites the mutable fields of a visit and returns the updated record.
func (r *sqliteVisitRepo) Update(ctx context.Context, in domain.Visit) (domain.Visit, error) {
	const q = `
		UPDATE visits
		SET restaurant_id      = ?,
		    visit_date         = ?,
		    rating             = ?,
		    meal_type          = ?,
		    service_rating     = ?,
		    dishes_ordered     = ?,
		    recommended_dishes = ?,
		    beverage_ordered   = ?,
		    total_cost         = ?,
		    notes              = ?,
		    would_return       = ?
		WHERE id = ?
		RETURNING ` + visitColumns

	args := append(visitArgs(in), in.ID)
	result, err := scanVisit(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Visit{}, fmt.Errorf("repo.VisitRepo.Update: %w", err)
		}
		return domain.Visit{}, storageErr("repo.VisitRepo.Update", err)
	}
	return result, nil
}

// Delete removes a visit by primary key.
func (r *sqliteVisitRepo) Delete(ctx context.Context, id int64) error {
	return r.deleteWhere(ctx, "repo.VisitRepo.Delete", `DELETE FROM visits WHERE id = ?`, id)
}

// GetByRestaurantID retrieves the single visit for a restaurant.
func (r *sqliteVisitRepo) GetByRestaurantID(ctx context.Context, restaurantID int64) (domain.Visit, error) {
	const q = `SELECT ` + visitColumns + ` FROM visits WHERE restaurant_id = ?`

	result, err := scanVisit(r.db.QueryRowContext(ctx, q, restaurantID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Visit{}, fmt.Errorf("repo.VisitRepo.GetByRestaurantID: %w", err)
		}
		return domain.Visit{}, storageErr("repo.VisitRepo.GetByRestaurantID", err)
	}
	return result, nil
}

// DeleteByRestaurantID removes the visit for a restaurant.
func (r *sqliteVisitRepo) DeleteByRestaurantID(ctx context.Context, restaurantID int64) error {
	return r.deleteWhere(ctx, "repo.VisitRepo.DeleteByRestaurantID",
		`DELETE FROM visits WHERE restaurant_id = ?`, restaurantID)
}

// FilterByMealType returns all visits with the given meal type.
func (r *sqliteVisitRepo) FilterByMealType(ctx context.Context, mealType string) ([]domain.Visit, error) {
	const q = `
		SELECT ` + visitColumns + `
		FROM visits
		WHERE meal_type = ?
		ORDER BY visit_date DESC`
	return r.queryVisits(ctx, "repo.VisitRepo.FilterByMealType", q, mealType)
}

// FilterByMinRating returns all visits rated at or above minRating.
func (r *sqliteVisitRepo) FilterByMinRating(ctx context.Context, minRating int) ([]domain.Visit, error) {
	const q = `
		SELECT ` + visitColumns + `
		FROM visits
		WHERE rating >= ?
		ORDER BY visit_date DESC`
	return r.queryVisits(ctx, "repo.VisitRepo.FilterByMinRating", q, minRating)
}

// deleteWhere runs a single-predicate DELETE and maps zero affected rows to
// domain.ErrNotFound.
func (r *sqliteVisitRepo) deleteWhere(ctx context.Context, op, q string, arg any) error {
	res, err := r.db.ExecContext(ctx, q, arg)
	if err != nil {
		return storageErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

// queryVisits runs a multi-row SELECT and scans the results.
func (r *sqliteVisitRepo) queryVisits(ctx context.Context, op, q string, args ...any) ([]domain.Visit, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	var out []domain.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, storageErr(op+": scan", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op+": rows", err)
	}
	return out, nil
}

// visitArgs lays out the insert/update parameters in column order.
func visitArgs(v domain.Visit) []any {
	var serviceRating, totalCost any
	if v.ServiceRating != nil {
		serviceRating = *v.ServiceRating
	}
	if v.TotalCost != nil {
		totalCost = *v.TotalCost
	}
	return []any{
		v.RestaurantID,
		v.VisitDate.Format(visitDateLayout),
		v.Rating,
		v.MealType,
		serviceRating,
		nullString(v.DishesOrdered),
		nullString(v.RecommendedDishes),
		nullString(v.BeverageOrdered),
		totalCost,
		nullString(v.Notes),
		boolToInt(v.WouldReturn),
	}
}

// scanVisit maps a single database row into a domain.Visit, converting the
// TEXT date, the 0/1 boolean, and the nullable columns.
func scanVisit(s scanner) (domain.Visit, error) {
	var (
		v                   domain.Visit
		rawDate             string
		serviceRating       sql.NullInt64
		dishes, recommended sql.NullString
		beverage, notes     sql.NullString
		totalCost           sql.NullFloat64
		wouldReturn         int
	)

	err := s.Scan(&v.ID, &v.RestaurantID, &rawDate, &v.Rating, &v.MealType, &serviceRating,
		&dishes, &recommended, &beverage, &totalCost, &notes, &wouldReturn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Visit{}, domain.ErrNotFound
		}
		return domain.Visit{}, err
	}

	v.VisitDate, err = time.Parse(visitDateLayout, rawDate)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("parse visit_date %q: %w", rawDate, err)
	}
	if serviceRating.Valid {
		sr := int(serviceRating.Int64)
		v.ServiceRating = &sr
	}
	if totalCost.Valid {
		tc := totalCost.Float64
		v.TotalCost = &tc
	}
	v.DishesOrdered = dishes.String
	v.RecommendedDishes = recommended.String
	v.BeverageOrdered = beverage.String
	v.Notes = notes.String
	v.WouldReturn = wouldReturn != 0
	return v, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
