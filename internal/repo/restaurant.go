package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bitetracker/internal/domain"
)

// RestaurantRepo defines the persistence operations for Restaurants.
// The service layer depends on this interface, not the concrete SQLite
// implementation, which allows the services to be unit-tested with mocks.
type RestaurantRepo interface {
	// Create inserts a new restaurant and returns the persisted record with
	// the database-assigned id populated.
	Create(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error)

	// GetByID retrieves a single restaurant by primary key.
	// Returns domain.ErrNotFound if no restaurant with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Restaurant, error)

	// List returns all restaurants ordered by name ascending.
	List(ctx context.Context) ([]domain.Restaurant, error)

	// Update overwrites the mutable fields of an existing restaurant and
	// returns the updated record. Returns domain.ErrNotFound if no row matched.
	Update(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error)

	// Delete removes a restaurant by ID. Dependent visit rows are removed by
	// the schema-level cascade. Returns domain.ErrNotFound if no row matched.
	Delete(ctx context.Context, id int64) error

	// SearchByName returns restaurants whose name contains term,
	// case-insensitively, ordered by name ascending.
	SearchByName(ctx context.Context, term string) ([]domain.Restaurant, error)

	// FilterByCountry returns restaurants with an exact country match,
	// ordered by name ascending.
	FilterByCountry(ctx context.Context, country string) ([]domain.Restaurant, error)
}

// sqliteRestaurantRepo is the SQLite implementation of RestaurantRepo.
type sqliteRestaurantRepo struct {
	db db
}

// NewRestaurantRepo constructs a RestaurantRepo backed by the provided
// database handle. In production pass *sql.DB; tests may pass a *sql.Tx.
func NewRestaurantRepo(db db) RestaurantRepo {
	return &sqliteRestaurantRepo{db: db}
}

const restaurantColumns = `id, name, location, country, cuisine_type, price_range, phone, website, social_media`

// Create inserts a new restaurant row and returns the full persisted record.
func (r *sqliteRestaurantRepo) Create(ctx context.Context, in domain.Restaurant) (domain.Restaurant, error) {
	const q = `
		INSERT INTO restaurants (name, location, country, cuisine_type, price_range, phone, website, social_media)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + restaurantColumns

	row := r.db.QueryRowContext(ctx, q,
		in.Name, in.Location, in.Country, nullString(in.CuisineType),
		in.PriceRange, nullString(in.Phone), nullString(in.Website), nullString(in.SocialMedia))

	result, err := scanRestaurant(row)
	if err != nil {
		return domain.Restaurant{}, storageErr("repo.RestaurantRepo.Create", err)
	}
	return result, nil
}

// GetByID retrieves a restaurant by primary key.
func (r *sqliteRestaurantRepo) GetByID(ctx context.Context, id int64) (domain.Restaurant, error) {
	const q = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = ?`

	result, err := scanRestaurant(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Restaurant{}, fmt.Errorf("repo.RestaurantRepo.GetByID: %w", err)
		}
		return domain.Restaurant{}, storageErr("repo.RestaurantRepo.GetByID", err)
	}
	return result, nil
}

// List returns all restaurants ordered by name ascending.
func (r *sqliteRestaurantRepo) List(ctx context.Context) ([]domain.Restaurant, error) {
	const q = `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY name COLLATE NOCASE`
	return r.queryRestaurants(ctx, "repo.RestaurantRepo.List", q)
}

// Update overwrites the mutable fields of a restaurant and returns the
// updated record. The RETURNING clause doubles as the row-matched check.
func (r *sqliteRestaurantRepo) Update(ctx context.Context, in domain.Restaurant) (domain.Restaurant, error) {
	const q = `
		UPDATE restaurants
		SET name         = ?,
		    location     = ?,
		    country      = ?,
		    cuisine_type = ?,
		    price_range  = ?,
		    phone        = ?,
		    website      = ?,
		    social_media = ?
		WHERE id = ?
		RETURNING ` + restaurantColumns

	row := r.db.QueryRowContext(ctx, q,
		in.Name, in.Location, in.Country, nullString(in.CuisineType),
		in.PriceRange, nullString(in.Phone), nullString(in.Website), nullString(in.SocialMedia),
		in.ID)

	result, err := scanRestaurant(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Restaurant{}, fmt.Errorf("repo.RestaurantRepo.Update: %w", err)
		}
		return domain.Restaurant{}, storageErr("repo.RestaurantRepo.Update", err)
	}
	return result, nil
}

// Delete removes a restaurant by primary key.
func (r *sqliteRestaurantRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM restaurants WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return storageErr("repo.RestaurantRepo.Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("repo.RestaurantRepo.Delete", err)
	}
	if n == 0 {
		return fmt.Errorf("repo.RestaurantRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// SearchByName returns restaurants whose name contains term as a literal
// substring. SQLite's LIKE is case-insensitive for ASCII, matching the
// contract; LIKE metacharacters in the term are escaped so "100%" matches
// only names actually containing "100%".
func (r *sqliteRestaurantRepo) SearchByName(ctx context.Context, term string) ([]domain.Restaurant, error) {
	const q = `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE name LIKE '%' || ? || '%' ESCAPE '\'
		ORDER BY name COLLATE NOCASE`
	return r.queryRestaurants(ctx, "repo.RestaurantRepo.SearchByName", q, escapeLike(term))
}

// escapeLike backslash-escapes the LIKE metacharacters in a search term.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// FilterByCountry returns restaurants with an exact country match.
func (r *sqliteRestaurantRepo) FilterByCountry(ctx context.Context, country string) ([]domain.Restaurant, error) {
	const q = `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE country = ?
		ORDER BY name COLLATE NOCASE`
	return r.queryRestaurants(ctx, "repo.RestaurantRepo.FilterByCountry", q, country)
}

// queryRestaurants runs a multi-row SELECT and scans the results.
func (r *sqliteRestaurantRepo) queryRestaurants(ctx context.Context, op, q string, args ...any) ([]domain.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		rec, err := scanRestaurant(rows)
		if err != nil {
			return nil, storageErr(op+": scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op+": rows", err)
	}
	return out, nil
}

// scanRestaurant maps a single database row into a domain.Restaurant,
// converting NULL optional columns to empty strings.
func scanRestaurant(s scanner) (domain.Restaurant, error) {
	var (
		r                                    domain.Restaurant
		cuisine, phone, website, socialMedia sql.NullString
	)

	err := s.Scan(&r.ID, &r.Name, &r.Location, &r.Country, &cuisine, &r.PriceRange, &phone, &website, &socialMedia)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Restaurant{}, domain.ErrNotFound
		}
		return domain.Restaurant{}, err
	}

	r.CuisineType = cuisine.String
	r.Phone = phone.String
	r.Website = website.String
	r.SocialMedia = socialMedia.String
	return r, nil
}
