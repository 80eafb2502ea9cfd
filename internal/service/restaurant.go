// Package service contains the business logic for Bite Tracker.
// Services validate inputs, enforce the cross-entity rules between
// restaurants and visits, and orchestrate repo calls. No SQL lives here;
// services depend on repo interfaces, not implementations, and hold no
// cached state between calls.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bitetracker/internal/domain"
	"bitetracker/internal/repo"
)

// RestaurantService implements business logic for Restaurant operations.
// It holds the visit repo as well because deleting a restaurant is refused
// while a visit still references it.
type RestaurantService struct {
	restaurants repo.RestaurantRepo
	visits      repo.VisitRepo
}

// NewRestaurantService constructs a RestaurantService backed by the provided repos.
func NewRestaurantService(restaurants repo.RestaurantRepo, visits repo.VisitRepo) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, visits: visits}
}

// Create validates and persists a new restaurant.
// Returns domain.ErrValidation if any field violates the entity rules.
func (s *RestaurantService) Create(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error) {
	valid, err := domain.NewRestaurant(r)
	if err != nil {
		return domain.Restaurant{}, err
	}
	result, err := s.restaurants.Create(ctx, valid)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("service.RestaurantService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single restaurant by ID.
// Returns domain.ErrNotFound if no restaurant with that ID exists.
func (s *RestaurantService) GetByID(ctx context.Context, id int64) (domain.Restaurant, error) {
	result, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("service.RestaurantService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all restaurants ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	out, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RestaurantService.List: %w", err)
	}
	if out == nil {
		return []domain.Restaurant{}, nil
	}
	return out, nil
}

// Search returns restaurants whose name contains term, case-insensitively.
// Returns domain.ErrValidation if the term is blank.
func (s *RestaurantService) Search(ctx context.Context, term string) ([]domain.Restaurant, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term cannot be empty", domain.ErrValidation)
	}
	out, err := s.restaurants.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("service.RestaurantService.Search: %w", err)
	}
	if out == nil {
		return []domain.Restaurant{}, nil
	}
	return out, nil
}

// FilterByCountry returns restaurants with an exact country match.
// Returns domain.ErrValidation if the country is blank.
func (s *RestaurantService) FilterByCountry(ctx context.Context, country string) ([]domain.Restaurant, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, fmt.Errorf("%w: country cannot be empty", domain.ErrValidation)
	}
	out, err := s.restaurants.FilterByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("service.RestaurantService.FilterByCountry: %w", err)
	}
	if out == nil {
		return []domain.Restaurant{}, nil
	}
	return out, nil
}

// Update replaces an existing restaurant record in full.
// Returns domain.ErrNotFound if the restaurant does not exist (checked before
// validation, and again by the persist step in case of a concurrent delete),
// domain.ErrValidation if the replacement fields are invalid.
func (s *RestaurantService) Update(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error) {
	if _, err := s.restaurants.GetByID(ctx, r.ID); err != nil {
		return domain.Restaurant{}, fmt.Errorf("service.RestaurantService.Update: %w", err)
	}
	valid, err := domain.NewRestaurant(r)
	if err != nil {
		return domain.Restaurant{}, err
	}
	result, err := s.restaurants.Update(ctx, valid)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("service.RestaurantService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a restaurant by ID.
// Returns domain.ErrNotFound if it does not exist and domain.ErrBusinessRule
// if a visit still references it (the visit must be deleted first). The
// schema-level cascade on visits is deliberately unreachable through this
// path; the guard here is the authoritative behavior.
func (s *RestaurantService) Delete(ctx context.Context, id int64) error {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.RestaurantService.Delete: %w", err)
	}

	_, err = s.visits.GetByRestaurantID(ctx, id)
	switch {
	case err == nil:
		return fmt.Errorf("%w: restaurant %q has a recorded visit; delete the visit first",
			domain.ErrBusinessRule, restaurant.Name)
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("service.RestaurantService.Delete: %w", err)
	}

	if err := s.restaurants.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.RestaurantService.Delete: %w", err)
	}
	return nil
}
