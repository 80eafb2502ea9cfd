package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bitetracker/internal/domain"
	"bitetracker/internal/repo"
)

// VisitService implements business logic for Visit operations.
// It holds both repos because every visit write has to verify the referenced
// restaurant exists and that the one-visit-per-restaurant rule holds.
type VisitService struct {
	visits      repo.VisitRepo
	restaurants repo.RestaurantRepo
}

// NewVisitService constructs a VisitService backed by the provided repos.
func NewVisitService(visits repo.VisitRepo, restaurants repo.RestaurantRepo) *VisitService {
	return &VisitService{visits: visits, restaurants: restaurants}
}

// Create validates and persists a new visit.
// Returns domain.ErrNotFound if the referenced restaurant does not exist,
// domain.ErrBusinessRule if that restaurant already has a visit, and
// domain.ErrValidation if any field violates the entity rules.
func (s *VisitService) Create(ctx context.Context, v domain.Visit) (domain.Visit, error) {
	restaurant, err := s.restaurants.GetByID(ctx, v.RestaurantID)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Create: %w", err)
	}

	_, err = s.visits.GetByRestaurantID(ctx, v.RestaurantID)
	switch {
	case err == nil:
		return domain.Visit{}, fmt.Errorf("%w: restaurant %q already has a visit recorded; update the existing visit instead",
			domain.ErrBusinessRule, restaurant.Name)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Visit{}, fmt.Errorf("service.VisitService.Create: %w", err)
	}

	valid, err := domain.NewVisit(v)
	if err != nil {
		return domain.Visit{}, err
	}
	result, err := s.visits.Create(ctx, valid)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single visit by ID.
// Returns domain.ErrNotFound if no visit with that ID exists.
func (s *VisitService) GetByID(ctx context.Context, id int64) (domain.Visit, error) {
	result, err := s.visits.GetByID(ctx, id)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.GetByID: %w", err)
	}
	return result, nil
}

// GetForRestaurant returns the visit recorded for a restaurant, or nil when
// there is none; a restaurant without a visit is a normal state, not an error.
func (s *VisitService) GetForRestaurant(ctx context.Context, restaurantID int64) (*domain.Visit, error) {
	v, err := s.visits.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("service.VisitService.GetForRestaurant: %w", err)
	}
	return &v, nil
}

// List returns all visits, most recent first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VisitService) List(ctx context.Context) ([]domain.Visit, error) {
	out, err := s.visits.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VisitService.List: %w", err)
	}
	if out == nil {
		return []domain.Visit{}, nil
	}
	return out, nil
}

// FilterByMinRating returns all visits rated at or above minRating.
// Returns domain.ErrValidation if minRating is outside 1–5.
func (s *VisitService) FilterByMinRating(ctx context.Context, minRating int) ([]domain.Visit, error) {
	if minRating < 1 || minRating > 5 {
		return nil, fmt.Errorf("%w: minimum rating must be between 1 and 5", domain.ErrValidation)
	}
	out, err := s.visits.FilterByMinRating(ctx, minRating)
	if err != nil {
		return nil, fmt.Errorf("service.VisitService.FilterByMinRating: %w", err)
	}
	if out == nil {
		return []domain.Visit{}, nil
	}
	return out, nil
}

// FilterByMealType returns all visits with the given meal type.
// The input is matched case-insensitively; returns domain.ErrValidation if it
// is blank or not one of the recognized meal types.
func (s *VisitService) FilterByMealType(ctx context.Context, mealType string) ([]domain.Visit, error) {
	mealType = strings.ToLower(strings.TrimSpace(mealType))
	if mealType == "" {
		return nil, fmt.Errorf("%w: meal type cannot be empty", domain.ErrValidation)
	}
	if !domain.ValidMealType(mealType) {
		return nil, fmt.Errorf("%w: meal type must be one of %s", domain.ErrValidation, strings.Join(domain.MealTypes, ", "))
	}
	out, err := s.visits.FilterByMealType(ctx, mealType)
	if err != nil {
		return nil, fmt.Errorf("service.VisitService.FilterByMealType: %w", err)
	}
	if out == nil {
		return []domain.Visit{}, nil
	}
	return out, nil
}

// Update replaces an existing visit record in full.
// Returns domain.ErrNotFound if the visit or the (possibly new) restaurant
// does not exist. When the restaurant reference changes, the
// one-visit-per-restaurant rule is re-checked against the new restaurant and
// a conflict is reported as domain.ErrBusinessRule.
func (s *VisitService) Update(ctx context.Context, v domain.Visit) (domain.Visit, error) {
	current, err := s.visits.GetByID(ctx, v.ID)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Update: %w", err)
	}

	restaurant, err := s.restaurants.GetByID(ctx, v.RestaurantID)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Update: %w", err)
	}

	if v.RestaurantID != current.RestaurantID {
		_, err = s.visits.GetByRestaurantID(ctx, v.RestaurantID)
		switch {
		case err == nil:
			return domain.Visit{}, fmt.Errorf("%w: restaurant %q already has a visit recorded",
				domain.ErrBusinessRule, restaurant.Name)
		case !errors.Is(err, domain.ErrNotFound):
			return domain.Visit{}, fmt.Errorf("service.VisitService.Update: %w", err)
		}
	}

	valid, err := domain.NewVisit(v)
	if err != nil {
		return domain.Visit{}, err
	}
	result, err := s.visits.Update(ctx, valid)
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a visit by ID.
// Returns domain.ErrNotFound if no visit with that ID exists.
func (s *VisitService) Delete(ctx context.Context, id int64) error {
	if err := s.visits.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.VisitService.Delete: %w", err)
	}
	return nil
}

// DeleteForRestaurant removes the visit recorded for a restaurant.
// Returns domain.ErrNotFound if the restaurant has no visit.
func (s *VisitService) DeleteForRestaurant(ctx context.Context, restaurantID int64) error {
	if err := s.visits.DeleteByRestaurantID(ctx, restaurantID); err != nil {
		return fmt.Errorf("service.VisitService.DeleteForRestaurant: %w", err)
	}
	return nil
}
