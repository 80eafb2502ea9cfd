package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitetracker/internal/domain"
	"bitetracker/internal/repo"
	"bitetracker/internal/service"
	"bitetracker/testutil"
)

// TestRestaurantVisitLifecycle drives both services over real repos and a
// real migrated database, end to end: record a restaurant and its visit, hit
// both cross-entity rules, then unwind in the only order the rules allow.
func TestRestaurantVisitLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	restaurantRepo := repo.NewRestaurantRepo(db)
	visitRepo := repo.NewVisitRepo(db)

	restaurants := service.NewRestaurantService(restaurantRepo, visitRepo)
	visits := service.NewVisitService(visitRepo, restaurantRepo)
	ctx := context.Background()

	restaurant, err := restaurants.Create(ctx, domain.Restaurant{
		Name:       "Trattoria Roma",
		Location:   "Rome",
		Country:    "Italy",
		PriceRange: 2,
	})
	require.NoError(t, err)

	visit, err := visits.Create(ctx, domain.Visit{
		RestaurantID: restaurant.ID,
		VisitDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Rating:       5,
		MealType:     "dinner",
		WouldReturn:  true,
	})
	require.NoError(t, err)

	// A second visit for the same restaurant is refused.
	_, err = visits.Create(ctx, domain.Visit{
		RestaurantID: restaurant.ID,
		VisitDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Rating:       4,
		MealType:     "lunch",
	})
	require.ErrorIs(t, err, domain.ErrBusinessRule)
	assert.Contains(t, err.Error(), "Trattoria Roma")

	// So is deleting the restaurant while its visit is on record.
	err = restaurants.Delete(ctx, restaurant.ID)
	require.ErrorIs(t, err, domain.ErrBusinessRule)

	// Removing the visit first unblocks the restaurant delete.
	require.NoError(t, visits.DeleteForRestaurant(ctx, restaurant.ID))
	require.NoError(t, restaurants.Delete(ctx, restaurant.ID))

	_, err = restaurants.GetByID(ctx, restaurant.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = visits.GetByID(ctx, visit.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
