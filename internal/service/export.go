package service

import (
	"context"
	"errors"
	"fmt"

	"bitetracker/internal/domain"
	"bitetracker/internal/repo"
)

// ExportService assembles a full flat export of all restaurants and their visits.
type ExportService struct {
	restaurants repo.RestaurantRepo
	visits      repo.VisitRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(restaurants repo.RestaurantRepo, visits repo.VisitRepo) *ExportService {
	return &ExportService{restaurants: restaurants, visits: visits}
}

// Export returns one ExportRow per restaurant, ordered by restaurant name.
// Restaurants without a visit contribute one row with empty visit fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, r := range restaurants {
		row := domain.ExportRow{
			RestaurantID: r.ID,
			Name:         r.Name,
			Location:     r.Location,
			Country:      r.Country,
			PriceRange:   r.PriceRange,
			CuisineType:  r.CuisineType,
		}

		v, err := s.visits.GetByRestaurantID(ctx, r.ID)
		switch {
		case err == nil:
			row.Visited = true
			row.VisitDate = v.VisitDate.Format("2006-01-02")
			row.Rating = v.Rating
			row.MealType = v.MealType
			row.TotalCost = v.TotalCost
			row.WouldReturn = v.WouldReturn
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("service.ExportService.Export: %w", err)
		}

		rows = append(rows, row)
	}
	return rows, nil
}
