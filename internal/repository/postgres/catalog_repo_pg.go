package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/holidaydesk/backoffice/internal/domain"
	"github.com/holidaydesk/backoffice/internal/repository/ports"
)

// CatalogRepository reads the master-data tables. The day_itinerary
// destinations column is legacy text holding a JSON-encoded array; scanning
// goes through domain.FlexStrings so malformed rows degrade instead of
// failing the whole list.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepo(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) States(ctx context.Context) ([]domain.State, error) {
	const query = `
		SELECT id, name, code, status
		FROM state
		ORDER BY name ASC
	`
	states := make([]domain.State, 0)
	if err := r.db.SelectContext(ctx, &states, query); err != nil {
		return nil, err
	}
	return states, nil
}

func (r *CatalogRepository) Destinations(ctx context.Context, state string) ([]domain.Destination, error) {
	destinations := make([]domain.Destination, 0)

	trimmed := strings.TrimSpace(state)
	if trimmed == "" {
		const query = `
			SELECT id, name, state, status
			FROM destination
			ORDER BY name ASC
		`
		if err := r.db.SelectContext(ctx, &destinations, query); err != nil {
			return nil, err
		}
		return destinations, nil
	}

	const query = `
		SELECT id, name, state, status
		FROM destination
		WHERE state = $1
		ORDER BY name ASC
	`
	if err := r.db.SelectContext(ctx, &destinations, query, trimmed); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *CatalogRepository) VehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	const query = `
		SELECT id, vehicle_type, capacity, state, status
		FROM vehicle_type
		ORDER BY vehicle_type ASC
	`
	types := make([]domain.VehicleType, 0)
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *CatalogRepository) DayItineraries(ctx context.Context) ([]domain.DayItinerary, error) {
	const query = `
		SELECT id, name, num_days, destinations
		FROM day_itinerary
		ORDER BY name ASC
	`
	itineraries := make([]domain.DayItinerary, 0)
	if err := r.db.SelectContext(ctx, &itineraries, query); err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *CatalogRepository) TransferRates(ctx context.Context) ([]domain.TransferRate, error) {
	const query = `
		SELECT id, vehicle_type, destination, price
		FROM transfer_rate
		ORDER BY vehicle_type ASC, destination ASC
	`
	rates := make([]domain.TransferRate, 0)
	if err := r.db.SelectContext(ctx, &rates, query); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *CatalogRepository) Notes(ctx context.Context) ([]domain.Note, error) {
	const query = `
		SELECT id, kind, text
		FROM note
		ORDER BY id ASC
	`
	notes := make([]domain.Note, 0)
	if err := r.db.SelectContext(ctx, &notes, query); err != nil {
		return nil, err
	}
	return notes, nil
}

var _ ports.CatalogStore = (*CatalogRepository)(nil)
