package service

import (
	"context"

	"github.com/holidaydesk/backoffice/internal/builder"
	"github.com/holidaydesk/backoffice/internal/domain"
)

// BuilderService keeps a package draft's dependent selections consistent
// with the catalogs. It is a thin orchestration layer: all decisions live in
// the pure functions of internal/builder.
type BuilderService struct {
	catalogs *CatalogService
}

// BuilderOptions is the reconciled draft plus the valid choices for every
// dependent field, computed for the draft's current state selection.
type BuilderOptions struct {
	Draft          domain.PackageDraft   `json:"draft"`
	Destinations   []domain.Destination  `json:"destinations"`
	DayItineraries []domain.DayItinerary `json:"day_itineraries"`
	VehicleTypes   []domain.VehicleType  `json:"vehicle_types"`
	PickupPoints   []string              `json:"pickup_points"`
	DropPoints     []string              `json:"drop_points"`
}

// RateMatch is the outcome of a vehicle rate lookup. Matched reports whether
// the rate table had an applicable row; when false the caller must keep the
// line's previous price.
type RateMatch struct {
	Price    float64 `json:"price"`
	Capacity string  `json:"capacity,omitempty"`
	Matched  bool    `json:"matched"`
}

func NewBuilderService(catalogs *CatalogService) *BuilderService {
	return &BuilderService{catalogs: catalogs}
}

// ChangeState applies the state cascade and returns fresh options for the
// new state.
func (s *BuilderService) ChangeState(ctx context.Context, draft domain.PackageDraft, newState string) BuilderOptions {
	builder.OnStateChanged(&draft, newState)
	return s.Reconcile(ctx, draft)
}

// Reconcile prunes stale selections against the current catalogs and
// computes the valid choices for each dependent field. The destination list
// is fetched for the draft's state; a result that raced with a newer state
// change is discarded by the generation guard and the draft returned
// untouched alongside the stale options.
func (s *BuilderService) Reconcile(ctx context.Context, draft domain.PackageDraft) BuilderOptions {
	generation := draft.Generation
	destinations := s.catalogs.Destinations(ctx, draft.State)

	builder.ReconcileIfCurrent(&draft, destinations, generation)

	names := make([]string, 0, len(destinations))
	for _, dest := range destinations {
		names = append(names, dest.Name)
	}

	return BuilderOptions{
		Draft:          draft,
		Destinations:   destinations,
		DayItineraries: builder.FilterDayItineraries(draft, s.catalogs.DayItineraries(ctx)),
		VehicleTypes:   builder.FilterVehicleTypes(draft, s.catalogs.VehicleTypes(ctx)),
		PickupPoints:   names,
		DropPoints:     names,
	}
}

// MatchRate resolves the automatic price and capacity for a vehicle
// selection. Capacity comes from the state-filtered vehicle-type list, the
// price from the transfer-rate table; the two lookups are independent.
func (s *BuilderService) MatchRate(ctx context.Context, state, vehicleType, destination string) RateMatch {
	price, matched := builder.MatchRate(vehicleType, destination, s.catalogs.TransferRates(ctx))

	scoped := builder.FilterVehicleTypes(domain.PackageDraft{State: state}, s.catalogs.VehicleTypes(ctx))
	capacity := builder.CapacityFor(vehicleType, scoped)

	return RateMatch{Price: price, Capacity: capacity, Matched: matched}
}
