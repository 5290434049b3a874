package ports

import (
	"context"

	"github.com/holidaydesk/backoffice/internal/domain"
)

// CatalogStore reads the master-data reference collections. Implementations
// must scope Destinations to a state by name when one is given and return
// the global list otherwise.
type CatalogStore interface {
	States(ctx context.Context) ([]domain.State, error)
	Destinations(ctx context.Context, state string) ([]domain.Destination, error)
	VehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
	DayItineraries(ctx context.Context) ([]domain.DayItinerary, error)
	TransferRates(ctx context.Context) ([]domain.TransferRate, error)
	Notes(ctx context.Context) ([]domain.Note, error)
}
