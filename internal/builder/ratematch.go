package builder

import (
	"strings"

	"github.com/holidaydesk/backoffice/internal/domain"
)

// MatchRate resolves a price for a vehicle type travelling to a destination.
// Both inputs are trimmed and lowercased, then matched by exact equality
// against the rate table; the first hit wins. There is no fuzzy matching and
// no partial credit here.
func MatchRate(vehicleType, destination string, table []domain.TransferRate) (float64, bool) {
	v := rateKey(vehicleType)
	dst := rateKey(destination)
	if v == "" || dst == "" {
		return 0, false
	}
	for _, rate := range table {
		if rateKey(rate.VehicleType) == v && rateKey(rate.Destination) == dst {
			return rate.Price, true
		}
	}
	return 0, false
}

// CapacityFor looks up the capacity of a vehicle type by name within an
// already-filtered type list. Capacity comes from the vehicle-type record,
// not the rate table; the two sources are independent.
func CapacityFor(vehicleType string, types []domain.VehicleType) string {
	key := rateKey(vehicleType)
	if key == "" {
		return ""
	}
	for _, vt := range types {
		if rateKey(vt.VehicleType) == key {
			if vt.Capacity != nil {
				return *vt.Capacity
			}
			return ""
		}
	}
	return ""
}

// ApplyVehicleSelection fills a vehicle line after its type was chosen or
// changed. A matched rate overwrites the line price even when the user had
// typed a custom value: last selection wins. When no rate exists the price
// keeps its previous value, which preserves manual overrides. Capacity is
// refreshed from the type list regardless of the rate outcome.
func ApplyVehicleSelection(line *domain.PackageVehicle, d domain.PackageDraft, table []domain.TransferRate, types []domain.VehicleType) {
	if price, ok := MatchRate(line.VehicleType, d.PrimaryDestination, table); ok {
		line.Price = price
	}
	if capacity := CapacityFor(line.VehicleType, types); capacity != "" {
		line.Capacity = capacity
	}
}

func rateKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
