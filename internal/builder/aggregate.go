package builder

import (
	"math"

	"github.com/holidaydesk/backoffice/internal/domain"
)

// SumEventPrices computes the authoritative total of a persisted package:
// the sum of its event prices. String-typed prices are already coerced by
// domain.EventPrice; NaN values contribute zero.
func SumEventPrices(events []domain.PackageEvent) float64 {
	var total float64
	for _, ev := range events {
		price := float64(ev.EventData.Price)
		if math.IsNaN(price) {
			continue
		}
		total += price
	}
	return total
}

// SumVehicleLines computes the draft-side configuration total: the sum of
// the package's vehicle line prices. This is a separate projection from the
// events total and the two can legitimately diverge; they are never merged.
func SumVehicleLines(lines []domain.PackageVehicle) float64 {
	var total float64
	for _, line := range lines {
		if math.IsNaN(line.Price) {
			continue
		}
		total += line.Price
	}
	return total
}
