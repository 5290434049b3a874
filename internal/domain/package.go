package domain

// PackageStatus is the lifecycle flag on a tour package.
type PackageStatus string

const (
	PackageStatusActive   PackageStatus = "Active"
	PackageStatusInactive PackageStatus = "Inactive"
	PackageStatusDraft    PackageStatus = "Draft"
)

type PackageType string

const (
	PackageTypePrivate PackageType = "Private"
	PackageTypeGroup   PackageType = "Group"
)

type PackageCategory string

const (
	PackageCategoryBudget  PackageCategory = "Budget"
	PackageCategoryDeluxe  PackageCategory = "Deluxe"
	PackageCategoryPremium PackageCategory = "Premium"
)

type ACType string

const (
	ACTypeAC    ACType = "AC"
	ACTypeNonAC ACType = "Non-AC"
)

// PackageItinerary assigns a reusable day-itinerary to one day of a package.
// DayNumber values form a contiguous 1..N sequence matching slice order.
type PackageItinerary struct {
	ID             int64  `json:"id"`
	DayNumber      int    `json:"day_number"`
	DayItineraryID *int64 `json:"day_itinerary_id,omitempty"`
}

// PackageVehicle is one vehicle/price configuration line. Capacity is a
// denormalized copy taken from the vehicle-type record at selection time.
type PackageVehicle struct {
	ID          int64   `json:"id"`
	VehicleType string  `json:"vehicle_type"`
	Capacity    string  `json:"capacity,omitempty"`
	Price       float64 `json:"price"`
	ACType      ACType  `json:"ac_type,omitempty"`
}

// PackageDraft is the normalized in-progress package configuration. All
// selection-cascade and pricing logic operates on this shape; the legacy wire
// representation never leaves the store adapter.
//
// Generation increases every time an upstream selection changes. Catalog
// results computed for an older generation are stale and must be discarded.
type PackageDraft struct {
	ID     int64         `json:"id,omitempty"`
	Status PackageStatus `json:"status,omitempty"`
	Name   string        `json:"name"`

	State              string      `json:"state"`
	PrimaryDestination string      `json:"primary_destination"`
	OtherDestinations  FlexStrings `json:"other_destinations"`

	NumDays         int             `json:"num_days"`
	NumNights       int             `json:"num_nights"`
	PackageType     PackageType     `json:"package_type,omitempty"`
	PackageCategory PackageCategory `json:"package_category,omitempty"`
	PackageTheme    string          `json:"package_theme,omitempty"`

	PickupPoint string `json:"pickup_point,omitempty"`
	DropPoint   string `json:"drop_point,omitempty"`

	ShortDescription string      `json:"short_description,omitempty"`
	PackageIncludes  FlexStrings `json:"package_includes"`
	PackageExcludes  FlexStrings `json:"package_excludes"`

	// ItinerariesRaw and VehiclesRaw carry a stored list payload that failed
	// to parse as typed rows. Like FlexStrings.Raw the original string is
	// preserved verbatim so a save never erases it; when set, the matching
	// slice is empty and means "rows unknown".
	Itineraries    []PackageItinerary `json:"package_itineraries"`
	ItinerariesRaw string             `json:"package_itineraries_raw,omitempty"`
	Vehicles       []PackageVehicle   `json:"package_vehicles"`
	VehiclesRaw    string             `json:"package_vehicles_raw,omitempty"`

	Generation uint64 `json:"generation,omitempty"`
}

// SelectedDestinations returns the primary destination followed by every
// parsed other-destination entry. Degraded lists contribute nothing.
func (d PackageDraft) SelectedDestinations() []string {
	names := make([]string, 0, 1+len(d.OtherDestinations.Items))
	if d.PrimaryDestination != "" {
		names = append(names, d.PrimaryDestination)
	}
	names = append(names, d.OtherDestinations.Names()...)
	return names
}

// IsPersisted reports whether the draft has been saved at least once.
func (d PackageDraft) IsPersisted() bool {
	return d.ID != 0
}
