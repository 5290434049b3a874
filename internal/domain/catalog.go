package domain

// CatalogStatus is the activation flag shared by all master-data records.
type CatalogStatus string

const (
	CatalogStatusActive   CatalogStatus = "Active"
	CatalogStatusInactive CatalogStatus = "Inactive"
)

// State is an immutable reference record. Dependent entities reference a
// state by name, not by id, so renaming a state orphans those references.
type State struct {
	ID     int64         `db:"id" json:"id"`
	Name   string        `db:"name" json:"name"`
	Code   *string       `db:"code" json:"code,omitempty"`
	Status CatalogStatus `db:"status" json:"status"`
}

// Destination is scoped to exactly one state by name.
type Destination struct {
	ID     int64         `db:"id" json:"id"`
	Name   string        `db:"name" json:"name"`
	State  string        `db:"state" json:"state"`
	Status CatalogStatus `db:"status" json:"status"`
}

// DayItinerary is a reusable single or multi-day plan tagged with the
// destination names it covers. The tags are used for relevance filtering,
// not hard foreign keys.
type DayItinerary struct {
	ID           int64       `db:"id" json:"id"`
	Name         string      `db:"name" json:"name"`
	NumDays      int         `db:"num_days" json:"num_days"`
	Destinations FlexStrings `db:"destinations" json:"destinations"`
}

// VehicleType is authoritative per state: only types whose state equals the
// package's selected state are ever offered.
type VehicleType struct {
	ID          int64         `db:"id" json:"id"`
	VehicleType string        `db:"vehicle_type" json:"vehicle_type"`
	Capacity    *string       `db:"capacity" json:"capacity,omitempty"`
	State       string        `db:"state" json:"state"`
	Status      CatalogStatus `db:"status" json:"status"`
}

// TransferRate is one row of the flat vehicle-type x destination rate table.
type TransferRate struct {
	ID          int64   `db:"id" json:"id"`
	VehicleType string  `db:"vehicle_type" json:"vehicle_type"`
	Destination string  `db:"destination" json:"destination"`
	Price       float64 `db:"price" json:"price"`
}

// NoteKind distinguishes entries in the shared inclusions/exclusions library.
type NoteKind string

const (
	NoteKindInclusion NoteKind = "inclusion"
	NoteKindExclusion NoteKind = "exclusion"
)

// Note is a reusable free-form line used to seed package includes/excludes.
type Note struct {
	ID   int64    `db:"id" json:"id"`
	Kind NoteKind `db:"kind" json:"kind"`
	Text string   `db:"text" json:"text"`
}
