// Package store is the repository adapter between the legacy package wire
// representation and the normalized draft shape. The legacy store mixes
// snake_case and camelCase field names and persists list fields as
// JSON-encoded strings; all of that tolerance lives here so the rest of the
// engine only ever sees domain.PackageDraft.
package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that tolerates the legacy wire sending numbers,
// numeric strings, or empty strings. Set reports whether any usable value
// arrived, so callers can apply defaults.
type FlexInt struct {
	N   int
	Set bool
}

// Int wraps a known integer value.
func Int(n int) FlexInt {
	return FlexInt{N: n, Set: true}
}

// OrDefault returns the parsed value, or fallback when nothing usable
// arrived.
func (f FlexInt) OrDefault(fallback int) int {
	if !f.Set {
		return fallback
	}
	return f.N
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte(`""`), nil
	}
	return json.Marshal(f.N)
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" || trimmed == `""` {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.N = int(n)
		f.Set = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		f.N = v
		f.Set = true
	}
	return nil
}

func (f FlexInt) Value() (driver.Value, error) {
	return int64(f.N), nil
}

func (f *FlexInt) Scan(value any) error {
	*f = FlexInt{}
	switch v := value.(type) {
	case nil:
		return nil
	case int64:
		f.N = int(v)
		f.Set = true
	case float64:
		f.N = int(v)
		f.Set = true
	case []byte:
		f.scanString(string(v))
	case string:
		f.scanString(v)
	default:
		return fmt.Errorf("flex int: cannot scan %T", value)
	}
	return nil
}

func (f *FlexInt) scanString(s string) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return
	}
	if v, err := strconv.Atoi(trimmed); err == nil {
		f.N = v
		f.Set = true
	}
}

// PackageRecord is the raw legacy representation of a package. Dual-cased
// fields appear twice: the snake_case spelling is the storage contract, the
// camelCase spelling survives from older clients and is accepted on input.
// List-like fields are json.RawMessage because the store may hand them back
// either as real JSON arrays or as strings containing JSON.
type PackageRecord struct {
	ID     int64  `db:"id" json:"id,omitempty"`
	Name   string `db:"name" json:"name"`
	Status string `db:"status" json:"status,omitempty"`
	State  string `db:"state" json:"state,omitempty"`

	PrimaryDestination   string `db:"primary_destination" json:"primary_destination,omitempty"`
	PrimaryDestinationCC string `db:"-" json:"primaryDestination,omitempty"`

	// Destinations is the legacy comma-joined display string kept for
	// compatibility with readers that never learned the structured fields.
	Destinations string `db:"destinations" json:"destinations,omitempty"`

	OtherDestinations   json.RawMessage `db:"other_destinations" json:"other_destinations,omitempty"`
	OtherDestinationsCC json.RawMessage `db:"-" json:"otherDestinations,omitempty"`

	NumDays     FlexInt  `db:"num_days" json:"num_days"`
	NumDaysCC   *FlexInt `db:"-" json:"numDays,omitempty"`
	NumNights   FlexInt  `db:"num_nights" json:"num_nights"`
	NumNightsCC *FlexInt `db:"-" json:"numNights,omitempty"`

	PackageType       string `db:"package_type" json:"package_type,omitempty"`
	PackageTypeCC     string `db:"-" json:"packageType,omitempty"`
	PackageCategory   string `db:"package_category" json:"package_category,omitempty"`
	PackageCategoryCC string `db:"-" json:"packageCategory,omitempty"`
	PackageTheme      string `db:"package_theme" json:"package_theme,omitempty"`
	PackageThemeCC    string `db:"-" json:"packageTheme,omitempty"`

	PickupPoint   string `db:"pickup_point" json:"pickup_point,omitempty"`
	PickupPointCC string `db:"-" json:"pickupPoint,omitempty"`
	DropPoint     string `db:"drop_point" json:"drop_point,omitempty"`
	DropPointCC   string `db:"-" json:"dropPoint,omitempty"`

	ShortDescription   string `db:"short_description" json:"short_description,omitempty"`
	ShortDescriptionCC string `db:"-" json:"shortDescription,omitempty"`

	PackageIncludes   json.RawMessage `db:"package_includes" json:"package_includes,omitempty"`
	PackageIncludesCC json.RawMessage `db:"-" json:"packageIncludes,omitempty"`
	PackageExcludes   json.RawMessage `db:"package_excludes" json:"package_excludes,omitempty"`
	PackageExcludesCC json.RawMessage `db:"-" json:"packageExcludes,omitempty"`

	PackageItineraries   json.RawMessage `db:"package_itineraries" json:"package_itineraries,omitempty"`
	PackageItinerariesCC json.RawMessage `db:"-" json:"packageItineraries,omitempty"`
	PackageVehicles      json.RawMessage `db:"package_vehicles" json:"package_vehicles,omitempty"`
	PackageVehiclesCC    json.RawMessage `db:"-" json:"packageVehicles,omitempty"`
}

// PackageStore is the opaque external store: create/read/update/delete on
// raw records keyed by numeric id. The Postgres implementation ships in
// internal/repository/postgres; tests substitute in-memory ones.
type PackageStore interface {
	Create(ctx context.Context, rec PackageRecord) (PackageRecord, error)
	Update(ctx context.Context, id int64, rec PackageRecord) (PackageRecord, error)
	FindByID(ctx context.Context, id int64) (PackageRecord, error)
	List(ctx context.Context, statuses []string) ([]PackageRecord, error)
	Delete(ctx context.Context, id int64) error
}
