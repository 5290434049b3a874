package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/holidaydesk/backoffice/internal/store"
)

// PackageRepository persists raw package records in the legacy schema: the
// list-like columns are text holding JSON-encoded arrays, exactly as the old
// store wrote them. No normalization happens here; that is the adapter's
// job.
type PackageRepository struct {
	db *sqlx.DB
}

func NewPackageRepo(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

const packageColumns = `
	id, name, status, state, primary_destination, destinations,
	other_destinations, num_days, num_nights, package_type, package_category,
	package_theme, pickup_point, drop_point, short_description,
	package_includes, package_excludes, package_itineraries, package_vehicles
`

func (r *PackageRepository) Create(ctx context.Context, rec store.PackageRecord) (store.PackageRecord, error) {
	const query = `
		INSERT INTO tour_package (
			name, status, state, primary_destination, destinations,
			other_destinations, num_days, num_nights, package_type,
			package_category, package_theme, pickup_point, drop_point,
			short_description, package_includes, package_excludes,
			package_itineraries, package_vehicles
		) VALUES (
			:name, :status, :state, :primary_destination, :destinations,
			:other_destinations, :num_days, :num_nights, :package_type,
			:package_category, :package_theme, :pickup_point, :drop_point,
			:short_description, :package_includes, :package_excludes,
			:package_itineraries, :package_vehicles
		)
		RETURNING ` + packageColumns

	rows, err := r.db.NamedQueryContext(ctx, query, rec)
	if err != nil {
		return store.PackageRecord{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var created store.PackageRecord
		if err = rows.StructScan(&created); err != nil {
			return store.PackageRecord{}, err
		}
		return created, nil
	}
	return store.PackageRecord{}, sql.ErrNoRows
}

func (r *PackageRepository) Update(ctx context.Context, id int64, rec store.PackageRecord) (store.PackageRecord, error) {
	rec.ID = id
	const query = `
		UPDATE tour_package SET
			name = :name,
			status = :status,
			state = :state,
			primary_destination = :primary_destination,
			destinations = :destinations,
			other_destinations = :other_destinations,
			num_days = :num_days,
			num_nights = :num_nights,
			package_type = :package_type,
			package_category = :package_category,
			package_theme = :package_theme,
			pickup_point = :pickup_point,
			drop_point = :drop_point,
			short_description = :short_description,
			package_includes = :package_includes,
			package_excludes = :package_excludes,
			package_itineraries = :package_itineraries,
			package_vehicles = :package_vehicles
		WHERE id = :id
		RETURNING ` + packageColumns

	rows, err := r.db.NamedQueryContext(ctx, query, rec)
	if err != nil {
		return store.PackageRecord{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var updated store.PackageRecord
		if err = rows.StructScan(&updated); err != nil {
			return store.PackageRecord{}, err
		}
		return updated, nil
	}
	return store.PackageRecord{}, sql.ErrNoRows
}

func (r *PackageRepository) FindByID(ctx context.Context, id int64) (store.PackageRecord, error) {
	const query = `
		SELECT ` + packageColumns + `
		FROM tour_package
		WHERE id = $1
	`
	var rec store.PackageRecord
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		return store.PackageRecord{}, err
	}
	return rec, nil
}

func (r *PackageRepository) List(ctx context.Context, statuses []string) ([]store.PackageRecord, error) {
	records := make([]store.PackageRecord, 0)

	if len(statuses) == 0 {
		const query = `
			SELECT ` + packageColumns + `
			FROM tour_package
			ORDER BY id DESC
		`
		if err := r.db.SelectContext(ctx, &records, query); err != nil {
			return nil, err
		}
		return records, nil
	}

	const query = `
		SELECT ` + packageColumns + `
		FROM tour_package
		WHERE status = ANY($1)
		ORDER BY id DESC
	`
	if err := r.db.SelectContext(ctx, &records, query, pq.StringArray(statuses)); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tour_package WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var _ store.PackageStore = (*PackageRepository)(nil)
