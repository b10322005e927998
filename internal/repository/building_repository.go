// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for the `building` table. Buildings
// are provisioned by the import tool or out-of-band; the API only reads them.
package repository

import (
	"context"
	"database/sql"

	"github.com/flushfinder/flushfinder/internal/model"
)

// BuildingRepo encapsulates all database queries related to buildings. It
// depends on a sql.DB connection which is configured at startup and injected
// here, which also allows substituting a mock in tests.
type BuildingRepo struct {
	db *sql.DB
}

// NewBuildingRepo constructs a BuildingRepo with the provided DB handle.
func NewBuildingRepo(db *sql.DB) *BuildingRepo {
	return &BuildingRepo{db: db}
}

// ListAll returns every building, newest row first. Coordinates come back
// exactly as stored: rows with unparsable lat/long are still listed, and
// deciding whether a building can be placed on the map is the client's job.
func (r *BuildingRepo) ListAll(ctx context.Context) ([]*model.Building, error) {
	const q = `SELECT id, building_record_number, building_name,
	                  building_address_number, building_street,
	                  building_lat, building_long, num_bathrooms
	           FROM building ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Building
	for rows.Next() {
		b := new(model.Building)
		if err := rows.Scan(&b.ID, &b.RecordNumber, &b.Name,
			&b.AddressNumber, &b.Street, &b.Lat, &b.Long, &b.NumBathrooms); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
