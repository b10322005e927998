package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flushfinder/flushfinder/internal/model"
)

// RoomRepo encapsulates all database queries related to rooms. Rooms join
// to their building by the public BRN (building_record_number), while the
// reviews table references rooms by the internal room_record_number. Both
// lookups live here so the two identifier namespaces never leak upward.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// ListByBuilding returns all rooms for the building identified by brn,
// ordered by floor then room number. MySQL sorts NULL floors before any
// defined floor in ascending order, which is the contract: unknown-floor
// rooms come first.
func (r *RoomRepo) ListByBuilding(ctx context.Context, brn string) ([]*model.Room, error) {
	const q = `SELECT room_record_number, room_id, room_number, floor, building_record_number
	           FROM rooms
	           WHERE building_record_number = ?
	           ORDER BY floor, room_number`
	rows, err := r.db.QueryContext(ctx, q, brn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Room
	for rows.Next() {
		rm := new(model.Room)
		if err := rows.Scan(&rm.RecordNumber, &rm.PublicID, &rm.RoomNumber, &rm.Floor, &rm.BuildingBRN); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByPublicID resolves a room's public token to its full row, including
// the internal record number that reviews attach to. Returns
// ErrRoomNotFound when no row matches.
func (r *RoomRepo) GetByPublicID(ctx context.Context, roomID string) (*model.Room, error) {
	const q = `SELECT room_record_number, room_id, room_number, floor, building_record_number
	           FROM rooms WHERE room_id = ?`
	rm := new(model.Room)
	err := r.db.QueryRowContext(ctx, q, roomID).
		Scan(&rm.RecordNumber, &rm.PublicID, &rm.RoomNumber, &rm.Floor, &rm.BuildingBRN)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}
