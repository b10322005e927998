package importer

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// bathroomKeywords selects rooms whose type description indicates a
// bathroom; excludeKeywords weeds out service rooms that mention them in
// passing (e.g. "custodial closet w/ toilet drain").
var (
	bathroomKeywords = []string{
		"restroom", "toilet", "lavatory", "men", "women",
		"all gender", "gender neutral",
	}
	excludeKeywords = []string{
		"mechanical", "electrical", "janitor", "custodial",
	}
)

// IsBathroom reports whether a campus room's type description looks like a
// bathroom.
func IsBathroom(r CampusRoom) bool {
	desc := strings.ToLower(r.RoomTypeDescription)
	for _, kw := range excludeKeywords {
		if strings.Contains(desc, kw) {
			return false
		}
	}
	for _, kw := range bathroomKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// FilterBathrooms keeps only the bathroom-like rooms of an inventory.
func FilterBathrooms(rooms []CampusRoom) []CampusRoom {
	out := make([]CampusRoom, 0, len(rooms))
	for _, r := range rooms {
		if IsBathroom(r) {
			out = append(out, r)
		}
	}
	return out
}

// Importer writes filtered room inventories into the rooms table and keeps
// each building's bathroom count in step.
type Importer struct {
	db     *sql.DB
	client *Client
}

// NewImporter wires the importer to the database and the Buildings API
// client.
func NewImporter(db *sql.DB, client *Client) *Importer {
	return &Importer{db: db, client: client}
}

// ImportBuilding fetches the building's room inventory, filters it down to
// bathrooms and upserts them. Re-running is safe: a room already imported
// under the same source record number keeps its public room_id, so review
// attribution survives re-imports. Returns the number of bathrooms stored.
func (imp *Importer) ImportBuilding(ctx context.Context, token, brn string) (int, error) {
	rooms, err := imp.client.RoomInfo(ctx, token, brn)
	if err != nil {
		return 0, err
	}
	bathrooms := FilterBathrooms(rooms)
	log.Printf("import: building %s: %d rooms, %d bathrooms", brn, len(rooms), len(bathrooms))

	for _, r := range bathrooms {
		publicID := roomPublicID(brn, r)
		if _, err := imp.db.ExecContext(ctx,
			`INSERT INTO rooms (room_id, room_number, floor, building_record_number)
			 VALUES (?, ?, NULLIF(?, ''), ?)
			 ON DUPLICATE KEY UPDATE room_number = VALUES(room_number), floor = VALUES(floor)`,
			publicID, r.RoomNumber, r.FloorNumber, brn); err != nil {
			return 0, fmt.Errorf("upsert room %s: %w", publicID, err)
		}
	}

	if _, err := imp.db.ExecContext(ctx,
		`UPDATE building SET num_bathrooms = ? WHERE building_record_number = ?`,
		len(bathrooms), brn); err != nil {
		return 0, fmt.Errorf("update bathroom count for %s: %w", brn, err)
	}
	return len(bathrooms), nil
}

// roomPublicID derives the stable public token for an imported room. The
// source record number keys it when present; rooms without one get a
// random token on first import.
func roomPublicID(brn string, r CampusRoom) string {
	if r.RoomRecordNumber != "" {
		return brn + "-" + r.RoomRecordNumber
	}
	return uuid.NewString()
}
