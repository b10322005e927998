package model

// Room represents a single bathroom inside a building. Rooms carry two
// identifiers: RecordNumber is the internal storage key that reviews attach
// to, and PublicID is the opaque token clients use in URLs. The owning
// building is referenced by its public BRN, not by the building's internal
// key, so the room listing query joins on building_record_number.
type Room struct {
	RecordNumber uint64  // rooms.room_record_number (internal key)
	PublicID     string  // rooms.room_id (public token)
	RoomNumber   string  // rooms.room_number
	Floor        *string // rooms.floor (nullable)
	BuildingBRN  string  // rooms.building_record_number
}
