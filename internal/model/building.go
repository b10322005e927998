package model

// Building represents a campus building that can contain one or more
// bathrooms. Buildings are looked up by the public Building Record Number
// (BRN) rather than the internal primary key, which never leaves the server.
//
// Latitude and longitude are stored and served as raw strings. Some imported
// rows carry unparsable coordinates; the API passes them through untouched
// and leaves parsing to map clients.
type Building struct {
	ID            uint64  // building.id (internal key)
	RecordNumber  string  // building.building_record_number (public BRN)
	Name          string  // building.building_name
	AddressNumber *string // building.building_address_number (nullable)
	Street        *string // building.building_street (nullable)
	Lat           *string // building.building_lat (nullable, raw text)
	Long          *string // building.building_long (nullable, raw text)
	NumBathrooms  uint32  // building.num_bathrooms
}
