package database

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates all tables the API needs. Safe to call on every
// startup: everything is IF NOT EXISTS. Statements run one at a time
// because the MySQL driver rejects multi-statement Exec by default.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	// Buildings. Coordinates are raw text on purpose: some imported rows
	// carry values that don't parse, and the API serves them as stored.
	`CREATE TABLE IF NOT EXISTS building (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		building_record_number VARCHAR(32) NOT NULL,
		building_name VARCHAR(255) NOT NULL,
		building_address_number VARCHAR(32) NULL,
		building_street VARCHAR(255) NULL,
		building_lat VARCHAR(32) NULL,
		building_long VARCHAR(32) NULL,
		num_bathrooms INT UNSIGNED NOT NULL DEFAULT 0,
		PRIMARY KEY (id),
		UNIQUE KEY uq_building_brn (building_record_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	// Rooms join buildings by public BRN; reviews attach to the internal
	// room_record_number.
	`CREATE TABLE IF NOT EXISTS rooms (
		room_record_number BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		room_id VARCHAR(64) NOT NULL,
		room_number VARCHAR(32) NOT NULL,
		floor VARCHAR(16) NULL,
		building_record_number VARCHAR(32) NOT NULL,
		PRIMARY KEY (room_record_number),
		UNIQUE KEY uq_rooms_room_id (room_id),
		KEY idx_rooms_brn (building_record_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(64) NOT NULL,
		username VARCHAR(255) NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id CHAR(36) NOT NULL,
		room_id BIGINT UNSIGNED NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		stars TINYINT UNSIGNED NOT NULL,
		review_text TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY idx_reviews_room (room_id),
		KEY idx_reviews_created (created_at),
		CONSTRAINT fk_reviews_room FOREIGN KEY (room_id)
			REFERENCES rooms (room_record_number),
		CONSTRAINT chk_reviews_stars CHECK (stars BETWEEN 1 AND 5)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}
