package model

import "time"

// Review is a single star review of a room. Rows are append-only: there is
// no update or delete path anywhere in the API.
//
// The reviews table stores the room's internal record number. RoomID here is
// the room's public token, resolved through a join at read time, so callers
// never see internal keys.
type Review struct {
	ID         string    // reviews.id (generated UUID)
	RoomID     string    // rooms.room_id (public token, joined)
	UserID     string    // reviews.user_id
	Username   string    // users.username (joined, empty if the user row is gone)
	Stars      int       // reviews.stars, always 1..5
	ReviewText string    // reviews.review_text
	CreatedAt  time.Time // reviews.created_at (UTC)
}
