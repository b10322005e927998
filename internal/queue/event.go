// Package queue defines message payloads exchanged over the message broker.
package queue

// ReviewSubmittedEvent is published after a review is successfully stored.
// It carries enough context for downstream consumers to log or run
// analytics without querying the primary database. Publishing is
// best-effort and never affects the HTTP response.
type ReviewSubmittedEvent struct {
	ReviewID    string `json:"review_id"`
	RoomID      string `json:"room_id"`
	BuildingBRN string `json:"building_record_number"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Stars       int    `json:"stars"`
	SubmittedAt string `json:"submitted_at"`
}
