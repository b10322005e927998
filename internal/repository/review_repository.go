package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flushfinder/flushfinder/internal/identity"
	"github.com/flushfinder/flushfinder/internal/model"
)

// ReviewRepo encapsulates all database queries related to reviews, plus the
// submission flow that ties rooms, users and reviews together.
type ReviewRepo struct {
	db    *sql.DB
	users *UserRepo
}

// NewReviewRepo constructs a ReviewRepo. The UserRepo handles the lazy
// reviewer registration that accompanies each submission.
func NewReviewRepo(db *sql.DB, users *UserRepo) *ReviewRepo {
	return &ReviewRepo{db: db, users: users}
}

// SubmitInput carries the fields of a review submission. RoomID is the
// room's public token; UserID is optional and, when empty, an identifier is
// derived from Username.
type SubmitInput struct {
	RoomID     string
	ReviewText string
	Username   string
	Stars      int
	UserID     string
}

// RoomSummary aggregates the review set of a single room. AvgStars and
// LastReviewAt are nil when the room has no reviews; a zero-review room is
// a valid state, not an error.
type RoomSummary struct {
	ReviewCount  int64
	AvgStars     *float64
	LastReviewAt *time.Time
}

// reviewSelect is the one canonical review row shape. Earlier API versions
// drifted between queries that did and did not include the review text; the
// superset is served everywhere now. The join maps the internal room key
// back to the public room_id, and the user's display name rides along.
const reviewSelect = `SELECT rv.id, rm.room_id, rv.user_id, COALESCE(u.username, ''),
       rv.stars, rv.review_text, rv.created_at
FROM reviews rv
JOIN rooms rm ON rm.room_record_number = rv.room_id
LEFT JOIN users u ON u.id = rv.user_id`

// Submit validates and persists one review. Validation runs before any
// storage access, so a *ValidationError guarantees nothing was written.
// The flow after validation is: resolve the room's internal key from its
// public id (ErrRoomNotFound when absent), resolve the reviewer identity,
// upsert the user row, insert the review. The upsert is a no-op on
// conflict, so a user row left behind by a failed review insert is harmless
// and the two writes need no shared transaction.
func (r *ReviewRepo) Submit(ctx context.Context, in SubmitInput) (string, error) {
	roomID := strings.TrimSpace(in.RoomID)
	text := strings.TrimSpace(in.ReviewText)
	username := strings.TrimSpace(in.Username)

	if roomID == "" {
		return "", &ValidationError{Field: "room_id", Reason: "must not be empty"}
	}
	if text == "" {
		return "", &ValidationError{Field: "review_text", Reason: "must not be empty"}
	}
	if username == "" {
		return "", &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if in.Stars < 1 || in.Stars > 5 {
		return "", &ValidationError{Field: "stars", Reason: "must be between 1 and 5"}
	}

	var roomKey uint64
	err := r.db.QueryRowContext(ctx,
		`SELECT room_record_number FROM rooms WHERE room_id = ?`, roomID).Scan(&roomKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrRoomNotFound
		}
		return "", err
	}

	userID := identity.Resolve(username, in.UserID)

	if err := r.users.Upsert(ctx, userID, username); err != nil {
		return "", err
	}

	reviewID := uuid.NewString()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (id, room_id, user_id, stars, review_text, created_at)
		 VALUES (?, ?, ?, ?, ?, UTC_TIMESTAMP())`,
		reviewID, roomKey, userID, in.Stars, text); err != nil {
		return "", err
	}
	return reviewID, nil
}

// ListByRoom returns all reviews for the room with the given public id,
// most recent first. An unknown room or a room without reviews yields an
// empty slice, not an error.
func (r *ReviewRepo) ListByRoom(ctx context.Context, roomID string) ([]*model.Review, error) {
	q := reviewSelect + `
WHERE rm.room_id = ?
ORDER BY rv.created_at DESC`
	return r.list(ctx, q, roomID)
}

// ListByBuilding returns the reviews of every room belonging to the
// building identified by brn, most recent first. The relation goes through
// the rooms table: BRN -> room internal keys -> reviews.
func (r *ReviewRepo) ListByBuilding(ctx context.Context, brn string) ([]*model.Review, error) {
	q := reviewSelect + `
WHERE rm.building_record_number = ?
ORDER BY rv.created_at DESC`
	return r.list(ctx, q, brn)
}

func (r *ReviewRepo) list(ctx context.Context, q string, arg any) ([]*model.Review, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Review
	for rows.Next() {
		rv := new(model.Review)
		if err := rows.Scan(&rv.ID, &rv.RoomID, &rv.UserID, &rv.Username,
			&rv.Stars, &rv.ReviewText, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SummarizeRoom computes count, mean stars and last review time for the
// room with the given public id. COUNT is always defined; AVG and MAX come
// back NULL at zero reviews and are scanned through nullable types so the
// zero case never divides or produces NaN.
func (r *ReviewRepo) SummarizeRoom(ctx context.Context, roomID string) (*RoomSummary, error) {
	const q = `SELECT COUNT(*), AVG(rv.stars), MAX(rv.created_at)
	           FROM reviews rv
	           JOIN rooms rm ON rm.room_record_number = rv.room_id
	           WHERE rm.room_id = ?`
	var (
		s    RoomSummary
		avg  sql.NullFloat64
		last sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, q, roomID).Scan(&s.ReviewCount, &avg, &last); err != nil {
		return nil, err
	}
	if avg.Valid {
		s.AvgStars = &avg.Float64
	}
	if last.Valid {
		s.LastReviewAt = &last.Time
	}
	return &s, nil
}
