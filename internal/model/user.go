package model

// User represents a reviewer identity as stored in the `users` table. The
// json tags are omitted because these structs are used internally by the
// repository layer; handlers define separate response types with
// appropriate JSON tags.
//
// There is no registration flow: rows are created lazily the first time a
// display name (or an explicit user_id) shows up on a review submission.
// The ID is a slug derived from the display name, so repeated submissions
// by the same person collapse onto a single row.
//
// Fields:
//  ID       – slug-like identifier, primary key.
//  Username – display name as typed by the reviewer (first writer wins).
type User struct {
	ID       string // users.id
	Username string // users.username
}
