// Package identity derives stable user identifiers for anonymous reviewers.
// There is no account system; the identifier is either supplied by the
// client or computed from the free-text display name, so the same person
// submitting twice lands on the same users row.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// maxSlugLen bounds derived identifiers so they fit the users.id column.
const maxSlugLen = 48

// Resolve returns the identifier to attribute a review to. A non-empty
// userID (after trimming) is used verbatim. Otherwise the display name is
// slugged; if the name contains no usable characters at all (symbols,
// emoji), a fresh random token is generated so resolution never fails.
// Resolve is pure apart from that random fallback and never touches storage.
func Resolve(displayName, userID string) string {
	if id := strings.TrimSpace(userID); id != "" {
		return id
	}
	if slug := Slugify(displayName); slug != "" {
		return slug
	}
	return uuid.NewString()
}

// Slugify lower-cases the input, collapses every run of characters outside
// [a-z0-9] into a single '-', strips leading/trailing separators and
// truncates to maxSlugLen. It returns "" when nothing usable remains.
func Slugify(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	return slug
}
