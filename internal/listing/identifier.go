// Package listing holds pure helpers for car listings.
package listing

import (
	"regexp"
	"strconv"
	"strings"

	"bananadb/internal/domain"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// Identifier derives the deduplication key for a parsed listing and its
// source tag. Identical (listing core fields, source) pairs always yield
// the identical string; this is the sole collision-avoidance and
// idempotent-resubmission mechanism. The digest is a 32-bit
// non-cryptographic hash, so distinct inputs can collide; that is an
// accepted limitation, and changing the algorithm would orphan every
// identifier already stored.
func Identifier(l domain.ParsedCarListing, source string) string {
	parts := []string{
		l.Make,
		l.Model,
		numberPart(float64(l.Mileage)),
		numberPart(float64(l.Year)),
		numberPart(l.Price),
	}
	if l.PowerHP != nil {
		parts = append(parts, numberPart(*l.PowerHP))
	}
	if l.Location != nil {
		parts = append(parts, *l.Location)
	}

	joined := strings.ToLower(strings.Join(parts, ""))
	joined = nonAlphanumeric.ReplaceAllString(joined, "")

	return source + "-" + digest(joined)
}

// digest is hash = hash*31 + byte wrapped to 32 bits, rendered as the
// absolute value in lowercase hex, zero-padded to 8 characters, trailing
// 12 characters kept.
func digest(s string) string {
	var hash int32
	for i := 0; i < len(s); i++ {
		hash = hash*31 + int32(s[i])
	}

	v := int64(hash)
	if v < 0 {
		v = -v
	}

	hex := strconv.FormatInt(v, 16)
	for len(hex) < 8 {
		hex = "0" + hex
	}
	if len(hex) > 12 {
		hex = hex[len(hex)-12:]
	}
	return hex
}

// numberPart renders a numeric field the way the identifier has always
// encoded it: zero values are skipped entirely, integral values carry no
// decimal point.
func numberPart(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
