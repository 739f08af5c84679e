package utils

import (
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// GenerateSlug normalizes a string into a slug: lower-case, runs of
// non-alphanumerics collapsed into single dashes, dashes trimmed.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// EnsureUniqueSlug derives a slug from base and uniquifies it against the
// given table/column with numeric suffixes (base, base-2, base-3, ...).
func EnsureUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	slug := GenerateSlug(base)
	if slug == "" {
		slug = "untitled"
	}

	candidate := slug
	for i := 2; i < 1000; i++ {
		var count int64
		if err := db.Table(table).
			Where(fmt.Sprintf("%s = ?", column), candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
	return "", fmt.Errorf("could not find a unique slug for %q", base)
}
