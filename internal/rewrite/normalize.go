package rewrite

import (
	"strings"

	"github.com/arcpath/arcpath/internal/fuzzy"
)

// Normalize converts a fully qualified URL into the entry key the archive
// stores it under: the scheme is dropped, the host folds into the path, and
// the result is fuzzy-reduced. Content captured from http and https variants
// of the same host/path collapses onto one key on purpose.
//
// This is the build-time counterpart of Context.Rewrite: both sides must
// project onto the same key space or replay lookups miss.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	path := schemePattern.ReplaceAllString(raw, "")
	path = strings.TrimPrefix(path, "/")
	return fuzzy.Reduce(path)
}
