// Package fuzzy collapses the many surface URLs that third-party services
// generate for one logical resource down to the single canonical entry path
// the archive stored. The rule list is shared, byte for byte, with the tool
// that built the archive: changing a pattern or reordering the list makes
// lookups silently miss.
package fuzzy

import "regexp"

// Rule rewrites an entry path matching its pattern into the canonical form
// described by its template. Templates reference capture groups positionally
// (${1}, ${2}, ...).
type Rule struct {
	Name     string
	Pattern  string
	Template string

	re *regexp.Regexp
}

// Apply runs the rule against path. The second return value reports whether
// the replacement actually changed the string; a match whose expansion is
// textually identical to the input counts as untouched.
func (r *Rule) Apply(path string) (string, bool) {
	out := r.re.ReplaceAllString(path, r.Template)
	return out, out != path
}

// Reduce applies the first rule that changes path and returns the result.
// When no rule changes it, the path is already canonical and is returned
// as-is.
func Reduce(path string) string {
	out, _ := Match(path)
	return out
}

// Match is Reduce plus the winning rule, nil when the path was untouched.
func Match(path string) (string, *Rule) {
	for i := range Rules {
		if out, changed := Rules[i].Apply(path); changed {
			return out, &Rules[i]
		}
	}
	return path, nil
}

func compile(rules []Rule) []Rule {
	for i := range rules {
		rules[i].re = regexp.MustCompile(rules[i].Pattern)
	}
	return rules
}
