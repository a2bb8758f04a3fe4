package rewrite

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/arcpath/arcpath/internal/fuzzy"
)

// Rewrite outcomes, as reported to metrics and the decision log.
const (
	OutcomeSkip     = "skip"     // passthrough, never an archive resource
	OutcomeInternal = "internal" // already served under the prefix
	OutcomeRewrite  = "rewrite"  // resolved, reduced and reassembled
	OutcomeError    = "error"
)

// References starting with any of these are never archive resources and are
// returned untouched.
var passthroughPrefixes = []string{
	"#",
	"about:",
	"data:",
	"blob:",
	"mailto:",
	"javascript:",
	"{",
	"*",
}

var schemePattern = regexp.MustCompile(`^\w+://`)

// Result carries the rewritten URL plus what happened to it. Rule is empty
// unless a fuzzy rule fired.
type Result struct {
	URL     string
	Outcome string
	Rule    string
}

// Rewrite maps one URL reference, as it appears in the replayed page, to the
// path the replay host serves it under. Empty references, references already
// on the original host and non-http sentinels come back unchanged. Malformed
// references fail the call: returning a half-rewritten URL would turn into a
// silent archive-lookup miss.
func (c *Context) Rewrite(ref string) (string, error) {
	res, err := c.RewriteDetail(ref)
	return res.URL, err
}

// RewriteDetail is Rewrite plus the outcome and the fuzzy rule that fired.
func (c *Context) RewriteDetail(ref string) (Result, error) {
	start := time.Now()
	out, outcome, rule, err := c.rewrite(ref)
	if c.metrics != nil {
		c.metrics.ObserveRewrite(outcome, rule, time.Since(start))
	}
	return Result{URL: out, Outcome: outcome, Rule: rule}, err
}

func (c *Context) rewrite(ref string) (out, outcome, rule string, err error) {
	if ref == "" {
		return ref, OutcomeSkip, "", nil
	}
	if strings.HasPrefix(ref, c.OriginalHost) {
		return ref, OutcomeSkip, "", nil
	}
	for _, prefix := range passthroughPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return ref, OutcomeSkip, "", nil
		}
	}

	outcome = OutcomeRewrite

	var abs string
	switch {
	case strings.HasPrefix(ref, "//"):
		abs = c.OriginalScheme + ref
	case strings.HasPrefix(ref, c.ServingPrefix):
		// Already rewritten once; it carries no scheme to re-parse.
		abs = ref
		outcome = OutcomeInternal
	case strings.HasPrefix(ref, "/"):
		abs, err = resolve(c.originalBase, ref)
	default:
		abs, err = resolve(c.currentBase, ref)
	}
	if err != nil {
		return "", OutcomeError, "", err
	}

	entry := strings.TrimPrefix(abs, c.ServingPrefix)
	if entry == abs {
		entry = schemePattern.ReplaceAllString(abs, "")
	}

	var matched *fuzzy.Rule
	entry, matched = fuzzy.Match(entry)
	if matched != nil {
		rule = matched.Name
	}

	out, err = c.assemble(entry)
	if err != nil {
		return "", OutcomeError, rule, err
	}
	return out, outcome, rule, nil
}

func resolve(base *url.URL, ref string) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", ref, err)
	}
	return base.ResolveReference(parsed).String(), nil
}

// assemble prepends the serving prefix and folds any query string into the
// path so the result stays a single opaque lookup key: stores cannot keep
// distinct query strings apart as path segments otherwise.
func (c *Context) assemble(entry string) (string, error) {
	final, err := url.Parse(c.ServingPrefix + entry)
	if err != nil {
		return "", fmt.Errorf("assemble %q: %w", entry, err)
	}
	if final.RawQuery != "" {
		query := "?" + final.RawQuery
		final.RawPath = final.EscapedPath() + encodeComponent(query)
		final.Path += query
		final.RawQuery = ""
	}
	return final.String(), nil
}

const upperhex = "0123456789ABCDEF"

// encodeComponent percent-encodes s the way JavaScript's encodeURIComponent
// does: everything except A-Za-z0-9 and -_.!~*'() is escaped, spaces as %20.
func encodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case 'A' <= ch && ch <= 'Z', 'a' <= ch && ch <= 'z', '0' <= ch && ch <= '9':
			b.WriteByte(ch)
		case strings.IndexByte("-_.!~*'()", ch) >= 0:
			b.WriteByte(ch)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[ch>>4])
			b.WriteByte(upperhex[ch&0xf])
		}
	}
	return b.String()
}
