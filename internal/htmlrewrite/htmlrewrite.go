// Package htmlrewrite rewrites the URL references inside captured HTML and
// CSS documents through an archival context, so that stored pages point at
// archive-served paths instead of the live web.
package htmlrewrite

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// RewriteFunc maps one URL reference to its archive-served form.
type RewriteFunc func(string) (string, error)

// urlAttrs are the element attributes that carry a single URL reference.
var urlAttrs = map[string]bool{
	"href":     true,
	"src":      true,
	"data-src": true,
	"poster":   true,
}

// Document parses HTML from r, rewrites every URL-carrying attribute and
// every inline CSS reference through rewrite, and renders the result to w.
// A reference the rewriter rejects fails the whole document: a partially
// rewritten page would mix live and archived URLs.
func Document(r io.Reader, w io.Writer, rewrite RewriteFunc) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	var visit func(*html.Node) error
	visit = func(n *html.Node) error {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := visit(c); err != nil {
				return err
			}
		}

		if n.Type != html.ElementNode {
			return nil
		}

		if n.Data == "style" {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.TextNode {
					continue
				}
				out, err := rewriteCSS(c.Data, rewrite)
				if err != nil {
					return fmt.Errorf("rewrite style element: %w", err)
				}
				c.Data = out
			}
		}

		for i, attr := range n.Attr {
			switch {
			case urlAttrs[attr.Key]:
				out, err := rewrite(attr.Val)
				if err != nil {
					return fmt.Errorf("rewrite %s=%q: %w", attr.Key, attr.Val, err)
				}
				n.Attr[i].Val = out

			case attr.Key == "srcset":
				out, err := rewriteSrcSet(attr.Val, rewrite)
				if err != nil {
					return fmt.Errorf("rewrite srcset=%q: %w", attr.Val, err)
				}
				n.Attr[i].Val = out

			case attr.Key == "style":
				out, err := rewriteCSS(attr.Val, rewrite)
				if err != nil {
					return fmt.Errorf("rewrite style=%q: %w", attr.Val, err)
				}
				n.Attr[i].Val = out
			}
		}
		return nil
	}
	if err := visit(doc); err != nil {
		return err
	}

	return html.Render(w, doc)
}

// rewriteSrcSet handles the comma-separated "url descriptor, url descriptor"
// shape. Entries split on the comma; whitespace around it is optional, so
// fields cannot be scanned before splitting.
func rewriteSrcSet(val string, rewrite RewriteFunc) (string, error) {
	entries := strings.Split(val, ",")

	for i, entry := range entries {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}
		out, err := rewrite(fields[0])
		if err != nil {
			return "", err
		}
		fields[0] = out
		entries[i] = strings.Join(fields, " ")
	}

	return strings.Join(entries, ", "), nil
}

var cssURL = regexp.MustCompile(`url\(['"]?(.*?)['"]?\)`)

// Stylesheet rewrites url(...) references in CSS text.
func Stylesheet(r io.Reader, w io.Writer, rewrite RewriteFunc) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	out, err := rewriteCSS(string(b), rewrite)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

func rewriteCSS(css string, rewrite RewriteFunc) (string, error) {
	matches := cssURL.FindAllStringSubmatch(css, -1)
	replaces := make([]string, 0, len(matches)*2)

	for _, match := range matches {
		ref := match[1]
		out, err := rewrite(ref)
		if err != nil {
			return "", fmt.Errorf("rewrite url(%q): %w", ref, err)
		}
		if out != ref {
			replaces = append(replaces, match[0], fmt.Sprintf("url(%q)", out))
		}
	}

	if len(replaces) == 0 {
		return css, nil
	}
	return strings.NewReplacer(replaces...).Replace(css), nil
}
