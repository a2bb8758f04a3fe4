package htmlrewrite

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arcpath/arcpath/internal/rewrite"
)

func testRewriter(t *testing.T) RewriteFunc {
	t.Helper()
	ctx, err := rewrite.NewContext(
		"https://example.com/v",
		"https://example.com",
		"https:",
		"https://example.com/v",
		"/archive/20230101/",
	)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx.Rewrite
}

func TestDocumentRewritesAttributes(t *testing.T) {
	input := `<html><head>
<link rel="stylesheet" href="//cdn.example.org/style.css">
</head><body>
<a href="#top">top</a>
<img src="/img/a.png" srcset="/img/a.png 1x, /img/b.png 2x">
<img src="/img/tiny.gif" data-src="/img/lazy.png">
<video poster="/img/poster.jpg"></video>
</body></html>`

	var out bytes.Buffer
	if err := Document(strings.NewReader(input), &out, testRewriter(t)); err != nil {
		t.Fatalf("Document error: %v", err)
	}

	rendered := out.String()
	for _, expected := range []string{
		`href="/archive/20230101/cdn.example.org/style.css"`,
		`href="#top"`,
		`src="/archive/20230101/example.com/img/a.png"`,
		`srcset="/archive/20230101/example.com/img/a.png 1x, /archive/20230101/example.com/img/b.png 2x"`,
		`data-src="/archive/20230101/example.com/img/lazy.png"`,
		`poster="/archive/20230101/example.com/img/poster.jpg"`,
	} {
		if !strings.Contains(rendered, expected) {
			t.Fatalf("expected %q in rendered document:\n%s", expected, rendered)
		}
	}
}

func TestDocumentRewritesSrcSetWithoutSpaces(t *testing.T) {
	input := `<img srcset="/img/a.png 1x,/img/b.png 2x">`

	var out bytes.Buffer
	if err := Document(strings.NewReader(input), &out, testRewriter(t)); err != nil {
		t.Fatalf("Document error: %v", err)
	}

	rendered := out.String()
	expected := `srcset="/archive/20230101/example.com/img/a.png 1x, /archive/20230101/example.com/img/b.png 2x"`
	if !strings.Contains(rendered, expected) {
		t.Fatalf("expected %q in rendered document:\n%s", expected, rendered)
	}
	if strings.Contains(rendered, `,/img/b.png`) {
		t.Fatalf("second srcset entry left unrewritten:\n%s", rendered)
	}
}

func TestDocumentRewritesInlineCSS(t *testing.T) {
	input := `<html><head>
<style>body { background: url("/img/bg.png"); }</style>
</head><body>
<div style="background-image: url(/img/inline.png)"></div>
</body></html>`

	var out bytes.Buffer
	if err := Document(strings.NewReader(input), &out, testRewriter(t)); err != nil {
		t.Fatalf("Document error: %v", err)
	}

	rendered := out.String()
	for _, expected := range []string{
		`url("/archive/20230101/example.com/img/bg.png")`,
		`/archive/20230101/example.com/img/inline.png`,
	} {
		if !strings.Contains(rendered, expected) {
			t.Fatalf("expected %q in rendered document:\n%s", expected, rendered)
		}
	}
	for _, stale := range []string{`url("/img/bg.png")`, `url(/img/inline.png)`} {
		if strings.Contains(rendered, stale) {
			t.Fatalf("inline reference left unrewritten %q:\n%s", stale, rendered)
		}
	}
}

func TestDocumentPropagatesRewriteErrors(t *testing.T) {
	input := `<a href="/ok">ok</a>`
	fail := func(string) (string, error) { return "", errors.New("nope") }

	var out bytes.Buffer
	if err := Document(strings.NewReader(input), &out, fail); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestStylesheet(t *testing.T) {
	input := `body { background: url("/img/bg.png"); }
.logo { background-image: url(/img/logo.svg); }
.keep { background: url(data:image/png;base64,xyz); }`

	var out bytes.Buffer
	if err := Stylesheet(strings.NewReader(input), &out, testRewriter(t)); err != nil {
		t.Fatalf("Stylesheet error: %v", err)
	}

	rendered := out.String()
	for _, expected := range []string{
		`url("/archive/20230101/example.com/img/bg.png")`,
		`url("/archive/20230101/example.com/img/logo.svg")`,
		`url(data:image/png;base64,xyz)`,
	} {
		if !strings.Contains(rendered, expected) {
			t.Fatalf("expected %q in rendered stylesheet:\n%s", expected, rendered)
		}
	}
}
