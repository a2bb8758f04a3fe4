package main

import (
	"bytes"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/arcpath/arcpath/internal/htmlrewrite"
	"github.com/arcpath/arcpath/internal/rewrite"
)

const page = `<!DOCTYPE html>
<html>
<head>
  <link rel="stylesheet" href="//cdn.example.org/site.css">
  <script src="https://s.ytimg.com/videoplayback?id=abc123&itag=22"></script>
</head>
<body>
  <img src="/img/logo.png" srcset="/img/logo.png 1x, /img/logo@2x.png 2x">
  <iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1"></iframe>
  <a href="#about">about</a>
</body>
</html>`

func main() {
	ctx, err := rewrite.NewContext(
		"https://example.com/v",
		"https://example.com",
		"https:",
		"https://example.com/v",
		"/archive/20230101/",
	)
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	})

	mux.HandleFunc("/rewritten", func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := htmlrewrite.Document(strings.NewReader(page), &buf, ctx.Rewrite); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write(buf.Bytes())
	})

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Println("demo page listening on :8080 (see / and /rewritten)")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
