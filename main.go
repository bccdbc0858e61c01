package main

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/config"
)

// The shell serves the WASM bundle and proxies /api/* to the backend
// so the browser client talks same-origin. It stores nothing.
func main() {
	cfg := config.Load()

	backend, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		log.Fatalf("invalid EDUBIT_API_URL %q: %v", cfg.APIBaseURL, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", newProxy(backend)))
	mux.Handle("/", &app.Handler{
		Name:        "EduBit",
		ShortName:   "EduBit",
		Description: "Short-form educational reels, micro-courses and playlists",
		Styles:      []string{"/web/app.css"},
	})

	log.Printf("EduBit web running on %s (api: %s)", cfg.Addr, cfg.APIBaseURL)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}

func newProxy(backend *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(backend)
			r.Out.Host = backend.Host
		},
	}
}
