// Package swaggerkit serves the OpenAPI document and Swagger UI under /api/docs
package swaggerkit

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	phttp "formvoice/internal/platform/net/http"
)

// Options controls what Mount serves
type Options struct {
	Enabled bool
	// BasePath becomes the single server url; default /api/v1
	BasePath string
	// TitleSuffix is appended to info.title, e.g. "(staging)"
	TitleSuffix string
}

// Mount serves the UI at /api/docs/ and the document at /api/docs/doc.json
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	if o.BasePath == "" {
		o.BasePath = "/api/v1"
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", docHandler(o))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
