// Package site serves the embedded landing page with the selection widgets.
package site

import (
	"context"
	"net/http"
)

// Register serves the embedded site at /. Unknown paths fall through to 404.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", http.FileServer(FS()))
}
