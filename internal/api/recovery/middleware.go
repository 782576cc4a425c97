// Package recovery converts handler panics into standard 500 responses so a
// single bad request cannot take the server down.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/schedax/schedax/internal/api/respond"
)

// Middleware recovers a panic from the wrapped handler, logs it with the
// stack, and answers with the standard error payload.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("recovered from handler panic")
			respond.WriteInternalError(w, "unexpected server error")
		}()
		next.ServeHTTP(w, r)
	})
}
