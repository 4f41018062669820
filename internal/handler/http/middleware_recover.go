package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-retail-api/internal/logger"
)

// withRecover turns a panic in a handler into a 500 response in the
// requested format. http.ErrAbortHandler is re-raised so net/http can abort
// the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecover").
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeError(w, r, http.StatusInternalServerError, msgInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
