package http

import (
	"net/http"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/render"
	"github.com/MKhiriev/go-retail-api/models"
)

func (h *Handler) writeObject(w http.ResponseWriter, r *http.Request, status int, kind render.Kind, v any) {
	p, err := render.Object(render.FormatFromRequest(r), kind, v)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeObject").Msg("error rendering response")
		writeError(w, r, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	write(w, r, status, p)
}

func (h *Handler) writeCollection(w http.ResponseWriter, r *http.Request, kind render.Kind, v any) {
	p, err := render.Collection(render.FormatFromRequest(r), kind, v)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeCollection").Msg("error rendering response")
		writeError(w, r, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	write(w, r, http.StatusOK, p)
}

// writeFailure logs err and answers with the status mapped from it and the
// route's message for that status.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, funcName string, err error, msgs messages) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	writeError(w, r, status, msgs.forStatus(status))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, details ...models.ErrorDetail) {
	write(w, r, status, render.Error(render.FormatFromRequest(r), message, details...))
}

func write(w http.ResponseWriter, r *http.Request, status int, p render.Payload) {
	if err := render.Write(w, status, p); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "write").Msg("error writing response")
	}
}
