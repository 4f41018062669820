package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-retail-api/internal/validators"
)

// maxBodyBytes caps request bodies read by the validation gate.
const maxBodyBytes = 1 << 20

// validationFailureStatus is the status of a request rejected by the
// validation gate. Existing clients expect 404 here rather than 400.
const validationFailureStatus = http.StatusNotFound

// validate returns the validation gate for schema. It collects the route's
// path parameters, the query string and, when the schema declares one, the
// body; a request that passes continues with the normalized
// [validators.Request] in its context. A rejected request never reaches the
// handler.
func (h *Handler) validate(schema *validators.Schema) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := validators.Raw{
				Params:      urlParams(r),
				Query:       r.URL.Query(),
				ContentType: r.Header.Get("Content-Type"),
			}

			if schema.Body != nil && r.Body != nil {
				body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
				if err != nil {
					var tooLarge *http.MaxBytesError
					if errors.As(err, &tooLarge) {
						writeError(w, r, http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge))
						return
					}
					writeError(w, r, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
					return
				}
				raw.Body = body
			}

			req, err := schema.Validate(raw)
			if err != nil {
				var validationErr *validators.ValidationError
				if !errors.As(err, &validationErr) {
					writeError(w, r, http.StatusInternalServerError, msgInternalServerError)
					return
				}
				writeError(w, r, validationFailureStatus, msgValidationFailed, validationErr.Details...)
				return
			}

			next.ServeHTTP(w, r.WithContext(validators.WithRequest(r.Context(), req)))
		})
	}
}

// urlParams returns the path parameters chi matched for r.
func urlParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return map[string]string{}
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}

// validatedRequest returns the request stored by the validation gate. Routes
// without a schema get the zero value.
func validatedRequest(r *http.Request) validators.Request {
	req, _ := validators.FromContext(r.Context())
	return req
}
