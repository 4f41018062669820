package models

// ErrorResponse is the body of every non-successful response.
//
// Details is only present for validation failures.
type ErrorResponse struct {
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail describes one rejected input field. Path joins the location
// segments with ": ", e.g. "params: id" or "body: items: 0: quantity".
type ErrorDetail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
