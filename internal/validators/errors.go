package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-retail-api/models"
)

// ErrValidationFailed is the sentinel every [ValidationError] unwraps to.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError is returned by [Schema.Validate] when the raw request does
// not satisfy the schema. Details keeps the order in which violations were
// found: params first, then query, then body.
type ValidationError struct {
	Details []models.ErrorDetail
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Path+": "+d.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
