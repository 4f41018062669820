package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-retail-api/internal/service"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/internal/validators"
)

// errorStatuses is checked top to bottom; the first sentinel found in the
// error chain decides the status. Domain outcomes come before the low-level
// store failures they may wrap.
var errorStatuses = []struct {
	err    error
	status int
}{
	{store.ErrItemNotFound, http.StatusNotFound},
	{store.ErrOrderNotFound, http.StatusNotFound},
	{store.ErrOrderItemNotFound, http.StatusNotFound},
	{store.ErrCustomerNotFound, http.StatusNotFound},
	{store.ErrReferenceNotFound, http.StatusUnprocessableEntity},
	{store.ErrItemInUse, http.StatusConflict},
	{store.ErrAlreadyExists, http.StatusConflict},

	{validators.ErrValidationFailed, validationFailureStatus},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrValidationNoCustomerID, http.StatusBadRequest},
	{service.ErrValidationInvalidStatus, http.StatusBadRequest},
	{service.ErrValidationNoOrderItems, http.StatusBadRequest},
	{service.ErrValidationInvalidQuantity, http.StatusBadRequest},
	{service.ErrValidationInvalidItemID, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoClaimsInContext, http.StatusUnauthorized},
	{ErrInsufficientScope, http.StatusForbidden},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messages holds the client-facing text a route uses per status. Statuses
// without an entry fall back to the standard status text.
type messages map[int]string

func (m messages) forStatus(status int) string {
	if msg, ok := m[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
