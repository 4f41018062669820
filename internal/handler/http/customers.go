package http

import (
	"net/http"

	"github.com/MKhiriev/go-retail-api/internal/render"
)

var customerMessages = messages{http.StatusNotFound: msgCustomerNotFound}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.CustomerService.ListCustomers(r.Context())
	if err != nil {
		h.writeFailure(w, r, "*Handler.listCustomers", err, nil)
		return
	}

	h.writeCollection(w, r, render.CustomerKind, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id := validatedRequest(r).ParamString("id")

	customer, err := h.services.CustomerService.GetCustomer(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "*Handler.getCustomer", err, customerMessages)
		return
	}

	h.writeObject(w, r, http.StatusOK, render.CustomerKind, customer)
}

// listCustomerOrders answers with an empty collection for unknown customers.
func (h *Handler) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	id := validatedRequest(r).ParamString("id")

	orders, err := h.services.CustomerService.ListCustomerOrders(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "*Handler.listCustomerOrders", err, customerMessages)
		return
	}

	h.writeCollection(w, r, render.OrderKind, orders)
}

func (h *Handler) searchCustomers(w http.ResponseWriter, r *http.Request) {
	req := validatedRequest(r)

	customers, err := h.services.CustomerService.SearchCustomers(r.Context(), req.ParamString("query"), req.Paging())
	if err != nil {
		h.writeFailure(w, r, "*Handler.searchCustomers", err, nil)
		return
	}

	h.writeCollection(w, r, render.CustomerKind, customers)
}
