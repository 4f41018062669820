package http

import (
	"net/http"

	"github.com/MKhiriev/go-retail-api/internal/render"
	"github.com/MKhiriev/go-retail-api/internal/validators"
	"github.com/MKhiriev/go-retail-api/models"
)

var (
	orderMessages         = messages{http.StatusNotFound: msgOrderNotFound}
	orderLineMessages     = messages{http.StatusNotFound: msgOrderOrItemNotFound}
	orderCreationMessages = messages{
		http.StatusNotFound:            msgOrderNotFound,
		http.StatusInternalServerError: msgCreationFailed,
		http.StatusUnprocessableEntity: msgCreationFailed,
	}
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.services.OrderService.ListOrders(r.Context(), validatedRequest(r).Paging())
	if err != nil {
		h.writeFailure(w, r, "*Handler.listOrders", err, nil)
		return
	}

	h.writeCollection(w, r, render.OrderKind, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := validatedRequest(r).ParamString("id")

	order, err := h.services.OrderService.GetOrder(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "*Handler.getOrder", err, orderMessages)
		return
	}

	h.writeObject(w, r, http.StatusOK, render.OrderKind, order)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	upsert, _ := validators.BodyAs[models.OrderUpsert](validatedRequest(r))

	order, err := h.services.OrderService.CreateOrder(r.Context(), upsert)
	if err != nil {
		h.writeFailure(w, r, "*Handler.createOrder", err, orderCreationMessages)
		return
	}

	h.writeObject(w, r, http.StatusCreated, render.OrderKind, order)
}

// updateOrder replaces the status of an order. An empty customerId keeps
// the stored customer.
func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	req := validatedRequest(r)
	upsert, _ := validators.BodyAs[models.OrderUpsert](req)

	order, err := h.services.OrderService.UpdateOrder(r.Context(), req.ParamString("id"), upsert)
	if err != nil {
		h.writeFailure(w, r, "*Handler.updateOrder", err, orderMessages)
		return
	}

	h.writeObject(w, r, http.StatusOK, render.OrderKind, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := validatedRequest(r).ParamString("id")

	order, err := h.services.OrderService.DeleteOrder(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "*Handler.deleteOrder", err, orderMessages)
		return
	}

	h.writeObject(w, r, http.StatusOK, render.OrderKind, order)
}

func (h *Handler) addOrderItems(w http.ResponseWriter, r *http.Request) {
	req := validatedRequest(r)
	items, _ := validators.BodyAs[[]models.NewOrderItem](req)

	order, err := h.services.OrderService.AddOrderItems(r.Context(), req.ParamString("id"), items)
	if err != nil {
		h.writeFailure(w, r, "*Handler.addOrderItems", err, orderCreationMessages)
		return
	}

	h.writeObject(w, r, http.StatusCreated, render.OrderKind, order)
}

func (h *Handler) removeOrderItem(w http.ResponseWriter, r *http.Request) {
	req := validatedRequest(r)

	order, err := h.services.OrderService.RemoveOrderItem(r.Context(), req.ParamString("id"), req.ParamString("itemId"))
	if err != nil {
		h.writeFailure(w, r, "*Handler.removeOrderItem", err, orderLineMessages)
		return
	}

	h.writeObject(w, r, http.StatusOK, render.OrderKind, order)
}
