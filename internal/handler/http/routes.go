package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-retail-api/internal/validators"
	"github.com/MKhiriev/go-retail-api/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/health", h.health)

	router.Route("/v1/items", func(r chi.Router) {
		h.itemWriteRoutes(r)
		r.Get("/", h.listItems)
		r.With(h.validate(validators.IDNumber)).Get("/{id}", h.getItem)
	})

	router.Route("/v2/items", func(r chi.Router) {
		h.itemWriteRoutes(r)
		r.Get("/", h.listItemDetails)
		r.With(h.validate(validators.IDNumber)).Get("/{id}", h.getItemDetail)
	})

	// routes with authorization
	router.Route("/v1/orders", func(r chi.Router) {
		r.Use(h.validateAccessToken)

		r.With(h.requireScope(models.OrdersRead), h.validate(validators.Paging)).
			Get("/", h.listOrders)
		r.With(h.requireScope(models.OrdersReadSingle), h.validate(validators.IDToken)).
			Get("/{id}", h.getOrder)
		r.With(h.requireScope(models.OrdersCreate), h.validate(validators.CreateOrder)).
			Post("/", h.createOrder)
		r.With(h.requireScope(models.OrdersWrite), h.validate(validators.UpdateOrder)).
			Put("/{id}", h.updateOrder)
		r.With(h.requireScope(models.SecurityDeny), h.validate(validators.IDToken)).
			Delete("/{id}", h.deleteOrder)
		r.With(h.requireScope(models.OrdersCreate), h.validate(validators.AddOrderItems)).
			Post("/{id}/items", h.addOrderItems)
		r.With(h.requireScope(models.OrdersCreate), h.validate(validators.IDTokenWithItemID)).
			Delete("/{id}/items/{itemId}", h.removeOrderItem)
	})

	router.Route("/v1/customers", func(r chi.Router) {
		r.Use(h.validateAccessToken)

		r.With(h.requireScope(models.CustomersRead)).
			Get("/", h.listCustomers)
		r.With(h.requireScope(models.CustomersRead), h.validate(validators.CustomerSearch)).
			Get("/search/{query}", h.searchCustomers)
		r.With(h.requireScope(models.CustomersReadSingle), h.validate(validators.IDToken)).
			Get("/{id}", h.getCustomer)
		r.With(h.requireScope(models.OrdersRead), h.validate(validators.IDToken)).
			Get("/{id}/orders", h.listCustomerOrders)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

// itemWriteRoutes registers the authorized item routes shared by v1 and v2.
func (h *Handler) itemWriteRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.validateAccessToken)

		r.With(h.requireScope(models.ItemsCreate), h.validate(validators.CreateItem)).
			Post("/", h.createItem)
		r.With(h.requireScope(models.ItemsWrite), h.validate(validators.UpdateItem)).
			Put("/{id}", h.updateItem)
		r.With(h.requireScope(models.SecurityDeny), h.validate(validators.IDNumber)).
			Delete("/{id}", h.deleteItem)
	})
}
