package http

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-retail-api/internal/service"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/models"
)

var orderCreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testOrder(id string, lines ...models.OrderItem) models.Order {
	if lines == nil {
		lines = []models.OrderItem{}
	}
	return models.Order{
		ID:         id,
		CustomerID: "c-1",
		Status:     models.OrderStatusCreated,
		CreatedAt:  orderCreatedAt,
		Items:      lines,
	}
}

// ─────────────────────────────────────────────
// authorization
// ─────────────────────────────────────────────

func TestOrders_RequireBearerToken(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, fmt.Errorf("parse: %w", service.ErrTokenIsExpired))

	tests := []struct {
		name string
		opts []requestOption
	}{
		{name: "no header"},
		{name: "wrong scheme", opts: []requestOption{withHeader("Authorization", "Basic dXNlcjpwYXNz")}},
		{name: "empty token", opts: []requestOption{withHeader("Authorization", "Bearer ")}},
		{name: "rejected token", opts: []requestOption{withBearer("expired")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, "/v1/orders?skip=0&take=10", "", tt.opts...)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestOrders_ScopeIsCheckedBeforeValidation(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", string(models.OrdersRead))

	// invalid body and missing create:orders: the scope check answers first
	rec := env.do(http.MethodPost, "/v1/orders", `{"status":"Lost"}`, withBearer("token"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Insufficient scope"}`, rec.Body.String())
}

func TestOrders_ForbiddenNeverReachesService(t *testing.T) {
	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/v1/orders?skip=0&take=5", ""},
		{http.MethodGet, "/v1/orders/o-1", ""},
		{http.MethodPost, "/v1/orders", `{"customerId":"c-1","status":"Created"}`},
		{http.MethodPut, "/v1/orders/o-1", `{"status":"Shipped"}`},
		{http.MethodPost, "/v1/orders/o-1/items", `[{"itemId":1,"quantity":1}]`},
		{http.MethodDelete, "/v1/orders/o-1/items/l-1", ""},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			// the order service mock has no expectations: any call fails the test
			env := newTestEnv(t)
			env.grant("token", string(models.ItemsCreate), string(models.CustomersRead))

			rec := env.do(route.method, route.path, route.body, withBearer("token"))

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestDeleteOrder_AlwaysForbidden(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", allScopes...)

	rec := env.do(http.MethodDelete, "/v1/orders/o-1", "", withBearer("token"), acceptXML())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, `<?xml version="1.0"?><error message="Insufficient scope"/>`, rec.Body.String())
}

// ─────────────────────────────────────────────
// list and get
// ─────────────────────────────────────────────

func TestListOrders(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", string(models.OrdersRead))
	env.orders.EXPECT().
		ListOrders(gomock.Any(), models.Paging{Skip: 5, Take: 10}).
		Return([]models.Order{testOrder("o-1")}, nil)

	rec := env.do(http.MethodGet, "/v1/orders?skip=5&take=10", "", withBearer("token"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":"o-1","customerId":"c-1","status":"Created","createdAt":"2026-03-01T12:00:00Z","items":[]}]`,
		rec.Body.String())
}

func TestListOrders_InvalidPaging(t *testing.T) {
	tests := []struct {
		query    string
		wantBody string
	}{
		{
			query:    "skip=-1&take=10",
			wantBody: `{"message":"Validation failed","details":[{"path":"query: skip","message":"Number must be greater than or equal to 0"}]}`,
		},
		{
			query:    "skip=0&take=0",
			wantBody: `{"message":"Validation failed","details":[{"path":"query: take","message":"Number must be greater than 0"}]}`,
		},
		{
			query:    "skip=zero&take=10",
			wantBody: `{"message":"Validation failed","details":[{"path":"query: skip","message":"Expected number, received nan"}]}`,
		},
		{
			query: "",
			wantBody: `{"message":"Validation failed","details":[` +
				`{"path":"query: skip","message":"Required"},{"path":"query: take","message":"Required"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			env := newTestEnv(t)
			env.grant("token", string(models.OrdersRead))

			rec := env.do(http.MethodGet, "/v1/orders?"+tt.query, "", withBearer("token"))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetOrder(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", string(models.OrdersReadSingle))
	env.orders.EXPECT().GetOrder(gomock.Any(), "o-1").
		Return(testOrder("o-1", models.OrderItem{ID: "l-1", OrderID: "o-1", ItemID: 3, Quantity: 2}), nil)
	env.orders.EXPECT().GetOrder(gomock.Any(), "o-9").
		Return(models.Order{}, fmt.Errorf("get order: %w", store.ErrOrderNotFound))

	rec := env.do(http.MethodGet, "/v1/orders/o-1", "", withBearer("token"), acceptXML())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`<?xml version="1.0"?><order id="o-1" customerId="c-1" status="Created" createdAt="2026-03-01T12:00:00Z">`+
			`<items><item id="l-1" orderId="o-1" itemId="3" quantity="2"/></items></order>`,
		rec.Body.String())

	rec = env.do(http.MethodGet, "/v1/orders/o-9", "", withBearer("token"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Order Not Found"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// create and update
// ─────────────────────────────────────────────

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", string(models.OrdersCreate))
	env.orders.EXPECT().
		CreateOrder(gomock.Any(), models.OrderUpsert{CustomerID: "c-1", Status: models.OrderStatusCreated}).
		Return(testOrder("0195a6f0-0000-7000-8000-000000000001"), nil)

	rec := env.do(http.MethodPost, "/v1/orders", `{"customerId":"c-1","status":"Created"}`, withBearer("token"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"id":"0195a6f0-0000-7000-8000-000000000001","customerId":"c-1","status":"Created","createdAt":"2026-03-01T12:00:00Z","items":[]}`,
		rec.Body.String())
}

func TestCreateOrder_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown customer",
			body:       `{"customerId":"c-404","status":"Created"}`,
			err:        fmt.Errorf("create order: %w", store.ErrReferenceNotFound),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"message":"Creation failed"}`,
		},
		{
			name:       "store failure",
			body:       `{"customerId":"c-1","status":"Created"}`,
			err:        fmt.Errorf("create order: %w", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Creation failed"}`,
		},
		{
			name:       "unknown status",
			body:       `{"customerId":"c-1","status":"Lost"}`,
			wantStatus: http.StatusNotFound,
			wantBody: `{"message":"Validation failed","details":[{"path":"body: status",` +
				`"message":"Invalid enum value. Expected 'Created' | 'Processing' | 'Shipped' | 'Delivered' | 'Cancelled', received 'Lost'"}]}`,
		},
		{
			name:       "missing body",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Validation failed","details":[{"path":"body","message":"Required"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.grant("token", string(models.OrdersCreate))
			if tt.err != nil {
				env.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(models.Order{}, tt.err)
			}

			rec := env.do(http.MethodPost, "/v1/orders", tt.body, withBearer("token"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestUpdateOrder_StatusOnly(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", string(models.OrdersWrite))

	shipped := testOrder("o-1")
	shipped.Status = models.OrderStatusShipped
	env.orders.EXPECT().
		UpdateOrder(gomock.Any(), "o-1", models.OrderUpsert{CustomerID: "", Status: models.OrderStatusShipped}).
		Return(shipped, nil)

	rec := env.do(http.MethodPut, "/v1/orders/o-1", `{"status":"Shipped"}`, withBearer("token"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":"o-1","customerId":"c-1","status":"Shipped","createdAt":"2026-03-01T12:00:00Z","items":[]}`,
		rec.Body.String())
}

func TestUpdateOrder_XMLBody(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", string(models.OrdersWrite))
	env.orders.EXPECT().
		UpdateOrder(gomock.Any(), "o-1", models.OrderUpsert{CustomerID: "c-2", Status: models.OrderStatusDelivered}).
		Return(models.Order{}, store.ErrOrderNotFound)

	rec := env.do(http.MethodPut, "/v1/orders/o-1",
		`<order><customerId>c-2</customerId><status>Delivered</status></order>`,
		withBearer("token"), withHeader("Content-Type", "application/xml"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Order Not Found"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// order lines
// ─────────────────────────────────────────────

func TestAddOrderItems(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "added",
			wantStatus: http.StatusCreated,
			wantBody: `{"id":"o-1","customerId":"c-1","status":"Created","createdAt":"2026-03-01T12:00:00Z",` +
				`"items":[{"id":"l-1","orderId":"o-1","itemId":1,"quantity":2}]}`,
		},
		{
			name:       "order missing",
			err:        fmt.Errorf("add items: %w", store.ErrOrderNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Order Not Found"}`,
		},
		{
			name:       "store failure",
			err:        fmt.Errorf("add items: %w", store.ErrBeginningTransaction),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Creation failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.grant("token", string(models.OrdersCreate))

			order := models.Order{}
			if tt.err == nil {
				order = testOrder("o-1", models.OrderItem{ID: "l-1", OrderID: "o-1", ItemID: 1, Quantity: 2})
			}
			env.orders.EXPECT().
				AddOrderItems(gomock.Any(), "o-1", []models.NewOrderItem{{ItemID: 1, Quantity: 2}}).
				Return(order, tt.err)

			rec := env.do(http.MethodPost, "/v1/orders/o-1/items", `[{"itemId":1,"quantity":2}]`, withBearer("token"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAddOrderItems_InvalidLines(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", string(models.OrdersCreate))

	rec := env.do(http.MethodPost, "/v1/orders/o-1/items", `[{"itemId":1,"quantity":0}]`, withBearer("token"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"message":"Validation failed","details":[{"path":"body: 0: quantity","message":"Number must be greater than 0"}]}`,
		rec.Body.String())
}

func TestRemoveOrderItem(t *testing.T) {
	env := newTestEnv(t)
	env.grant("token", string(models.OrdersCreate))
	env.orders.EXPECT().RemoveOrderItem(gomock.Any(), "o-1", "l-1").Return(testOrder("o-1"), nil)
	env.orders.EXPECT().RemoveOrderItem(gomock.Any(), "o-1", "l-9").Return(models.Order{}, store.ErrOrderItemNotFound)

	rec := env.do(http.MethodDelete, "/v1/orders/o-1/items/l-1", "", withBearer("token"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":"o-1","customerId":"c-1","status":"Created","createdAt":"2026-03-01T12:00:00Z","items":[]}`,
		rec.Body.String())

	rec = env.do(http.MethodDelete, "/v1/orders/o-1/items/l-9", "", withBearer("token"), acceptXML())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `<?xml version="1.0"?><error message="Order or item not found"/>`, rec.Body.String())
}
