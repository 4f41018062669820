// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/go-retail-api/models"

var (
	idNumber = IntField("id", "gte=0")
	idToken  = TokenField("id")
	skip     = IntField("skip", "gte=0")
	take     = IntField("take", "gt=0")
)

var itemBody = ObjectBody(func(dto *models.ItemDTO) any {
	return models.ItemUpsert{Name: *dto.Name, Description: dto.Description}
})

// IDNumber accepts a numeric item identifier.
var IDNumber = &Schema{
	Name:   "IDNumber",
	Params: []Field{idNumber},
}

// IDToken accepts an opaque order or customer identifier.
var IDToken = &Schema{
	Name:   "IDToken",
	Params: []Field{idToken},
}

// IDTokenWithItemID accepts an order identifier and an order line identifier.
var IDTokenWithItemID = &Schema{
	Name:   "IDTokenWithItemID",
	Params: []Field{idToken, TokenField("itemId")},
}

// Paging accepts the skip/take window of collection routes.
var Paging = &Schema{
	Name:  "Paging",
	Query: []Field{skip, take},
}

// CustomerSearch accepts a search term and a paging window.
var CustomerSearch = &Schema{
	Name:   "CustomerSearch",
	Params: []Field{TokenField("query")},
	Query:  []Field{skip, take},
}

// CreateOrder yields a [models.OrderUpsert] body.
var CreateOrder = &Schema{
	Name: "CreateOrder",
	Body: ObjectBody(func(dto *models.OrderDTO) any {
		return models.OrderUpsert{CustomerID: *dto.CustomerID, Status: *dto.Status}
	}),
}

// UpdateOrder yields a [models.OrderUpsert] body. An omitted customerId
// normalizes to "".
var UpdateOrder = &Schema{
	Name:   "UpdateOrder",
	Params: []Field{idToken},
	Body: ObjectBody(func(dto *models.UpdateOrderDTO) any {
		var customerID string
		if dto.CustomerID != nil {
			customerID = *dto.CustomerID
		}
		return models.OrderUpsert{CustomerID: customerID, Status: *dto.Status}
	}),
}

// CreateItem yields a [models.ItemUpsert] body.
var CreateItem = &Schema{
	Name: "CreateItem",
	Body: itemBody,
}

// UpdateItem yields a [models.ItemUpsert] body for an existing item.
var UpdateItem = &Schema{
	Name:   "UpdateItem",
	Params: []Field{idNumber},
	Body:   itemBody,
}

// AddOrderItems yields a non-empty []models.NewOrderItem body.
var AddOrderItems = &Schema{
	Name:   "AddOrderItems",
	Params: []Field{idToken},
	Body: ArrayBody(func(dtos []models.OrderItemDTO) any {
		items := make([]models.NewOrderItem, 0, len(dtos))
		for _, dto := range dtos {
			items = append(items, models.NewOrderItem{ItemID: *dto.ItemID, Quantity: *dto.Quantity})
		}
		return items
	}),
}
