package models

import "time"

// Customer is a registered buyer.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// Paging is the normalized window of a paginated collection request.
type Paging struct {
	Skip int64
	Take int64
}
