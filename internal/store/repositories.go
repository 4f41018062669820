package store

import "github.com/MKhiriev/go-retail-api/internal/logger"

// Repositories groups every repository backed by one database handle.
type Repositories struct {
	ItemRepository     ItemRepository
	OrderRepository    OrderRepository
	CustomerRepository CustomerRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		ItemRepository:     NewItemRepository(db, log),
		OrderRepository:    NewOrderRepository(db, log),
		CustomerRepository: NewCustomerRepository(db, log),
	}
}
