package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/models"
)

type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// ListCustomers returns all customers ordered by name.
func (r *customerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	query, args, err := buildListCustomersQuery(r.db.builder)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCustomers(ctx, "*customerRepository.ListCustomers", query, args)
}

func (r *customerRepository) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCustomerQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetCustomer").Msg("error building query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*customerRepository.GetCustomer").Str("customer_id", id).Msg("customer was not found")
		return models.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetCustomer").Msg("error scanning customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return customer, nil
}

// SearchCustomers returns one page of customers whose name or email contains
// query, ignoring case.
func (r *customerRepository) SearchCustomers(ctx context.Context, query string, paging models.Paging) ([]models.Customer, error) {
	sqlQuery, args, err := buildSearchCustomersQuery(r.db.builder, query, paging)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerRepository.SearchCustomers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCustomers(ctx, "*customerRepository.SearchCustomers", sqlQuery, args)
}

func (r *customerRepository) queryCustomers(ctx context.Context, funcName, query string, args []any) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	customers, err := collectRows(rows, scanCustomer)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning customers")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}

func scanCustomer(s scanner) (models.Customer, error) {
	var (
		customer models.Customer
		address  sql.NullString
	)
	if err := s.Scan(&customer.ID, &customer.Name, &customer.Email, &address, &customer.CreatedAt); err != nil {
		return models.Customer{}, err
	}
	if address.Valid {
		customer.Address = &address.String
	}

	return customer, nil
}
