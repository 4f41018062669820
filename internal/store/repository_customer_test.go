package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/models"
)

func newTestCustomerRepo(t *testing.T) (*customerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, conn := newTestDB(t)
	return &customerRepository{db: db, logger: logger.Nop()}, mock, conn
}

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "address", "created_at"})
}

func TestListCustomers(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("FROM customers ORDER BY name, id").
		WillReturnRows(customerRows().
			AddRow("c1", "Ann", "ann@example.com", "1 Main St", now).
			AddRow("c2", "Bob", "bob@example.com", nil, now))

	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)

	require.NotNil(t, customers[0].Address)
	assert.Equal(t, "1 Main St", *customers[0].Address)
	assert.Nil(t, customers[1].Address)
	assert.Equal(t, now, customers[1].CreatedAt)
}

func TestGetCustomer(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM customers WHERE id = \\$1").
					WithArgs("c1").
					WillReturnRows(customerRows().AddRow("c1", "Ann", "ann@example.com", nil, time.Now()))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM customers WHERE id = \\$1").
					WithArgs("c1").
					WillReturnRows(customerRows())
			},
			wantErr: ErrCustomerNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM customers").
					WillReturnError(errors.New("boom"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestCustomerRepo(t)
			defer db.Close()
			tt.setup(mock)

			customer, err := repo.GetCustomer(context.Background(), "c1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ann", customer.Name)
		})
	}
}

func TestSearchCustomers(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	mock.ExpectQuery(`LOWER\(name\) LIKE \$1 ESCAPE '\\' OR LOWER\(email\) LIKE \$2 ESCAPE '\\'`).
		WithArgs("%ann%", "%ann%").
		WillReturnRows(customerRows().AddRow("c1", "Ann", "ann@example.com", nil, time.Now()))

	customers, err := repo.SearchCustomers(context.Background(), "ANN", models.Paging{Skip: 0, Take: 5})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCustomers_QueryError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM customers").WillReturnError(errors.New("boom"))

	_, err := repo.SearchCustomers(context.Background(), "x", models.Paging{Take: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
