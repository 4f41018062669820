package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-retail-api/internal/config"
	"github.com/MKhiriev/go-retail-api/internal/logger"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	return newDB(db, config.DriverPostgres, logger.Nop()), mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func liteError(code sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: code}
}

func TestClassifyWriteError(t *testing.T) {
	fallback := errors.New("fallback")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "postgres foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ErrReferenceNotFound},
		{name: "postgres unique", err: pgError(pgerrcode.UniqueViolation), want: ErrAlreadyExists},
		{name: "postgres other", err: pgError(pgerrcode.DeadlockDetected), want: fallback},
		{name: "sqlite foreign key", err: liteError(sqlite3.ErrConstraintForeignKey), want: ErrReferenceNotFound},
		{name: "sqlite unique", err: liteError(sqlite3.ErrConstraintUnique), want: ErrAlreadyExists},
		{name: "sqlite primary key", err: liteError(sqlite3.ErrConstraintPrimaryKey), want: ErrAlreadyExists},
		{name: "plain error", err: errors.New("boom"), want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyWriteError(tt.err, fallback)

			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestNewDB_PlaceholderPerDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	pg := newDB(db, config.DriverPostgres, logger.Nop())
	query, _, err := buildGetItemQuery(pg.builder, 1)
	assert.NoError(t, err)
	assert.Contains(t, query, "$1")

	lite := newDB(db, config.DriverSQLite, logger.Nop())
	query, _, err = buildGetItemQuery(lite.builder, 1)
	assert.NoError(t, err)
	assert.Contains(t, query, "id = ?")
}

func TestNewDB_RepositoryQueriesUseDriverPlaceholders(t *testing.T) {
	tests := []struct {
		driver string
		query  string
	}{
		{driver: config.DriverPostgres, query: "SELECT id, name, description FROM items WHERE id = $1"},
		{driver: config.DriverSQLite, query: "SELECT id, name, description FROM items WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			if err != nil {
				t.Fatalf("failed to create sqlmock: %v", err)
			}
			defer conn.Close()

			mock.ExpectQuery(tt.query).
				WithArgs(int64(3)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).AddRow(3, "Mug", nil))

			repo := NewItemRepository(newDB(conn, tt.driver, logger.Nop()), logger.Nop())
			item, err := repo.GetItem(context.Background(), 3)

			assert.NoError(t, err)
			assert.Equal(t, "Mug", item.Name)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
