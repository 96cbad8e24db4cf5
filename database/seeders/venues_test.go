package seeders

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestSeedDemoVenuesAlreadySeeded(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "vendor@eventhive.local"))
	mock.ExpectQuery(`SELECT \* FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Luxury Banquet Hall"))

	require.NoError(t, SeedDemoVenues(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDemoVenuesPropagatesLookupFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnError(fmt.Errorf("connection refused"))

	err := SeedDemoVenues(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check demo vendor")
}
