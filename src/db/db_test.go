package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestNewDBReplacesConnection(t *testing.T) {
	sqldb, _, err := sqlmock.New()
	require.NoError(t, err)
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqldb,
		DriverName: "postgres",
	}), &gorm.Config{})
	require.NoError(t, err)

	NewDB(gormdb)
	got := GetDb()
	assert.Same(t, gormdb, got)
	assert.Equal(t, "postgres", got.Name())
}
