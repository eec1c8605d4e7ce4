// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/config"
	"github.com/Skotchmaster/shop_api/internal/db"
	"github.com/Skotchmaster/shop_api/internal/models"
)

// NewDB returns a migrated in-memory sqlite database closed on cleanup.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	gdb, err := db.Open(ctx, config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, gdb))

	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func SeedProduct(t *testing.T, gdb *gorm.DB, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, gdb.Create(&p).Error)
	return p
}
