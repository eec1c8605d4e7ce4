package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_api/internal/config"
	"github.com/Skotchmaster/shop_api/internal/models"
)

func TestOpen_SQLiteAndMigrate(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(ctx, db))
	// second run is a no-op
	require.NoError(t, Migrate(ctx, db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasIndex(&models.CartItem{}, "idx_user_product"))
	assert.NoError(t, Ping(ctx, db))
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, config.DriverSQLite, "")
	assert.Error(t, err)

	_, err = Open(ctx, "mysql", "whatever")
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestCartUniqueIndex(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(ctx, db))

	require.NoError(t, db.Create(&models.CartItem{UserID: "u1", ProductID: 1, Quantity: 1}).Error)
	assert.Error(t, db.Create(&models.CartItem{UserID: "u1", ProductID: 1, Quantity: 2}).Error)
	assert.NoError(t, db.Create(&models.CartItem{UserID: "u2", ProductID: 1, Quantity: 2}).Error)
}
