// Package dbtest opens a migrated sqlite database for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/rental_shop/internal/db"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	ctx := context.Background()

	gdb, err := db.OpenDialector(ctx, sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, gdb))
	require.NoError(t, db.SeedRoles(ctx, gdb))

	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}
