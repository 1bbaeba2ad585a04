package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"benihku_backend/internals/features/bookkeeping/pricing/policy"
)

func newResolverDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// kolom roles di postgres adalah text[]; literal array pq tetap bisa
	// di-scan dari TEXT biasa, jadi test cukup pakai DDL polos
	require.NoError(t, db.Exec(`CREATE TABLE price_settings (
		price_setting_id INTEGER PRIMARY KEY AUTOINCREMENT,
		price_setting_scope TEXT NOT NULL,
		price_setting_item_kind TEXT NOT NULL,
		price_setting_roles TEXT NOT NULL DEFAULT '{}',
		price_setting_price INTEGER NOT NULL,
		price_setting_is_active BOOLEAN NOT NULL DEFAULT 1,
		price_setting_created_at DATETIME,
		price_setting_updated_at DATETIME
	)`).Error)
	return db
}

func insertSetting(t *testing.T, db *gorm.DB, scope, kind, roles string, price int, active bool) {
	t.Helper()
	require.NoError(t, db.Exec(`INSERT INTO price_settings
		(price_setting_scope, price_setting_item_kind, price_setting_roles, price_setting_price, price_setting_is_active)
		VALUES (?, ?, ?, ?, ?)`, scope, kind, roles, price, active).Error)
}

func TestResolve_DefaultTables(t *testing.T) {
	r := NewResolver(newResolverDB(t))
	ctx := context.Background()

	cases := []struct {
		kind  policy.ItemKind
		scope policy.PriceScope
		role  policy.Role
		want  int
	}{
		{policy.ItemSeed, policy.ScopeExternal, policy.RoleAbu, 100},
		{policy.ItemSeed, policy.ScopeExternal, policy.RoleUltra, 700},
		{policy.ItemSeed, policy.ScopeInternal, policy.RoleUltra, 300},
		{policy.ItemLeaf, policy.ScopeExternal, policy.RoleAbu, 150},
		{policy.ItemLeaf, policy.ScopeInternal, policy.RoleAbu, 200},
	}
	for _, tc := range cases {
		q, err := r.Resolve(ctx, tc.kind, tc.scope, tc.role, 3)
		require.NoError(t, err)
		assert.Equal(t, tc.want, q.UnitPrice)
		assert.Equal(t, tc.want*3, q.TotalPrice)
	}
}

func TestResolve_OverrideWinsForMatchingRole(t *testing.T) {
	db := newResolverDB(t)
	insertSetting(t, db, "external", "seed", "{Ijo}", 250, true)
	r := NewResolver(db)
	ctx := context.Background()

	q, err := r.Resolve(ctx, policy.ItemSeed, policy.ScopeExternal, policy.RoleIjo, 2)
	require.NoError(t, err)
	assert.Equal(t, 250, q.UnitPrice)
	assert.Equal(t, 500, q.TotalPrice)

	// role di luar daftar tetap pakai tabel bawaan
	q, err = r.Resolve(ctx, policy.ItemSeed, policy.ScopeExternal, policy.RoleUltra, 2)
	require.NoError(t, err)
	assert.Equal(t, 700, q.UnitPrice)
}

func TestResolve_InactiveOverrideIgnored(t *testing.T) {
	db := newResolverDB(t)
	insertSetting(t, db, "external", "seed", "{Ijo}", 999, false)
	r := NewResolver(db)

	q, err := r.Resolve(context.Background(), policy.ItemSeed, policy.ScopeExternal, policy.RoleIjo, 1)
	require.NoError(t, err)
	assert.Equal(t, 200, q.UnitPrice)
}

func TestResolve_ScopeAndKindScoped(t *testing.T) {
	db := newResolverDB(t)
	// override internal seed tidak boleh bocor ke external atau ke leaf
	insertSetting(t, db, "internal", "seed", "{Ijo,Ultra}", 50, true)
	r := NewResolver(db)
	ctx := context.Background()

	q, err := r.Resolve(ctx, policy.ItemSeed, policy.ScopeInternal, policy.RoleUltra, 1)
	require.NoError(t, err)
	assert.Equal(t, 50, q.UnitPrice)

	q, err = r.Resolve(ctx, policy.ItemSeed, policy.ScopeExternal, policy.RoleUltra, 1)
	require.NoError(t, err)
	assert.Equal(t, 700, q.UnitPrice)

	q, err = r.Resolve(ctx, policy.ItemLeaf, policy.ScopeInternal, policy.RoleUltra, 1)
	require.NoError(t, err)
	assert.Equal(t, 200, q.UnitPrice)
}

func TestResolve_NegativeQuantity(t *testing.T) {
	r := NewResolver(nil)
	_, err := r.Resolve(context.Background(), policy.ItemSeed, policy.ScopeExternal, policy.RoleIjo, -1)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestResolve_ZeroQuantityIsFree(t *testing.T) {
	r := NewResolver(nil)
	q, err := r.Resolve(context.Background(), policy.ItemSeed, policy.ScopeExternal, policy.RoleIjo, 0)
	require.NoError(t, err)
	assert.Equal(t, 200, q.UnitPrice)
	assert.Equal(t, 0, q.TotalPrice)
}
