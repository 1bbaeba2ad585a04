package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"Abu", "Ijo", "Ultra", "Raden"} {
		r, err := ParseRole(s)
		assert.NoError(t, err)
		assert.True(t, r.Valid())
	}

	_, err := ParseRole("Sultan")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestRoleOrder(t *testing.T) {
	assert.True(t, RoleRaden.AtLeast(RoleUltra))
	assert.True(t, RoleUltra.AtLeast(RoleIjo))
	assert.True(t, RoleIjo.AtLeast(RoleAbu))
	assert.True(t, RoleIjo.AtLeast(RoleIjo))
	assert.False(t, RoleAbu.AtLeast(RoleIjo))
	assert.False(t, RoleUltra.AtLeast(RoleRaden))
}

func TestSeedPriceTables(t *testing.T) {
	// external
	assert.Equal(t, 100, SeedPrice(ScopeExternal, RoleAbu))
	assert.Equal(t, 200, SeedPrice(ScopeExternal, RoleIjo))
	assert.Equal(t, 700, SeedPrice(ScopeExternal, RoleUltra))
	assert.Equal(t, 700, SeedPrice(ScopeExternal, RoleRaden))

	// internal: tabel terpisah untuk Ultra/Raden
	assert.Equal(t, 100, SeedPrice(ScopeInternal, RoleAbu))
	assert.Equal(t, 200, SeedPrice(ScopeInternal, RoleIjo))
	assert.Equal(t, 300, SeedPrice(ScopeInternal, RoleUltra))
	assert.Equal(t, 300, SeedPrice(ScopeInternal, RoleRaden))
}

func TestLeafPriceTables(t *testing.T) {
	assert.Equal(t, 150, LeafPrice(ScopeExternal, RoleAbu))
	assert.Equal(t, 200, LeafPrice(ScopeExternal, RoleIjo))
	assert.Equal(t, 200, LeafPrice(ScopeInternal, RoleAbu))
	assert.Equal(t, 200, LeafPrice(ScopeInternal, RoleRaden))
}

func TestUnitPriceDispatch(t *testing.T) {
	assert.Equal(t, SeedPrice(ScopeExternal, RoleIjo), UnitPrice(ItemSeed, ScopeExternal, RoleIjo))
	assert.Equal(t, LeafPrice(ScopeInternal, RoleUltra), UnitPrice(ItemLeaf, ScopeInternal, RoleUltra))
}

func TestCanEdit(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	assert.False(t, CanEdit(RoleAbu, me, me))
	assert.True(t, CanEdit(RoleIjo, me, me))
	assert.False(t, CanEdit(RoleIjo, me, other))
	assert.True(t, CanEdit(RoleUltra, me, other))
	assert.True(t, CanEdit(RoleRaden, me, other))
}

func TestCanDelete(t *testing.T) {
	assert.False(t, CanDelete(RoleAbu))
	// pemilik Ijo pun tidak boleh hapus
	assert.False(t, CanDelete(RoleIjo))
	assert.True(t, CanDelete(RoleUltra))
	assert.True(t, CanDelete(RoleRaden))
}

func TestCanCreate(t *testing.T) {
	assert.False(t, CanCreate(RoleAbu))
	assert.True(t, CanCreate(RoleIjo))
	assert.True(t, CanCreate(RoleUltra))
	assert.True(t, CanCreate(RoleRaden))
}
