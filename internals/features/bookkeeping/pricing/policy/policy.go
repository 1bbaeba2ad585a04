// internals/features/bookkeeping/pricing/policy/policy.go
package policy

import (
	"fmt"

	"github.com/google/uuid"
)

/* ===================== ROLE ===================== */

// Role bertingkat: Abu < Ijo < Ultra < Raden
type Role string

const (
	RoleAbu   Role = "Abu"
	RoleIjo   Role = "Ijo"
	RoleUltra Role = "Ultra"
	RoleRaden Role = "Raden"
)

var roleRank = map[Role]int{
	RoleAbu:   0,
	RoleIjo:   1,
	RoleUltra: 2,
	RoleRaden: 3,
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRank[r]; !ok {
		return "", fmt.Errorf("role tidak dikenal: %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast: true jika r setingkat atau di atas other
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

// Actor: identitas per-request dari identity provider eksternal.
// Selalu dikirim eksplisit ke core, tidak pernah diambil dari state global.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

/* ===================== ITEM & SCOPE ===================== */

type ItemKind string

const (
	ItemSeed ItemKind = "seed"
	ItemLeaf ItemKind = "leaf"
)

// PriceScope membedakan dua tabel harga di sumber data:
// transaksi external (kelompok) dan internal (anggota).
type PriceScope string

const (
	ScopeExternal PriceScope = "external"
	ScopeInternal PriceScope = "internal"
)

/* ===================== TABEL HARGA ===================== */

// Sumber punya dua tabel "standar" yang tidak konsisten (700 vs 300 untuk
// Ultra/Raden). Keduanya dipertahankan di sini, dipisah per scope, sebagai
// satu-satunya sumber kebenaran harga. Lihat DESIGN.md.
var seedPriceExternal = map[Role]int{
	RoleAbu:   100,
	RoleIjo:   200,
	RoleUltra: 700,
	RoleRaden: 700,
}

var seedPriceInternal = map[Role]int{
	RoleAbu:   100,
	RoleIjo:   200,
	RoleUltra: 300,
	RoleRaden: 300,
}

var leafPriceExternal = map[Role]int{
	RoleAbu:   150, // default external tanpa pilihan tipe
	RoleIjo:   200,
	RoleUltra: 200,
	RoleRaden: 200,
}

var leafPriceInternal = map[Role]int{
	RoleAbu:   200,
	RoleIjo:   200,
	RoleUltra: 200,
	RoleRaden: 200,
}

// SeedPrice: harga per benih menurut role pelaku saat aksi terjadi.
func SeedPrice(scope PriceScope, role Role) int {
	if scope == ScopeInternal {
		return seedPriceInternal[role]
	}
	return seedPriceExternal[role]
}

// LeafPrice: harga per daun menurut role pelaku saat aksi terjadi.
func LeafPrice(scope PriceScope, role Role) int {
	if scope == ScopeInternal {
		return leafPriceInternal[role]
	}
	return leafPriceExternal[role]
}

// UnitPrice: satu pintu untuk seed/leaf.
func UnitPrice(kind ItemKind, scope PriceScope, role Role) int {
	if kind == ItemLeaf {
		return LeafPrice(scope, role)
	}
	return SeedPrice(scope, role)
}

/* ===================== PERMISSION ===================== */

// CanEdit: Abu tidak pernah; Ijo hanya record miliknya; Ultra/Raden selalu.
func CanEdit(actorRole Role, actorID, ownerID uuid.UUID) bool {
	switch actorRole {
	case RoleAbu:
		return false
	case RoleIjo:
		return actorID == ownerID
	case RoleUltra, RoleRaden:
		return true
	default:
		return false
	}
}

// CanDelete: hanya Ultra/Raden. Kepemilikan tidak memberi hak hapus.
func CanDelete(role Role) bool {
	return role == RoleUltra || role == RoleRaden
}

// CanCreate: semua kecuali Abu (read-only).
func CanCreate(role Role) bool {
	return role.AtLeast(RoleIjo)
}
