// internals/features/bookkeeping/transactions/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"benihku_backend/internals/features/bookkeeping/pricing/policy"
)

/* ===================== RECORD KIND ===================== */

// RecordKind: empat jenis pembukuan dengan kolom identik, beda tabel.
// Satu model dipakai bersama, tabelnya dipilih dinamis lewat TableName().
type RecordKind string

const (
	KindSale                 RecordKind = "sale"
	KindLeafPurchase         RecordKind = "leaf_purchase"
	KindInternalSale         RecordKind = "internal_sale"
	KindInternalLeafPurchase RecordKind = "internal_leaf_purchase"
)

var kindTables = map[RecordKind]string{
	KindSale:                 "sales",
	KindLeafPurchase:         "leaf_purchases",
	KindInternalSale:         "internal_sales",
	KindInternalLeafPurchase: "internal_leaf_purchases",
}

func (k RecordKind) Valid() bool {
	_, ok := kindTables[k]
	return ok
}

func (k RecordKind) TableName() string { return kindTables[k] }

func (k RecordKind) ItemKind() policy.ItemKind {
	if k == KindLeafPurchase || k == KindInternalLeafPurchase {
		return policy.ItemLeaf
	}
	return policy.ItemSeed
}

func (k RecordKind) Scope() policy.PriceScope {
	if k == KindInternalSale || k == KindInternalLeafPurchase {
		return policy.ScopeInternal
	}
	return policy.ScopeExternal
}

// UsesQuota: hanya penjualan benih external yang memotong kuota mingguan.
func (k RecordKind) UsesQuota() bool { return k == KindSale }

// Internal: owner-nya anggota (members), bukan kelompok (groups).
func (k RecordKind) Internal() bool {
	return k == KindInternalSale || k == KindInternalLeafPurchase
}

/* ===================== MODEL ===================== */

// TransactionModel: skema bersama keempat tabel pembukuan.
// transaction_owner_id menunjuk ke group_id (external) atau member_id (internal).
type TransactionModel struct {
	TransactionID         int `gorm:"primaryKey;autoIncrement;column:transaction_id" json:"transaction_id"`
	TransactionOwnerID    int `gorm:"not null;index;column:transaction_owner_id" json:"transaction_owner_id"`
	TransactionItemTypeID int `gorm:"not null;index;column:transaction_item_type_id" json:"transaction_item_type_id"`

	TransactionQuantity   int `gorm:"not null;column:transaction_quantity" json:"transaction_quantity"`
	TransactionUnitPrice  int `gorm:"not null;column:transaction_unit_price" json:"transaction_unit_price"`
	TransactionTotalPrice int `gorm:"not null;column:transaction_total_price" json:"transaction_total_price"`

	TransactionCreatedByUserID uuid.UUID `gorm:"type:uuid;not null;index;column:transaction_created_by_user_id" json:"transaction_created_by_user_id"`
	TransactionNote            string    `gorm:"type:varchar(512);column:transaction_note" json:"transaction_note,omitempty"`

	TransactionCreatedAt time.Time  `gorm:"column:transaction_created_at;autoCreateTime" json:"transaction_created_at"`
	TransactionUpdatedAt *time.Time `gorm:"column:transaction_updated_at;autoUpdateTime" json:"transaction_updated_at,omitempty"`
}
