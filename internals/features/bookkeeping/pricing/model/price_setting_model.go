// internals/features/bookkeeping/pricing/model/price_setting_model.go
package model

import (
	"time"

	"github.com/lib/pq"
)

// PriceSettingModel: satu tabel konfigurasi harga, key (scope, item_kind, roles).
// Baris aktif meng-override tabel harga bawaan di policy untuk role yang cocok.
// Literal harga lain di call site dianggap bug migrasi dan dihilangkan.
type PriceSettingModel struct {
	PriceSettingID       int            `gorm:"primaryKey;autoIncrement;column:price_setting_id" json:"price_setting_id"`
	PriceSettingScope    string         `gorm:"type:varchar(16);not null;column:price_setting_scope" json:"price_setting_scope"`         // external | internal
	PriceSettingItemKind string         `gorm:"type:varchar(16);not null;column:price_setting_item_kind" json:"price_setting_item_kind"` // seed | leaf
	PriceSettingRoles    pq.StringArray `gorm:"type:text[];not null;column:price_setting_roles" json:"price_setting_roles"`
	PriceSettingPrice    int            `gorm:"not null;column:price_setting_price" json:"price_setting_price"`
	PriceSettingIsActive bool           `gorm:"not null;default:true;column:price_setting_is_active" json:"price_setting_is_active"`

	PriceSettingCreatedAt time.Time  `gorm:"column:price_setting_created_at;autoCreateTime" json:"price_setting_created_at"`
	PriceSettingUpdatedAt *time.Time `gorm:"column:price_setting_updated_at;autoUpdateTime" json:"price_setting_updated_at,omitempty"`
}

func (PriceSettingModel) TableName() string { return "price_settings" }

// AppliesTo: cek apakah baris ini berlaku untuk role tertentu
func (m *PriceSettingModel) AppliesTo(role string) bool {
	for _, r := range m.PriceSettingRoles {
		if r == role {
			return true
		}
	}
	return false
}
