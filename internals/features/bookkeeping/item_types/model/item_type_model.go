// internals/features/bookkeeping/item_types/model/item_type_model.go
package model

import (
	"time"
)

// SeedTypeModel: jenis benih yang dijual.
type SeedTypeModel struct {
	SeedTypeID          int     `gorm:"primaryKey;autoIncrement;column:seed_type_id" json:"seed_type_id"`
	SeedTypeName        string  `gorm:"type:varchar(100);not null;column:seed_type_name" json:"seed_type_name"`
	SeedTypeDescription *string `gorm:"type:varchar(500);column:seed_type_description" json:"seed_type_description,omitempty"`

	// harga default hanya informasi katalog; harga jual selalu dihitung per role
	SeedTypeDefaultPrice *int `gorm:"column:seed_type_default_price" json:"seed_type_default_price,omitempty"`

	SeedTypeCreatedAt time.Time  `gorm:"column:seed_type_created_at;autoCreateTime" json:"seed_type_created_at"`
	SeedTypeUpdatedAt *time.Time `gorm:"column:seed_type_updated_at;autoUpdateTime" json:"seed_type_updated_at,omitempty"`
}

func (SeedTypeModel) TableName() string { return "seed_types" }

// LeafTypeModel: jenis daun yang dibeli; terikat ke satu jenis benih.
type LeafTypeModel struct {
	LeafTypeID           int     `gorm:"primaryKey;autoIncrement;column:leaf_type_id" json:"leaf_type_id"`
	LeafTypeName         string  `gorm:"type:varchar(100);not null;column:leaf_type_name" json:"leaf_type_name"`
	LeafTypeDescription  *string `gorm:"type:varchar(500);column:leaf_type_description" json:"leaf_type_description,omitempty"`
	LeafTypeSeedTypeID   int     `gorm:"not null;column:leaf_type_seed_type_id" json:"leaf_type_seed_type_id"`
	LeafTypeDefaultPrice *int    `gorm:"column:leaf_type_default_price" json:"leaf_type_default_price,omitempty"`

	LeafTypeCreatedAt time.Time  `gorm:"column:leaf_type_created_at;autoCreateTime" json:"leaf_type_created_at"`
	LeafTypeUpdatedAt *time.Time `gorm:"column:leaf_type_updated_at;autoUpdateTime" json:"leaf_type_updated_at,omitempty"`
}

func (LeafTypeModel) TableName() string { return "leaf_types" }
