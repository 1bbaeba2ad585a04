// internals/features/bookkeeping/groups/model/group_model.go
package model

import (
	"time"
)

// GroupModel: kelompok eksternal. Penjualan benih kelompok dibatasi
// kuota mingguan (group_weekly_seed_limit, default 400).
type GroupModel struct {
	GroupID              int    `gorm:"primaryKey;autoIncrement;column:group_id" json:"group_id"`
	GroupName            string `gorm:"type:varchar(256);unique;not null;column:group_name" json:"group_name"`
	GroupWeeklySeedLimit int    `gorm:"not null;default:400;column:group_weekly_seed_limit" json:"group_weekly_seed_limit"`

	GroupCreatedAt time.Time  `gorm:"column:group_created_at;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt *time.Time `gorm:"column:group_updated_at;autoUpdateTime" json:"group_updated_at,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }
