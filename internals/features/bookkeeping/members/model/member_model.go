// internals/features/bookkeeping/members/model/member_model.go
package model

import (
	"time"
)

// MemberModel: anggota internal. Ledger-nya terpisah dari kelompok
// dan tidak punya kuota mingguan.
type MemberModel struct {
	MemberID   int    `gorm:"primaryKey;autoIncrement;column:member_id" json:"member_id"`
	MemberName string `gorm:"type:varchar(100);not null;column:member_name" json:"member_name"`

	MemberCreatedAt time.Time  `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
