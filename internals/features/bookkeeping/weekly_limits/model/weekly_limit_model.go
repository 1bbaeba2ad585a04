// internals/features/bookkeeping/weekly_limits/model/weekly_limit_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// WeeklyLimitModel: satu baris per (group, minggu).
// Invarian: remaining == total - used, total == limit dasar group + carry.
type WeeklyLimitModel struct {
	WeeklyLimitID        int       `gorm:"primaryKey;autoIncrement;column:weekly_limit_id" json:"weekly_limit_id"`
	WeeklyLimitGroupID   int       `gorm:"not null;index;uniqueIndex:uq_weekly_limit_group_week;column:weekly_limit_group_id" json:"weekly_limit_group_id"`
	WeeklyLimitWeekStart time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_weekly_limit_group_week;column:weekly_limit_week_start" json:"weekly_limit_week_start"`
	WeeklyLimitWeekEnd   time.Time `gorm:"type:date;not null;column:weekly_limit_week_end" json:"weekly_limit_week_end"`

	WeeklyLimitTotal       int `gorm:"not null;default:400;column:weekly_limit_total" json:"weekly_limit_total"`
	WeeklyLimitUsed        int `gorm:"not null;default:0;column:weekly_limit_used" json:"weekly_limit_used"`
	WeeklyLimitRemaining   int `gorm:"not null;default:400;column:weekly_limit_remaining" json:"weekly_limit_remaining"`
	WeeklyLimitCarriedOver int `gorm:"not null;default:0;column:weekly_limit_carried_over" json:"weekly_limit_carried_over"`

	WeeklyLimitCreatedAt time.Time  `gorm:"column:weekly_limit_created_at;autoCreateTime" json:"weekly_limit_created_at"`
	WeeklyLimitUpdatedAt *time.Time `gorm:"column:weekly_limit_updated_at;autoUpdateTime" json:"weekly_limit_updated_at,omitempty"`
}

func (WeeklyLimitModel) TableName() string { return "weekly_limits" }

// RolloverRunModel: jejak setiap eksekusi rollover (audit + debug idempotensi).
type RolloverRunModel struct {
	RolloverRunID           int            `gorm:"primaryKey;autoIncrement;column:rollover_run_id" json:"rollover_run_id"`
	RolloverRunRanAt        time.Time      `gorm:"not null;column:rollover_run_ran_at" json:"rollover_run_ran_at"`
	RolloverRunCreatedCount int            `gorm:"not null;default:0;column:rollover_run_created_count" json:"rollover_run_created_count"`
	RolloverRunCreatedRows  datatypes.JSON `gorm:"column:rollover_run_created_rows" json:"rollover_run_created_rows,omitempty"`

	RolloverRunCreatedAt time.Time `gorm:"column:rollover_run_created_at;autoCreateTime" json:"rollover_run_created_at"`
}

func (RolloverRunModel) TableName() string { return "rollover_runs" }
