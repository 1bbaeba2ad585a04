// internals/features/bookkeeping/weekly_limits/dto/weekly_limit_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	wlModel "benihku_backend/internals/features/bookkeeping/weekly_limits/model"
)

type WeeklyLimitResponse struct {
	WeeklyLimitID          int       `json:"weekly_limit_id"`
	WeeklyLimitGroupID     int       `json:"weekly_limit_group_id"`
	WeeklyLimitWeekStart   string    `json:"weekly_limit_week_start"`
	WeeklyLimitWeekEnd     string    `json:"weekly_limit_week_end"`
	WeeklyLimitTotal       int       `json:"weekly_limit_total"`
	WeeklyLimitUsed        int       `json:"weekly_limit_used"`
	WeeklyLimitRemaining   int       `json:"weekly_limit_remaining"`
	WeeklyLimitCarriedOver int       `json:"weekly_limit_carried_over"`
	WeeklyLimitCreatedAt   time.Time `json:"weekly_limit_created_at"`
}

func NewWeeklyLimitResponse(m *wlModel.WeeklyLimitModel) WeeklyLimitResponse {
	return WeeklyLimitResponse{
		WeeklyLimitID:          m.WeeklyLimitID,
		WeeklyLimitGroupID:     m.WeeklyLimitGroupID,
		WeeklyLimitWeekStart:   m.WeeklyLimitWeekStart.Format("2006-01-02"),
		WeeklyLimitWeekEnd:     m.WeeklyLimitWeekEnd.Format("2006-01-02"),
		WeeklyLimitTotal:       m.WeeklyLimitTotal,
		WeeklyLimitUsed:        m.WeeklyLimitUsed,
		WeeklyLimitRemaining:   m.WeeklyLimitRemaining,
		WeeklyLimitCarriedOver: m.WeeklyLimitCarriedOver,
		WeeklyLimitCreatedAt:   m.WeeklyLimitCreatedAt,
	}
}

type RolloverRunResponse struct {
	RolloverRunID           int            `json:"rollover_run_id"`
	RolloverRunRanAt        time.Time      `json:"rollover_run_ran_at"`
	RolloverRunCreatedCount int            `json:"rollover_run_created_count"`
	RolloverRunCreatedRows  datatypes.JSON `json:"rollover_run_created_rows,omitempty"`
}

func NewRolloverRunResponse(m *wlModel.RolloverRunModel) RolloverRunResponse {
	return RolloverRunResponse{
		RolloverRunID:           m.RolloverRunID,
		RolloverRunRanAt:        m.RolloverRunRanAt,
		RolloverRunCreatedCount: m.RolloverRunCreatedCount,
		RolloverRunCreatedRows:  m.RolloverRunCreatedRows,
	}
}
