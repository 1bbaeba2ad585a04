// internals/features/bookkeeping/groups/dto/group_dto.go
package dto

import (
	"time"

	gModel "benihku_backend/internals/features/bookkeeping/groups/model"
)

/* ===================== REQUESTS ===================== */

type CreateGroupRequest struct {
	GroupName            string `json:"group_name" validate:"required,min=1,max=256"`
	GroupWeeklySeedLimit *int   `json:"group_weekly_seed_limit" validate:"omitempty,min=0"`
}

func (r *CreateGroupRequest) ToModel() *gModel.GroupModel {
	m := &gModel.GroupModel{
		GroupName:            r.GroupName,
		GroupWeeklySeedLimit: 400,
	}
	if r.GroupWeeklySeedLimit != nil {
		m.GroupWeeklySeedLimit = *r.GroupWeeklySeedLimit
	}
	return m
}

type UpdateGroupRequest struct {
	GroupName            *string `json:"group_name" validate:"omitempty,min=1,max=256"`
	GroupWeeklySeedLimit *int    `json:"group_weekly_seed_limit" validate:"omitempty,min=0"`
}

func (r *UpdateGroupRequest) ApplyToModel(m *gModel.GroupModel) {
	if r.GroupName != nil {
		m.GroupName = *r.GroupName
	}
	if r.GroupWeeklySeedLimit != nil {
		m.GroupWeeklySeedLimit = *r.GroupWeeklySeedLimit
	}
}

/* ===================== RESPONSES ===================== */

type GroupResponse struct {
	GroupID              int        `json:"group_id"`
	GroupName            string     `json:"group_name"`
	GroupWeeklySeedLimit int        `json:"group_weekly_seed_limit"`
	GroupCreatedAt       time.Time  `json:"group_created_at"`
	GroupUpdatedAt       *time.Time `json:"group_updated_at,omitempty"`
}

func NewGroupResponse(m *gModel.GroupModel) GroupResponse {
	return GroupResponse{
		GroupID:              m.GroupID,
		GroupName:            m.GroupName,
		GroupWeeklySeedLimit: m.GroupWeeklySeedLimit,
		GroupCreatedAt:       m.GroupCreatedAt,
		GroupUpdatedAt:       m.GroupUpdatedAt,
	}
}
