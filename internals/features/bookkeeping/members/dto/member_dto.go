// internals/features/bookkeeping/members/dto/member_dto.go
package dto

import (
	"time"

	mModel "benihku_backend/internals/features/bookkeeping/members/model"
)

type CreateMemberRequest struct {
	MemberName string `json:"member_name" validate:"required,min=2,max=100"`
}

func (r *CreateMemberRequest) ToModel() *mModel.MemberModel {
	return &mModel.MemberModel{MemberName: r.MemberName}
}

type UpdateMemberRequest struct {
	MemberName string `json:"member_name" validate:"required,min=2,max=100"`
}

func (r *UpdateMemberRequest) ApplyToModel(m *mModel.MemberModel) {
	m.MemberName = r.MemberName
}

type MemberResponse struct {
	MemberID        int        `json:"member_id"`
	MemberName      string     `json:"member_name"`
	MemberCreatedAt time.Time  `json:"member_created_at"`
	MemberUpdatedAt *time.Time `json:"member_updated_at,omitempty"`
}

func NewMemberResponse(m *mModel.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:        m.MemberID,
		MemberName:      m.MemberName,
		MemberCreatedAt: m.MemberCreatedAt,
		MemberUpdatedAt: m.MemberUpdatedAt,
	}
}
