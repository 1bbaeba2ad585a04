// internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	uModel "benihku_backend/internals/features/users/model"
)

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Abu Ijo Ultra Raden"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func NewUserResponse(m *uModel.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}

// UserStatsResponse: jumlah user per role (dashboard Raden).
type UserStatsResponse struct {
	TotalUsers int64            `json:"total_users"`
	PerRole    map[string]int64 `json:"per_role"`
}
