// internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel: akun aplikasi. Role disimpan di sini sebagai string bertingkat
// (Abu < Ijo < Ultra < Raden); default pendaftar baru adalah Abu (read-only).
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"type:varchar(50);not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"type:varchar(255);unique;not null;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:varchar(250);not null;column:user_password" json:"-"`
	UserRole     string    `gorm:"type:varchar(16);not null;default:'Abu';column:user_role" json:"user_role"`
	UserIsActive bool      `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
