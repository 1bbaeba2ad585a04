// internals/seeds/admin_seeder.go
package seeds

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"benihku_backend/internals/constants"
	uModel "benihku_backend/internals/features/users/model"
)

// EnsureRadenUser: jamin minimal satu akun Raden ada saat boot.
// Idempotent: kalau sudah ada Raden, tidak melakukan apa-apa.
func EnsureRadenUser(db *gorm.DB) {
	var existing uModel.UserModel
	err := db.First(&existing, "user_role = ?", constants.RoleRaden).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[WARN] gagal memeriksa akun Raden: %v", err)
		return
	}

	email := os.Getenv("SEED_RADEN_EMAIL")
	password := os.Getenv("SEED_RADEN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[WARN] belum ada akun Raden dan SEED_RADEN_EMAIL/SEED_RADEN_PASSWORD kosong; lewati seeding")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] gagal hash password Raden: %v", err)
		return
	}

	u := uModel.UserModel{
		UserName:     "Raden",
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleRaden,
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("[ERROR] gagal membuat akun Raden awal: %v", err)
		return
	}
	log.Printf("✅ Akun Raden awal dibuat: %s", email)
}
