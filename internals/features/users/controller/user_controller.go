// internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	uDTO "benihku_backend/internals/features/users/dto"
	uModel "benihku_backend/internals/features/users/model"
	helper "benihku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /users/me — profil pemegang token
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m uModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "OK", uDTO.NewUserResponse(&m))
}

// GET /users  (Raden)
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	dbq := h.DB.WithContext(c.UserContext()).Model(&uModel.UserModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		dbq = dbq.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+v+"%", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("role")); v != "" {
		dbq = dbq.Where("user_role = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var rows []uModel.UserModel
	if err := dbq.Order("user_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	out := make([]uDTO.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, uDTO.NewUserResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /users/stats  (Raden)
func (h *UserController) Stats(c *fiber.Ctx) error {
	type roleCount struct {
		UserRole string `json:"user_role"`
		Count    int64  `json:"count"`
	}

	var rows []roleCount
	if err := h.DB.WithContext(c.UserContext()).Model(&uModel.UserModel{}).
		Select("user_role, COUNT(*) AS count").
		Group("user_role").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik user")
	}

	out := uDTO.UserStatsResponse{PerRole: make(map[string]int64, len(rows))}
	for _, r := range rows {
		out.PerRole[r.UserRole] = r.Count
		out.TotalUsers += r.Count
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /users/:id  (Raden)
func (h *UserController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m uModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "OK", uDTO.NewUserResponse(&m))
}

// PATCH /users/:id/role  (Raden)
// Raden tidak boleh mengubah role dirinya sendiri, supaya selalu ada
// setidaknya satu jalan masuk administratif.
func (h *UserController) UpdateRole(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if targetID == actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak bisa mengubah role sendiri")
	}

	var req uDTO.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := h.DB.WithContext(c.UserContext()).Model(&uModel.UserModel{}).
		Where("user_id = ?", targetID).
		Update("user_role", req.Role)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var m uModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "user_id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonUpdated(c, "Role diperbarui", uDTO.NewUserResponse(&m))
}
