// internals/features/bookkeeping/groups/controller/group_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gDTO "benihku_backend/internals/features/bookkeeping/groups/dto"
	gModel "benihku_backend/internals/features/bookkeeping/groups/model"
	helper "benihku_backend/internals/helpers"
)

var validate = validator.New()

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /groups
func (h *GroupController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	dbq := h.DB.WithContext(c.UserContext()).Model(&gModel.GroupModel{})
	if v := strings.TrimSpace(c.Query("name")); v != "" {
		dbq = dbq.Where("group_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelompok")
	}

	var rows []gModel.GroupModel
	if err := dbq.Order("group_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelompok")
	}

	out := make([]gDTO.GroupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, gDTO.NewGroupResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /groups/:id
func (h *GroupController) Detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m gModel.GroupModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelompok tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelompok")
	}
	return helper.JsonOK(c, "OK", gDTO.NewGroupResponse(&m))
}

// POST /groups
func (h *GroupController) Create(c *fiber.Ctx) error {
	var req gDTO.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelompok sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelompok")
	}
	return helper.JsonCreated(c, "Kelompok dibuat", gDTO.NewGroupResponse(m))
}

// PATCH /groups/:id
func (h *GroupController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req gDTO.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m gModel.GroupModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelompok tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelompok")
	}

	req.ApplyToModel(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelompok sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelompok")
	}
	return helper.JsonUpdated(c, "Kelompok diperbarui", gDTO.NewGroupResponse(&m))
}

// DELETE /groups/:id
func (h *GroupController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&gModel.GroupModel{}, "group_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelompok")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelompok tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelompok dihapus", fiber.Map{"id": id})
}
