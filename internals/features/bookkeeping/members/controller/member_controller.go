// internals/features/bookkeeping/members/controller/member_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mDTO "benihku_backend/internals/features/bookkeeping/members/dto"
	mModel "benihku_backend/internals/features/bookkeeping/members/model"
	helper "benihku_backend/internals/helpers"
)

var validate = validator.New()

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// GET /members
func (h *MemberController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	dbq := h.DB.WithContext(c.UserContext()).Model(&mModel.MemberModel{})

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung anggota")
	}

	var rows []mModel.MemberModel
	if err := dbq.Order("member_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}

	out := make([]mDTO.MemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, mDTO.NewMemberResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /members/:id
func (h *MemberController) Detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m mModel.MemberModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}
	return helper.JsonOK(c, "OK", mDTO.NewMemberResponse(&m))
}

// GET /members/count
func (h *MemberController) TotalCount(c *fiber.Ctx) error {
	var total int64
	if err := h.DB.WithContext(c.UserContext()).Model(&mModel.MemberModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung anggota")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"total": total})
}

// POST /members
func (h *MemberController) Create(c *fiber.Ctx) error {
	var req mDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat anggota")
	}
	return helper.JsonCreated(c, "Anggota dibuat", mDTO.NewMemberResponse(m))
}

// PATCH /members/:id
func (h *MemberController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req mDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m mModel.MemberModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}

	req.ApplyToModel(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui anggota")
	}
	return helper.JsonUpdated(c, "Anggota diperbarui", mDTO.NewMemberResponse(&m))
}

// DELETE /members/:id
func (h *MemberController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&mModel.MemberModel{}, "member_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Anggota dihapus", fiber.Map{"id": id})
}
