// internals/features/bookkeeping/item_types/controller/item_type_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	itDTO "benihku_backend/internals/features/bookkeeping/item_types/dto"
	itModel "benihku_backend/internals/features/bookkeeping/item_types/model"
	helper "benihku_backend/internals/helpers"
)

var validate = validator.New()

type ItemTypeController struct {
	DB *gorm.DB
}

func NewItemTypeController(db *gorm.DB) *ItemTypeController {
	return &ItemTypeController{DB: db}
}

/* ===================== SEED TYPES ===================== */

// GET /seed-types
func (h *ItemTypeController) ListSeedTypes(c *fiber.Ctx) error {
	var rows []itModel.SeedTypeModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("seed_type_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis benih")
	}

	out := make([]itDTO.SeedTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, itDTO.NewSeedTypeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /seed-types/:id
func (h *ItemTypeController) SeedTypeDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m itModel.SeedTypeModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "seed_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis benih tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis benih")
	}
	return helper.JsonOK(c, "OK", itDTO.NewSeedTypeResponse(&m))
}

// POST /seed-types
func (h *ItemTypeController) CreateSeedType(c *fiber.Ctx) error {
	var req itDTO.CreateSeedTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jenis benih")
	}
	return helper.JsonCreated(c, "Jenis benih dibuat", itDTO.NewSeedTypeResponse(m))
}

// PATCH /seed-types/:id
func (h *ItemTypeController) UpdateSeedType(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req itDTO.UpdateSeedTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m itModel.SeedTypeModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "seed_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis benih tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis benih")
	}

	req.ApplyToModel(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jenis benih")
	}
	return helper.JsonUpdated(c, "Jenis benih diperbarui", itDTO.NewSeedTypeResponse(&m))
}

// DELETE /seed-types/:id
func (h *ItemTypeController) DeleteSeedType(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&itModel.SeedTypeModel{}, "seed_type_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jenis benih")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jenis benih tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jenis benih dihapus", fiber.Map{"id": id})
}

/* ===================== LEAF TYPES ===================== */

// GET /leaf-types
func (h *ItemTypeController) ListLeafTypes(c *fiber.Ctx) error {
	var rows []itModel.LeafTypeModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("leaf_type_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis daun")
	}

	out := make([]itDTO.LeafTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, itDTO.NewLeafTypeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /leaf-types/:id
func (h *ItemTypeController) LeafTypeDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m itModel.LeafTypeModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "leaf_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis daun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis daun")
	}
	return helper.JsonOK(c, "OK", itDTO.NewLeafTypeResponse(&m))
}

// POST /leaf-types
func (h *ItemTypeController) CreateLeafType(c *fiber.Ctx) error {
	var req itDTO.CreateLeafTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// pastikan jenis benih induk ada
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).Model(&itModel.SeedTypeModel{}).
		Where("seed_type_id = ?", req.SeedTypeID).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek jenis benih")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis benih induk tidak ditemukan")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jenis daun")
	}
	return helper.JsonCreated(c, "Jenis daun dibuat", itDTO.NewLeafTypeResponse(m))
}

// PATCH /leaf-types/:id
func (h *ItemTypeController) UpdateLeafType(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req itDTO.UpdateLeafTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m itModel.LeafTypeModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "leaf_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis daun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenis daun")
	}

	req.ApplyToModel(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jenis daun")
	}
	return helper.JsonUpdated(c, "Jenis daun diperbarui", itDTO.NewLeafTypeResponse(&m))
}

// DELETE /leaf-types/:id
func (h *ItemTypeController) DeleteLeafType(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&itModel.LeafTypeModel{}, "leaf_type_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jenis daun")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jenis daun tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jenis daun dihapus", fiber.Map{"id": id})
}
