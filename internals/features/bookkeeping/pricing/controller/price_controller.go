// internals/features/bookkeeping/pricing/controller/price_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pDTO "benihku_backend/internals/features/bookkeeping/pricing/dto"
	pModel "benihku_backend/internals/features/bookkeeping/pricing/model"
	"benihku_backend/internals/features/bookkeeping/pricing/policy"
	pService "benihku_backend/internals/features/bookkeeping/pricing/service"
	helper "benihku_backend/internals/helpers"
)

var validate = validator.New()

type PriceController struct {
	DB       *gorm.DB
	Resolver *pService.Resolver
}

func NewPriceController(db *gorm.DB) *PriceController {
	return &PriceController{DB: db, Resolver: pService.NewResolver(db)}
}

/* ===================== PURE QUERIES ===================== */

// GET /prices/seed?role=Ijo&scope=external
func (h *PriceController) SeedPrice(c *fiber.Ctx) error {
	return h.unitPrice(c, policy.ItemSeed)
}

// GET /prices/leaf?role=Ijo&scope=internal
func (h *PriceController) LeafPrice(c *fiber.Ctx) error {
	return h.unitPrice(c, policy.ItemLeaf)
}

func (h *PriceController) unitPrice(c *fiber.Ctx, kind policy.ItemKind) error {
	role, err := policy.ParseRole(c.Query("role"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
	}
	scope := policy.ScopeExternal
	if strings.EqualFold(c.Query("scope"), string(policy.ScopeInternal)) {
		scope = policy.ScopeInternal
	}

	q, err := h.Resolver.Resolve(c.UserContext(), kind, scope, role, 1)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil harga")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"item_kind":  string(kind),
		"scope":      string(scope),
		"role":       string(role),
		"unit_price": q.UnitPrice,
	})
}

/* ===================== PRICE SETTINGS (RADEN) ===================== */

// GET /prices/settings
func (h *PriceController) ListSettings(c *fiber.Ctx) error {
	var rows []pModel.PriceSettingModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("price_setting_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi harga")
	}

	out := make([]pDTO.PriceSettingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, pDTO.NewPriceSettingResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /prices/settings
func (h *PriceController) CreateSetting(c *fiber.Ctx) error {
	var req pDTO.CreatePriceSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat konfigurasi harga")
	}
	return helper.JsonCreated(c, "Konfigurasi harga dibuat", pDTO.NewPriceSettingResponse(m))
}

// PATCH /prices/settings/:id
func (h *PriceController) UpdateSetting(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req pDTO.UpdatePriceSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m pModel.PriceSettingModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "price_setting_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konfigurasi harga tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi harga")
	}

	req.ApplyToModel(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui konfigurasi harga")
	}
	return helper.JsonUpdated(c, "Konfigurasi harga diperbarui", pDTO.NewPriceSettingResponse(&m))
}

// DELETE /prices/settings/:id
func (h *PriceController) DeleteSetting(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&pModel.PriceSettingModel{}, "price_setting_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus konfigurasi harga")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konfigurasi harga tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Konfigurasi harga dihapus", fiber.Map{"id": id})
}
