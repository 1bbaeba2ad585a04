// internals/features/bookkeeping/transactions/controller/record_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"benihku_backend/internals/features/bookkeeping/pricing/policy"
	pService "benihku_backend/internals/features/bookkeeping/pricing/service"
	txDTO "benihku_backend/internals/features/bookkeeping/transactions/dto"
	txModel "benihku_backend/internals/features/bookkeeping/transactions/model"
	txService "benihku_backend/internals/features/bookkeeping/transactions/service"
	wlService "benihku_backend/internals/features/bookkeeping/weekly_limits/service"
	helper "benihku_backend/internals/helpers"
)

var validate = validator.New()

// RecordController: satu controller untuk keempat jenis pembukuan.
// Jenisnya ditentukan saat registrasi route, bukan dari request.
type RecordController struct {
	Kind    txModel.RecordKind
	Service *txService.RecordService
}

func NewRecordController(db *gorm.DB, kind txModel.RecordKind) *RecordController {
	return &RecordController{Kind: kind, Service: txService.NewRecordService(db)}
}

func actorFromToken(c *fiber.Ctx) (policy.Actor, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return policy.Actor{}, err
	}
	roleStr, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return policy.Actor{}, err
	}
	role, err := policy.ParseRole(roleStr)
	if err != nil {
		return policy.Actor{}, fiber.NewError(fiber.StatusForbidden, "Role tidak dikenal")
	}
	return policy.Actor{UserID: userID, Role: role}, nil
}

func respondServiceError(c *fiber.Ctx, err error) error {
	var insuf *wlService.InsufficientQuotaError
	switch {
	case errors.As(err, &insuf):
		return helper.ErrorWithDetails(c, fiber.StatusConflict,
			"Kuota benih mingguan tidak cukup", fiber.Map{
				"requested": insuf.Requested,
				"remaining": insuf.Remaining,
			})
	case errors.Is(err, txService.ErrForbidden):
		return helper.JsonError(c, fiber.StatusForbidden, "Role Anda tidak diizinkan melakukan aksi ini")
	case errors.Is(err, txService.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Record tidak ditemukan")
	case errors.Is(err, txService.ErrOwnerNotFound), errors.Is(err, wlService.ErrGroupNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pemilik record tidak ditemukan")
	case errors.Is(err, txService.ErrItemTypeNotFound):
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe item tidak ditemukan")
	case errors.Is(err, txService.ErrInvalidQuantity),
		errors.Is(err, wlService.ErrInvalidQuantity),
		errors.Is(err, pService.ErrNegativeQuantity):
		return helper.JsonError(c, fiber.StatusBadRequest, "Kuantitas tidak valid")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Operasi pembukuan gagal")
	}
}

/* ===================== HANDLERS ===================== */

// GET /
func (h *RecordController) List(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)
	var ownerID *int
	if v := c.Query("owner_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "owner_id tidak valid")
		}
		ownerID = &id
	}

	rows, total, err := h.Service.List(c.UserContext(), h.Kind, actor, ownerID, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	out := make([]txDTO.RecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, txDTO.NewRecordResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /totals
func (h *RecordController) Totals(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ownerID *int
	if v := c.Query("owner_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "owner_id tidak valid")
		}
		ownerID = &id
	}

	totals, err := h.Service.Totals(c.UserContext(), h.Kind, actor, ownerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", totals)
}

// GET /:id
func (h *RecordController) Detail(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := h.Service.Get(c.UserContext(), h.Kind, actor, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", txDTO.NewRecordResponse(m))
}

// POST /
func (h *RecordController) Create(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req txDTO.CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.Service.Create(c.UserContext(), h.Kind, actor, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonCreated(c, "Record dibuat", txDTO.NewRecordResponse(m))
}

// PATCH /:id
func (h *RecordController) Update(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req txDTO.UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.Service.Update(c.UserContext(), h.Kind, actor, id, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Record diperbarui", txDTO.NewRecordResponse(m))
}

// DELETE /:id
func (h *RecordController) Delete(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.Service.Delete(c.UserContext(), h.Kind, actor, id); err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Record dihapus", fiber.Map{"id": id})
}
