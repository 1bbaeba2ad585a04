// internals/features/bookkeeping/weekly_limits/controller/weekly_limit_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gModel "benihku_backend/internals/features/bookkeeping/groups/model"
	wlDTO "benihku_backend/internals/features/bookkeeping/weekly_limits/dto"
	wlModel "benihku_backend/internals/features/bookkeeping/weekly_limits/model"
	wlService "benihku_backend/internals/features/bookkeeping/weekly_limits/service"
	helper "benihku_backend/internals/helpers"
)

type WeeklyLimitController struct {
	DB      *gorm.DB
	Service *wlService.LimitService
}

func NewWeeklyLimitController(db *gorm.DB) *WeeklyLimitController {
	return &WeeklyLimitController{DB: db, Service: wlService.NewLimitService(db)}
}

/* ===================== HANDLERS ===================== */

// GET /weekly-limits/current/:group_id
// Baris minggu berjalan untuk satu kelompok (dibuat lazily kalau belum ada).
func (h *WeeklyLimitController) Current(c *fiber.Ctx) error {
	groupID, err := strconv.Atoi(c.Params("group_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelompok tidak valid")
	}

	wl, err := h.Service.GetOrCreateCurrentLimit(c.UserContext(), groupID, time.Now())
	if err != nil {
		if errors.Is(err, wlService.ErrGroupNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelompok tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kuota mingguan")
	}
	return helper.JsonOK(c, "OK", wlDTO.NewWeeklyLimitResponse(wl))
}

// GET /weekly-limits/current
// Snapshot minggu berjalan untuk SEMUA kelompok (dashboard).
func (h *WeeklyLimitController) CurrentAll(c *fiber.Ctx) error {
	var groups []gModel.GroupModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("group_name ASC").Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelompok")
	}

	now := time.Now()
	out := make([]wlDTO.WeeklyLimitResponse, 0, len(groups))
	for i := range groups {
		wl, err := h.Service.GetOrCreateCurrentLimit(c.UserContext(), groups[i].GroupID, now)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kuota mingguan")
		}
		out = append(out, wlDTO.NewWeeklyLimitResponse(wl))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /weekly-limits/history/:group_id?limit=10
func (h *WeeklyLimitController) History(c *fiber.Ctx) error {
	groupID, err := strconv.Atoi(c.Params("group_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelompok tidak valid")
	}
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	rows, err := h.Service.History(c.UserContext(), groupID, limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat kuota")
	}

	out := make([]wlDTO.WeeklyLimitResponse, 0, len(rows))
	for i := range rows {
		out = append(out, wlDTO.NewWeeklyLimitResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /weekly-limits/rollover  (Ultra ke atas)
func (h *WeeklyLimitController) Rollover(c *fiber.Ctx) error {
	created, err := h.Service.Rollover(c.UserContext(), time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menjalankan rollover mingguan")
	}

	out := make([]wlDTO.WeeklyLimitResponse, 0, len(created))
	for i := range created {
		out = append(out, wlDTO.NewWeeklyLimitResponse(&created[i]))
	}
	return helper.JsonOK(c, "Rollover selesai", fiber.Map{
		"created_count": len(created),
		"created_rows":  out,
	})
}

// GET /weekly-limits/rollover-runs?limit=20  (Ultra ke atas)
func (h *WeeklyLimitController) RolloverRuns(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows []wlModel.RolloverRunModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("rollover_run_ran_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat rollover")
	}

	out := make([]wlDTO.RolloverRunResponse, 0, len(rows))
	for i := range rows {
		out = append(out, wlDTO.NewRolloverRunResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}
