package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"benihku_backend/internals/constants"
	wlController "benihku_backend/internals/features/bookkeeping/weekly_limits/controller"
	"benihku_backend/internals/middlewares"
	"benihku_backend/internals/middlewares/auth"
)

func WeeklyLimitRoutes(r fiber.Router, db *gorm.DB) {
	h := wlController.NewWeeklyLimitController(db)

	g := r.Group("/weekly-limits")

	// snapshot kuota terbuka untuk semua user terautentikasi
	g.Get("/current", h.CurrentAll)
	g.Get("/current/:group_id", h.Current)
	g.Get("/history/:group_id", h.History)

	// rollover adalah operasi administratif: Ultra ke atas + rate limit ketat
	g.Post("/rollover",
		auth.OnlyRolesSlice(constants.RoleErrorUltra("rollover kuota mingguan"), constants.UltraAndAbove),
		middlewares.RolloverRateLimiter(),
		h.Rollover,
	)
	g.Get("/rollover-runs",
		auth.OnlyRolesSlice(constants.RoleErrorUltra("riwayat rollover"), constants.UltraAndAbove),
		h.RolloverRuns,
	)
}
