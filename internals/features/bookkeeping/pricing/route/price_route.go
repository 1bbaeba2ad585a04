package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"benihku_backend/internals/constants"
	pController "benihku_backend/internals/features/bookkeeping/pricing/controller"
	"benihku_backend/internals/middlewares/auth"
)

// Route harga untuk semua user terautentikasi (query murni role → harga)
func PriceRoutes(r fiber.Router, db *gorm.DB) {
	h := pController.NewPriceController(db)

	g := r.Group("/prices")
	g.Get("/seed", h.SeedPrice)
	g.Get("/leaf", h.LeafPrice)
}

// Route konfigurasi harga — hanya Raden
func PriceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := pController.NewPriceController(db)

	g := admin.Group("/prices/settings",
		auth.OnlyRolesSlice(
			constants.RoleErrorRaden("pengelolaan harga"),
			constants.RadenOnly,
		),
	)
	g.Get("/", h.ListSettings)
	g.Post("/", h.CreateSetting)
	g.Patch("/:id", h.UpdateSetting)
	g.Delete("/:id", h.DeleteSetting)
}
