package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"benihku_backend/internals/constants"
	gController "benihku_backend/internals/features/bookkeeping/groups/controller"
	"benihku_backend/internals/middlewares/auth"
)

func GroupRoutes(r fiber.Router, db *gorm.DB) {
	h := gController.NewGroupController(db)

	g := r.Group("/groups")

	// semua user terautentikasi boleh lihat
	g.Get("/", h.List)
	g.Get("/:id", h.Detail)

	// Ijo ke atas boleh membuat
	g.Post("/",
		auth.OnlyRolesSlice(constants.RoleErrorIjo("pembuatan kelompok"), constants.IjoAndAbove),
		h.Create,
	)

	// Ultra/Raden untuk ubah & hapus
	g.Patch("/:id",
		auth.OnlyRolesSlice(constants.RoleErrorUltra("pengubahan kelompok"), constants.UltraAndAbove),
		h.Update,
	)
	g.Delete("/:id",
		auth.OnlyRolesSlice(constants.RoleErrorUltra("penghapusan kelompok"), constants.UltraAndAbove),
		h.Delete,
	)
}
