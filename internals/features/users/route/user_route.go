package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"benihku_backend/internals/constants"
	uController "benihku_backend/internals/features/users/controller"
	"benihku_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	h := uController.NewUserController(db)

	g := r.Group("/users")

	g.Get("/me", h.Me)

	// manajemen user sepenuhnya urusan Raden
	radenOnly := auth.OnlyRolesSlice(constants.RoleErrorRaden("manajemen user"), constants.RadenOnly)
	g.Get("/", radenOnly, h.List)
	g.Get("/stats", radenOnly, h.Stats)
	g.Get("/:id", radenOnly, h.Detail)
	g.Patch("/:id/role", radenOnly, h.UpdateRole)
}
