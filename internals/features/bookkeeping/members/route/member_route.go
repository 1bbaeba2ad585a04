package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"benihku_backend/internals/constants"
	mController "benihku_backend/internals/features/bookkeeping/members/controller"
	"benihku_backend/internals/middlewares/auth"
)

func MemberRoutes(r fiber.Router, db *gorm.DB) {
	h := mController.NewMemberController(db)

	g := r.Group("/members")

	g.Get("/", h.List)
	g.Get("/count", h.TotalCount)
	g.Get("/:id", h.Detail)

	g.Post("/",
		auth.OnlyRolesSlice(constants.RoleErrorIjo("pendaftaran anggota"), constants.IjoAndAbove),
		h.Create,
	)
	g.Patch("/:id",
		auth.OnlyRolesSlice(constants.RoleErrorUltra("pengubahan anggota"), constants.UltraAndAbove),
		h.Update,
	)
	g.Delete("/:id",
		auth.OnlyRolesSlice(constants.RoleErrorUltra("penghapusan anggota"), constants.UltraAndAbove),
		h.Delete,
	)
}
