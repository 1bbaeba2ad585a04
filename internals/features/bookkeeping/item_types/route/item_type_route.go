package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"benihku_backend/internals/constants"
	itController "benihku_backend/internals/features/bookkeeping/item_types/controller"
	"benihku_backend/internals/middlewares/auth"
)

func ItemTypeRoutes(r fiber.Router, db *gorm.DB) {
	h := itController.NewItemTypeController(db)

	onlyIjo := auth.OnlyRolesSlice(constants.RoleErrorIjo("pembuatan jenis item"), constants.IjoAndAbove)
	onlyUltra := auth.OnlyRolesSlice(constants.RoleErrorUltra("pengelolaan jenis item"), constants.UltraAndAbove)

	seed := r.Group("/seed-types")
	seed.Get("/", h.ListSeedTypes)
	seed.Get("/:id", h.SeedTypeDetail)
	seed.Post("/", onlyIjo, h.CreateSeedType)
	seed.Patch("/:id", onlyUltra, h.UpdateSeedType)
	seed.Delete("/:id", onlyUltra, h.DeleteSeedType)

	leaf := r.Group("/leaf-types")
	leaf.Get("/", h.ListLeafTypes)
	leaf.Get("/:id", h.LeafTypeDetail)
	leaf.Post("/", onlyIjo, h.CreateLeafType)
	leaf.Patch("/:id", onlyUltra, h.UpdateLeafType)
	leaf.Delete("/:id", onlyUltra, h.DeleteLeafType)
}
