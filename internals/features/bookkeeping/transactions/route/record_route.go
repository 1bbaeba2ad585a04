package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"benihku_backend/internals/constants"
	txController "benihku_backend/internals/features/bookkeeping/transactions/controller"
	txModel "benihku_backend/internals/features/bookkeeping/transactions/model"
	"benihku_backend/internals/middlewares/auth"
)

// RecordRoutes: empat jenis pembukuan, pola route identik.
// external → owner kelompok; internal → owner anggota.
func RecordRoutes(r fiber.Router, db *gorm.DB) {
	registerKind(r.Group("/sales"), db, txModel.KindSale, "penjualan benih")
	registerKind(r.Group("/leaf-purchases"), db, txModel.KindLeafPurchase, "pembelian daun")
	registerKind(r.Group("/internal/sales"), db, txModel.KindInternalSale, "penjualan benih internal")
	registerKind(r.Group("/internal/leaf-purchases"), db, txModel.KindInternalLeafPurchase, "pembelian daun internal")
}

func registerKind(g fiber.Router, db *gorm.DB, kind txModel.RecordKind, feature string) {
	h := txController.NewRecordController(db, kind)

	// semua user terautentikasi boleh membaca (Ijo difilter di service)
	g.Get("/", h.List)
	g.Get("/totals", h.Totals)
	g.Get("/:id", h.Detail)

	// Ijo ke atas boleh mencatat
	g.Post("/",
		auth.OnlyRolesSlice(constants.RoleErrorIjo(feature), constants.IjoAndAbove),
		h.Create,
	)

	// PATCH tidak digate di middleware: aturan Ijo-pemilik dicek di service
	g.Patch("/:id", h.Update)

	// hapus khusus Ultra/Raden
	g.Delete("/:id",
		auth.OnlyRolesSlice(constants.RoleErrorUltra("penghapusan "+feature), constants.UltraAndAbove),
		h.Delete,
	)
}
