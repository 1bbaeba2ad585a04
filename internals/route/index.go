// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupRoute "benihku_backend/internals/features/bookkeeping/groups/route"
	itemTypeRoute "benihku_backend/internals/features/bookkeeping/item_types/route"
	memberRoute "benihku_backend/internals/features/bookkeeping/members/route"
	priceRoute "benihku_backend/internals/features/bookkeeping/pricing/route"
	txRoute "benihku_backend/internals/features/bookkeeping/transactions/route"
	weeklyLimitRoute "benihku_backend/internals/features/bookkeeping/weekly_limits/route"
	userRoute "benihku_backend/internals/features/users/route"
	"benihku_backend/internals/middlewares/auth"
)

// SetupRoutes: seluruh API di belakang JWT. Identitas (user_id + role) datang
// dari token; gate per-role dipasang di masing-masing route file.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/u", auth.AuthMiddleware())

	groupRoute.GroupRoutes(api, db)
	memberRoute.MemberRoutes(api, db)
	itemTypeRoute.ItemTypeRoutes(api, db)
	weeklyLimitRoute.WeeklyLimitRoutes(api, db)
	txRoute.RecordRoutes(api, db)
	priceRoute.PriceRoutes(api, db)
	userRoute.UserRoutes(api, db)

	// surface admin terpisah: konfigurasi harga (Raden)
	admin := app.Group("/api/a", auth.AuthMiddleware())
	priceRoute.PriceAdminRoutes(admin, db)
}
