package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetRoute "kostku_backend/internals/features/assets/route"
	invoiceRoute "kostku_backend/internals/features/finance/invoices/route"
	notificationRoute "kostku_backend/internals/features/maintenance/notifications/route"
	scheduleRoute "kostku_backend/internals/features/maintenance/schedules/route"
	contractRoute "kostku_backend/internals/features/rentals/contracts/route"
	roomRoute "kostku_backend/internals/features/rentals/rooms/route"
	tenantRoute "kostku_backend/internals/features/rentals/tenants/route"
	authRoute "kostku_backend/internals/features/users/auth/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up Rental routes...")
	roomRoute.RoomRoutes(app, db)
	tenantRoute.TenantRoutes(app, db)
	contractRoute.ContractRoutes(app, db)

	log.Println("[INFO] Setting up Asset routes...")
	assetRoute.AssetRoutes(app, db)

	log.Println("[INFO] Setting up Maintenance routes...")
	scheduleRoute.MaintenanceScheduleRoutes(app, db)
	notificationRoute.NotificationRoutes(app, db)

	log.Println("[INFO] Setting up Invoice routes...")
	invoiceRoute.InvoiceRoutes(app, db)
}
