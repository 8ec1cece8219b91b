package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/rentals/tenants/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func TenantRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewTenantController(db)

	tenants := app.Group("/api/tenants", authMiddleware.AuthMiddleware(db))
	tenants.Post("/", ctrl.CreateTenant)
	tenants.Get("/", ctrl.GetTenants)
	tenants.Get("/:id", ctrl.GetTenantByID)
	tenants.Put("/:id", ctrl.UpdateTenant)
	tenants.Delete("/:id", ctrl.DeleteTenant)
}
