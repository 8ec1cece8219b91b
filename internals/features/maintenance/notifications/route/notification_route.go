package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/maintenance/notifications/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func NotificationRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notif := app.Group("/api/notifications", authMiddleware.AuthMiddleware(db))
	notif.Get("/", ctrl.GetNotifications)
	notif.Put("/read-all", ctrl.MarkAllAsRead)
	notif.Put("/:id/read", ctrl.MarkAsRead)
	notif.Delete("/:id", ctrl.DeleteNotification)
}
