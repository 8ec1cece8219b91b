package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/rentals/rooms/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func RoomRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewRoomController(db)

	rooms := app.Group("/api/rooms", authMiddleware.AuthMiddleware(db))
	rooms.Post("/", ctrl.CreateRoom)
	rooms.Get("/", ctrl.GetRooms)
	rooms.Get("/:id", ctrl.GetRoomByID)
	rooms.Put("/:id", ctrl.UpdateRoom)
	rooms.Post("/:id/image", ctrl.UploadRoomImage)
	rooms.Delete("/:id", ctrl.DeleteRoom)
}
