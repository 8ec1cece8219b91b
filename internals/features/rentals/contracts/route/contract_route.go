package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/rentals/contracts/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func ContractRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewContractController(db)

	contracts := app.Group("/api/contracts", authMiddleware.AuthMiddleware(db))
	contracts.Post("/", ctrl.CreateContract)
	contracts.Get("/", ctrl.GetContracts)
	contracts.Get("/:id", ctrl.GetContractByID)
	contracts.Put("/:id", ctrl.UpdateContract)
	contracts.Patch("/:id/end", ctrl.EndContract)
	contracts.Delete("/:id", ctrl.DeleteContract)
}
