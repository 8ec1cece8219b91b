package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/assets/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func AssetRoutes(app *fiber.App, db *gorm.DB) {
	groupCtrl := controller.NewAssetGroupController(db)
	itemCtrl := controller.NewAssetItemController(db)

	groups := app.Group("/api/asset-groups", authMiddleware.AuthMiddleware(db))
	groups.Post("/", groupCtrl.CreateAssetGroup)
	groups.Get("/", groupCtrl.GetAssetGroups)
	groups.Get("/:id", groupCtrl.GetAssetGroupByID)
	groups.Put("/:id", groupCtrl.UpdateAssetGroup)
	groups.Delete("/:id", groupCtrl.DeleteAssetGroup)

	items := app.Group("/api/asset-items", authMiddleware.AuthMiddleware(db))
	items.Post("/", itemCtrl.CreateAssetItem)
	items.Get("/", itemCtrl.GetAssetItems)
	items.Get("/:id", itemCtrl.GetAssetItemByID)
	items.Put("/:id", itemCtrl.UpdateAssetItem)
	items.Delete("/:id", itemCtrl.DeleteAssetItem)
}
