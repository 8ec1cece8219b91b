package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/maintenance/schedules/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func MaintenanceScheduleRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewMaintenanceScheduleController(db)

	sched := app.Group("/api/maintenance-schedules", authMiddleware.AuthMiddleware(db))
	sched.Post("/", ctrl.CreateSchedule)
	sched.Get("/", ctrl.GetSchedules)
	sched.Post("/check-due", ctrl.TriggerDueCheck)
	sched.Get("/:id", ctrl.GetScheduleByID)
	sched.Put("/:id", ctrl.UpdateSchedule)
	sched.Patch("/:id/done", ctrl.MarkAsDone)
	sched.Delete("/:id", ctrl.DeleteSchedule)
}
