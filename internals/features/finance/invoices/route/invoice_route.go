package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/invoices/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

// InvoiceRoutes — semua endpoint invoice + pembayaran
func InvoiceRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewInvoiceController(db)

	invoices := app.Group("/api/invoices", authMiddleware.AuthMiddleware(db))
	invoices.Post("/", ctrl.CreateInvoice)
	invoices.Get("/", ctrl.GetInvoices)
	invoices.Get("/:id", ctrl.GetInvoiceByID)
	invoices.Put("/:id", ctrl.UpdateInvoice)
	invoices.Patch("/:id/paid", ctrl.MarkAsPaid)
	invoices.Post("/:id/pay", ctrl.PayInvoice)
	invoices.Delete("/:id", ctrl.DeleteInvoice)

	// callback Midtrans — tanpa auth (di-skip di middleware JWT)
	invoices.Post("/payment/webhook", ctrl.PaymentWebhook)
}
