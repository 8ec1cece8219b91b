package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/invoices/dto"
	"kostku_backend/internals/features/finance/invoices/model"
	"kostku_backend/internals/features/finance/invoices/service"
	contractModel "kostku_backend/internals/features/rentals/contracts/model"
	helper "kostku_backend/internals/helpers"
)

type InvoiceController struct {
	DB     *gorm.DB
	Engine *service.PenaltyEngine
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{
		DB:     db,
		Engine: service.NewPenaltyEngine(db),
	}
}

// 🟢 POST /api/invoices — dibuat dari kontrak, nominal kontrak di-snapshot
func (ctrl *InvoiceController) CreateInvoice(c *fiber.Ctx) error {
	var req dto.InvoiceCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var contract contractModel.ContractModel
	if err := ctrl.DB.Where("contract_id = ?", req.InvoiceContractID).First(&contract).Error; err != nil {
		return helper.DatabaseError(c, err, "Kontrak tidak ditemukan")
	}

	inv := model.InvoiceModel{
		InvoiceContractID:       contract.ContractID,
		InvoiceStatus:           model.InvoiceStatusUnpaid,
		InvoiceRentSnapshot:     contract.ContractRentIDR,
		InvoiceWaterSnapshot:    contract.ContractWaterIDR,
		InvoiceElectricSnapshot: contract.ContractElectricIDR,
	}
	if req.InvoiceCreatedAt != nil {
		inv.InvoiceCreatedAt = *req.InvoiceCreatedAt
	}
	if req.InvoiceDueAt != nil {
		inv.InvoiceDueAt = *req.InvoiceDueAt
	}
	if req.InvoiceSubTotal != nil {
		inv.InvoiceSubTotal = *req.InvoiceSubTotal
	} else {
		inv.InvoiceSubTotal = contract.ContractRentIDR + contract.ContractWaterIDR + contract.ContractElectricIDR
	}
	if req.InvoicePenaltyTotal != nil {
		inv.InvoicePenaltyTotal = *req.InvoicePenaltyTotal
	}

	// due date default, denda otomatis kalau sudah telat, net dihitung terakhir
	service.ApplyCreationPolicy(&inv, time.Now())

	if err := ctrl.DB.Create(&inv).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat invoice: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat invoice")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Invoice berhasil dibuat", dto.ToInvoiceResponse(inv))
}

// 🟢 GET /api/invoices — sweep denda jalan dulu sebelum list (perilaku lama;
// lihat catatan desain soal read-yang-menulis)
func (ctrl *InvoiceController) GetInvoices(c *fiber.Ctx) error {
	updated := ctrl.Engine.UpdateOverduePenalties(c.UserContext())
	if updated > 0 {
		log.Printf("[INFO] Penalty sweep sebelum list: %d invoice diupdate", updated)
	}

	p := helper.ParsePagination(c, "created_at", "desc")

	q := ctrl.DB.Model(&model.InvoiceModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("invoice_status = ?", status)
	}
	if contractID := c.Query("contract_id"); contractID != "" {
		q = q.Where("invoice_contract_id = ?", contractID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung invoice: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}

	order := p.OrderClause(map[string]string{
		"created_at": "invoice_created_at",
		"due_at":     "invoice_due_at",
		"net_amount": "invoice_net_amount_idr",
	})

	var invoices []model.InvoiceModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&invoices).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil invoice: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}

	return helper.Success(c, "Berhasil mengambil invoice", fiber.Map{
		"items": dto.ToInvoiceResponseList(invoices),
		"meta":  helper.BuildMeta(p, total),
	})
}

// 🟢 GET /api/invoices/:id
func (ctrl *InvoiceController) GetInvoiceByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var inv model.InvoiceModel
	if err := ctrl.DB.Where("invoice_id = ?", id).First(&inv).Error; err != nil {
		return helper.DatabaseError(c, err, "Invoice tidak ditemukan")
	}

	return helper.Success(c, "Berhasil mengambil invoice", dto.ToInvoiceResponse(inv))
}

// 🟢 PUT /api/invoices/:id — jalur update manual nominal
func (ctrl *InvoiceController) UpdateInvoice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.InvoiceUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	var inv model.InvoiceModel
	if err := ctrl.DB.Where("invoice_id = ?", id).First(&inv).Error; err != nil {
		return helper.DatabaseError(c, err, "Invoice tidak ditemukan")
	}

	if req.InvoiceDueAt != nil {
		inv.InvoiceDueAt = *req.InvoiceDueAt
	}
	service.ApplyAmountUpdate(&inv, req.InvoiceSubTotal, req.InvoicePenaltyTotal, req.InvoiceNetAmount)

	if err := ctrl.DB.Save(&inv).Error; err != nil {
		log.Printf("[ERROR] Gagal update invoice %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update invoice")
	}

	return helper.Success(c, "Invoice berhasil diupdate", dto.ToInvoiceResponse(inv))
}

// 🟢 PATCH /api/invoices/:id/paid — tandai lunas manual (transfer/tunai)
func (ctrl *InvoiceController) MarkAsPaid(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.InvoiceMarkPaidDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var inv model.InvoiceModel
	if err := ctrl.DB.Where("invoice_id = ?", id).First(&inv).Error; err != nil {
		return helper.DatabaseError(c, err, "Invoice tidak ditemukan")
	}
	if inv.InvoiceStatus == model.InvoiceStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Invoice sudah lunas")
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}
	inv.InvoiceStatus = model.InvoiceStatusPaid
	inv.InvoicePaidAt = &paidAt
	inv.InvoicePayMethod = &req.PayMethod

	if err := ctrl.DB.Save(&inv).Error; err != nil {
		log.Printf("[ERROR] Gagal tandai lunas invoice %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update invoice")
	}

	return helper.Success(c, "Invoice ditandai lunas", dto.ToInvoiceResponse(inv))
}

// 🟢 POST /api/invoices/:id/pay — minta Snap token Midtrans
func (ctrl *InvoiceController) PayInvoice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.InvoicePayDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var inv model.InvoiceModel
	if err := ctrl.DB.Where("invoice_id = ?", id).First(&inv).Error; err != nil {
		return helper.DatabaseError(c, err, "Invoice tidak ditemukan")
	}
	if inv.InvoiceStatus == model.InvoiceStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Invoice sudah lunas")
	}

	token, err := service.GenerateSnapToken(inv, req.PayerName, req.PayerEmail)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat Snap token invoice %s: %v", id, err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	return helper.Success(c, "Token pembayaran berhasil dibuat", fiber.Map{
		"snap_token": token,
		"invoice":    dto.ToInvoiceResponse(inv),
	})
}

// 🟢 POST /api/invoices/payment/webhook — callback Midtrans (tanpa auth)
func (ctrl *InvoiceController) PaymentWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandlePaymentWebhook(ctrl.DB, body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Webhook diproses", nil)
}

// 🟢 DELETE /api/invoices/:id
func (ctrl *InvoiceController) DeleteInvoice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("invoice_id = ?", id).Delete(&model.InvoiceModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal hapus invoice %s: %v", id, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus invoice")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
	}

	return helper.Success(c, "Invoice berhasil dihapus", nil)
}
