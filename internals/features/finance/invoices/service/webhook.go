package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/invoices/model"
)

// HandlePaymentWebhook dipanggil saat menerima notifikasi status dari Midtrans.
func HandlePaymentWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	var invoice model.InvoiceModel
	if err := db.Where("invoice_id = ?", orderID).First(&invoice).Error; err != nil {
		log.Println("[ERROR] Invoice tidak ditemukan:", err)
		return fmt.Errorf("invoice with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		invoice.InvoiceStatus = model.InvoiceStatusPaid
		invoice.InvoicePaidAt = &now
		payMethod := "midtrans"
		if pt, ok := body["payment_type"].(string); ok && pt != "" {
			payMethod = pt
		}
		invoice.InvoicePayMethod = &payMethod

		if err := db.Save(&invoice).Error; err != nil {
			log.Println("[ERROR] Gagal menyimpan status invoice:", err)
			return err
		}
		log.Printf("[INFO] Invoice %s lunas via %s", orderID, payMethod)

	case "expire", "cancel", "deny":
		// tetap unpaid, biar sweep denda dan pembayaran ulang tetap jalan
		log.Printf("[INFO] Pembayaran invoice %s berstatus %s, invoice tetap unpaid", orderID, status)

	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	return nil
}
