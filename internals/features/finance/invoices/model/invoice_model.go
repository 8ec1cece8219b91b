package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status invoice
// =========================================================

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// =========================================================
// MODEL
// =========================================================

type InvoiceModel struct {
	// PK
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// FK → contracts(contract_id)
	InvoiceContractID uuid.UUID `gorm:"column:invoice_contract_id;type:uuid;not null;index" json:"invoice_contract_id"`

	// Status & pembayaran
	InvoiceStatus    InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:'unpaid';index" json:"invoice_status"`
	InvoicePaidAt    *time.Time    `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`
	InvoicePayMethod *string       `gorm:"column:invoice_pay_method;type:varchar(50)" json:"invoice_pay_method,omitempty"`

	// Nominal (IDR). Invariant: net = sub_total + penalty_total
	InvoiceSubTotal     int `gorm:"column:invoice_sub_total_idr;not null;check:invoice_sub_total_idr>=0" json:"invoice_sub_total_idr"`
	InvoicePenaltyTotal int `gorm:"column:invoice_penalty_total_idr;not null;default:0;check:invoice_penalty_total_idr>=0" json:"invoice_penalty_total_idr"`
	InvoiceNetAmount    int `gorm:"column:invoice_net_amount_idr;not null" json:"invoice_net_amount_idr"`

	// Acuan denda: kalau terisi, sweep memakai ini (bukan due date) sebagai
	// referensi — dibekukan saat denda pertama diterapkan
	InvoicePenaltyAppliedAt *time.Time `gorm:"column:invoice_penalty_applied_at" json:"invoice_penalty_applied_at,omitempty"`

	// Snapshot nominal kontrak saat invoice dibuat (tampil stabil walau
	// kontrak berubah belakangan)
	InvoiceRentSnapshot     int `gorm:"column:invoice_rent_snapshot_idr;not null;default:0" json:"invoice_rent_snapshot_idr"`
	InvoiceWaterSnapshot    int `gorm:"column:invoice_water_snapshot_idr;not null;default:0" json:"invoice_water_snapshot_idr"`
	InvoiceElectricSnapshot int `gorm:"column:invoice_electric_snapshot_idr;not null;default:0" json:"invoice_electric_snapshot_idr"`

	// Jatuh tempo
	InvoiceDueAt time.Time `gorm:"column:invoice_due_at;not null;index" json:"invoice_due_at"`

	// Timestamps (eksplisit)
	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;default:now();index" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;default:now()" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *InvoiceModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}
