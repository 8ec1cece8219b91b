package dto

import (
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/finance/invoices/model"
)

////////////////////////////////////////////////////////////////////////////////
// INVOICES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create: nominal snapshot diambil dari kontrak; caller boleh menimpa
// sub_total / due date / penalty kalau memang perlu.
type InvoiceCreateDTO struct {
	InvoiceContractID   uuid.UUID  `json:"invoice_contract_id" validate:"required"`
	InvoiceDueAt        *time.Time `json:"invoice_due_at,omitempty"`
	InvoiceCreatedAt    *time.Time `json:"invoice_created_at,omitempty"` // backdate untuk migrasi data lama
	InvoiceSubTotal     *int       `json:"invoice_sub_total_idr,omitempty" validate:"omitempty,min=0"`
	InvoicePenaltyTotal *int       `json:"invoice_penalty_total_idr,omitempty" validate:"omitempty,min=0"`
}

// Update (partial) — nominal; net eksplisit menang atas hitungan ulang
type InvoiceUpdateDTO struct {
	InvoiceSubTotal     *int       `json:"invoice_sub_total_idr,omitempty"`
	InvoicePenaltyTotal *int       `json:"invoice_penalty_total_idr,omitempty"`
	InvoiceNetAmount    *int       `json:"invoice_net_amount_idr,omitempty"`
	InvoiceDueAt        *time.Time `json:"invoice_due_at,omitempty"`
}

type InvoiceMarkPaidDTO struct {
	PayMethod string     `json:"pay_method" validate:"required,max=50"`
	PaidAt    *time.Time `json:"paid_at,omitempty"` // nil = now
}

type InvoicePayDTO struct {
	PayerName  string `json:"payer_name" validate:"required,max=100"`
	PayerEmail string `json:"payer_email" validate:"required,email"`
}

// Response
type InvoiceResponse struct {
	InvoiceID         uuid.UUID  `json:"invoice_id"`
	InvoiceContractID uuid.UUID  `json:"invoice_contract_id"`
	InvoiceStatus     string     `json:"invoice_status"`
	InvoicePaidAt     *time.Time `json:"invoice_paid_at,omitempty"`
	InvoicePayMethod  *string    `json:"invoice_pay_method,omitempty"`

	InvoiceSubTotal     int `json:"invoice_sub_total_idr"`
	InvoicePenaltyTotal int `json:"invoice_penalty_total_idr"`
	InvoiceNetAmount    int `json:"invoice_net_amount_idr"`

	InvoicePenaltyAppliedAt *time.Time `json:"invoice_penalty_applied_at,omitempty"`

	InvoiceRentSnapshot     int `json:"invoice_rent_snapshot_idr"`
	InvoiceWaterSnapshot    int `json:"invoice_water_snapshot_idr"`
	InvoiceElectricSnapshot int `json:"invoice_electric_snapshot_idr"`

	InvoiceDueAt     time.Time `json:"invoice_due_at"`
	InvoiceCreatedAt time.Time `json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `json:"invoice_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToInvoiceResponse(m model.InvoiceModel) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:               m.InvoiceID,
		InvoiceContractID:       m.InvoiceContractID,
		InvoiceStatus:           string(m.InvoiceStatus),
		InvoicePaidAt:           m.InvoicePaidAt,
		InvoicePayMethod:        m.InvoicePayMethod,
		InvoiceSubTotal:         m.InvoiceSubTotal,
		InvoicePenaltyTotal:     m.InvoicePenaltyTotal,
		InvoiceNetAmount:        m.InvoiceNetAmount,
		InvoicePenaltyAppliedAt: m.InvoicePenaltyAppliedAt,
		InvoiceRentSnapshot:     m.InvoiceRentSnapshot,
		InvoiceWaterSnapshot:    m.InvoiceWaterSnapshot,
		InvoiceElectricSnapshot: m.InvoiceElectricSnapshot,
		InvoiceDueAt:            m.InvoiceDueAt,
		InvoiceCreatedAt:        m.InvoiceCreatedAt,
		InvoiceUpdatedAt:        m.InvoiceUpdatedAt,
	}
}

func ToInvoiceResponseList(list []model.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToInvoiceResponse(m))
	}
	return out
}
