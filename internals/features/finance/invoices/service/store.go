package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/invoices/model"
)

// =========================================================
// GORM IMPLEMENTATION
// =========================================================

type gormInvoiceStore struct {
	db *gorm.DB
}

func NewInvoiceStore(db *gorm.DB) InvoiceStore {
	return &gormInvoiceStore{db: db}
}

func (s *gormInvoiceStore) ListPenaltyCandidates(ctx context.Context, now time.Time) ([]PenaltyCandidate, error) {
	type row struct {
		model.InvoiceModel
		ContractRent int `gorm:"column:contract_rent"`
	}

	var rows []row
	err := s.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.*, COALESCE(contracts.contract_rent_idr, 0) AS contract_rent").
		Joins("LEFT JOIN contracts ON contracts.contract_id = invoices.invoice_contract_id").
		Where("invoices.invoice_deleted_at IS NULL").
		Where("invoices.invoice_status = ?", model.InvoiceStatusUnpaid).
		Where("invoices.invoice_penalty_total_idr = 0").
		Where("COALESCE(invoices.invoice_penalty_applied_at, invoices.invoice_due_at) < ?", now).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]PenaltyCandidate, 0, len(rows))
	for _, r := range rows {
		out = append(out, PenaltyCandidate{
			Invoice:      r.InvoiceModel,
			ContractRent: r.ContractRent,
		})
	}
	return out, nil
}

func (s *gormInvoiceStore) SaveAmounts(ctx context.Context, inv *model.InvoiceModel) error {
	// tiga kolom nominal diubah dalam satu statement supaya invariant
	// net = sub + penalty tidak pernah pecah di tengah jalan
	return s.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("invoice_id = ?", inv.InvoiceID).
		Updates(map[string]interface{}{
			"invoice_penalty_total_idr":  inv.InvoicePenaltyTotal,
			"invoice_net_amount_idr":     inv.InvoiceNetAmount,
			"invoice_penalty_applied_at": inv.InvoicePenaltyAppliedAt,
			"invoice_updated_at":         time.Now(),
		}).Error
}
