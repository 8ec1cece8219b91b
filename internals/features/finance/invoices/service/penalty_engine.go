// file: internals/features/finance/invoices/service/penalty_engine.go
package service

import (
	"context"
	"log"
	"math"
	"time"

	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/invoices/model"
)

const (
	// Denda keterlambatan: 10% dari sewa bulanan, dibulatkan ke rupiah
	latePenaltyRate = 0.10
	// Jatuh tempo default kalau caller tidak mengisi: 30 hari sejak dibuat
	defaultDueDays = 30
)

// ComputeLatePenalty menghitung besaran denda dari sewa bulanan.
func ComputeLatePenalty(rent int) int {
	return int(math.Round(float64(rent) * latePenaltyRate))
}

// PenaltyCandidate: invoice + sewa kontrak yang sudah di-resolve caller,
// supaya engine tidak perlu traversal relasi sendiri.
type PenaltyCandidate struct {
	Invoice      model.InvoiceModel
	ContractRent int
}

type InvoiceStore interface {
	// ListPenaltyCandidates memuat invoice unpaid berdenda nol yang acuan
	// dendanya (penalty_applied_at ?? due_at) sudah lewat, plus sewa kontraknya.
	ListPenaltyCandidates(ctx context.Context, now time.Time) ([]PenaltyCandidate, error)
	// SaveAmounts menyimpan penalty_total, net_amount, dan penalty_applied_at
	// sekaligus — ketiganya tidak pernah ditulis terpisah.
	SaveAmounts(ctx context.Context, inv *model.InvoiceModel) error
}

type PenaltyEngine struct {
	Invoices InvoiceStore

	// Now bisa di-override di test; nil = time.Now
	Now func() time.Time
}

func NewPenaltyEngine(db *gorm.DB) *PenaltyEngine {
	return &PenaltyEngine{Invoices: NewInvoiceStore(db)}
}

func (e *PenaltyEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// ApplyCreationPolicy melengkapi invoice baru: due date default, denda
// otomatis kalau sudah telat saat dibuat, dan net amount selalu dihitung
// ulang paling akhir (menimpa nilai kiriman caller).
func ApplyCreationPolicy(inv *model.InvoiceModel, now time.Time) {
	if inv.InvoiceCreatedAt.IsZero() {
		inv.InvoiceCreatedAt = now
	}
	if inv.InvoiceDueAt.IsZero() {
		inv.InvoiceDueAt = inv.InvoiceCreatedAt.AddDate(0, 0, defaultDueDays)
	}

	if now.After(inv.InvoiceDueAt) &&
		inv.InvoiceStatus == model.InvoiceStatusUnpaid &&
		inv.InvoicePenaltyTotal == 0 {
		inv.InvoicePenaltyTotal = ComputeLatePenalty(inv.InvoiceRentSnapshot)
	}

	inv.InvoiceNetAmount = inv.InvoiceSubTotal + inv.InvoicePenaltyTotal
}

// UpdateOverduePenalties menerapkan denda ke semua invoice telat yang belum
// kena denda. Idempoten: invoice berdenda != 0 tidak pernah disentuh lagi.
// Gagal satu invoice tidak menghentikan sisanya; tidak pernah return error.
// Mengembalikan jumlah invoice yang diupdate.
func (e *PenaltyEngine) UpdateOverduePenalties(ctx context.Context) int {
	now := e.now()

	candidates, err := e.Invoices.ListPenaltyCandidates(ctx, now)
	if err != nil {
		log.Printf("[ERROR] Penalty sweep: gagal ambil kandidat: %v", err)
		return 0
	}

	updated := 0
	for _, cand := range candidates {
		inv := cand.Invoice

		// guard diulang di sini walau query sudah memfilter — pagar utama
		// idempotensi ada di engine, bukan di SQL
		if inv.InvoiceStatus != model.InvoiceStatusUnpaid || inv.InvoicePenaltyTotal != 0 {
			continue
		}
		if !penaltyReferenceDate(inv).Before(now) {
			continue
		}

		rent := inv.InvoiceRentSnapshot
		if rent == 0 {
			rent = cand.ContractRent
		}

		inv.InvoicePenaltyTotal = ComputeLatePenalty(rent)
		if inv.InvoicePenaltyAppliedAt == nil {
			applied := now
			inv.InvoicePenaltyAppliedAt = &applied
		}
		inv.InvoiceNetAmount = inv.InvoiceSubTotal + inv.InvoicePenaltyTotal

		if err := e.Invoices.SaveAmounts(ctx, &inv); err != nil {
			log.Printf("[ERROR] Penalty sweep: gagal simpan invoice %s: %v", inv.InvoiceID, err)
			continue
		}
		updated++
	}

	return updated
}

// ApplyAmountUpdate menerapkan perubahan nominal manual. Net amount dihitung
// ulang kecuali caller mengirim net amount eksplisit (eksplisit menang).
// Semua nilai di-clamp non-negatif.
func ApplyAmountUpdate(inv *model.InvoiceModel, subTotal, penaltyTotal, netAmount *int) {
	if subTotal != nil {
		inv.InvoiceSubTotal = clampNonNegative(*subTotal)
	}
	if penaltyTotal != nil {
		inv.InvoicePenaltyTotal = clampNonNegative(*penaltyTotal)
	}
	if netAmount != nil {
		inv.InvoiceNetAmount = clampNonNegative(*netAmount)
		return
	}
	inv.InvoiceNetAmount = inv.InvoiceSubTotal + inv.InvoicePenaltyTotal
}

func penaltyReferenceDate(inv model.InvoiceModel) time.Time {
	if inv.InvoicePenaltyAppliedAt != nil {
		return *inv.InvoicePenaltyAppliedAt
	}
	return inv.InvoiceDueAt
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
