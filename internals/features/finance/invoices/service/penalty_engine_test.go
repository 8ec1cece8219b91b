package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostku_backend/internals/features/finance/invoices/model"
)

// =========================================================
// FAKE STORE
// =========================================================

type fakeInvoiceStore struct {
	candidates []PenaltyCandidate
	saved      []model.InvoiceModel
	saveErr    map[uuid.UUID]error
}

func (f *fakeInvoiceStore) ListPenaltyCandidates(ctx context.Context, now time.Time) ([]PenaltyCandidate, error) {
	return f.candidates, nil
}

func (f *fakeInvoiceStore) SaveAmounts(ctx context.Context, inv *model.InvoiceModel) error {
	if f.saveErr != nil {
		if err, ok := f.saveErr[inv.InvoiceID]; ok {
			return err
		}
	}
	f.saved = append(f.saved, *inv)
	return nil
}

var sweepNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func newSweepEngine(cands ...PenaltyCandidate) (*PenaltyEngine, *fakeInvoiceStore) {
	store := &fakeInvoiceStore{candidates: cands}
	return &PenaltyEngine{
		Invoices: store,
		Now:      func() time.Time { return sweepNow },
	}, store
}

func unpaidInvoice(rent, subTotal int, dueAt time.Time) model.InvoiceModel {
	return model.InvoiceModel{
		InvoiceID:           uuid.New(),
		InvoiceContractID:   uuid.New(),
		InvoiceStatus:       model.InvoiceStatusUnpaid,
		InvoiceSubTotal:     subTotal,
		InvoiceNetAmount:    subTotal,
		InvoiceRentSnapshot: rent,
		InvoiceDueAt:        dueAt,
		InvoiceCreatedAt:    dueAt.AddDate(0, 0, -30),
	}
}

// =========================================================
// COMPUTE
// =========================================================

func TestComputeLatePenaltyRoundsToRupiah(t *testing.T) {
	assert.Equal(t, 500, ComputeLatePenalty(5000))
	assert.Equal(t, 125, ComputeLatePenalty(1250))
	assert.Equal(t, 123, ComputeLatePenalty(1234)) // 123.4 → 123
	assert.Equal(t, 124, ComputeLatePenalty(1235)) // 123.5 → 124
	assert.Equal(t, 0, ComputeLatePenalty(0))
}

// =========================================================
// CREATION POLICY
// =========================================================

func TestCreationPolicyEndToEnd(t *testing.T) {
	// invoice dibuat 31 hari lalu, tanpa due date eksplisit → due = create+30d
	// (sudah lewat 1 hari), denda otomatis round(5000*0.10) = 500
	created := sweepNow.AddDate(0, 0, -31)
	inv := model.InvoiceModel{
		InvoiceStatus:       model.InvoiceStatusUnpaid,
		InvoiceSubTotal:     7000,
		InvoiceRentSnapshot: 5000,
		InvoiceCreatedAt:    created,
	}

	ApplyCreationPolicy(&inv, sweepNow)

	assert.Equal(t, created.AddDate(0, 0, 30), inv.InvoiceDueAt)
	assert.Equal(t, 500, inv.InvoicePenaltyTotal)
	assert.Equal(t, 7500, inv.InvoiceNetAmount)
}

func TestCreationPolicyNoPenaltyBeforeDue(t *testing.T) {
	inv := model.InvoiceModel{
		InvoiceStatus:       model.InvoiceStatusUnpaid,
		InvoiceSubTotal:     7000,
		InvoiceRentSnapshot: 5000,
		InvoiceCreatedAt:    sweepNow,
	}

	ApplyCreationPolicy(&inv, sweepNow)

	assert.Equal(t, 0, inv.InvoicePenaltyTotal)
	assert.Equal(t, 7000, inv.InvoiceNetAmount)
}

func TestCreationPolicyRespectsCallerPenalty(t *testing.T) {
	inv := model.InvoiceModel{
		InvoiceStatus:       model.InvoiceStatusUnpaid,
		InvoiceSubTotal:     7000,
		InvoicePenaltyTotal: 1000, // caller sudah isi denda sendiri
		InvoiceRentSnapshot: 5000,
		InvoiceCreatedAt:    sweepNow.AddDate(0, 0, -60),
	}

	ApplyCreationPolicy(&inv, sweepNow)

	assert.Equal(t, 1000, inv.InvoicePenaltyTotal)
	assert.Equal(t, 8000, inv.InvoiceNetAmount)
}

func TestCreationPolicyOverridesCallerNetAmount(t *testing.T) {
	inv := model.InvoiceModel{
		InvoiceStatus:    model.InvoiceStatusUnpaid,
		InvoiceSubTotal:  7000,
		InvoiceNetAmount: 99999, // diabaikan, dihitung ulang
		InvoiceCreatedAt: sweepNow,
	}

	ApplyCreationPolicy(&inv, sweepNow)
	assert.Equal(t, 7000, inv.InvoiceNetAmount)
}

// =========================================================
// SWEEP
// =========================================================

func TestSweepAppliesPenaltyOnce(t *testing.T) {
	inv := unpaidInvoice(5000, 7000, sweepNow.AddDate(0, 0, -5))
	engine, store := newSweepEngine(PenaltyCandidate{Invoice: inv})

	assert.Equal(t, 1, engine.UpdateOverduePenalties(context.Background()))
	require.Len(t, store.saved, 1)

	got := store.saved[0]
	assert.Equal(t, 500, got.InvoicePenaltyTotal)
	assert.Equal(t, 7500, got.InvoiceNetAmount)
	require.NotNil(t, got.InvoicePenaltyAppliedAt)
	assert.Equal(t, sweepNow, *got.InvoicePenaltyAppliedAt)
}

func TestSweepNeverTouchesInvoiceWithExistingPenalty(t *testing.T) {
	inv := unpaidInvoice(5000, 7000, sweepNow.AddDate(0, -6, 0)) // telat jauh
	inv.InvoicePenaltyTotal = 500
	inv.InvoiceNetAmount = 7500

	engine, store := newSweepEngine(PenaltyCandidate{Invoice: inv})

	assert.Equal(t, 0, engine.UpdateOverduePenalties(context.Background()))
	assert.Empty(t, store.saved)
}

func TestSweepSkipsPaidInvoice(t *testing.T) {
	inv := unpaidInvoice(5000, 7000, sweepNow.AddDate(0, 0, -5))
	inv.InvoiceStatus = model.InvoiceStatusPaid

	engine, store := newSweepEngine(PenaltyCandidate{Invoice: inv})

	assert.Equal(t, 0, engine.UpdateOverduePenalties(context.Background()))
	assert.Empty(t, store.saved)
}

func TestSweepSkipsNotYetDue(t *testing.T) {
	inv := unpaidInvoice(5000, 7000, sweepNow.AddDate(0, 0, 3))
	engine, store := newSweepEngine(PenaltyCandidate{Invoice: inv})

	assert.Equal(t, 0, engine.UpdateOverduePenalties(context.Background()))
	assert.Empty(t, store.saved)
}

func TestSweepFallsBackToContractRent(t *testing.T) {
	inv := unpaidInvoice(0, 7000, sweepNow.AddDate(0, 0, -5)) // snapshot kosong
	engine, store := newSweepEngine(PenaltyCandidate{Invoice: inv, ContractRent: 6000})

	require.Equal(t, 1, engine.UpdateOverduePenalties(context.Background()))
	assert.Equal(t, 600, store.saved[0].InvoicePenaltyTotal)
	assert.Equal(t, 7600, store.saved[0].InvoiceNetAmount)
}

func TestSweepOneFailureDoesNotAbortTheRest(t *testing.T) {
	broken := unpaidInvoice(5000, 7000, sweepNow.AddDate(0, 0, -5))
	healthy := unpaidInvoice(4000, 6000, sweepNow.AddDate(0, 0, -5))

	engine, store := newSweepEngine(
		PenaltyCandidate{Invoice: broken},
		PenaltyCandidate{Invoice: healthy},
	)
	store.saveErr = map[uuid.UUID]error{broken.InvoiceID: errors.New("db down")}

	assert.Equal(t, 1, engine.UpdateOverduePenalties(context.Background()))
	require.Len(t, store.saved, 1)
	assert.Equal(t, healthy.InvoiceID, store.saved[0].InvoiceID)
}

// =========================================================
// MANUAL AMOUNT UPDATE
// =========================================================

func TestAmountUpdateRecomputesNet(t *testing.T) {
	inv := unpaidInvoice(5000, 7000, sweepNow)
	sub := 8000
	pen := 300

	ApplyAmountUpdate(&inv, &sub, &pen, nil)

	assert.Equal(t, 8000, inv.InvoiceSubTotal)
	assert.Equal(t, 300, inv.InvoicePenaltyTotal)
	assert.Equal(t, 8300, inv.InvoiceNetAmount)
	assert.Equal(t, inv.InvoiceSubTotal+inv.InvoicePenaltyTotal, inv.InvoiceNetAmount)
}

func TestAmountUpdateExplicitNetWins(t *testing.T) {
	inv := unpaidInvoice(5000, 7000, sweepNow)
	sub := 8000
	net := 7777

	ApplyAmountUpdate(&inv, &sub, nil, &net)
	assert.Equal(t, 7777, inv.InvoiceNetAmount)
}

func TestAmountUpdateClampsNegatives(t *testing.T) {
	inv := unpaidInvoice(5000, 7000, sweepNow)
	sub := -100
	pen := -50

	ApplyAmountUpdate(&inv, &sub, &pen, nil)

	assert.Equal(t, 0, inv.InvoiceSubTotal)
	assert.Equal(t, 0, inv.InvoicePenaltyTotal)
	assert.Equal(t, 0, inv.InvoiceNetAmount)
}
