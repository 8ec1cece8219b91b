package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"kostku_backend/internals/features/finance/invoices/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap Midtrans untuk pembayaran invoice.
// Order ID memakai invoice ID supaya webhook bisa resolve balik.
func GenerateSnapToken(inv model.InvoiceModel, payerName string, payerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceID.String(),
			GrossAmt: int64(inv.InvoiceNetAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
