package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		discounts     float64
		taxRate       float64
		wantSubtotal  float64
		wantTaxAmount float64
		wantTotal     float64
	}{
		{
			name:          "standard rate with discount",
			price:         100,
			discounts:     10,
			taxRate:       0.05,
			wantSubtotal:  90,
			wantTaxAmount: 4.5,
			wantTotal:     94.5,
		},
		{
			name:          "no discount",
			price:         200,
			discounts:     0,
			taxRate:       0.05,
			wantSubtotal:  200,
			wantTaxAmount: 10,
			wantTotal:     210,
		},
		{
			name:          "discount exceeds price yields negative totals",
			price:         50,
			discounts:     80,
			taxRate:       0.05,
			wantSubtotal:  -30,
			wantTaxAmount: -1.5,
			wantTotal:     -31.5,
		},
		{
			name:          "zero price",
			price:         0,
			discounts:     0,
			taxRate:       0.05,
			wantSubtotal:  0,
			wantTaxAmount: 0,
			wantTotal:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, taxAmount, total := ComputeTotals(tt.price, tt.discounts, tt.taxRate)
			assert.InDelta(t, tt.wantSubtotal, subtotal, 1e-9)
			assert.InDelta(t, tt.wantTaxAmount, taxAmount, 1e-9)
			assert.InDelta(t, tt.wantTotal, total, 1e-9)
		})
	}
}

func TestComputeTotalsConsistency(t *testing.T) {
	// total must always equal subtotal plus tax at the given rate
	subtotal, taxAmount, total := ComputeTotals(123.45, 6.78, 0.05)
	assert.InDelta(t, subtotal+taxAmount, total, 1e-9)
	assert.InDelta(t, subtotal*0.05, taxAmount, 1e-9)
}

func TestNewInvoiceDefaults(t *testing.T) {
	customerID := uuid.New()
	details := ServiceDetails{ServiceName: "Premium Wash", Price: 100}

	invoice := NewInvoice(customerID, details, 0, "", "TXN-1001", 0)

	assert.Equal(t, DefaultState, invoice.State)
	assert.Equal(t, DefaultTaxRate, invoice.TaxRate)
	assert.Equal(t, customerID, invoice.CustomerID)
	assert.Equal(t, "TXN-1001", invoice.TransactionID)
	assert.InDelta(t, 100.0, invoice.Subtotal, 1e-9)
	assert.InDelta(t, 5.0, invoice.TaxAmount, 1e-9)
	assert.InDelta(t, 105.0, invoice.Total, 1e-9)
}

func TestNewInvoiceExplicitValues(t *testing.T) {
	invoice := NewInvoice(uuid.New(), ServiceDetails{ServiceName: "Detailing", Price: 300}, 50, "Deira", "TXN-1002", 0.1)

	assert.Equal(t, "Deira", invoice.State)
	assert.InDelta(t, 0.1, invoice.TaxRate, 1e-9)
	assert.InDelta(t, 250.0, invoice.Subtotal, 1e-9)
	assert.InDelta(t, 25.0, invoice.TaxAmount, 1e-9)
	assert.InDelta(t, 275.0, invoice.Total, 1e-9)
}

func TestNewInvoiceAlwaysComputesTotals(t *testing.T) {
	// There is no way to hand totals to the constructor; whatever the caller
	// might have wanted, the derived fields come out of ComputeTotals.
	invoice := NewInvoice(uuid.New(), ServiceDetails{ServiceName: "Quick Wash", Price: 40}, 40, "", "TXN-1003", 0)

	assert.InDelta(t, 0.0, invoice.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, invoice.TaxAmount, 1e-9)
	assert.InDelta(t, 0.0, invoice.Total, 1e-9)
}
