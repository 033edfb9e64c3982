package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() Issuer {
	return Issuer{
		Name:     "Blueverse Vehicle Washing LLC",
		Address:  "Metropolis Towers #403 Business Bay, Dubai, UAE",
		Phone:    "+971 544692205",
		TRN:      "104621245000003",
		Currency: "AED",
	}
}

func testInvoiceData() InvoiceData {
	return InvoiceData{
		InvoiceNumber: "BV-TXN-5001",
		TransactionID: "TXN-5001",
		CustomerName:  "Amira Hassan",
		ServiceName:   "Premium Wash",
		Price:         100,
		Discounts:     10,
		Subtotal:      90,
		TaxRate:       0.05,
		TaxAmount:     4.5,
		Total:         94.5,
		IssuedAt:      time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderWritesPDF(t *testing.T) {
	renderer := NewRenderer(testIssuer())
	path := filepath.Join(t.TempDir(), "invoice.pdf")

	require.NoError(t, renderer.Render(testInvoiceData(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(content), 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderUnwritablePath(t *testing.T) {
	renderer := NewRenderer(testIssuer())
	path := filepath.Join(t.TempDir(), "missing-dir", "invoice.pdf")

	err := renderer.Render(testInvoiceData(), path)
	assert.Error(t, err)
}

func TestCode128PNG(t *testing.T) {
	data, err := code128PNG("TXN-5001", 300, 30)
	require.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestCode128PNGInvalidInput(t *testing.T) {
	// Code 128 cannot encode characters outside its alphabet.
	_, err := code128PNG("ÿ☃", 300, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBarcode)
}
