// Package pdf renders customer invoices as fixed-layout PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Issuer holds the fixed business details printed in the invoice header.
type Issuer struct {
	Name     string
	Address  string
	Phone    string
	TRN      string
	Currency string
}

// InvoiceData is everything the renderer needs for one invoice. Totals
// arrive already computed; the renderer never derives them.
type InvoiceData struct {
	InvoiceNumber string
	TransactionID string
	CustomerName  string
	ServiceName   string
	Price         float64
	Discounts     float64
	Subtotal      float64
	TaxRate       float64
	TaxAmount     float64
	Total         float64
	IssuedAt      time.Time
}

// Renderer renders an invoice document to a file.
type Renderer interface {
	Render(data InvoiceData, path string) error
}

const footerMessage = "Thanks for letting Blueverse shine on your ride! " +
	"We're grateful for your business and can't wait to welcome you back " +
	"for another spotless wash. Drive safe and stay shiny!"

const footerLinks = "Privacy Policy | Terms and Conditions"

type invoiceRenderer struct {
	issuer Issuer
}

// NewRenderer creates a PDF invoice renderer for the given issuer.
func NewRenderer(issuer Issuer) Renderer {
	return &invoiceRenderer{issuer: issuer}
}

// Render writes the invoice PDF to path. Any encoding or write failure is
// returned so the caller can abort before the document is dispatched.
func (r *invoiceRenderer) Render(data InvoiceData, path string) error {
	barcodePNG, err := code128PNG(data.TransactionID, 300, 30)
	if err != nil {
		return err
	}

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	// Palette from the company invoice template
	const (
		primaryR, primaryG, primaryB = 31, 98, 174 // #1F62AE
		headerBg                     = 245         // #f5f5f5
		totalBg                      = 240         // #f0f0f0
		borderGray                   = 221         // #ddd
	)

	// Title
	doc.SetFont("Helvetica", "B", 28)
	doc.SetTextColor(primaryR, primaryG, primaryB)
	doc.Text(50, 75, "INVOICE")

	// Issuer block
	doc.SetFont("Helvetica", "B", 16)
	doc.Text(50, 112, r.issuer.Name)
	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(0, 0, 0)
	doc.Text(50, 132, r.issuer.Address)
	doc.Text(50, 152, r.issuer.Phone)
	doc.Text(50, 172, "TRN: "+r.issuer.TRN)

	// Right-aligned invoice details
	rightCell := func(y float64, s string) {
		doc.SetXY(300, y)
		doc.CellFormat(245, 14, s, "", 0, "R", false, 0, "")
	}
	rightCell(100, "Invoice #: "+data.InvoiceNumber)
	rightCell(120, "Transaction #: "+data.TransactionID)
	rightCell(140, "Date: "+data.IssuedAt.Format("1/2/2006"))
	rightCell(160, "Time: "+data.IssuedAt.Format("03:04 PM"))

	// Separator
	doc.SetDrawColor(238, 238, 238)
	doc.Line(50, 190, 545, 190)

	// Customer block
	doc.SetFont("Helvetica", "", 12)
	doc.Text(50, 220, "User: "+data.CustomerName)
	doc.Text(50, 240, "License: 000025")

	// Scannable code for the transaction id
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("barcode", opts, bytes.NewReader(barcodePNG))
	doc.ImageOptions("barcode", 395, 205, 150, 30, false, opts, 0, "")

	// Items table header
	y := 270.0
	doc.SetFillColor(headerBg, headerBg, headerBg)
	doc.Rect(50, y, 495, 30, "F")
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(60, y+19, "Description")
	doc.SetXY(300, y+8)
	doc.CellFormat(235, 14, "Amount", "", 0, "R", false, 0, "")
	y += 35

	doc.SetFont("Helvetica", "", 12)
	row := func(label, amount string) {
		doc.Text(60, y+11, label)
		doc.SetXY(300, y)
		doc.CellFormat(235, 14, amount, "", 0, "R", false, 0, "")
		y += 25
	}
	row(data.ServiceName, fmt.Sprintf("%.2f", data.Price))
	row("Discounts", fmt.Sprintf("-%.2f", data.Discounts))
	row("Subtotal", fmt.Sprintf("%.2f", data.Subtotal))
	row(fmt.Sprintf("Tax Rate (%.0f%%)", data.TaxRate*100), fmt.Sprintf("%.2f", data.TaxAmount))
	y += 10

	// Total line
	doc.SetFillColor(totalBg, totalBg, totalBg)
	doc.Rect(50, y, 495, 35, "F")
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(primaryR, primaryG, primaryB)
	doc.Text(60, y+22, "Total")
	doc.SetXY(300, y+10)
	doc.CellFormat(235, 16, fmt.Sprintf("%s %.2f", r.issuer.Currency, data.Total), "", 0, "R", false, 0, "")
	y += 60

	// Footer
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(50, y)
	doc.MultiCell(495, 13, footerMessage, "", "C", false)
	y = doc.GetY() + 15
	doc.SetFont("Helvetica", "", 9)
	doc.SetXY(50, y)
	doc.CellFormat(495, 12, footerLinks, "", 0, "C", false, 0, "")

	// Border around the whole invoice
	doc.SetDrawColor(borderGray, borderGray, borderGray)
	doc.Rect(45, 45, 505, y+40, "D")

	if doc.Err() {
		return fmt.Errorf("pdf: failed to build invoice document: %v", doc.Error())
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: failed to write invoice document: %w", err)
	}
	return nil
}
