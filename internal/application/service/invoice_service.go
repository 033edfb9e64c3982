package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blueverse/blueverse-api/internal/domain/entity"
	"github.com/blueverse/blueverse-api/internal/domain/repository"
	"github.com/blueverse/blueverse-api/pkg/apperror"
	"github.com/blueverse/blueverse-api/pkg/pdf"
	"github.com/blueverse/blueverse-api/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentRenderer renders an invoice document to a file
type DocumentRenderer interface {
	Render(data pdf.InvoiceData, path string) error
}

// InvoiceMailer sends a rendered invoice to a customer
type InvoiceMailer interface {
	SendInvoiceEmail(toEmail, invoiceID, pdfPath string) error
}

// InvoiceService orchestrates invoice creation:
// validate -> customer lookup -> persist -> render -> notify.
// No step is retried; the invoice stays persisted once written even when a
// later step fails.
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	renderer     DocumentRenderer
	mailer       InvoiceMailer
	workDir      string
	logger       *zap.Logger
}

// NewInvoiceService creates a new invoice service. workDir holds the
// transient PDF between render and send; it is removed after every send
// attempt.
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	renderer DocumentRenderer,
	mailer InvoiceMailer,
	workDir string,
	logger *zap.Logger,
) *InvoiceService {
	if workDir == "" {
		workDir = os.TempDir()
	}
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		renderer:     renderer,
		mailer:       mailer,
		workDir:      workDir,
		logger:       logger,
	}
}

// ServiceDetailsInput is the caller-supplied service description
type ServiceDetailsInput struct {
	ID          string
	ServiceName string
	Type        string
	Price       *float64
}

// CreateInvoiceInput is the raw invoice request. It deliberately has no
// totals fields; those exist only on the persisted entity.
type CreateInvoiceInput struct {
	Customer       string
	ServiceDetails *ServiceDetailsInput
	Discounts      *float64
	State          string
	TransactionID  string
}

// CreateInvoice runs the full pipeline and returns the persisted invoice on
// success.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	// Validating: nothing is persisted until all required fields are present.
	if input.Customer == "" || input.ServiceDetails == nil ||
		input.ServiceDetails.ServiceName == "" || input.ServiceDetails.Price == nil ||
		input.TransactionID == "" {
		return nil, apperror.NewValidationError("Missing required invoice fields.")
	}

	// CustomerLookup
	customer, err := s.customerRepo.GetByCustomerID(ctx, input.Customer)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	// Persisting: totals are computed inside NewInvoice, never taken from
	// the caller. A missing discount is zero.
	var discounts float64
	if input.Discounts != nil {
		discounts = *input.Discounts
	}

	details := entity.ServiceDetails{
		ServiceID:   input.ServiceDetails.ID,
		ServiceName: input.ServiceDetails.ServiceName,
		ServiceType: input.ServiceDetails.Type,
		Price:       *input.ServiceDetails.Price,
	}

	invoice := entity.NewInvoice(customer.ID, details, discounts, input.State, input.TransactionID, 0)
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	// The counter bump is a second write, not part of one transaction with
	// the invoice insert. A crash between the two leaves the counter stale.
	if err := s.customerRepo.IncrementInvoiceCount(ctx, customer.ID); err != nil {
		s.logger.Error("failed to increment customer invoice count",
			zap.String("customer_id", customer.CustomerID),
			zap.Error(err))
		return nil, err
	}

	// Rendering: a failure here leaves the invoice persisted but nothing is
	// ever emailed from a half-rendered document.
	pdfPath := filepath.Join(s.workDir, fmt.Sprintf("invoice-%s.pdf", invoice.ID))
	data := pdf.InvoiceData{
		InvoiceNumber: utils.InvoiceNumber(invoice.TransactionID),
		TransactionID: invoice.TransactionID,
		CustomerName:  customer.FullName(),
		ServiceName:   invoice.ServiceDetails.ServiceName,
		Price:         invoice.ServiceDetails.Price,
		Discounts:     invoice.Discounts,
		Subtotal:      invoice.Subtotal,
		TaxRate:       invoice.TaxRate,
		TaxAmount:     invoice.TaxAmount,
		Total:         invoice.Total,
		IssuedAt:      time.Now(),
	}
	if err := s.renderer.Render(data, pdfPath); err != nil {
		// The renderer may have written part of the file before failing.
		if rmErr := os.Remove(pdfPath); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn("failed to remove transient invoice document",
				zap.String("path", pdfPath),
				zap.Error(rmErr))
		}
		s.logger.Error("failed to render invoice document",
			zap.String("invoice_id", invoice.ID.String()),
			zap.Error(err))
		if errors.Is(err, pdf.ErrBarcode) {
			return nil, apperror.NewDependencyError("Error generating barcode.")
		}
		return nil, apperror.NewDependencyError("Error generating invoice PDF.")
	}

	// Notifying: one attempt. The transient document is removed whether the
	// send succeeds or not.
	sendErr := s.mailer.SendInvoiceEmail(customer.Email, invoice.ID.String(), pdfPath)
	if rmErr := os.Remove(pdfPath); rmErr != nil {
		s.logger.Warn("failed to remove transient invoice document",
			zap.String("path", pdfPath),
			zap.Error(rmErr))
	}
	if sendErr != nil {
		s.logger.Error("failed to send invoice email",
			zap.String("invoice_id", invoice.ID.String()),
			zap.String("to", customer.Email),
			zap.Error(sendErr))
		return nil, apperror.NewDependencyError("Error sending invoice email.")
	}

	return invoice, nil
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListCustomerInvoices returns all invoices for a customer, newest first
func (s *InvoiceService) ListCustomerInvoices(ctx context.Context, customerID string) ([]entity.Invoice, error) {
	customer, err := s.customerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.invoiceRepo.ListByCustomer(ctx, customer.ID)
}
