package repository

import (
	"context"

	"github.com/blueverse/blueverse-api/internal/domain/entity"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice data operations.
// Invoices are immutable once created; there is no update or delete.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Invoice, error)
}
