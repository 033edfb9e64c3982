package repository

import (
	"context"

	"github.com/blueverse/blueverse-api/internal/domain/entity"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations.
// Lookups use the caller-assigned external customer id, not the storage key.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByCustomerID(ctx context.Context, customerID string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Customer, error)
	// IncrementInvoiceCount bumps the customer's invoice counter by one as a
	// single atomic update.
	IncrementInvoiceCount(ctx context.Context, id uuid.UUID) error
}
