package service

import (
	"context"

	"github.com/blueverse/blueverse-api/internal/domain/entity"
	"github.com/blueverse/blueverse-api/internal/domain/repository"
	"github.com/blueverse/blueverse-api/pkg/apperror"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	CustomerID         string
	FirstName          string
	LastName           string
	Email              string
	PhoneNumber        string
	LicencePlateNumber string
	Address            string
	State              string
}

// CreateCustomer creates a new customer. Uniqueness is enforced with two
// explicit checks: by external customer id, then by email. Either match is
// a conflict.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.CustomerID == "" || input.FirstName == "" || input.LastName == "" ||
		input.Email == "" || input.PhoneNumber == "" || input.LicencePlateNumber == "" {
		return nil, apperror.NewValidationError("All fields are required")
	}

	existing, err := s.customerRepo.GetByCustomerID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing, err = s.customerRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer already exists")
	}

	customer := &entity.Customer{
		CustomerID:         input.CustomerID,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		PhoneNumber:        input.PhoneNumber,
		LicencePlateNumber: input.LicencePlateNumber,
		Address:            input.Address,
		State:              input.State,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by external customer id
func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns all customers
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx)
}

// UpdateCustomerInput represents the update customer input. Nil fields are
// left unchanged.
type UpdateCustomerInput struct {
	CustomerID         string
	FirstName          *string
	LastName           *string
	Email              *string
	PhoneNumber        *string
	LicencePlateNumber *string
	Address            *string
	State              *string
}

// IsEmpty reports whether the update carries no changes at all
func (i *UpdateCustomerInput) IsEmpty() bool {
	return i.FirstName == nil && i.LastName == nil && i.Email == nil &&
		i.PhoneNumber == nil && i.LicencePlateNumber == nil &&
		i.Address == nil && i.State == nil
}

// UpdateCustomer updates a customer looked up by external customer id
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	if input.IsEmpty() {
		return nil, apperror.NewValidationError("Update payload cannot be empty")
	}

	customer, err := s.customerRepo.GetByCustomerID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.FirstName != nil {
		customer.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		customer.PhoneNumber = *input.PhoneNumber
	}
	if input.LicencePlateNumber != nil {
		customer.LicencePlateNumber = *input.LicencePlateNumber
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.State != nil {
		customer.State = *input.State
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer by external customer id. Existing
// invoices keep their reference; there is no cascading delete.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	customer, err := s.customerRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, customer.ID)
}
