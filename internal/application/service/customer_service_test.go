package service

import (
	"context"
	"testing"

	"github.com/blueverse/blueverse-api/internal/domain/entity"
	"github.com/blueverse/blueverse-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerInput() *CreateCustomerInput {
	return &CreateCustomerInput{
		CustomerID:         "CUST-100",
		FirstName:          "Omar",
		LastName:           "Farouk",
		Email:              "omar@example.com",
		PhoneNumber:        "+971500000100",
		LicencePlateNumber: "D-12345",
	}
}

func TestCreateCustomer(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	customer, err := svc.CreateCustomer(context.Background(), validCustomerInput())
	require.NoError(t, err)
	assert.Equal(t, "CUST-100", customer.CustomerID)
	assert.Equal(t, entity.DefaultState, customer.State)
}

func TestCreateCustomerMissingFields(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	input := validCustomerInput()
	input.PhoneNumber = ""

	_, err := svc.CreateCustomer(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Equal(t, "All fields are required", apperror.GetAppError(err).Message)
}

func TestCreateCustomerDuplicate(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	_, err := svc.CreateCustomer(context.Background(), validCustomerInput())
	require.NoError(t, err)

	t.Run("same customer id", func(t *testing.T) {
		input := validCustomerInput()
		input.Email = "other@example.com"
		_, err := svc.CreateCustomer(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
		assert.Equal(t, "Customer already exists", apperror.GetAppError(err).Message)
	})

	t.Run("same email", func(t *testing.T) {
		input := validCustomerInput()
		input.CustomerID = "CUST-101"
		_, err := svc.CreateCustomer(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, "Customer already exists", apperror.GetAppError(err).Message)
	})
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	_, err := svc.GetCustomer(context.Background(), "CUST-404")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.Equal(t, "Customer not found.", apperror.GetAppError(err).Message)
}

func TestUpdateCustomer(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	_, err := svc.CreateCustomer(context.Background(), validCustomerInput())
	require.NoError(t, err)

	phone := "+971500000999"
	updated, err := svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
		CustomerID:  "CUST-100",
		PhoneNumber: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.PhoneNumber)

	// Untouched fields keep their values.
	assert.Equal(t, "Omar", updated.FirstName)
	assert.Equal(t, "omar@example.com", updated.Email)
}

func TestUpdateCustomerEmptyPayload(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	_, err := svc.CreateCustomer(context.Background(), validCustomerInput())
	require.NoError(t, err)

	_, err = svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{CustomerID: "CUST-100"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Equal(t, "Update payload cannot be empty", apperror.GetAppError(err).Message)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	name := "Zaid"
	_, err := svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
		CustomerID: "CUST-404",
		FirstName:  &name,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteCustomer(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo)

	_, err := svc.CreateCustomer(context.Background(), validCustomerInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(context.Background(), "CUST-100"))

	_, err = svc.GetCustomer(context.Background(), "CUST-100")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	// Deleting again answers not found.
	err = svc.DeleteCustomer(context.Background(), "CUST-100")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
