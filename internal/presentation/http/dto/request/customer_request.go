package request

// CreateCustomerRequest represents the create customer payload
type CreateCustomerRequest struct {
	CustomerID         string `json:"customerId" binding:"required"`
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	PhoneNumber        string `json:"phoneNumber" binding:"required"`
	LicencePlateNumber string `json:"licencePlateNumber" binding:"required"`
	Address            string `json:"address"`
	State              string `json:"state"`
}

// UpdateCustomerRequest represents the update customer payload. All fields
// are optional, but at least one must be present.
type UpdateCustomerRequest struct {
	FirstName          *string `json:"firstName"`
	LastName           *string `json:"lastName"`
	Email              *string `json:"email"`
	PhoneNumber        *string `json:"phoneNumber"`
	LicencePlateNumber *string `json:"licencePlateNumber"`
	Address            *string `json:"address"`
	State              *string `json:"state"`
}
