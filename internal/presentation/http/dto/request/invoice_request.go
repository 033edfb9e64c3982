package request

// ServiceDetailsRequest describes the billed service in an invoice request
type ServiceDetailsRequest struct {
	ID          string   `json:"id"`
	ServiceName string   `json:"serviceName"`
	Type        string   `json:"type"`
	Price       *float64 `json:"price"`
}

// CreateInvoiceRequest represents the create invoice payload. The derived
// totals are never accepted from the caller, so they have no fields here.
// Field presence is validated in the service so every missing-field case
// gets the same response.
type CreateInvoiceRequest struct {
	Customer       string                 `json:"customer"`
	ServiceDetails *ServiceDetailsRequest `json:"serviceDetails"`
	Discounts      *float64               `json:"discounts"`
	State          string                 `json:"state"`
	TransactionID  string                 `json:"transactionId"`
}
