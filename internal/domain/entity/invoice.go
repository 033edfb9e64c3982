package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTaxRate is applied when an invoice is created without an
// explicit rate.
const DefaultTaxRate = 0.05

// ServiceDetails describes the single service billed on an invoice.
type ServiceDetails struct {
	ServiceID   string  `gorm:"size:100" json:"id,omitempty"`
	ServiceName string  `gorm:"size:255;not null" json:"serviceName"`
	ServiceType string  `gorm:"size:100" json:"type,omitempty"`
	Price       float64 `gorm:"not null" json:"price"`
}

// Invoice is a billing record for one service rendered to one customer.
// Subtotal, TaxAmount and Total are derived; the only way to construct a
// persistable Invoice is NewInvoice, which always recomputes them. Callers
// never supply them. Invoices are immutable once created.
type Invoice struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer"`
	ServiceDetails ServiceDetails `gorm:"embedded;embeddedPrefix:service_" json:"serviceDetails"`
	Discounts      float64        `gorm:"default:0" json:"discounts"`
	State          string         `gorm:"size:100;default:'Al Quoz'" json:"state"`
	TransactionID  string         `gorm:"size:100;not null;index" json:"transactionId"`
	TaxRate        float64        `gorm:"default:0.05" json:"taxRate"`
	Subtotal       float64        `gorm:"not null" json:"subtotal"`
	TaxAmount      float64        `gorm:"not null" json:"taxAmount"`
	Total          float64        `gorm:"not null" json:"total"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// ComputeTotals derives the invoice totals from price, discounts and tax
// rate. Pure and deterministic. A discount larger than the price yields a
// negative subtotal; that is the billing contract, not an error.
func ComputeTotals(price, discounts, taxRate float64) (subtotal, taxAmount, total float64) {
	subtotal = price - discounts
	taxAmount = subtotal * taxRate
	total = subtotal + taxAmount
	return subtotal, taxAmount, total
}

// NewInvoice builds a persistable Invoice from raw caller input. Totals are
// computed here, unconditionally, so no persistence path can skip them.
// A zero taxRate selects the default rate; missing discounts are zero.
func NewInvoice(customerID uuid.UUID, details ServiceDetails, discounts float64, state, transactionID string, taxRate float64) *Invoice {
	if state == "" {
		state = DefaultState
	}
	if taxRate == 0 {
		taxRate = DefaultTaxRate
	}

	subtotal, taxAmount, total := ComputeTotals(details.Price, discounts, taxRate)

	return &Invoice{
		CustomerID:     customerID,
		ServiceDetails: details,
		Discounts:      discounts,
		State:          state,
		TransactionID:  transactionID,
		TaxRate:        taxRate,
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		Total:          total,
	}
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
