package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultState is the region stamped on customers and invoices when the
// caller does not supply one.
const DefaultState = "Al Quoz"

// Customer represents a wash customer. CustomerID is the caller-assigned
// external identifier used in the API paths; ID is the storage key.
type Customer struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID         string         `gorm:"size:100;not null;index" json:"customerId"`
	FirstName          string         `gorm:"size:255;not null" json:"firstName"`
	LastName           string         `gorm:"size:255;not null" json:"lastName"`
	Email              string         `gorm:"size:255;not null;index" json:"email"`
	PhoneNumber        string         `gorm:"size:50;not null" json:"phoneNumber"`
	LicencePlateNumber string         `gorm:"size:50;not null" json:"licencePlateNumber"`
	Address            string         `gorm:"type:text" json:"address,omitempty"`
	State              string         `gorm:"size:100;default:'Al Quoz'" json:"state"`
	InvoiceCount       int            `gorm:"default:0" json:"invoiceCount"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoices []Invoice `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
}

// BeforeCreate generates a UUID and applies the default state before
// creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.State == "" {
		c.State = DefaultState
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// FullName returns the customer's display name as printed on invoices
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
