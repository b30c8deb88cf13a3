package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a customer in the CRM
type Customer struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name      string              `gorm:"size:255;not null" json:"name"`
	Email     *string             `gorm:"size:255" json:"email,omitempty"`
	Company   *string             `gorm:"size:255" json:"company,omitempty"`
	Phone     *string             `gorm:"size:50" json:"phone,omitempty"`
	Address   *string             `gorm:"type:text" json:"address,omitempty"`
	Status    enum.CustomerStatus `gorm:"default:0" json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Estimates    []Estimate    `gorm:"foreignKey:CustomerID" json:"-"`
	Inquiries    []Inquiry     `gorm:"foreignKey:CustomerID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
