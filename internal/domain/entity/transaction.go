package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/pkg/money"
	"gorm.io/gorm"
)

// Transaction represents a billed sale of a service
type Transaction struct {
	ID          uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ServiceType string                 `gorm:"size:255;not null" json:"service_type"`
	Amount      money.KRW              `gorm:"type:bigint;not null;default:0" json:"amount"`
	CustomerID  *uuid.UUID             `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Status      enum.TransactionStatus `gorm:"default:0" json:"status"`
	Date        time.Time              `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	DeletedAt   gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
