package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Inquiry represents a question posted through the inquiry board
type Inquiry struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Title      string             `gorm:"size:255;not null" json:"title"`
	Content    string             `gorm:"type:text;not null" json:"content"`
	AuthorName string             `gorm:"size:100;not null" json:"author_name"`
	CustomerID *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Type       string             `gorm:"size:100" json:"type"`
	Status     enum.InquiryStatus `gorm:"default:0" json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new inquiry
func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Inquiry model
func (Inquiry) TableName() string {
	return "inquiries"
}
