package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessProfile holds the issuing-business details used as the default
// snapshot when an estimate omits its own. A single row is kept; the
// settings page edits it.
type BusinessProfile struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RegistrationNumber string         `gorm:"size:50" json:"registration_number"`
	BusinessName       string         `gorm:"size:255" json:"business_name"`
	CEOName            string         `gorm:"size:100;column:ceo_name" json:"ceo_name"`
	Address            string         `gorm:"size:255" json:"address"`
	Phone              string         `gorm:"size:50" json:"phone"`
	Email              string         `gorm:"size:255" json:"email"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new business profile
func (b *BusinessProfile) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BusinessProfile model
func (BusinessProfile) TableName() string {
	return "business_profiles"
}
