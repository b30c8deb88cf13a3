package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/pkg/money"
	"gorm.io/gorm"
)

// Estimate represents a quote document issued to a customer. The header
// carries a snapshot of the issuing business captured at issue time, and
// Amount is a stored projection of the line items — it is recomputed and
// rewritten on every header-affecting write, never trusted from before.
type Estimate struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	EstimateNum string              `gorm:"size:50;uniqueIndex;not null" json:"estimate_num"`
	Title       string              `gorm:"size:255;not null" json:"title"`
	CustomerID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"customer_id"`
	BizNumber   string              `gorm:"size:50" json:"biz_number"`
	BizName     string              `gorm:"size:255" json:"biz_name"`
	BizCEO      string              `gorm:"size:100;column:biz_ceo" json:"biz_ceo"`
	BizAddress  string              `gorm:"size:255" json:"biz_address"`
	BizPhone    string              `gorm:"size:50" json:"biz_phone"`
	BizEmail    string              `gorm:"size:255" json:"biz_email"`
	Amount      money.KRW           `gorm:"type:bigint;not null;default:0" json:"amount"`
	Status      enum.EstimateStatus `gorm:"default:0" json:"status"`
	IssueDate   time.Time           `gorm:"not null" json:"issue_date"`
	ValidUntil  time.Time           `gorm:"not null" json:"valid_until"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []EstimateItem `gorm:"foreignKey:EstimateID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new estimate
func (e *Estimate) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Estimate model
func (Estimate) TableName() string {
	return "estimates"
}

// EstimateItem represents a line item in an estimate. Items are replaced
// wholesale on every update, so their ids are not stable across edits.
type EstimateItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	EstimateID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"estimate_id"`
	ItemName    string         `gorm:"size:255;not null" json:"item_name"`
	Spec        *string        `gorm:"type:text" json:"spec,omitempty"`
	Quantity    int            `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   money.KRW      `gorm:"type:bigint;not null;default:0" json:"unit_price"`
	SupplyValue money.KRW      `gorm:"type:bigint;not null;default:0" json:"supply_value"`
	VAT         money.KRW      `gorm:"type:bigint;not null;default:0;column:vat" json:"vat"`
	Position    int            `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Estimate Estimate `gorm:"foreignKey:EstimateID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new estimate item
func (i *EstimateItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EstimateItem model
func (EstimateItem) TableName() string {
	return "estimate_items"
}

// EstimateCounter holds the per-year document sequence. The row is
// claimed with an upsert inside the create transaction so two concurrent
// creates can never share a number.
type EstimateCounter struct {
	Year int `gorm:"primaryKey" json:"year"`
	Seq  int `gorm:"not null" json:"seq"`
}

// TableName returns the table name for the EstimateCounter model
func (EstimateCounter) TableName() string {
	return "estimate_counters"
}
