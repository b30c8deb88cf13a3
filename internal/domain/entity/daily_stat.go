package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/pkg/money"
	"gorm.io/gorm"
)

// DailyStat is a pre-aggregated rollup of one calendar day, upserted by
// the stat sync routine. Date is truncated to midnight and unique.
type DailyStat struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date      time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	PageViews int       `gorm:"not null;default:0" json:"page_views"`
	Visitors  int       `gorm:"not null;default:0" json:"visitors"`
	Signups   int       `gorm:"not null;default:0" json:"signups"`
	Inquiries int       `gorm:"not null;default:0" json:"inquiries"`
	Revenue   money.KRW `gorm:"type:bigint;not null;default:0" json:"revenue"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new daily stat
func (d *DailyStat) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailyStat model
func (DailyStat) TableName() string {
	return "daily_stats"
}
