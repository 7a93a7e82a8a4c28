package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is the latest-state budget snapshot for one user. The unique index
// on UserID keeps it a 1:1 projection: every sync overwrites the previous
// record instead of appending history, and a racing first-time create loses
// with a duplicate-key error instead of producing a second row.
//
// The six category amounts and income are stored as free-form strings; the
// server does not validate them as numbers. The client parses defensively.
// Wire names are canonical snake_case (monthly_bills, not monthlyBills).
type Budget struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	UserID        string    `gorm:"type:text;uniqueIndex;not null" json:"user_id"`
	Income        string    `gorm:"size:64" json:"income"`
	MonthlyBills  string    `gorm:"size:64" json:"monthly_bills"`
	Food          string    `gorm:"size:64" json:"food"`
	Transport     string    `gorm:"size:64" json:"transport"`
	Subscriptions string    `gorm:"size:64" json:"subscriptions"`
	Misc          string    `gorm:"size:64" json:"misc"`
	Description   string    `gorm:"size:1024" json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate assigns a server-side identifier.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
