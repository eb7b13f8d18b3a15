package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense entry on an account.
// Amount is always positive; Type tells the direction.
type Transaction struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time       `json:"-"`
	UpdatedAt  time.Time       `json:"-"`
	UserID     uint            `gorm:"index;not null" json:"userId"`
	AccountID  uint            `gorm:"index;not null" json:"accountId"`
	Account    Account         `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CategoryID uint            `gorm:"index;not null" json:"categoryId"`
	Category   Category        `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date       time.Time       `gorm:"index;not null" json:"date"`
	Note       string          `gorm:"type:text" json:"note,omitempty"`
	Type       string          `gorm:"size:20;not null" json:"type"`
}
