package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account types.
const (
	AccountCash = "CASH"
	AccountCard = "CARD"
	AccountBank = "BANK"
)

// Account represents a money holder belonging to a user. Balance is a
// running total adjusted together with every transaction write.
type Account struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
	UserID    uint            `gorm:"index;not null" json:"userId"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	Currency  string          `gorm:"size:3;not null;default:UAH" json:"currency"`
	Type      string          `gorm:"size:50;not null;default:CASH" json:"type"`
	Color     string          `gorm:"size:7;default:#6200EE" json:"color"`
	Icon      string          `gorm:"size:50;default:account_balance_wallet" json:"icon"`
}
