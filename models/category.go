package models

import "time"

// Transaction / category kinds.
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// Category is read-mostly reference data shared by all users. Seeded rows
// carry IsSystem=true and cannot be removed through the API.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	Icon      string    `gorm:"size:50;default:category" json:"icon"`
	Color     string    `gorm:"size:7;default:#999999" json:"color"`
	IsSystem  bool      `gorm:"default:false" json:"isSystem"`
}
