package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget periods.
const (
	PeriodWeek  = "WEEK"
	PeriodMonth = "MONTH"
	PeriodYear  = "YEAR"
)

// Budget defines a recurring spending ceiling for one category.
type Budget struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
	UserID      uint            `gorm:"index;not null" json:"userId"`
	CategoryID  uint            `gorm:"index;not null" json:"categoryId"`
	Category    Category        `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"limitAmount"`
	Period      string          `gorm:"size:20;not null;default:MONTH" json:"period"`
	StartDate   time.Time       `gorm:"not null" json:"startDate"`
}
