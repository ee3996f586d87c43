package expense

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year            int       `gorm:"not null;uniqueIndex:uq_expense_period_category,priority:1"`
	Month           string    `gorm:"type:text;not null;uniqueIndex:uq_expense_period_category,priority:2"`
	ExpenseCategory string    `gorm:"type:text;not null;uniqueIndex:uq_expense_period_category,priority:3"`
	PlannedExpense  float64   `gorm:"not null;default:0"`
	ActualExpense   float64   `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
