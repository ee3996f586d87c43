package employee

import (
	"time"

	"go-bizdash/internal/domain"

	"github.com/google/uuid"
)

type Employee struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName       string
	LastName        string
	ImageURL        string
	Department      domain.Department
	Salary          float64
	Currency        domain.Currency
	TechStack       domain.TechStack
	IsEmployed      bool
	HiringDate      time.Time
	TerminationDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AssignmentRow is the employee side of the employee<->project edge. The
// part-time flag lives on the edge, not on either endpoint.
type AssignmentRow struct {
	ProjectID   string
	ProjectName string
	PartTime    bool
}
