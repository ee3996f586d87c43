package project

import (
	"time"

	"go-bizdash/internal/domain"

	"github.com/google/uuid"
)

type Project struct {
	ID              uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Name            string               `gorm:"type:text;not null;uniqueIndex:uq_project_name"`
	Description     string               `gorm:"type:text;not null;default:''"`
	StartDate       time.Time            `gorm:"type:date;not null"`
	EndDate         time.Time            `gorm:"type:date;not null"`
	ActualEndDate   *time.Time           `gorm:"type:date"`
	ProjectType     domain.ProjectType   `gorm:"type:text;not null"`
	HourlyRate      float64              `gorm:"not null"`
	ProjectValueBAM float64              `gorm:"column:project_value_bam;not null"`
	ProjectVelocity float64              `gorm:"not null;default:0"`
	SalesChannel    domain.SalesChannel  `gorm:"type:text;not null"`
	ProjectStatus   domain.ProjectStatus `gorm:"type:text;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Assignment is the project/employee edge; PartTime lives on the edge,
// not on either endpoint.
type Assignment struct {
	ProjectID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartTime   bool      `gorm:"not null;default:false"`
}

func (Assignment) TableName() string { return "project_assignments" }

// AssignmentRow is the read shape joined with the employee's name.
type AssignmentRow struct {
	EmployeeID string
	FirstName  string
	LastName   string
	PartTime   bool
}
