package financials

import (
	"context"
	"time"

	"go-bizdash/internal/domain"

	"gorm.io/gorm"
)

// Source feeds the aggregation with the currently persisted collections.
// Keeping it an interface lets the service tests run on canned data.
//
//go:generate mockgen -source=source.go -destination=mock/source_mock.go -package=mock
type Source interface {
	EmployeeCostRecords(ctx context.Context) ([]EmployeeCostRecord, error)
	ProjectRecords(ctx context.Context) ([]ProjectRecord, error)
	ProjectRecord(ctx context.Context, id string) (*ProjectRecord, error)
	ExpensesByYear(ctx context.Context, year int) ([]ExpensesInfo, error)
}

type gormSource struct {
	db *gorm.DB
}

func NewSource(db *gorm.DB) Source {
	return &gormSource{db: db}
}

type employeeCostRow struct {
	Department      string
	Salary          float64
	IsEmployed      bool
	HiringDate      time.Time
	TerminationDate *time.Time
}

func (s *gormSource) EmployeeCostRecords(ctx context.Context) ([]EmployeeCostRecord, error) {
	var rows []employeeCostRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT department, salary, is_employed, hiring_date, termination_date
		FROM employees
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	recs := make([]EmployeeCostRecord, len(rows))
	for i, r := range rows {
		recs[i] = EmployeeCostRecord{
			Department:      domain.Department(r.Department),
			Salary:          r.Salary,
			IsEmployed:      r.IsEmployed,
			HiringDate:      r.HiringDate,
			TerminationDate: r.TerminationDate,
		}
	}
	return recs, nil
}

type projectRow struct {
	ID              string
	Name            string
	StartDate       time.Time
	EndDate         time.Time
	ActualEndDate   *time.Time
	HourlyRate      float64
	ProjectValueBam float64
	ProjectVelocity float64
	ProjectType     string
	SalesChannel    string
	ProjectStatus   string
	TeamSize        int
	Cost            float64
}

const projectRecordQuery = `
SELECT
	p.id::text AS id,
	p.name,
	p.start_date,
	p.end_date,
	p.actual_end_date,
	p.hourly_rate,
	p.project_value_bam,
	p.project_velocity,
	p.project_type,
	p.sales_channel,
	p.project_status,
	COUNT(pa.employee_id) AS team_size,
	COALESCE(SUM(e.salary), 0) AS cost
FROM projects p
LEFT JOIN project_assignments pa ON pa.project_id = p.id
LEFT JOIN employees e ON e.id = pa.employee_id
`

func (s *gormSource) ProjectRecords(ctx context.Context) ([]ProjectRecord, error) {
	var rows []projectRow
	err := s.db.WithContext(ctx).Raw(projectRecordQuery + `GROUP BY p.id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	recs := make([]ProjectRecord, len(rows))
	for i, r := range rows {
		recs[i] = mapProjectRow(r)
	}
	return recs, nil
}

func (s *gormSource) ProjectRecord(ctx context.Context, id string) (*ProjectRecord, error) {
	var rows []projectRow
	err := s.db.WithContext(ctx).Raw(projectRecordQuery+`WHERE p.id = ? GROUP BY p.id`, id).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	rec := mapProjectRow(rows[0])
	return &rec, nil
}

func (s *gormSource) ExpensesByYear(ctx context.Context, year int) ([]ExpensesInfo, error) {
	var rows []ExpensesInfo
	err := s.db.WithContext(ctx).Raw(`
		SELECT year, month, expense_category, planned_expense, actual_expense
		FROM expenses
		WHERE year = ?
	`, year).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func mapProjectRow(r projectRow) ProjectRecord {
	return ProjectRecord{
		ID:            r.ID,
		Name:          r.Name,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		ActualEndDate: r.ActualEndDate,
		HourlyRate:    r.HourlyRate,
		ValueBAM:      r.ProjectValueBam,
		Velocity:      r.ProjectVelocity,
		Type:          domain.ProjectType(r.ProjectType),
		SalesChannel:  domain.SalesChannel(r.SalesChannel),
		Status:        domain.ProjectStatus(r.ProjectStatus),
		TeamSize:      r.TeamSize,
		Cost:          r.Cost,
	}
}
