package financials

import (
	"math"
	"time"

	"go-bizdash/internal/domain"
)

// EmployeeInfo is the per-employee cost line a dashboard period is built
// from. The cost category is fixed by the employee's department when the
// record is built and is not re-derived downstream.
type EmployeeInfo struct {
	Month               string  `json:"month"`
	TotalHoursAvailable float64 `json:"totalHoursAvailable"`
	TotalHoursBilled    float64 `json:"totalHoursBilled"`
	DevelopmentCost     float64 `json:"developmentCost"`
	DesignCost          float64 `json:"designCost"`
	OtherCost           float64 `json:"otherCost"`
	TotalCost           float64 `json:"totalCost"`
}

type CostBreakdown struct {
	Development float64 `json:"development"`
	Design      float64 `json:"design"`
	Other       float64 `json:"other"`
	Total       float64 `json:"total"`
}

// ProjectRecord is the slice of a project the aggregation cares about.
type ProjectRecord struct {
	ID            string
	Name          string
	StartDate     time.Time
	EndDate       time.Time
	ActualEndDate *time.Time
	HourlyRate    float64
	ValueBAM      float64
	Velocity      float64
	Type          domain.ProjectType
	SalesChannel  domain.SalesChannel
	Status        domain.ProjectStatus
	TeamSize      int
	Cost          float64
}

type ProjectInfo struct {
	Name              string     `json:"name"`
	StartDate         time.Time  `json:"startDate"`
	EndDate           time.Time  `json:"endDate"`
	ActualEndDate     *time.Time `json:"actualEndDate,omitempty"`
	HourlyRate        float64    `json:"hourlyRate"`
	ProjectVelocity   float64    `json:"projectVelocity"`
	NumberOfEmployees int        `json:"numberOfEmployees"`
	Revenue           float64    `json:"revenue"`
	Cost              float64    `json:"cost"`
	Profit            float64    `json:"profit"`
}

type ProjectsInfo struct {
	TotalProjects          int                             `json:"totalProjects"`
	TotalValue             float64                         `json:"totalValue"`
	AverageValue           float64                         `json:"averageValue"`
	AverageRate            float64                         `json:"averageRate"`
	AverageVelocity        float64                         `json:"averageVelocity"`
	AverageTeamSize        float64                         `json:"averageTeamSize"`
	GrossProfit            float64                         `json:"grossProfit"`
	WeeksOverDeadline      float64                         `json:"weeksOverDeadline"`
	SalesChannelPercentage map[domain.SalesChannel]float64 `json:"salesChannelPercentage"`
	ProjectTypeCount       map[domain.ProjectType]int      `json:"projectTypeCount"`
	Projects               []ProjectInfo                   `json:"projects"`
}

type ExpensesInfo struct {
	Year            int     `json:"year"`
	Month           string  `json:"month"`
	ExpenseCategory string  `json:"expenseCategory"`
	PlannedExpense  float64 `json:"plannedExpense"`
	ActualExpense   float64 `json:"actualExpense"`
}

type ExpenseSummary struct {
	TotalPlanned float64            `json:"totalPlanned"`
	TotalActual  float64            `json:"totalActual"`
	ByCategory   map[string]float64 `json:"byCategory"`
}

// sanitize keeps NaN/Inf out of every sum. A record with a broken numeric
// field contributes zero instead of poisoning the total.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SumCosts partitions the period's employee lines per cost category. An
// empty input yields an all-zero breakdown.
func SumCosts(entries []EmployeeInfo) CostBreakdown {
	var b CostBreakdown
	for _, e := range entries {
		b.Development += sanitize(e.DevelopmentCost)
		b.Design += sanitize(e.DesignCost)
		b.Other += sanitize(e.OtherCost)
		b.Total += sanitize(e.TotalCost)
	}
	return b
}

// TotalRevenue is the headline figure the dashboard shows: every employee's
// total cost for the period plus the total contracted project value.
func TotalRevenue(entries []EmployeeInfo, projectsTotalValue float64) float64 {
	return SumCosts(entries).Total + sanitize(projectsTotalValue)
}

// ProfitFormula selects the net-profit computation. The legacy formula adds
// each employee's total cost twice, matching the historical reports; the
// standard formula subtracts cost from revenue.
type ProfitFormula int

const (
	ProfitStandard ProfitFormula = iota
	ProfitLegacy
)

func ParseProfitFormula(s string) ProfitFormula {
	if s == "legacy" {
		return ProfitLegacy
	}
	return ProfitStandard
}

func (f ProfitFormula) String() string {
	if f == ProfitLegacy {
		return "legacy"
	}
	return "standard"
}

// NetProfit computes the period's net profit under the selected formula.
func NetProfit(formula ProfitFormula, entries []EmployeeInfo, projectsTotalValue float64) float64 {
	cost := SumCosts(entries).Total
	revenue := TotalRevenue(entries, projectsTotalValue)
	if formula == ProfitLegacy {
		return revenue + cost
	}
	return revenue - cost
}

// ChartSlice is one segment of the per-project revenue/cost pie.
type ChartSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RevenueGap is the difference between the first two chart slices. Fewer
// than two slices means there is nothing to compare.
func RevenueGap(slices []ChartSlice) float64 {
	if len(slices) < 2 {
		return 0
	}
	return sanitize(slices[0].Value) - sanitize(slices[1].Value)
}

// hoursPerMonth is the full-time availability used for EmployeeInfo lines
// (22 working days of 8 hours).
const hoursPerMonth = 176

// EmployeeCostRecord is the slice of an employee the aggregation cares about.
type EmployeeCostRecord struct {
	Department      domain.Department
	Salary          float64
	IsEmployed      bool
	HiringDate      time.Time
	TerminationDate *time.Time
	HoursBilled     float64
}

// BuildEmployeeInfo derives one cost line per employee employed during the
// given period. The department fixes the cost category: Development and
// Design map to their own buckets, Administration and Management to other.
func BuildEmployeeInfo(year int, month time.Month, recs []EmployeeCostRecord) []EmployeeInfo {
	periodStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	infos := make([]EmployeeInfo, 0, len(recs))
	for _, r := range recs {
		if r.HiringDate.After(periodEnd) || r.HiringDate.Equal(periodEnd) {
			continue
		}
		if r.TerminationDate != nil && r.TerminationDate.Before(periodStart) {
			continue
		}

		salary := sanitize(r.Salary)
		info := EmployeeInfo{
			Month:               month.String(),
			TotalHoursAvailable: hoursPerMonth,
			TotalHoursBilled:    sanitize(r.HoursBilled),
			TotalCost:           salary,
		}
		switch r.Department {
		case domain.DepartmentDevelopment:
			info.DevelopmentCost = salary
		case domain.DepartmentDesign:
			info.DesignCost = salary
		default:
			info.OtherCost = salary
		}
		infos = append(infos, info)
	}
	return infos
}

// BuildProjectsInfo rolls a project collection up into the dashboard's
// portfolio summary.
func BuildProjectsInfo(recs []ProjectRecord) ProjectsInfo {
	info := ProjectsInfo{
		SalesChannelPercentage: map[domain.SalesChannel]float64{},
		ProjectTypeCount:       map[domain.ProjectType]int{},
		Projects:               make([]ProjectInfo, 0, len(recs)),
	}

	if len(recs) == 0 {
		return info
	}

	channelCount := map[domain.SalesChannel]int{}
	var teamSizeSum int
	for _, r := range recs {
		value := sanitize(r.ValueBAM)
		cost := sanitize(r.Cost)

		info.TotalProjects++
		info.TotalValue += value
		info.AverageRate += sanitize(r.HourlyRate)
		info.AverageVelocity += sanitize(r.Velocity)
		info.GrossProfit += value - cost
		teamSizeSum += r.TeamSize
		channelCount[r.SalesChannel]++
		info.ProjectTypeCount[r.Type]++

		if r.ActualEndDate != nil && r.ActualEndDate.After(r.EndDate) {
			info.WeeksOverDeadline += r.ActualEndDate.Sub(r.EndDate).Hours() / (24 * 7)
		}

		info.Projects = append(info.Projects, ProjectInfo{
			Name:              r.Name,
			StartDate:         r.StartDate,
			EndDate:           r.EndDate,
			ActualEndDate:     r.ActualEndDate,
			HourlyRate:        sanitize(r.HourlyRate),
			ProjectVelocity:   sanitize(r.Velocity),
			NumberOfEmployees: r.TeamSize,
			Revenue:           value,
			Cost:              cost,
			Profit:            value - cost,
		})
	}

	n := float64(info.TotalProjects)
	info.AverageValue = info.TotalValue / n
	info.AverageRate /= n
	info.AverageVelocity /= n
	info.AverageTeamSize = float64(teamSizeSum) / n
	for ch, count := range channelCount {
		info.SalesChannelPercentage[ch] = float64(count) / n * 100
	}

	return info
}

// BuildExpenseSummary totals planned and actual expenses per category.
func BuildExpenseSummary(expenses []ExpensesInfo) ExpenseSummary {
	summary := ExpenseSummary{ByCategory: map[string]float64{}}
	for _, e := range expenses {
		summary.TotalPlanned += sanitize(e.PlannedExpense)
		actual := sanitize(e.ActualExpense)
		summary.TotalActual += actual
		summary.ByCategory[e.ExpenseCategory] += actual
	}
	return summary
}
