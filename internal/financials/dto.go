package financials

import "time"

// FormattedTotals carries the display strings for every headline figure so
// clients never re-implement the money format.
type FormattedTotals struct {
	Development   string `json:"development"`
	Design        string `json:"design"`
	Other         string `json:"other"`
	TotalRevenue  string `json:"totalRevenue"`
	NetProfit     string `json:"netProfit"`
	TotalExpenses string `json:"totalExpenses"`
}

// OverviewResponse is one derived snapshot of the dashboard's financial
// view. SnapshotAt is the computation timestamp; a later fetch fully
// replaces the snapshot, it is never patched in place.
type OverviewResponse struct {
	Year          int             `json:"year"`
	Month         string          `json:"month,omitempty"`
	SnapshotAt    time.Time       `json:"snapshotAt"`
	ProfitFormula string          `json:"profitFormula"`
	Costs         CostBreakdown   `json:"costs"`
	TotalRevenue  float64         `json:"totalRevenue"`
	NetProfit     float64         `json:"netProfit"`
	Employees     []EmployeeInfo  `json:"employees"`
	Projects      ProjectsInfo    `json:"projects"`
	Expenses      ExpenseSummary  `json:"expenses"`
	Formatted     FormattedTotals `json:"formatted"`
}

// ChartResponse backs the per-project revenue/cost pie.
type ChartResponse struct {
	ProjectID  string       `json:"projectId"`
	Name       string       `json:"name"`
	SnapshotAt time.Time    `json:"snapshotAt"`
	Slices     []ChartSlice `json:"slices"`
	RevenueGap float64      `json:"revenueGap"`
	Formatted  string       `json:"formattedGap"`
}
