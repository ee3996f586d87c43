package financials_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-bizdash/internal/domain"
	"go-bizdash/internal/financials"
	financialserrors "go-bizdash/internal/financials/errors"

	financialsMock "go-bizdash/internal/financials/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   financials.Service
	source    *financialsMock.MockSource
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T, formula financials.ProfitFormula) *serviceDeps {
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	source := financialsMock.NewMockSource(ctrl)

	svc := financials.NewService(source, rdb, formula)

	return &serviceDeps{
		service:   svc,
		source:    source,
		redismock: redisMock,
	}
}

func TestFinancialsService_Overview(t *testing.T) {
	ctx := context.Background()

	hiring := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	costRecords := []financials.EmployeeCostRecord{
		{Department: domain.DepartmentDevelopment, Salary: 1000, HiringDate: hiring},
		{Department: domain.DepartmentDevelopment, Salary: 2000, HiringDate: hiring},
		{Department: domain.DepartmentDesign, Salary: 500, HiringDate: hiring},
		{Department: domain.DepartmentManagement, Salary: 5000, HiringDate: hiring},
	}

	t.Run("renders the period snapshot", func(t *testing.T) {
		deps := setupServiceTest(t, financials.ProfitStandard)

		deps.redismock.ExpectGet("financials:overview:2025:3").RedisNil()

		deps.source.EXPECT().EmployeeCostRecords(gomock.Any()).Return(costRecords, nil)
		deps.source.EXPECT().ProjectRecords(gomock.Any()).Return(nil, nil)
		deps.source.EXPECT().ExpensesByYear(gomock.Any(), 2025).Return(nil, nil)

		deps.redismock.Regexp().ExpectSet("financials:overview:2025:3", `.*`, 10*time.Minute).SetVal("OK")

		resp, err := deps.service.Overview(ctx, 2025, time.March)

		assert.NoError(t, err)
		assert.Equal(t, 2025, resp.Year)
		assert.Equal(t, "March", resp.Month)
		assert.Equal(t, 3000.0, resp.Costs.Development)
		assert.Equal(t, 500.0, resp.Costs.Design)
		assert.Equal(t, 5000.0, resp.Costs.Other)
		assert.Equal(t, 8500.0, resp.Costs.Total)
		// No projects, so revenue is cost-only.
		assert.Equal(t, 8500.0, resp.TotalRevenue)
		assert.Equal(t, 0.0, resp.NetProfit)
		assert.Equal(t, "standard", resp.ProfitFormula)
		assert.Equal(t, "8,500.00 KM", resp.Formatted.TotalRevenue)
		assert.Equal(t, "3,000.00 KM", resp.Formatted.Development)
	})

	t.Run("legacy formula doubles the cost into profit", func(t *testing.T) {
		deps := setupServiceTest(t, financials.ProfitLegacy)

		deps.redismock.ExpectGet("financials:overview:2025:3").RedisNil()

		deps.source.EXPECT().EmployeeCostRecords(gomock.Any()).Return(costRecords, nil)
		deps.source.EXPECT().ProjectRecords(gomock.Any()).Return(nil, nil)
		deps.source.EXPECT().ExpensesByYear(gomock.Any(), 2025).Return(nil, nil)

		deps.redismock.Regexp().ExpectSet("financials:overview:2025:3", `.*`, 10*time.Minute).SetVal("OK")

		resp, err := deps.service.Overview(ctx, 2025, time.March)

		assert.NoError(t, err)
		assert.Equal(t, "legacy", resp.ProfitFormula)
		assert.Equal(t, 17000.0, resp.NetProfit)
	})

	t.Run("zero month aggregates the whole year", func(t *testing.T) {
		deps := setupServiceTest(t, financials.ProfitStandard)

		deps.redismock.ExpectGet("financials:overview:2025:0").RedisNil()

		deps.source.EXPECT().EmployeeCostRecords(gomock.Any()).Return(costRecords[:1], nil)
		deps.source.EXPECT().ProjectRecords(gomock.Any()).Return(nil, nil)
		deps.source.EXPECT().ExpensesByYear(gomock.Any(), 2025).Return(nil, nil)

		deps.redismock.Regexp().ExpectSet("financials:overview:2025:0", `.*`, 10*time.Minute).SetVal("OK")

		resp, err := deps.service.Overview(ctx, 2025, 0)

		assert.NoError(t, err)
		assert.Empty(t, resp.Month)
		// One employee line per month of the year.
		assert.Len(t, resp.Employees, 12)
		assert.Equal(t, 12000.0, resp.Costs.Total)
	})

	t.Run("cache hit skips the source", func(t *testing.T) {
		deps := setupServiceTest(t, financials.ProfitStandard)

		cached := financials.OverviewResponse{Year: 2025, Month: "March", TotalRevenue: 8500}
		data, _ := json.Marshal(cached)
		deps.redismock.ExpectGet("financials:overview:2025:3").SetVal(string(data))

		resp, err := deps.service.Overview(ctx, 2025, time.March)

		assert.NoError(t, err)
		assert.Equal(t, 8500.0, resp.TotalRevenue)
	})

	t.Run("source error surfaces", func(t *testing.T) {
		deps := setupServiceTest(t, financials.ProfitStandard)

		deps.redismock.ExpectGet("financials:overview:2025:3").RedisNil()
		deps.source.EXPECT().EmployeeCostRecords(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.Overview(ctx, 2025, time.March)

		assert.Error(t, err)
	})
}

func TestFinancialsService_ProjectChart(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the revenue/cost gap", func(t *testing.T) {
		deps := setupServiceTest(t, financials.ProfitStandard)

		deps.redismock.ExpectGet("financials:chart:p-1").RedisNil()

		deps.source.EXPECT().
			ProjectRecord(gomock.Any(), "p-1").
			Return(&financials.ProjectRecord{
				ID:       "p-1",
				Name:     "Webshop",
				ValueBAM: 82000,
				Cost:     61000,
			}, nil)

		deps.redismock.Regexp().ExpectSet("financials:chart:p-1", `.*`, 10*time.Minute).SetVal("OK")

		resp, err := deps.service.ProjectChart(ctx, "p-1")

		assert.NoError(t, err)
		assert.Equal(t, "Webshop", resp.Name)
		assert.Len(t, resp.Slices, 2)
		assert.Equal(t, 21000.0, resp.RevenueGap)
		assert.Equal(t, "21,000.00 KM", resp.Formatted)
	})

	t.Run("unknown project", func(t *testing.T) {
		deps := setupServiceTest(t, financials.ProfitStandard)

		deps.redismock.ExpectGet("financials:chart:missing").RedisNil()

		deps.source.EXPECT().
			ProjectRecord(gomock.Any(), "missing").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ProjectChart(ctx, "missing")

		assert.ErrorIs(t, err, financialserrors.ErrProjectNotFound)
	})
}

func TestFinancialsService_InvalidateCache(t *testing.T) {
	ctx := context.Background()

	t.Run("drops every cached snapshot", func(t *testing.T) {
		deps := setupServiceTest(t, financials.ProfitStandard)

		deps.redismock.ExpectScan(0, "financials:*", 100).SetVal([]string{
			"financials:overview:2025:3",
			"financials:chart:p-1",
		}, 0)
		deps.redismock.ExpectDel("financials:overview:2025:3").SetVal(1)
		deps.redismock.ExpectDel("financials:chart:p-1").SetVal(1)

		err := deps.service.InvalidateCache(ctx)

		assert.NoError(t, err)
	})
}
