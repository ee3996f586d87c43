package financials

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	financialserrors "go-bizdash/internal/financials/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	cacheKeyPrefix = "financials:"
	cacheTTL       = 10 * time.Minute
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context, year int, month time.Month) (OverviewResponse, error)
	ProjectChart(ctx context.Context, projectID string) (ChartResponse, error)
	InvalidateCache(ctx context.Context) error
}

type service struct {
	source  Source
	rdb     *redis.Client
	sf      *singleflight.Group
	formula ProfitFormula
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(source Source, rdb *redis.Client, formula ProfitFormula, logger ...*zap.Logger) Service {
	l := zap.L().Named("financials.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("financials.service")
	}
	return &service{
		source:  source,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		formula: formula,
		logger:  l,
		now:     time.Now,
	}
}

func overviewCacheKey(year int, month time.Month) string {
	return fmt.Sprintf("%soverview:%d:%d", cacheKeyPrefix, year, int(month))
}

func chartCacheKey(projectID string) string {
	return cacheKeyPrefix + "chart:" + projectID
}

func (s *service) Overview(ctx context.Context, year int, month time.Month) (OverviewResponse, error) {
	s.logger.Debug("financial overview requested",
		zap.Int("year", year),
		zap.Int("month", int(month)),
	)

	cacheKey := overviewCacheKey(year, month)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp OverviewResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the burst of identical requests a dashboard
	// load produces after an invalidation.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.computeOverview(ctx, year, month)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, data, cacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("compute financial overview failed", zap.Error(err))
		return OverviewResponse{}, err
	}

	return v.(OverviewResponse), nil
}

func (s *service) computeOverview(ctx context.Context, year int, month time.Month) (OverviewResponse, error) {
	costRecords, err := s.source.EmployeeCostRecords(ctx)
	if err != nil {
		return OverviewResponse{}, err
	}
	projectRecords, err := s.source.ProjectRecords(ctx)
	if err != nil {
		return OverviewResponse{}, err
	}
	expenseRows, err := s.source.ExpensesByYear(ctx, year)
	if err != nil {
		return OverviewResponse{}, err
	}

	var employees []EmployeeInfo
	if month != 0 {
		employees = BuildEmployeeInfo(year, month, costRecords)
	} else {
		for m := time.January; m <= time.December; m++ {
			employees = append(employees, BuildEmployeeInfo(year, m, costRecords)...)
		}
	}

	projects := BuildProjectsInfo(projectRecords)
	expenses := BuildExpenseSummary(expenseRows)
	costs := SumCosts(employees)
	revenue := TotalRevenue(employees, projects.TotalValue)
	profit := NetProfit(s.formula, employees, projects.TotalValue)

	resp := OverviewResponse{
		Year:          year,
		SnapshotAt:    s.now().UTC(),
		ProfitFormula: s.formula.String(),
		Costs:         costs,
		TotalRevenue:  revenue,
		NetProfit:     profit,
		Employees:     employees,
		Projects:      projects,
		Expenses:      expenses,
		Formatted: FormattedTotals{
			Development:   AmountBAM(costs.Development),
			Design:        AmountBAM(costs.Design),
			Other:         AmountBAM(costs.Other),
			TotalRevenue:  AmountBAM(revenue),
			NetProfit:     AmountBAM(profit),
			TotalExpenses: AmountBAM(expenses.TotalActual),
		},
	}
	if month != 0 {
		resp.Month = month.String()
	}
	return resp, nil
}

func (s *service) ProjectChart(ctx context.Context, projectID string) (ChartResponse, error) {
	s.logger.Debug("project chart requested", zap.String("project_id", projectID))

	cacheKey := chartCacheKey(projectID)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp ChartResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	rec, err := s.source.ProjectRecord(ctx, projectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ChartResponse{}, financialserrors.ErrProjectNotFound
		}
		s.logger.Error("load project chart record failed", zap.Error(err))
		return ChartResponse{}, err
	}

	slices := []ChartSlice{
		{Name: "Revenue", Value: rec.ValueBAM},
		{Name: "Cost", Value: rec.Cost},
	}
	gap := RevenueGap(slices)

	resp := ChartResponse{
		ProjectID:  rec.ID,
		Name:       rec.Name,
		SnapshotAt: s.now().UTC(),
		Slices:     slices,
		RevenueGap: gap,
		Formatted:  AmountBAM(gap),
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, cacheKey, data, cacheTTL)
		}
	}
	return resp, nil
}

// InvalidateCache drops every cached snapshot. Called by the lifecycle
// consumer whenever a source collection mutates.
func (s *service) InvalidateCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	iter := s.rdb.Scan(ctx, 0, cacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Error("invalidate financial cache key failed",
				zap.String("key", iter.Val()),
				zap.Error(err),
			)
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Error("scan financial cache keys failed", zap.Error(err))
		return err
	}
	return nil
}
