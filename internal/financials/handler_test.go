package financials_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-bizdash/internal/financials"
	financialserrors "go-bizdash/internal/financials/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeFinancialsService struct {
	OverviewFn     func(ctx context.Context, year int, month time.Month) (financials.OverviewResponse, error)
	ProjectChartFn func(ctx context.Context, projectID string) (financials.ChartResponse, error)
}

func (f *fakeFinancialsService) Overview(ctx context.Context, year int, month time.Month) (financials.OverviewResponse, error) {
	return f.OverviewFn(ctx, year, month)
}
func (f *fakeFinancialsService) ProjectChart(ctx context.Context, projectID string) (financials.ChartResponse, error) {
	return f.ProjectChartFn(ctx, projectID)
}
func (f *fakeFinancialsService) InvalidateCache(ctx context.Context) error {
	return nil
}

func TestFinancialsHandler_Overview(t *testing.T) {
	t.Run("success with explicit period", func(t *testing.T) {
		svc := &fakeFinancialsService{
			OverviewFn: func(ctx context.Context, year int, month time.Month) (financials.OverviewResponse, error) {
				assert.Equal(t, 2025, year)
				assert.Equal(t, time.March, month)
				return financials.OverviewResponse{Year: year, Month: month.String(), TotalRevenue: 8500}, nil
			},
		}

		h := financials.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/financials/overview?year=2025&month=3", nil)

		h.Overview(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "March")
	})

	t.Run("year defaults to current year", func(t *testing.T) {
		svc := &fakeFinancialsService{
			OverviewFn: func(ctx context.Context, year int, month time.Month) (financials.OverviewResponse, error) {
				assert.Equal(t, time.Now().UTC().Year(), year)
				assert.Equal(t, time.Month(0), month)
				return financials.OverviewResponse{Year: year}, nil
			},
		}

		h := financials.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/financials/overview", nil)

		h.Overview(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid month", func(t *testing.T) {
		h := financials.NewHandler(&fakeFinancialsService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/financials/overview?year=2025&month=13", nil)

		h.Overview(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid year", func(t *testing.T) {
		h := financials.NewHandler(&fakeFinancialsService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/financials/overview?year=123", nil)

		h.Overview(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeFinancialsService{
			OverviewFn: func(ctx context.Context, year int, month time.Month) (financials.OverviewResponse, error) {
				return financials.OverviewResponse{}, errors.New("db down")
			},
		}

		h := financials.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/financials/overview?year=2025", nil)

		h.Overview(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestFinancialsHandler_ProjectChart(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeFinancialsService{
			ProjectChartFn: func(ctx context.Context, projectID string) (financials.ChartResponse, error) {
				assert.Equal(t, "p-1", projectID)
				return financials.ChartResponse{ProjectID: projectID, Name: "Webshop", RevenueGap: 21000}, nil
			},
		}

		r := gin.New()
		gin.SetMode(gin.TestMode)
		h := financials.NewHandler(svc)
		r.GET("/financials/projects/:id/chart", h.ProjectChart)

		req := httptest.NewRequest(http.MethodGet, "/financials/projects/p-1/chart", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Webshop")
	})

	t.Run("unknown project", func(t *testing.T) {
		svc := &fakeFinancialsService{
			ProjectChartFn: func(ctx context.Context, projectID string) (financials.ChartResponse, error) {
				return financials.ChartResponse{}, financialserrors.ErrProjectNotFound
			},
		}

		r := gin.New()
		gin.SetMode(gin.TestMode)
		h := financials.NewHandler(svc)
		r.GET("/financials/projects/:id/chart", h.ProjectChart)

		req := httptest.NewRequest(http.MethodGet, "/financials/projects/missing/chart", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
