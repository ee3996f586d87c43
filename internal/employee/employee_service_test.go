package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-bizdash/internal/domain"
	"go-bizdash/internal/employee"
	employeeerrors "go-bizdash/internal/employee/errors"
	"go-bizdash/internal/events"
	"go-bizdash/internal/messaging/kafka"
	"go-bizdash/internal/shared/contextutil"

	employeeMock "go-bizdash/internal/employee/mock"
	kafkaMock "go-bizdash/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, outboxRepo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	validReq := func() employee.CreateEmployeeRequest {
		return employee.CreateEmployeeRequest{
			FirstName:  "Amina",
			LastName:   "Begic",
			Department: "Development",
			Salary:     4200,
			Currency:   "BAM",
			TechStack:  "Backend",
			HiringDate: "2024-03-01",
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, req.FirstName, e.FirstName)
				assert.Equal(t, domain.DepartmentDevelopment, e.Department)
				assert.Equal(t, domain.TechStackBackend, e.TechStack)
				assert.True(t, e.IsEmployed)
				assert.Equal(t, "2024-03-01", e.HiringDate.Format("2006-01-02"))
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)

		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		deps.redismock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Amina", resp.FirstName)
		assert.True(t, resp.IsEmployed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - outbox event carries request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-123-ABC"
		ctx := contextutil.WithRequestID(context.Background(), rid)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)

		deps.outbox.EXPECT().
			Create(gomock.Any(), MatchOutboxWithRID(rid)).
			Return(nil).
			Times(1)

		deps.redismock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		_, err := deps.service.Create(ctx, validReq())

		assert.NoError(t, err)
	})

	t.Run("invalid department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.Department = "Marketing"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDepartment)
	})

	t.Run("invalid currency", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.Currency = "GBP"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidCurrency)
	})

	t.Run("sentinel stack on development department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.TechStack = "AdminNA"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidTechStack)
	})

	t.Run("real stack on administration department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.Department = "Administration"
		req.TechStack = "Frontend"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidTechStack)
	})

	t.Run("invalid hiring date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.HiringDate = "01/03/2024"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHiringDate)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, validReq())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success with assignments", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		first := uuid.New()
		second := uuid.New()
		mockEmployees := []employee.Employee{
			{ID: first, FirstName: "Amina", LastName: "Begic", Department: domain.DepartmentDevelopment, HiringDate: time.Now()},
			{ID: second, FirstName: "Tarik", LastName: "Kovac", Department: domain.DepartmentDesign, HiringDate: time.Now()},
		}

		deps.repo.EXPECT().
			FindAll(ctx).
			Return(mockEmployees, nil)

		deps.repo.EXPECT().
			FindAssignments(ctx, first.String()).
			Return([]employee.AssignmentRow{
				{ProjectID: uuid.New().String(), ProjectName: "Webshop", PartTime: true},
			}, nil)

		deps.repo.EXPECT().
			FindAssignments(ctx, second.String()).
			Return(nil, nil)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Amina", resp[0].FirstName)
		assert.Len(t, resp[0].Projects, 1)
		assert.Equal(t, "Webshop", resp[0].Projects[0].Project.Name)
		assert.True(t, resp[0].Projects[0].PartTime)
		assert.Empty(t, resp[1].Projects)
	})

	t.Run("error repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db error"))

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []employee.EmployeeResponse{
			{ID: uuid.New().String(), FirstName: "Amina", LastName: "Begic"},
		}
		jsonResp, _ := json.Marshal(cached)

		deps.redismock.ExpectGet(employee.OptionsCacheKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Amina", resp[0].FirstName)
	})

	t.Run("cache miss loads from repository and fills cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(employee.OptionsCacheKey).RedisNil()

		mockEmployees := []employee.Employee{
			{ID: uuid.New(), FirstName: "Tarik", LastName: "Kovac", HiringDate: time.Now()},
		}

		deps.repo.EXPECT().
			FindAll(gomock.Any()).
			Return(mockEmployees, nil).
			Times(1)

		deps.redismock.Regexp().ExpectSet(employee.OptionsCacheKey, `.*`, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Tarik", resp[0].FirstName)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(employee.OptionsCacheKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(gomock.Any()).
			Return(nil, errors.New("database connection lost")).
			Times(1)

		resp, err := deps.service.GetOptions(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employee.Employee{
			ID:         targetID,
			FirstName:  "Amina",
			Department: domain.DepartmentDevelopment,
			TechStack:  domain.TechStackFullStack,
			HiringDate: time.Now(),
		}

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(existing, nil).
			Times(1)

		deps.repo.EXPECT().
			FindAssignments(ctx, targetID.String()).
			Return(nil, nil)

		resp, err := deps.service.GetByID(ctx, targetID.String())

		assert.NoError(t, err)
		assert.Equal(t, targetID.String(), resp.ID)
		assert.Equal(t, "Full Stack", resp.TechStackLabel)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetByID(ctx, targetID.String())

		assert.Error(t, err)
		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	validReq := func() employee.UpdateEmployeeRequest {
		return employee.UpdateEmployeeRequest{
			FirstName:  "Amina",
			LastName:   "Begic",
			Department: "Development",
			Salary:     4500,
			Currency:   "BAM",
			TechStack:  "Backend",
		}
	}

	existing := func() *employee.Employee {
		return &employee.Employee{
			ID:         targetID,
			FirstName:  "Amina",
			LastName:   "Hodzic",
			Department: domain.DepartmentDevelopment,
			TechStack:  domain.TechStackBackend,
			IsEmployed: true,
			HiringDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(existing(), nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Begic", e.LastName)
				assert.Equal(t, targetID, e.ID)
				assert.True(t, e.IsEmployed)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.redismock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		resp, err := deps.service.Update(ctx, targetID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Begic", resp.LastName)
	})

	t.Run("termination date forces isEmployed false", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.TerminationDate = "2026-02-28"
		employed := true
		req.IsEmployed = &employed

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(existing(), nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.False(t, e.IsEmployed)
				assert.NotNil(t, e.TerminationDate)
				assert.Equal(t, "2026-02-28", e.TerminationDate.Format("2006-01-02"))
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.redismock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		resp, err := deps.service.Update(ctx, targetID.String(), req)

		assert.NoError(t, err)
		assert.False(t, resp.IsEmployed)
		assert.Equal(t, "2026-02-28", resp.TerminationDate)
	})

	t.Run("invalid termination date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.TerminationDate = "yesterday"

		_, err := deps.service.Update(ctx, targetID.String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidTerminationDate)
	})

	t.Run("not found -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, targetID.String(), validReq())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("update failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(existing(), nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			Return(errors.New("db connection error"))

		_, err := deps.service.Update(ctx, targetID.String(), validReq())

		assert.Error(t, err)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Delete(ctx, targetID).
			Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.redismock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		err := deps.service.Delete(ctx, targetID)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("referenced by assignment -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Delete(ctx, targetID).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_project_assignments_employee"})

		err := deps.service.Delete(ctx, targetID)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

// Helper
type outboxRequestIDMatcher struct {
	expectedRID string
}

func (m outboxRequestIDMatcher) Matches(x any) bool {
	event, ok := x.(kafka.OutboxEvent)
	if !ok {
		return false
	}

	if event.RequestID != m.expectedRID {
		return false
	}

	var payload events.LifecycleEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return false
	}

	return payload.RequestID == m.expectedRID
}

func (m outboxRequestIDMatcher) String() string {
	return "matches outbox event with request_id " + m.expectedRID
}

func MatchOutboxWithRID(rid string) gomock.Matcher {
	return outboxRequestIDMatcher{expectedRID: rid}
}
