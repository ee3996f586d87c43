package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-bizdash/internal/domain"
	employeeerrors "go-bizdash/internal/employee/errors"
	"go-bizdash/internal/events"
	"go-bizdash/internal/messaging/kafka"
	"go-bizdash/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// validateFields checks the enum fields and the department/tech-stack
// cross-constraint before anything is persisted.
func validateFields(department, currency, techStack string) (domain.Department, domain.Currency, domain.TechStack, error) {
	dept := domain.Department(department)
	if !dept.Valid() {
		return "", "", "", employeeerrors.ErrInvalidDepartment
	}
	curr := domain.Currency(currency)
	if !curr.Valid() {
		return "", "", "", employeeerrors.ErrInvalidCurrency
	}
	stack := domain.NormalizeTechStack(dept, domain.TechStack(techStack))
	if !domain.ValidateTechStack(dept, stack) {
		return "", "", "", employeeerrors.ErrInvalidTechStack
	}
	return dept, curr, stack, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("department", req.Department),
	)

	dept, curr, stack, err := validateFields(req.Department, req.Currency, req.TechStack)
	if err != nil {
		s.logger.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	hiringDate, err := time.Parse("2006-01-02", req.HiringDate)
	if err != nil {
		s.logger.Warn("create employee invalid hiring_date",
			zap.String("hiring_date", req.HiringDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHiringDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:         uuid.New(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		ImageURL:   req.Image,
		Department: dept,
		Salary:     req.Salary,
		Currency:   curr,
		TechStack:  stack,
		IsEmployed: true,
		HiringDate: hiringDate,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "employee_created", empl.ID.String()); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl, nil), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		assignments, err := s.repo.FindAssignments(ctx, e.ID.String())
		if err != nil {
			s.logger.Error("load employee assignments failed",
				zap.String("employee_id", e.ID.String()),
				zap.Error(err),
			)
			return nil, mapRepositoryError(err)
		}
		resp[i] = mapToResponse(e, assignments)
	}
	return resp, nil
}

// GetOptions serves the assignment multi-select picker. The list is master
// data, so it is cached and singleflighted against form-open bursts.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeResponse, len(empls))
		for i, e := range empls {
			resp[i] = mapToResponse(e, nil)
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, data, time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	assignments, err := s.repo.FindAssignments(ctx, id)
	if err != nil {
		s.logger.Error("load employee assignments failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl, assignments), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	dept, curr, stack, err := validateFields(req.Department, req.Currency, req.TechStack)
	if err != nil {
		s.logger.Warn("update employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	var terminationDate *time.Time
	if req.TerminationDate != "" {
		td, err := time.Parse("2006-01-02", req.TerminationDate)
		if err != nil {
			s.logger.Warn("update employee invalid termination_date",
				zap.String("termination_date", req.TerminationDate),
				zap.Error(err),
			)
			return EmployeeResponse{}, employeeerrors.ErrInvalidTerminationDate
		}
		terminationDate = &td
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.ImageURL = req.Image
	empl.Department = dept
	empl.Salary = req.Salary
	empl.Currency = curr
	empl.TechStack = stack
	if req.IsEmployed != nil {
		empl.IsEmployed = *req.IsEmployed
	}
	if terminationDate != nil {
		empl.TerminationDate = terminationDate
		empl.IsEmployed = false
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "employee_updated", id); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl, nil), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "employee_deleted", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType, employeeID string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EntityType: "employee",
		EntityID:   employeeID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal lifecycle event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   employeeID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToResponse(empl Employee, assignments []AssignmentRow) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		Image:          empl.ImageURL,
		Department:     string(empl.Department),
		Salary:         empl.Salary,
		Currency:       string(empl.Currency),
		TechStack:      string(empl.TechStack),
		TechStackLabel: domain.TechStackLabel(empl.TechStack),
		IsEmployed:     empl.IsEmployed,
		HiringDate:     empl.HiringDate.Format("2006-01-02"),
		Projects:       make([]AssignmentResponse, 0, len(assignments)),
	}
	if empl.TerminationDate != nil {
		resp.TerminationDate = empl.TerminationDate.Format("2006-01-02")
	}
	for _, a := range assignments {
		resp.Projects = append(resp.Projects, AssignmentResponse{
			Project:  ProjectRef{ID: a.ProjectID, Name: a.ProjectName},
			PartTime: a.PartTime,
		})
	}
	return resp
}
