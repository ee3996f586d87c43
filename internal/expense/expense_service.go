package expense

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"go-bizdash/internal/events"
	expenseerrors "go-bizdash/internal/expense/errors"
	"go-bizdash/internal/messaging/kafka"
	"go-bizdash/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context) ([]ExpenseResponse, error)
	GetByYear(ctx context.Context, year int) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	Update(ctx context.Context, id string, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func validMonth(month string) bool {
	for m := time.January; m <= time.December; m++ {
		if m.String() == month {
			return true
		}
	}
	return false
}

func (s *service) Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create expense requested",
		zap.String("request_id", rid),
		zap.Int("year", req.Year),
		zap.String("month", req.Month),
	)

	if req.Year < 2000 || req.Year > 2200 {
		return ExpenseResponse{}, expenseerrors.ErrInvalidYear
	}
	if !validMonth(req.Month) {
		return ExpenseResponse{}, expenseerrors.ErrInvalidMonth
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create expense begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exp := &Expense{
		ID:              uuid.New(),
		Year:            req.Year,
		Month:           req.Month,
		ExpenseCategory: req.ExpenseCategory,
		PlannedExpense:  req.PlannedExpense,
		ActualExpense:   req.ActualExpense,
	}

	if err := qtx.Create(ctx, exp); err != nil {
		s.logger.Error("create expense persist failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "expense_created", exp.ID.String()); err != nil {
		return ExpenseResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create expense commit failed", zap.String("request_id", rid), zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("create expense success",
		zap.String("request_id", rid),
		zap.String("expense_id", exp.ID.String()),
	)

	return mapToResponse(*exp), nil
}

func (s *service) GetAll(ctx context.Context) ([]ExpenseResponse, error) {
	s.logger.Debug("get all expenses requested")
	exps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all expenses failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ExpenseResponse, len(exps))
	for i, e := range exps {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByYear(ctx context.Context, year int) ([]ExpenseResponse, error) {
	s.logger.Debug("get expenses by year requested", zap.Int("year", year))
	exps, err := s.repo.FindByYear(ctx, year)
	if err != nil {
		s.logger.Error("get expenses by year failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ExpenseResponse, len(exps))
	for i, e := range exps {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ExpenseResponse, error) {
	s.logger.Debug("get expense by id requested", zap.String("expense_id", id))

	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get expense by id failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*exp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateExpenseRequest) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update expense requested",
		zap.String("request_id", rid),
		zap.String("expense_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update expense begin tx failed", zap.Error(err))
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exp, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update expense fetch existing failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	exp.PlannedExpense = req.PlannedExpense
	exp.ActualExpense = req.ActualExpense

	if err := qtx.Update(ctx, exp); err != nil {
		s.logger.Error("update expense persist failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "expense_updated", id); err != nil {
		return ExpenseResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update expense commit failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("update expense success", zap.String("expense_id", id))

	return mapToResponse(*exp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete expense requested", zap.String("expense_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete expense begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete expense failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "expense_deleted", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete expense commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete expense success", zap.String("expense_id", id))
	return nil
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType, expenseID string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EntityType: "expense",
		EntityID:   expenseID,
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
		AggregateType: "expense",
		AggregateID:   expenseID,
		EventType:     eventType,
		Topic:         events.ExpenseLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("expense outbox persist failed",
			zap.String("expense_id", expenseID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ParseYear turns the query param into a validated year.
func ParseYear(raw string) (int, error) {
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2200 {
		return 0, expenseerrors.ErrInvalidYear
	}
	return year, nil
}

func mapToResponse(exp Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              exp.ID.String(),
		Year:            exp.Year,
		Month:           exp.Month,
		ExpenseCategory: exp.ExpenseCategory,
		PlannedExpense:  exp.PlannedExpense,
		ActualExpense:   exp.ActualExpense,
	}
}
