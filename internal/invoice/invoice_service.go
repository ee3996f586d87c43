package invoice

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-bizdash/internal/domain"
	"go-bizdash/internal/events"
	invoiceerrors "go-bizdash/internal/invoice/errors"
	"go-bizdash/internal/messaging/kafka"
	"go-bizdash/internal/shared/contextutil"
	"go-bizdash/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	// Counter row that backs invoice number generation.
	NumberCounterType = "invoice"
	numberFormat      = "INV-%06d"
	exportSheetName   = "Invoices"
)

//go:generate mockgen -source=invoice_service.go -destination=mock/invoice_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetAll(ctx context.Context) ([]InvoiceResponse, error)
	GetByID(ctx context.Context, id string) (InvoiceResponse, error)
	Update(ctx context.Context, id string, req UpdateInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, id string) error
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("invoice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create invoice requested",
		zap.String("request_id", rid),
		zap.String("client", req.Client),
	)

	status := domain.InvoiceStatusNotSent
	if req.InvoiceStatus != "" {
		status = domain.InvoiceStatus(req.InvoiceStatus)
		if !status.Valid() {
			return InvoiceResponse{}, invoiceerrors.ErrInvalidInvoiceStatus
		}
	}

	next, err := s.counter.GetNextValue(ctx, NumberCounterType)
	if err != nil {
		s.logger.Error("invoice number generation failed", zap.Error(err))
		return InvoiceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create invoice begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return InvoiceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inv := &Invoice{
		ID:               uuid.New(),
		InvoiceNumber:    fmt.Sprintf(numberFormat, next),
		Client:           req.Client,
		Industry:         req.Industry,
		TotalHoursBilled: req.TotalHoursBilled,
		AmountBilledBAM:  req.AmountBilledBAM,
		InvoiceStatus:    status,
	}

	if err := qtx.Create(ctx, inv); err != nil {
		s.logger.Error("create invoice persist failed", zap.Error(err))
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "invoice_created", inv.ID.String()); err != nil {
		return InvoiceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create invoice commit failed", zap.String("request_id", rid), zap.Error(err))
		return InvoiceResponse{}, err
	}

	s.logger.Info("create invoice success",
		zap.String("request_id", rid),
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
	)

	return mapToResponse(*inv), nil
}

func (s *service) GetAll(ctx context.Context) ([]InvoiceResponse, error) {
	s.logger.Debug("get all invoices requested")
	invs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all invoices failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]InvoiceResponse, len(invs))
	for i, inv := range invs {
		resp[i] = mapToResponse(inv)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (InvoiceResponse, error) {
	s.logger.Debug("get invoice by id requested", zap.String("invoice_id", id))

	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get invoice by id failed", zap.Error(err))
		return InvoiceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*inv), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateInvoiceRequest) (InvoiceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update invoice requested",
		zap.String("request_id", rid),
		zap.String("invoice_id", id),
	)

	status := domain.InvoiceStatus(req.InvoiceStatus)
	if !status.Valid() {
		return InvoiceResponse{}, invoiceerrors.ErrInvalidInvoiceStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update invoice begin tx failed", zap.Error(err))
		return InvoiceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inv, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update invoice fetch existing failed", zap.Error(err))
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	inv.Client = req.Client
	inv.Industry = req.Industry
	inv.TotalHoursBilled = req.TotalHoursBilled
	inv.AmountBilledBAM = req.AmountBilledBAM
	inv.InvoiceStatus = status

	if err := qtx.Update(ctx, inv); err != nil {
		s.logger.Error("update invoice persist failed", zap.Error(err))
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "invoice_updated", id); err != nil {
		return InvoiceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update invoice commit failed", zap.Error(err))
		return InvoiceResponse{}, err
	}

	s.logger.Info("update invoice success", zap.String("invoice_id", id))

	return mapToResponse(*inv), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete invoice requested", zap.String("invoice_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete invoice begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete invoice failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "invoice_deleted", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete invoice commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete invoice success", zap.String("invoice_id", id))
	return nil
}

// ExportXLSX renders the full invoice book as a spreadsheet.
func (s *service) ExportXLSX(ctx context.Context) ([]byte, error) {
	invs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("export invoices fetch failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"Invoice Number", "Client", "Industry", "Hours Billed", "Amount (BAM)", "Status"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(exportSheetName, cell, v)
	}

	for r, inv := range invs {
		row := r + 2
		values := []any{
			inv.InvoiceNumber,
			inv.Client,
			inv.Industry,
			inv.TotalHoursBilled,
			inv.AmountBilledBAM,
			domain.InvoiceStatusBadge(inv.InvoiceStatus).Label,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(exportSheetName, cell, v)
		}
	}

	_ = f.SetColWidth(exportSheetName, "A", "A", 16)
	_ = f.SetColWidth(exportSheetName, "B", "B", 28)
	_ = f.SetColWidth(exportSheetName, "C", "C", 20)
	_ = f.SetColWidth(exportSheetName, "D", "E", 14)
	_ = f.SetColWidth(exportSheetName, "F", "F", 12)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellStyle(exportSheetName, "A1", "F1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	s.logger.Info("exported invoices", zap.Int("count", len(invs)))
	return buf.Bytes(), nil
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType, invoiceID string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EntityType: "invoice",
		EntityID:   invoiceID,
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
		AggregateType: "invoice",
		AggregateID:   invoiceID,
		EventType:     eventType,
		Topic:         events.InvoiceLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("invoice outbox persist failed",
			zap.String("invoice_id", invoiceID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(inv Invoice) InvoiceResponse {
	badge := domain.InvoiceStatusBadge(inv.InvoiceStatus)
	return InvoiceResponse{
		ID:               inv.ID.String(),
		InvoiceNumber:    inv.InvoiceNumber,
		Client:           inv.Client,
		Industry:         inv.Industry,
		TotalHoursBilled: inv.TotalHoursBilled,
		AmountBilledBAM:  inv.AmountBilledBAM,
		InvoiceStatus:    string(inv.InvoiceStatus),
		StatusLabel:      badge.Label,
		StatusColor:      badge.Color,
	}
}
