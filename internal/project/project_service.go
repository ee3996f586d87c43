package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-bizdash/internal/domain"
	"go-bizdash/internal/events"
	"go-bizdash/internal/messaging/kafka"
	projecterrors "go-bizdash/internal/project/errors"
	"go-bizdash/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
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
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

type parsedFields struct {
	projType      domain.ProjectType
	salesChannel  domain.SalesChannel
	status        domain.ProjectStatus
	startDate     time.Time
	endDate       time.Time
	actualEndDate *time.Time
}

func validateFields(projectType, salesChannel, status, startDate, endDate, actualEndDate string) (parsedFields, error) {
	var pf parsedFields

	pf.projType = domain.ProjectType(projectType)
	if !pf.projType.Valid() {
		return pf, projecterrors.ErrInvalidProjectType
	}
	pf.salesChannel = domain.SalesChannel(salesChannel)
	if !pf.salesChannel.Valid() {
		return pf, projecterrors.ErrInvalidSalesChannel
	}
	pf.status = domain.ProjectStatus(status)
	if !pf.status.Valid() {
		return pf, projecterrors.ErrInvalidProjectStatus
	}

	var err error
	pf.startDate, err = time.Parse("2006-01-02", startDate)
	if err != nil {
		return pf, projecterrors.ErrInvalidStartDate
	}
	pf.endDate, err = time.Parse("2006-01-02", endDate)
	if err != nil {
		return pf, projecterrors.ErrInvalidEndDate
	}
	if pf.endDate.Before(pf.startDate) {
		return pf, projecterrors.ErrEndBeforeStart
	}
	if actualEndDate != "" {
		aed, err := time.Parse("2006-01-02", actualEndDate)
		if err != nil {
			return pf, projecterrors.ErrInvalidEndDate
		}
		pf.actualEndDate = &aed
	}

	return pf, nil
}

func mapAssignments(projectID uuid.UUID, reqs []AssignmentRequest) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(reqs))
	seen := make(map[uuid.UUID]bool, len(reqs))
	for _, a := range reqs {
		eid, err := uuid.Parse(a.EmployeeID)
		if err != nil {
			return nil, projecterrors.ErrInvalidAssignment
		}
		if seen[eid] {
			continue
		}
		seen[eid] = true
		assignments = append(assignments, Assignment{
			ProjectID:  projectID,
			EmployeeID: eid,
			PartTime:   a.PartTime,
		})
	}
	return assignments, nil
}

func (s *service) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create project requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	pf, err := validateFields(req.ProjectType, req.SalesChannel, req.ProjectStatus, req.StartDate, req.EndDate, req.ActualEndDate)
	if err != nil {
		s.logger.Warn("create project validation failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create project begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	proj := &Project{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       pf.startDate,
		EndDate:         pf.endDate,
		ActualEndDate:   pf.actualEndDate,
		ProjectType:     pf.projType,
		HourlyRate:      req.HourlyRate,
		ProjectValueBAM: req.ProjectValueBAM,
		ProjectVelocity: req.ProjectVelocity,
		SalesChannel:    pf.salesChannel,
		ProjectStatus:   pf.status,
	}

	if err := qtx.Create(ctx, proj); err != nil {
		s.logger.Error("create project persist failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	assignments, err := mapAssignments(proj.ID, req.Employees)
	if err != nil {
		return ProjectResponse{}, err
	}
	if err := qtx.ReplaceAssignments(ctx, proj.ID.String(), assignments); err != nil {
		s.logger.Error("create project assignments failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "project_created", proj.ID.String()); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create project commit failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("create project success",
		zap.String("request_id", rid),
		zap.String("project_id", proj.ID.String()),
	)

	rows, err := s.repo.FindAssignments(ctx, proj.ID.String())
	if err != nil {
		s.logger.Error("load project assignments failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*proj, rows), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	s.logger.Debug("get all projects requested")
	projs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all projects failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ProjectResponse, len(projs))
	for i, p := range projs {
		rows, err := s.repo.FindAssignments(ctx, p.ID.String())
		if err != nil {
			s.logger.Error("load project assignments failed",
				zap.String("project_id", p.ID.String()),
				zap.Error(err),
			)
			return nil, mapRepositoryError(err)
		}
		resp[i] = mapToResponse(p, rows)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	s.logger.Debug("get project by id requested", zap.String("project_id", id))

	proj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get project by id failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	rows, err := s.repo.FindAssignments(ctx, id)
	if err != nil {
		s.logger.Error("load project assignments failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*proj, rows), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update project requested",
		zap.String("request_id", rid),
		zap.String("project_id", id),
	)

	pf, err := validateFields(req.ProjectType, req.SalesChannel, req.ProjectStatus, req.StartDate, req.EndDate, req.ActualEndDate)
	if err != nil {
		s.logger.Warn("update project validation failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update project begin tx failed", zap.Error(err))
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	proj, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update project fetch existing failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	proj.Name = req.Name
	proj.Description = req.Description
	proj.StartDate = pf.startDate
	proj.EndDate = pf.endDate
	proj.ActualEndDate = pf.actualEndDate
	proj.ProjectType = pf.projType
	proj.HourlyRate = req.HourlyRate
	proj.ProjectValueBAM = req.ProjectValueBAM
	proj.ProjectVelocity = req.ProjectVelocity
	proj.SalesChannel = pf.salesChannel
	proj.ProjectStatus = pf.status

	if err := qtx.Update(ctx, proj); err != nil {
		s.logger.Error("update project persist failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	assignments, err := mapAssignments(proj.ID, req.Employees)
	if err != nil {
		return ProjectResponse{}, err
	}
	if err := qtx.ReplaceAssignments(ctx, id, assignments); err != nil {
		s.logger.Error("update project assignments failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "project_updated", id); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update project commit failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("update project success", zap.String("project_id", id))

	rows, err := s.repo.FindAssignments(ctx, id)
	if err != nil {
		s.logger.Error("load project assignments failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*proj, rows), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete project requested", zap.String("project_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete project begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete project failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, "project_deleted", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete project commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete project success", zap.String("project_id", id))
	return nil
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType, projectID string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EntityType: "project",
		EntityID:   projectID,
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
		AggregateType: "project",
		AggregateID:   projectID,
		EventType:     eventType,
		Topic:         events.ProjectLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("project outbox persist failed",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(proj Project, assignments []AssignmentRow) ProjectResponse {
	badge := domain.ProjectStatusBadge(proj.ProjectStatus)
	resp := ProjectResponse{
		ID:              proj.ID.String(),
		Name:            proj.Name,
		Description:     proj.Description,
		StartDate:       proj.StartDate.Format("2006-01-02"),
		EndDate:         proj.EndDate.Format("2006-01-02"),
		ProjectType:     string(proj.ProjectType),
		HourlyRate:      proj.HourlyRate,
		ProjectValueBAM: proj.ProjectValueBAM,
		ProjectVelocity: proj.ProjectVelocity,
		SalesChannel:    string(proj.SalesChannel),
		ProjectStatus:   string(proj.ProjectStatus),
		StatusLabel:     badge.Label,
		StatusColor:     badge.Color,
		Employees:       make([]AssignmentResponse, 0, len(assignments)),
	}
	if proj.ActualEndDate != nil {
		resp.ActualEndDate = proj.ActualEndDate.Format("2006-01-02")
	}
	for _, a := range assignments {
		resp.Employees = append(resp.Employees, AssignmentResponse{
			Employee: EmployeeRef{ID: a.EmployeeID, FirstName: a.FirstName, LastName: a.LastName},
			PartTime: a.PartTime,
		})
	}
	return resp
}
