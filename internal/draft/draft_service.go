package draft

import (
	"context"
	"encoding/json"
	"time"

	drafterrors "go-bizdash/internal/draft/errors"
	"go-bizdash/internal/employee"
	"go-bizdash/internal/project"
	"go-bizdash/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=draft_service.go -destination=mock/draft_service_mock.go -package=mock
type Service interface {
	// Open starts a Viewing session. An empty entityID opens a create form.
	Open(ctx context.Context, kind Kind, entityID string) (Session, error)
	// Edit transitions Viewing to Editing and seeds the draft from the
	// canonical record (or empty defaults for a create session).
	Edit(ctx context.Context, sessionID string) (Session, error)
	// Apply merges one round of field edits into an Editing draft.
	Apply(ctx context.Context, sessionID string, patch json.RawMessage) (Session, error)
	// Submit issues exactly one mutation. Success closes the session and
	// returns the server-confirmed record; failure keeps the session in
	// Editing with the server error attached.
	Submit(ctx context.Context, sessionID string) (any, error)
	// Cancel discards the session without issuing any mutation.
	Cancel(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (Session, error)
}

type service struct {
	store     Store
	employees employee.Service
	projects  project.Service
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store Store, employees employee.Service, projects project.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("draft.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("draft.service")
	}
	return &service{
		store:     store,
		employees: employees,
		projects:  projects,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) Open(ctx context.Context, kind Kind, entityID string) (Session, error) {
	rid := contextutil.GetRequestID(ctx)
	if !kind.Valid() {
		return Session{}, drafterrors.ErrUnknownKind
	}

	sess := Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		State:     StateViewing,
		EntityID:  entityID,
		CreatedAt: s.now().UTC(),
		UpdatedAt: s.now().UTC(),
	}

	if entityID != "" {
		canonical, err := s.loadCanonical(ctx, kind, entityID)
		if err != nil {
			s.logger.Warn("open draft session canonical load failed",
				zap.String("request_id", rid),
				zap.String("entity_id", entityID),
				zap.Error(err),
			)
			return Session{}, err
		}
		sess.Canonical = canonical
	}

	if err := s.store.Put(ctx, sess); err != nil {
		s.logger.Error("persist draft session failed", zap.Error(err))
		return Session{}, err
	}

	s.logger.Debug("draft session opened",
		zap.String("request_id", rid),
		zap.String("session_id", sess.ID),
		zap.String("kind", string(kind)),
	)
	return sess, nil
}

func (s *service) Edit(ctx context.Context, sessionID string) (Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}

	switch sess.State {
	case StateSubmitting:
		return Session{}, drafterrors.ErrSubmitInFlight
	case StateEditing:
		// Re-entering Editing keeps the draft already in progress.
		return sess, nil
	}

	draft, err := s.seedDraft(sess)
	if err != nil {
		return Session{}, err
	}

	sess.State = StateEditing
	sess.Draft = draft
	sess.LastError = ""
	sess.UpdatedAt = s.now().UTC()

	if err := s.store.Put(ctx, sess); err != nil {
		s.logger.Error("persist draft session failed", zap.Error(err))
		return Session{}, err
	}
	return sess, nil
}

func (s *service) Apply(ctx context.Context, sessionID string, patch json.RawMessage) (Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if sess.State == StateSubmitting {
		return Session{}, drafterrors.ErrSubmitInFlight
	}
	if sess.State != StateEditing {
		return Session{}, drafterrors.ErrNotEditing
	}

	draft, err := s.applyPatch(sess, patch)
	if err != nil {
		return Session{}, err
	}

	sess.Draft = draft
	sess.UpdatedAt = s.now().UTC()

	if err := s.store.Put(ctx, sess); err != nil {
		s.logger.Error("persist draft session failed", zap.Error(err))
		return Session{}, err
	}
	return sess, nil
}

func (s *service) Submit(ctx context.Context, sessionID string) (any, error) {
	rid := contextutil.GetRequestID(ctx)

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State == StateSubmitting {
		return nil, drafterrors.ErrSubmitInFlight
	}
	if sess.State != StateEditing {
		return nil, drafterrors.ErrNotEditing
	}

	// Block re-entry before the mutation goes out.
	sess.State = StateSubmitting
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, sess); err != nil {
		s.logger.Error("persist draft session failed", zap.Error(err))
		return nil, err
	}

	result, mutErr := s.mutate(ctx, sess)
	if mutErr != nil {
		// Failed submit keeps the draft; the client sees the server error
		// and the session stays editable.
		sess.State = StateEditing
		sess.LastError = mutErr.Error()
		sess.UpdatedAt = s.now().UTC()
		if err := s.store.Put(ctx, sess); err != nil {
			s.logger.Error("persist draft session failed", zap.Error(err))
		}
		s.logger.Warn("draft submit failed",
			zap.String("request_id", rid),
			zap.String("session_id", sess.ID),
			zap.Error(mutErr),
		)
		return nil, mutErr
	}

	if err := s.store.Delete(ctx, sess.ID); err != nil {
		s.logger.Error("delete draft session failed", zap.Error(err))
	}

	s.logger.Info("draft submitted",
		zap.String("request_id", rid),
		zap.String("session_id", sess.ID),
		zap.String("kind", string(sess.Kind)),
	)
	return result, nil
}

func (s *service) Cancel(ctx context.Context, sessionID string) error {
	if _, err := s.store.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.store.Delete(ctx, sessionID)
}

func (s *service) Get(ctx context.Context, sessionID string) (Session, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *service) loadCanonical(ctx context.Context, kind Kind, entityID string) (json.RawMessage, error) {
	switch kind {
	case KindEmployee:
		resp, err := s.employees.GetByID(ctx, entityID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	case KindProject:
		resp, err := s.projects.GetByID(ctx, entityID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(resp)
	}
	return nil, drafterrors.ErrUnknownKind
}

func (s *service) seedDraft(sess Session) (json.RawMessage, error) {
	switch sess.Kind {
	case KindEmployee:
		if sess.Canonical == nil {
			return json.Marshal(NewEmployeeDraft())
		}
		var canonical employee.EmployeeResponse
		if err := json.Unmarshal(sess.Canonical, &canonical); err != nil {
			return nil, err
		}
		return json.Marshal(SeedEmployeeDraft(canonical))
	case KindProject:
		if sess.Canonical == nil {
			return json.Marshal(NewProjectDraft())
		}
		var canonical project.ProjectResponse
		if err := json.Unmarshal(sess.Canonical, &canonical); err != nil {
			return nil, err
		}
		return json.Marshal(SeedProjectDraft(canonical))
	}
	return nil, drafterrors.ErrUnknownKind
}

func (s *service) applyPatch(sess Session, patch json.RawMessage) (json.RawMessage, error) {
	switch sess.Kind {
	case KindEmployee:
		var draft EmployeeDraft
		if err := json.Unmarshal(sess.Draft, &draft); err != nil {
			return nil, err
		}
		var p EmployeeDraftPatch
		if err := json.Unmarshal(patch, &p); err != nil {
			return nil, drafterrors.ErrInvalidDraftPayload
		}
		return json.Marshal(ApplyEmployeePatch(draft, p))
	case KindProject:
		var draft ProjectDraft
		if err := json.Unmarshal(sess.Draft, &draft); err != nil {
			return nil, err
		}
		var p ProjectDraftPatch
		if err := json.Unmarshal(patch, &p); err != nil {
			return nil, drafterrors.ErrInvalidDraftPayload
		}
		return json.Marshal(ApplyProjectPatch(draft, p))
	}
	return nil, drafterrors.ErrUnknownKind
}

func (s *service) mutate(ctx context.Context, sess Session) (any, error) {
	switch sess.Kind {
	case KindEmployee:
		var draft EmployeeDraft
		if err := json.Unmarshal(sess.Draft, &draft); err != nil {
			return nil, err
		}
		if sess.EntityID == "" {
			return s.employees.Create(ctx, draft.toCreateRequest())
		}
		return s.employees.Update(ctx, sess.EntityID, draft.toUpdateRequest())
	case KindProject:
		var draft ProjectDraft
		if err := json.Unmarshal(sess.Draft, &draft); err != nil {
			return nil, err
		}
		if sess.EntityID == "" {
			return s.projects.Create(ctx, draft.toCreateRequest())
		}
		return s.projects.Update(ctx, sess.EntityID, draft.toUpdateRequest())
	}
	return nil, drafterrors.ErrUnknownKind
}
