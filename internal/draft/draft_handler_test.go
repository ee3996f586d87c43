package draft_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-bizdash/internal/draft"
	drafterrors "go-bizdash/internal/draft/errors"
	"go-bizdash/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDraftService struct {
	OpenFn   func(ctx context.Context, kind draft.Kind, entityID string) (draft.Session, error)
	EditFn   func(ctx context.Context, sessionID string) (draft.Session, error)
	ApplyFn  func(ctx context.Context, sessionID string, patch json.RawMessage) (draft.Session, error)
	SubmitFn func(ctx context.Context, sessionID string) (any, error)
	CancelFn func(ctx context.Context, sessionID string) error
	GetFn    func(ctx context.Context, sessionID string) (draft.Session, error)
}

func (f *fakeDraftService) Open(ctx context.Context, kind draft.Kind, entityID string) (draft.Session, error) {
	return f.OpenFn(ctx, kind, entityID)
}
func (f *fakeDraftService) Edit(ctx context.Context, sessionID string) (draft.Session, error) {
	return f.EditFn(ctx, sessionID)
}
func (f *fakeDraftService) Apply(ctx context.Context, sessionID string, patch json.RawMessage) (draft.Session, error) {
	return f.ApplyFn(ctx, sessionID, patch)
}
func (f *fakeDraftService) Submit(ctx context.Context, sessionID string) (any, error) {
	return f.SubmitFn(ctx, sessionID)
}
func (f *fakeDraftService) Cancel(ctx context.Context, sessionID string) error {
	return f.CancelFn(ctx, sessionID)
}
func (f *fakeDraftService) Get(ctx context.Context, sessionID string) (draft.Session, error) {
	return f.GetFn(ctx, sessionID)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestDraftHandler_Open(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDraftService{
			OpenFn: func(_ context.Context, kind draft.Kind, entityID string) (draft.Session, error) {
				assert.Equal(t, draft.KindEmployee, kind)
				assert.Equal(t, "emp-1", entityID)
				return draft.Session{ID: "sess-1", Kind: kind, State: draft.StateViewing, EntityID: entityID}, nil
			},
		}

		h := draft.NewHandler(svc)
		r := setupRouter()
		r.POST("/drafts", h.Open)

		body := `{"kind":"employee","entityId":"emp-1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/drafts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"sess-1"`)
		assert.Contains(t, w.Body.String(), `"Viewing"`)
	})

	t.Run("missing kind", func(t *testing.T) {
		h := draft.NewHandler(&fakeDraftService{})
		r := setupRouter()
		r.POST("/drafts", h.Open)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/drafts", strings.NewReader(`{"entityId":"emp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc := &fakeDraftService{
			OpenFn: func(context.Context, draft.Kind, string) (draft.Session, error) {
				return draft.Session{}, drafterrors.ErrUnknownKind
			},
		}

		h := draft.NewHandler(svc)
		r := setupRouter()
		r.POST("/drafts", h.Open)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/drafts", strings.NewReader(`{"kind":"invoice"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestDraftHandler_Edit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDraftService{
			EditFn: func(_ context.Context, sessionID string) (draft.Session, error) {
				assert.Equal(t, "sess-1", sessionID)
				return draft.Session{ID: sessionID, State: draft.StateEditing}, nil
			},
		}

		h := draft.NewHandler(svc)
		r := setupRouter()
		r.POST("/drafts/:id/edit", h.Edit)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/drafts/sess-1/edit", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Editing"`)
	})

	t.Run("submit in flight", func(t *testing.T) {
		svc := &fakeDraftService{
			EditFn: func(context.Context, string) (draft.Session, error) {
				return draft.Session{}, drafterrors.ErrSubmitInFlight
			},
		}

		h := draft.NewHandler(svc)
		r := setupRouter()
		r.POST("/drafts/:id/edit", h.Edit)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/drafts/sess-1/edit", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidState)
	})
}

func TestDraftHandler_Apply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDraftService{
			ApplyFn: func(_ context.Context, sessionID string, patch json.RawMessage) (draft.Session, error) {
				assert.Equal(t, "sess-1", sessionID)
				assert.JSONEq(t, `{"lastName":"Begic-Kovac"}`, string(patch))
				return draft.Session{ID: sessionID, State: draft.StateEditing}, nil
			},
		}

		h := draft.NewHandler(svc)
		r := setupRouter()
		r.PATCH("/drafts/:id", h.Apply)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/drafts/sess-1", strings.NewReader(`{"lastName":"Begic-Kovac"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not editing", func(t *testing.T) {
		svc := &fakeDraftService{
			ApplyFn: func(context.Context, string, json.RawMessage) (draft.Session, error) {
				return draft.Session{}, drafterrors.ErrNotEditing
			},
		}

		h := draft.NewHandler(svc)
		r := setupRouter()
		r.PATCH("/drafts/:id", h.Apply)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/drafts/sess-1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDraftHandler_Submit(t *testing.T) {
	t.Run("success returns the confirmed record", func(t *testing.T) {
		svc := &fakeDraftService{
			SubmitFn: func(_ context.Context, sessionID string) (any, error) {
				assert.Equal(t, "sess-1", sessionID)
				return gin.H{"id": "emp-1", "lastName": "Begic-Kovac"}, nil
			},
		}

		h := draft.NewHandler(svc)
		r := setupRouter()
		r.POST("/drafts/:id/submit", h.Submit)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/drafts/sess-1/submit", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Begic-Kovac"`)
	})

	t.Run("session not found", func(t *testing.T) {
		svc := &fakeDraftService{
			SubmitFn: func(context.Context, string) (any, error) {
				return nil, drafterrors.ErrSessionNotFound
			},
		}

		h := draft.NewHandler(svc)
		r := setupRouter()
		r.POST("/drafts/:id/submit", h.Submit)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/drafts/missing/submit", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeNotFound)
	})
}

func TestDraftHandler_Cancel(t *testing.T) {
	svc := &fakeDraftService{
		CancelFn: func(_ context.Context, sessionID string) error {
			assert.Equal(t, "sess-1", sessionID)
			return nil
		},
	}

	h := draft.NewHandler(svc)
	r := setupRouter()
	r.DELETE("/drafts/:id", h.Cancel)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/drafts/sess-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cancelled":true`)
}
