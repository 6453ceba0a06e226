package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-digest/internal/middleware"
	"task-digest/internal/model"
	"task-digest/internal/workitem"
	"task-digest/pkg/log"
	"task-digest/pkg/response"
)

type fakeUseCase struct {
	workitem.UseCase

	token      string
	err        error
	gotCutoff  time.Time
	cached     []model.WorkItem
	cachedHit  bool
	removed    int
	workspaces []model.Workspace
}

func (f *fakeUseCase) SetCredential(ctx context.Context, token string) error {
	f.token = token
	return f.err
}

func (f *fakeUseCase) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	return f.workspaces, f.err
}

func (f *fakeUseCase) FindItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, error) {
	f.gotCutoff = cutoff
	if f.err != nil {
		return nil, f.err
	}
	return []model.WorkItem{{ID: "1", Title: "one"}}, nil
}

func (f *fakeUseCase) CachedItemsOlderThan(ctx context.Context, workspaceID string, cutoff time.Time) ([]model.WorkItem, bool) {
	return f.cached, f.cachedHit
}

func (f *fakeUseCase) ClearPersistentCache(ctx context.Context) int {
	return f.removed
}

func newTestRouter(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSetCredential(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		w, _ := do(newTestRouter(&fakeUseCase{}), http.MethodPut, "/api/v1/credentials/workitem", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, _ := do(newTestRouter(uc), http.MethodPut, "/api/v1/credentials/workitem", `{"token":"abc"}`)
		if w.Code != http.StatusOK || uc.token != "abc" {
			t.Errorf("expected 200 and token installed, got %d %q", w.Code, uc.token)
		}
		if strings.Contains(w.Body.String(), "abc") {
			t.Errorf("token must not be echoed back")
		}
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Unconfigured", workitem.ErrUnconfigured, http.StatusPreconditionFailed},
		{"Remote", fmt.Errorf("%w: list workspaces: boom", workitem.ErrRemote), http.StatusBadGateway},
		{"No workspaces", workitem.ErrNoWorkspaces, http.StatusNotFound},
		{"Unknown", fmt.Errorf("surprise"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := do(newTestRouter(&fakeUseCase{err: tt.err}), http.MethodGet, "/api/v1/workspaces", "")
			if w.Code != tt.want || resp.ErrorCode != tt.want {
				t.Errorf("expected %d, got %d (%+v)", tt.want, w.Code, resp)
			}
		})
	}
}

func TestFindItemsOlderThan(t *testing.T) {
	t.Run("Missing older_than", func(t *testing.T) {
		w, _ := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/api/v1/workspaces/w1/items", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Invalid older_than", func(t *testing.T) {
		w, _ := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/api/v1/workspaces/w1/items?older_than=yesterday", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, resp := do(newTestRouter(uc), http.MethodGet, "/api/v1/workspaces/w1/items?older_than=2024-06-01T00:00:00Z", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !uc.gotCutoff.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected cutoff %v", uc.gotCutoff)
		}
		data, _ := resp.Data.(map[string]any)
		if data["count"] != float64(1) {
			t.Errorf("expected count 1, got %v", data["count"])
		}
	})
}

func TestCachedItemsOlderThan(t *testing.T) {
	w, resp := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/api/v1/workspaces/w1/items/cached?older_than=2024-06-01T00:00:00Z", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data, _ := resp.Data.(map[string]any)
	if data["hit"] != false {
		t.Errorf("expected hit=false, got %v", data["hit"])
	}
	if items, ok := data["items"].([]any); !ok || len(items) != 0 {
		t.Errorf("expected empty items array on miss, got %v", data["items"])
	}
}

func TestClearCache(t *testing.T) {
	w, resp := do(newTestRouter(&fakeUseCase{removed: 3}), http.MethodDelete, "/api/v1/cache", "")
	data, _ := resp.Data.(map[string]any)
	if w.Code != http.StatusOK || data["removed"] != float64(3) {
		t.Errorf("expected removed=3, got %d %v", w.Code, resp.Data)
	}
}
