package asana

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task-digest/internal/workitem/repository"
	pkgAsana "task-digest/pkg/asana"
)

func TestToWorkItem(t *testing.T) {
	done := true
	it := toWorkItem(pkgAsana.Task{
		GID:          "1200000000000001",
		Name:         "Write report",
		CreatedAt:    "2024-02-01T08:30:00.123Z",
		PermalinkURL: "https://app.asana.com/0/1/1200000000000001",
		Assignee:     &pkgAsana.Compact{GID: "u1", Name: "Ada"},
		Completed:    &done,
		Memberships: []pkgAsana.Membership{
			{Project: &pkgAsana.Compact{GID: "p1", Name: "Ops"}, Section: &pkgAsana.Compact{GID: "s1", Name: "Doing"}},
			{Project: &pkgAsana.Compact{GID: "p2"}},
		},
		Tags: []pkgAsana.Compact{{GID: "t1", Name: "urgent"}},
	})

	want := time.Date(2024, 2, 1, 8, 30, 0, 123000000, time.UTC)
	if !it.CreatedAt.Equal(want) {
		t.Errorf("expected created_at %v, got %v", want, it.CreatedAt)
	}
	if it.Assignee == nil || it.Assignee.Name != "Ada" {
		t.Errorf("unexpected assignee %+v", it.Assignee)
	}
	if len(it.Memberships) != 2 || it.Memberships[0].Key() != "p1:s1" || it.Memberships[1].Section != nil {
		t.Errorf("unexpected memberships %+v", it.Memberships)
	}
	if len(it.Tags) != 1 || it.Tags[0].ID != "t1" {
		t.Errorf("unexpected tags %+v", it.Tags)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in       string
		wantZero bool
	}{
		{"", true},
		{"not a date", true},
		{"2024-01-01T00:00:00Z", false},
		{"2024-01-01T00:00:00.000+02:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseTime(tt.in); got.IsZero() != tt.wantZero {
				t.Errorf("parseTime(%q) = %v, wantZero %v", tt.in, got, tt.wantZero)
			}
		})
	}
}

func TestFactoryRemote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/projects/p1/tasks":
			json.NewEncoder(w).Encode(map[string]any{
				"data":      []map[string]any{{"gid": "1", "name": "A", "created_at": "2024-01-01T00:00:00Z"}},
				"next_page": map[string]string{"offset": "o2"},
			})
		case "/workspaces/w1/projects":
			json.NewEncoder(w).Encode(map[string]any{"data": []map[string]string{{"gid": "p1", "name": "P1"}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	f := NewFactory(pkgAsana.Config{BaseURL: ts.URL, RequestsPerMinute: 60000, RetryDelay: time.Millisecond})
	remote, err := f.NewRemote(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := remote.ListItemsPage(context.Background(), "p1", repository.ListItemsOptions{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items.Items) != 1 || items.NextOffset != "o2" {
		t.Errorf("unexpected page %+v", items)
	}

	projects, err := remote.ListProjects(context.Background(), "w1", repository.ListProjectsOptions{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects.Projects) != 1 || projects.NextOffset != "" {
		t.Errorf("unexpected projects %+v", projects)
	}
}
