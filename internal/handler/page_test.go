package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"motionpro/internal/domain"
	models "motionpro/internal/domain/models/pages"
	pagesSvc "motionpro/internal/domain/services/pages"
)

// stubPageService returns canned results per method
type stubPageService struct {
	createPage *models.Page
	createErr  error
	getDetail  *pagesSvc.PageDetail
	getErr     error
	updatePage *models.Page
	updateErr  error
	deleteErr  error
}

func (s *stubPageService) CreatePage(_ context.Context, _ *pagesSvc.CreatePageRequest) (*models.Page, error) {
	return s.createPage, s.createErr
}

func (s *stubPageService) GetPage(_ context.Context, _ string) (*pagesSvc.PageDetail, error) {
	return s.getDetail, s.getErr
}

func (s *stubPageService) UpdateHierarchy(_ context.Context, _ string, _ *pagesSvc.UpdatePageRequest) (*models.Page, error) {
	return s.updatePage, s.updateErr
}

func (s *stubPageService) DeletePage(_ context.Context, _ string) error {
	return s.deleteErr
}

func newPageMux(svc pagesSvc.PageService) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewPageHandler(svc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/pages", h.CreatePage)
	mux.HandleFunc("GET /api/pages/{id}", h.GetPage)
	mux.HandleFunc("PATCH /api/pages/{id}", h.UpdatePage)
	mux.HandleFunc("DELETE /api/pages/{id}", h.DeletePage)
	return mux
}

func TestCreatePageReturns201(t *testing.T) {
	svc := &stubPageService{createPage: &models.Page{ID: "p1", Title: "New", SortOrder: 1}}
	mux := newPageMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/pages", strings.NewReader(`{"workspace_id":"ws1","title":"New"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got models.Page
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != "p1" || got.SortOrder != 1 {
		t.Errorf("body = %+v, want created page", got)
	}
}

func TestCreatePageInvalidJSON(t *testing.T) {
	mux := newPageMux(&stubPageService{})

	req := httptest.NewRequest(http.MethodPost, "/api/pages", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPageErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        fmt.Errorf("%w: title required", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("page x: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "circular reference",
			err:        &domain.InvalidParentError{Message: "cannot move page under its own descendant", PageID: "a", Parent: "c"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newPageMux(&stubPageService{updateErr: tt.err})

			req := httptest.NewRequest(http.MethodPatch, "/api/pages/p1", strings.NewReader(`{"parent_id":"c"}`))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}

			var problem map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
				t.Fatalf("decode problem body: %v", err)
			}
			if int(problem["status"].(float64)) != tt.wantStatus {
				t.Errorf("problem status = %v, want %d", problem["status"], tt.wantStatus)
			}
		})
	}
}

func TestDeletePageReturns204(t *testing.T) {
	mux := newPageMux(&stubPageService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/pages/p1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}
