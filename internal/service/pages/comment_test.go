package pages

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"motionpro/internal/config"
	"motionpro/internal/domain"
	pagesSvc "motionpro/internal/domain/services/pages"
)

func newCommentTestEnv(t *testing.T) (*fakePageRepo, *fakeCommentRepo, pagesSvc.CommentService) {
	t.Helper()

	pageRepo := newFakePageRepo()
	commentRepo := newFakeCommentRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCommentService(commentRepo, pageRepo, logger)
	return pageRepo, commentRepo, svc
}

func TestCreateComment(t *testing.T) {
	pageRepo, _, svc := newCommentTestEnv(t)
	seedPage(t, pageRepo, "p1", "ws1", nil, nil, 1)

	comment, err := svc.CreateComment(context.Background(), &pagesSvc.CreateCommentRequest{
		PageID:   "p1",
		AuthorID: "u1",
		Body:     "looks good",
	})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.ID == "" || comment.PageID != "p1" || comment.AuthorID != "u1" {
		t.Errorf("comment = %+v, want populated id/page/author", comment)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	pageRepo, _, svc := newCommentTestEnv(t)
	seedPage(t, pageRepo, "p1", "ws1", nil, nil, 1)

	tests := []struct {
		name string
		req  *pagesSvc.CreateCommentRequest
	}{
		{name: "missing author", req: &pagesSvc.CreateCommentRequest{PageID: "p1", Body: "hi"}},
		{name: "empty body", req: &pagesSvc.CreateCommentRequest{PageID: "p1", AuthorID: "u1"}},
		{
			name: "body too long",
			req: &pagesSvc.CreateCommentRequest{
				PageID:   "p1",
				AuthorID: "u1",
				Body:     strings.Repeat("x", config.MaxCommentLength+1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateComment(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestDeleteCommentMissing(t *testing.T) {
	_, _, svc := newCommentTestEnv(t)

	if err := svc.DeleteComment(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
