package pages

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"motionpro/internal/config"
	"motionpro/internal/domain"
	models "motionpro/internal/domain/models/pages"
	pagesRepo "motionpro/internal/domain/repositories/pages"
	pagesSvc "motionpro/internal/domain/services/pages"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type commentService struct {
	commentRepo pagesRepo.CommentRepository
	pageRepo    pagesRepo.PageRepository
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	commentRepo pagesRepo.CommentRepository,
	pageRepo pagesRepo.PageRepository,
	logger *slog.Logger,
) pagesSvc.CommentService {
	return &commentService{
		commentRepo: commentRepo,
		pageRepo:    pageRepo,
		logger:      logger,
	}
}

// ListComments lists a page's comments oldest first
func (s *commentService) ListComments(ctx context.Context, pageID string) ([]models.Comment, error) {
	if _, err := s.pageRepo.GetByID(ctx, pageID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPage(ctx, pageID)
}

// CreateComment attaches a comment to a page
func (s *commentService) CreateComment(ctx context.Context, req *pagesSvc.CreateCommentRequest) (*models.Comment, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.PageID, validation.Required),
		validation.Field(&req.AuthorID, validation.Required),
		validation.Field(&req.Body,
			validation.Required,
			validation.Length(1, config.MaxCommentLength),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.pageRepo.GetByID(ctx, req.PageID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &models.Comment{
		ID:        uuid.NewString(),
		PageID:    req.PageID,
		AuthorID:  req.AuthorID,
		Body:      req.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"id", comment.ID,
		"page_id", comment.PageID,
		"author_id", comment.AuthorID,
	)

	return comment, nil
}

// DeleteComment removes a single comment
func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info("comment deleted", "id", commentID)
	return nil
}
