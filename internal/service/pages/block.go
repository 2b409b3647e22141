package pages

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"motionpro/internal/blocktypes"
	"motionpro/internal/domain"
	models "motionpro/internal/domain/models/pages"
	"motionpro/internal/domain/repositories"
	pagesRepo "motionpro/internal/domain/repositories/pages"
	pagesSvc "motionpro/internal/domain/services/pages"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type blockService struct {
	blockRepo  pagesRepo.BlockRepository
	pageRepo   pagesRepo.PageRepository
	blockTypes *blocktypes.Registry
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewBlockService creates a new block service
func NewBlockService(
	blockRepo pagesRepo.BlockRepository,
	pageRepo pagesRepo.PageRepository,
	blockTypes *blocktypes.Registry,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) pagesSvc.BlockService {
	return &blockService{
		blockRepo:  blockRepo,
		pageRepo:   pageRepo,
		blockTypes: blockTypes,
		txManager:  txManager,
		logger:     logger,
	}
}

// ListBlocks lists a page's blocks in display order
func (s *blockService) ListBlocks(ctx context.Context, pageID string) ([]models.Block, error) {
	if _, err := s.pageRepo.GetByID(ctx, pageID); err != nil {
		return nil, err
	}
	return s.blockRepo.ListByPage(ctx, pageID, nil)
}

// CreateBlock appends a block to a page
func (s *blockService) CreateBlock(ctx context.Context, req *pagesSvc.CreateBlockRequest) (*models.Block, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.PageID, validation.Required),
		validation.Field(&req.Type, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !s.blockTypes.Known(req.Type) {
		return nil, fmt.Errorf("%w: unknown block type %q", domain.ErrValidation, req.Type)
	}

	if _, err := s.pageRepo.GetByID(ctx, req.PageID); err != nil {
		return nil, err
	}

	now := time.Now()
	block := &models.Block{
		ID:        uuid.NewString(),
		PageID:    req.PageID,
		Type:      req.Type,
		Content:   req.Content,
		Metadata:  req.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if block.Metadata == nil {
		block.Metadata = map[string]interface{}{}
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		max, err := s.blockRepo.MaxSortOrder(txCtx, req.PageID)
		if err != nil {
			return err
		}
		block.SortOrder = max + 1
		return s.blockRepo.Create(txCtx, block)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("block created",
		"id", block.ID,
		"page_id", block.PageID,
		"type", block.Type,
	)

	return block, nil
}

// UpdateBlockMetadata replaces a block's metadata payload. The core does
// not interpret the payload beyond requiring it to be non-nil.
func (s *blockService) UpdateBlockMetadata(ctx context.Context, blockID string, metadata map[string]interface{}) (*models.Block, error) {
	if metadata == nil {
		return nil, fmt.Errorf("%w: metadata is required", domain.ErrValidation)
	}

	if err := s.blockRepo.UpdateMetadata(ctx, blockID, metadata); err != nil {
		return nil, err
	}

	return s.blockRepo.GetByID(ctx, blockID)
}

// DeleteBlock removes a single block
func (s *blockService) DeleteBlock(ctx context.Context, blockID string) error {
	if err := s.blockRepo.Delete(ctx, blockID); err != nil {
		return err
	}

	s.logger.Info("block deleted", "id", blockID)
	return nil
}
