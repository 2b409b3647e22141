package pages

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"motionpro/internal/blocktypes"
	"motionpro/internal/domain"
	models "motionpro/internal/domain/models/pages"
	pagesSvc "motionpro/internal/domain/services/pages"
)

func newBlockTestEnv(t *testing.T) (*fakePageRepo, *fakeBlockRepo, pagesSvc.BlockService) {
	t.Helper()

	registry, err := blocktypes.NewRegistry()
	if err != nil {
		t.Fatalf("failed to load block type registry: %v", err)
	}

	pageRepo := newFakePageRepo()
	blockRepo := newFakeBlockRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewBlockService(blockRepo, pageRepo, registry, fakeTxManager{}, logger)
	return pageRepo, blockRepo, svc
}

func TestCreateBlockAppendsInOrder(t *testing.T) {
	pageRepo, _, svc := newBlockTestEnv(t)
	seedPage(t, pageRepo, "p1", "ws1", nil, nil, 1)

	first, err := svc.CreateBlock(context.Background(), &pagesSvc.CreateBlockRequest{PageID: "p1", Type: "text", Content: "hello"})
	if err != nil {
		t.Fatalf("CreateBlock: %v", err)
	}
	second, err := svc.CreateBlock(context.Background(), &pagesSvc.CreateBlockRequest{PageID: "p1", Type: "heading"})
	if err != nil {
		t.Fatalf("CreateBlock: %v", err)
	}

	if first.SortOrder != 1 || second.SortOrder != 2 {
		t.Errorf("orders = %d, %d, want 1, 2", first.SortOrder, second.SortOrder)
	}
	if first.Metadata == nil {
		t.Error("metadata should be initialized, not nil")
	}
}

func TestCreateBlockRejectsUnknownType(t *testing.T) {
	pageRepo, _, svc := newBlockTestEnv(t)
	seedPage(t, pageRepo, "p1", "ws1", nil, nil, 1)

	_, err := svc.CreateBlock(context.Background(), &pagesSvc.CreateBlockRequest{PageID: "p1", Type: "hologram"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestCreateBlockMissingPage(t *testing.T) {
	_, _, svc := newBlockTestEnv(t)

	_, err := svc.CreateBlock(context.Background(), &pagesSvc.CreateBlockRequest{PageID: "ghost", Type: "text"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateBlockMetadata(t *testing.T) {
	_, blockRepo, svc := newBlockTestEnv(t)
	blockRepo.Create(context.Background(), &models.Block{ID: "b1", PageID: "p1", Type: "image", Metadata: map[string]interface{}{"old": true}})

	updated, err := svc.UpdateBlockMetadata(context.Background(), "b1", map[string]interface{}{"caption": "before"})
	if err != nil {
		t.Fatalf("UpdateBlockMetadata: %v", err)
	}
	if updated.Metadata["caption"] != "before" {
		t.Errorf("metadata = %v, want caption set", updated.Metadata)
	}
	if _, ok := updated.Metadata["old"]; ok {
		t.Error("metadata replace kept stale keys")
	}

	if _, err := svc.UpdateBlockMetadata(context.Background(), "b1", nil); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("nil metadata error = %v, want ErrValidation", err)
	}
}

func TestListBlocksRequiresPage(t *testing.T) {
	_, _, svc := newBlockTestEnv(t)

	_, err := svc.ListBlocks(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
