package pages

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"motionpro/internal/domain"
	models "motionpro/internal/domain/models/pages"
	pagesSvc "motionpro/internal/domain/services/pages"
)

func newTestTreeService(repo *fakePageRepo) pagesSvc.TreeService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTreeService(repo, logger)
}

func seedPage(t *testing.T, repo *fakePageRepo, id, workspaceID string, parentID, sectionID *string, order int) {
	t.Helper()
	err := repo.Create(context.Background(), &models.Page{
		ID:          id,
		WorkspaceID: workspaceID,
		ParentID:    parentID,
		SectionID:   sectionID,
		Title:       id,
		SortOrder:   order,
	})
	if err != nil {
		t.Fatalf("seed page %s: %v", id, err)
	}
}

func flattenIDs(forest []*models.PageTreeNode) []string {
	var out []string
	for _, node := range forest {
		out = append(out, node.ID)
		out = append(out, flattenIDs(node.NestedPages)...)
	}
	return out
}

func TestWorkspaceTreeNestsAndOrders(t *testing.T) {
	repo := newFakePageRepo()
	svc := newTestTreeService(repo)

	// ws1:
	//   root-b (order 1)
	//     child-2 (order 2)
	//     child-1 (order 1)
	//       grandchild (order 1)
	//   root-a (order 2)
	seedPage(t, repo, "root-b", "ws1", nil, nil, 1)
	seedPage(t, repo, "root-a", "ws1", nil, nil, 2)
	seedPage(t, repo, "child-2", "ws1", strPtr("root-b"), nil, 2)
	seedPage(t, repo, "child-1", "ws1", strPtr("root-b"), nil, 1)
	seedPage(t, repo, "grandchild", "ws1", strPtr("child-1"), nil, 1)
	// Noise from another workspace must not leak in
	seedPage(t, repo, "other-ws-root", "ws2", nil, nil, 1)

	forest, err := svc.WorkspaceTree(context.Background(), "ws1", nil, nil)
	if err != nil {
		t.Fatalf("WorkspaceTree: %v", err)
	}

	got := flattenIDs(forest)
	want := []string{"root-b", "child-1", "grandchild", "child-2", "root-a"}
	if len(got) != len(want) {
		t.Fatalf("flattened tree = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flattened tree = %v, want %v", got, want)
		}
	}

	// Leaves carry an empty slice, not nil, so JSON renders []
	if forest[0].NestedPages[0].NestedPages[0].NestedPages == nil {
		t.Error("leaf NestedPages is nil, want empty slice")
	}
}

func TestWorkspaceTreeSectionFilterScopesRootsOnly(t *testing.T) {
	repo := newFakePageRepo()
	svc := newTestTreeService(repo)

	seedPage(t, repo, "plain-root", "ws1", nil, nil, 1)
	seedPage(t, repo, "section-root", "ws1", nil, strPtr("sec1"), 1)
	// Child of the section root carries no section itself; ancestry keeps it in
	seedPage(t, repo, "section-child", "ws1", strPtr("section-root"), nil, 1)

	forest, err := svc.WorkspaceTree(context.Background(), "ws1", strPtr("sec1"), nil)
	if err != nil {
		t.Fatalf("WorkspaceTree: %v", err)
	}

	if len(forest) != 1 || forest[0].ID != "section-root" {
		t.Fatalf("roots = %v, want only section-root", flattenIDs(forest))
	}
	if len(forest[0].NestedPages) != 1 || forest[0].NestedPages[0].ID != "section-child" {
		t.Errorf("section-root children = %v, want section-child", flattenIDs(forest[0].NestedPages))
	}
}

func TestWorkspaceTreeEmptyWorkspace(t *testing.T) {
	repo := newFakePageRepo()
	svc := newTestTreeService(repo)

	forest, err := svc.WorkspaceTree(context.Background(), "ws1", nil, nil)
	if err != nil {
		t.Fatalf("WorkspaceTree: %v", err)
	}
	if forest == nil {
		t.Fatal("forest is nil, want empty slice")
	}
	if len(forest) != 0 {
		t.Errorf("forest = %v, want empty", flattenIDs(forest))
	}
}

func TestSubtreeOfExistingPage(t *testing.T) {
	repo := newFakePageRepo()
	svc := newTestTreeService(repo)

	seedPage(t, repo, "root", "ws1", nil, nil, 1)
	seedPage(t, repo, "child", "ws1", strPtr("root"), nil, 1)
	seedPage(t, repo, "grandchild", "ws1", strPtr("child"), nil, 1)

	forest, err := svc.Subtree(context.Background(), "root")
	if err != nil {
		t.Fatalf("Subtree: %v", err)
	}

	got := flattenIDs(forest)
	want := []string{"child", "grandchild"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("subtree = %v, want %v", got, want)
	}
}

func TestWorkspaceTreeStorageErrorAbortsBuild(t *testing.T) {
	repo := newFakePageRepo()
	svc := newTestTreeService(repo)

	seedPage(t, repo, "root-a", "ws1", nil, nil, 1)
	seedPage(t, repo, "root-b", "ws1", nil, nil, 2)
	seedPage(t, repo, "child", "ws1", strPtr("root-a"), nil, 1)

	// Roots list fine; recursion into root-a's children fails
	boom := errors.New("query timeout")
	repo.failChildren = boom
	repo.failChildrenID = "root-a"

	forest, err := svc.WorkspaceTree(context.Background(), "ws1", nil, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("WorkspaceTree error = %v, want %v", err, boom)
	}
	if forest != nil {
		t.Errorf("forest = %v, want nil (no partial tree)", flattenIDs(forest))
	}
}

func TestSubtreeStorageErrorAbortsBuild(t *testing.T) {
	repo := newFakePageRepo()
	svc := newTestTreeService(repo)

	seedPage(t, repo, "root", "ws1", nil, nil, 1)
	seedPage(t, repo, "child", "ws1", strPtr("root"), nil, 1)

	boom := errors.New("connection reset")
	repo.failChildren = boom
	repo.failChildrenID = "child"

	forest, err := svc.Subtree(context.Background(), "root")
	if !errors.Is(err, boom) {
		t.Fatalf("Subtree error = %v, want %v", err, boom)
	}
	if forest != nil {
		t.Errorf("forest = %v, want nil (no partial tree)", flattenIDs(forest))
	}
}

func TestSubtreeMissingRoot(t *testing.T) {
	repo := newFakePageRepo()
	svc := newTestTreeService(repo)

	_, err := svc.Subtree(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
