package pages

import (
	"context"
	"fmt"
	"sort"
	"time"

	"motionpro/internal/domain"
	wsmodels "motionpro/internal/domain/models"
	models "motionpro/internal/domain/models/pages"
	"motionpro/internal/domain/repositories"
)

// In-memory repository fakes shared by the service tests. They mirror the
// Postgres implementations' contracts: GetByID returns snapshots, children
// come back ordered by (sort_order, created_at), and missing rows map to
// wrapped ErrNotFound.

func strPtr(s string) *string { return &s }

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type fakePageRepo struct {
	pages     map[string]*models.Page
	seq       int // drives distinct CreatedAt values
	updates   int
	deleteLog []string

	// Failure injection for storage-error paths. failUpdate fails every
	// Update; failDelete fails Delete for failDeleteID; failChildren
	// fails FindChildren when listing children of failChildrenID.
	failUpdate     error
	failDelete     error
	failDeleteID   string
	failChildren   error
	failChildrenID string
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: make(map[string]*models.Page)}
}

func (r *fakePageRepo) clone(p *models.Page) *models.Page {
	cp := *p
	return &cp
}

func (r *fakePageRepo) Create(_ context.Context, page *models.Page) error {
	r.seq++
	cp := r.clone(page)
	cp.CreatedAt = time.Unix(int64(r.seq), 0)
	r.pages[cp.ID] = cp
	return nil
}

func (r *fakePageRepo) GetByID(_ context.Context, id string) (*models.Page, error) {
	p, ok := r.pages[id]
	if !ok {
		return nil, fmt.Errorf("page %s: %w", id, domain.ErrNotFound)
	}
	return r.clone(p), nil
}

func (r *fakePageRepo) Update(_ context.Context, page *models.Page) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	existing, ok := r.pages[page.ID]
	if !ok {
		return fmt.Errorf("page %s: %w", page.ID, domain.ErrNotFound)
	}
	cp := r.clone(page)
	cp.CreatedAt = existing.CreatedAt
	r.pages[cp.ID] = cp
	r.updates++
	return nil
}

func (r *fakePageRepo) Delete(_ context.Context, id string) error {
	if r.failDelete != nil && id == r.failDeleteID {
		return r.failDelete
	}
	if _, ok := r.pages[id]; !ok {
		return fmt.Errorf("page %s: %w", id, domain.ErrNotFound)
	}
	delete(r.pages, id)
	r.deleteLog = append(r.deleteLog, id)
	return nil
}

func (r *fakePageRepo) FindChildren(_ context.Context, parentID *string, filter *models.ChildFilter) ([]models.Page, error) {
	if r.failChildren != nil && parentID != nil && *parentID == r.failChildrenID {
		return nil, r.failChildren
	}
	var out []models.Page
	for _, p := range r.pages {
		if parentID != nil {
			if p.ParentID == nil || *p.ParentID != *parentID {
				continue
			}
		} else {
			if p.ParentID != nil || filter == nil || p.WorkspaceID != filter.WorkspaceID {
				continue
			}
			if filter.SectionID != nil && !ptrEqual(p.SectionID, filter.SectionID) {
				continue
			}
			if filter.SubsectionID != nil && !ptrEqual(p.SubsectionID, filter.SubsectionID) {
				continue
			}
		}
		out = append(out, *r.clone(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakePageRepo) MaxSiblingOrder(_ context.Context, scope models.SiblingScope, excludeID string) (int, error) {
	max := 0
	for _, p := range r.pages {
		if p.ID == excludeID {
			continue
		}
		if scope.ParentID != nil {
			if !ptrEqual(p.ParentID, scope.ParentID) {
				continue
			}
		} else {
			if p.ParentID != nil || p.WorkspaceID != scope.WorkspaceID ||
				!ptrEqual(p.SectionID, scope.SectionID) ||
				!ptrEqual(p.SubsectionID, scope.SubsectionID) {
				continue
			}
		}
		if p.SortOrder > max {
			max = p.SortOrder
		}
	}
	return max, nil
}

func (r *fakePageRepo) DetachSection(_ context.Context, sectionID string) error {
	for _, p := range r.pages {
		if ptrEqual(p.SectionID, &sectionID) {
			p.SectionID = nil
			p.SubsectionID = nil
		}
	}
	return nil
}

func (r *fakePageRepo) DetachSubsection(_ context.Context, subsectionID string) error {
	for _, p := range r.pages {
		if ptrEqual(p.SubsectionID, &subsectionID) {
			p.SubsectionID = nil
		}
	}
	return nil
}

type fakeBlockRepo struct {
	blocks         map[string]*models.Block
	metadataErr    error
	deletedByPage  []string
	metadataWrites int
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{blocks: make(map[string]*models.Block)}
}

func (r *fakeBlockRepo) Create(_ context.Context, block *models.Block) error {
	cp := *block
	r.blocks[cp.ID] = &cp
	return nil
}

func (r *fakeBlockRepo) GetByID(_ context.Context, id string) (*models.Block, error) {
	b, ok := r.blocks[id]
	if !ok {
		return nil, fmt.Errorf("block %s: %w", id, domain.ErrNotFound)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBlockRepo) ListByPage(_ context.Context, pageID string, typeFilter []string) ([]models.Block, error) {
	allowed := map[string]bool{}
	for _, t := range typeFilter {
		allowed[t] = true
	}
	var out []models.Block
	for _, b := range r.blocks {
		if b.PageID != pageID {
			continue
		}
		if len(typeFilter) > 0 && !allowed[b.Type] {
			continue
		}
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeBlockRepo) UpdateMetadata(_ context.Context, blockID string, metadata map[string]interface{}) error {
	if r.metadataErr != nil {
		return r.metadataErr
	}
	b, ok := r.blocks[blockID]
	if !ok {
		return fmt.Errorf("block %s: %w", blockID, domain.ErrNotFound)
	}
	b.Metadata = metadata
	r.metadataWrites++
	return nil
}

func (r *fakeBlockRepo) MaxSortOrder(_ context.Context, pageID string) (int, error) {
	max := 0
	for _, b := range r.blocks {
		if b.PageID == pageID && b.SortOrder > max {
			max = b.SortOrder
		}
	}
	return max, nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.blocks[id]; !ok {
		return fmt.Errorf("block %s: %w", id, domain.ErrNotFound)
	}
	delete(r.blocks, id)
	return nil
}

func (r *fakeBlockRepo) DeleteByPage(_ context.Context, pageID string) error {
	for id, b := range r.blocks {
		if b.PageID == pageID {
			delete(r.blocks, id)
		}
	}
	r.deletedByPage = append(r.deletedByPage, pageID)
	return nil
}

type fakeCommentRepo struct {
	comments      map[string]*models.Comment
	deletedByPage []string
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*models.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	cp := *comment
	r.comments[cp.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*models.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) ListByPage(_ context.Context, pageID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.PageID == pageID {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteByPage(_ context.Context, pageID string) error {
	for id, c := range r.comments {
		if c.PageID == pageID {
			delete(r.comments, id)
		}
	}
	r.deletedByPage = append(r.deletedByPage, pageID)
	return nil
}

type fakeWorkspaceRepo struct {
	ids map[string]bool
}

func newFakeWorkspaceRepo(ids ...string) *fakeWorkspaceRepo {
	m := make(map[string]bool)
	for _, id := range ids {
		m[id] = true
	}
	return &fakeWorkspaceRepo{ids: m}
}

func (r *fakeWorkspaceRepo) Create(_ context.Context, ws *wsmodels.Workspace) error { return nil }

func (r *fakeWorkspaceRepo) GetByID(_ context.Context, id string) (*wsmodels.Workspace, error) {
	if !r.ids[id] {
		return nil, fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
	}
	return &wsmodels.Workspace{ID: id}, nil
}

func (r *fakeWorkspaceRepo) List(_ context.Context) ([]wsmodels.Workspace, error) { return nil, nil }

func (r *fakeWorkspaceRepo) Update(_ context.Context, ws *wsmodels.Workspace) error { return nil }

func (r *fakeWorkspaceRepo) Delete(_ context.Context, id string) error {
	delete(r.ids, id)
	return nil
}

// fakeTxManager runs the function directly; the fakes have no
// transactional isolation to manage
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
