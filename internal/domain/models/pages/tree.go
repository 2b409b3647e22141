package pages

import "time"

// PageTreeNode is a page with its recursively materialized children.
// The tree is a pure read-time projection rebuilt from flat rows on every
// query; nodes never hold back-pointers to parents.
type PageTreeNode struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Icon         string          `json:"icon"`
	Type         PageType        `json:"type"`
	Status       string          `json:"status,omitempty"`
	ParentID     *string         `json:"parent_id"`
	SectionID    *string         `json:"section_id,omitempty"`
	SubsectionID *string         `json:"subsection_id,omitempty"`
	SortOrder    int             `json:"order"`
	UpdatedAt    time.Time       `json:"updated_at"`
	NestedPages  []*PageTreeNode `json:"nested_pages"`
}

// NewTreeNode builds an unexpanded node from a page row.
func NewTreeNode(p *Page) *PageTreeNode {
	return &PageTreeNode{
		ID:           p.ID,
		Title:        p.Title,
		Icon:         p.Icon,
		Type:         p.Type,
		Status:       p.Status,
		ParentID:     p.ParentID,
		SectionID:    p.SectionID,
		SubsectionID: p.SubsectionID,
		SortOrder:    p.SortOrder,
		UpdatedAt:    p.UpdatedAt,
		NestedPages:  []*PageTreeNode{},
	}
}
