package pages

import "time"

// PageType distinguishes ordinary pages from inline databases.
type PageType string

const (
	PageTypePage     PageType = "page"
	PageTypeDatabase PageType = "database"
)

// Page is a node in the workspace content hierarchy. ParentID forms an
// acyclic tree per workspace; SortOrder defines sibling order and is
// monotonically assigned, never compacted after deletes.
type Page struct {
	ID           string                 `json:"id" db:"id"`
	WorkspaceID  string                 `json:"workspace_id" db:"workspace_id"`
	SectionID    *string                `json:"section_id,omitempty" db:"section_id"`
	SubsectionID *string                `json:"subsection_id,omitempty" db:"subsection_id"`
	ParentID     *string                `json:"parent_id" db:"parent_id"` // NULL = root level
	Title        string                 `json:"title" db:"title"`
	Icon         string                 `json:"icon" db:"icon"`
	Type         PageType               `json:"type" db:"type"`
	Status       string                 `json:"status,omitempty" db:"status"`
	Assignees    []string               `json:"assignees" db:"assignees"`
	Deadline     *time.Time             `json:"deadline,omitempty" db:"deadline"`
	Properties   map[string]interface{} `json:"properties" db:"properties"`
	SortOrder    int                    `json:"order" db:"sort_order"`
	CreatedAt    time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at" db:"updated_at"`
}

// SiblingScope identifies the group of pages that share a sort_order
// sequence. Under a non-nil parent the parent alone defines the group;
// at root level the group is the (workspace, section, subsection)
// placement the page was created with.
type SiblingScope struct {
	WorkspaceID  string
	ParentID     *string
	SectionID    *string
	SubsectionID *string
}

// ChildFilter restricts a root-level child query to a placement scope.
// Recursive descent below the root set never needs it - descendants are
// already scoped by ancestry.
type ChildFilter struct {
	WorkspaceID  string
	SectionID    *string
	SubsectionID *string
}
