package models

import "time"

// Workspace is the top-level placement container for pages.
type Workspace struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Icon      string    `json:"icon" db:"icon"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Section groups pages within a workspace. Pages reference sections by id
// only; a section carries no hierarchy of its own.
type Section struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspace_id" db:"workspace_id"`
	Name        string    `json:"name" db:"name"`
	SortOrder   int       `json:"order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Subsection is an optional second placement level under a section.
type Subsection struct {
	ID        string    `json:"id" db:"id"`
	SectionID string    `json:"section_id" db:"section_id"`
	Name      string    `json:"name" db:"name"`
	SortOrder int       `json:"order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
