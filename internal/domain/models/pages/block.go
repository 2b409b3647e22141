package pages

import "time"

// Metadata keys the hierarchy core reads or writes on file-bearing blocks.
// Everything else in a block's metadata is opaque payload.
const (
	MetaOriginalFileName  = "originalFileName"
	MetaSuggestedFileName = "suggestedFileName"
)

// Block is a unit of page content (text, image, table, ...). The tree
// logic passes blocks through untouched except for suggested-filename
// enrichment when the owning page is renamed.
type Block struct {
	ID        string                 `json:"id" db:"id"`
	PageID    string                 `json:"page_id" db:"page_id"`
	Type      string                 `json:"type" db:"type"`
	Content   string                 `json:"content" db:"content"`
	Metadata  map[string]interface{} `json:"metadata" db:"metadata"`
	SortOrder int                    `json:"order" db:"sort_order"`
	CreatedAt time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt time.Time              `json:"updated_at" db:"updated_at"`
}
