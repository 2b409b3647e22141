package pages

import "time"

// Comment is a user remark attached to a page. Comments are removed with
// their page as part of the delete cascade.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	PageID    string    `json:"page_id" db:"page_id"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
