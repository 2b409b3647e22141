package config

const (
	// MaxWorkspaceNameLength is the maximum length for workspace names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxWorkspaceNameLength = 255

	// MaxSectionNameLength is the maximum length for section and
	// subsection names. Same as workspace names for consistency.
	MaxSectionNameLength = 255

	// MaxPageTitleLength is the maximum length for page titles.
	MaxPageTitleLength = 255

	// MaxCommentLength is the maximum length for a comment body.
	MaxCommentLength = 10000

	// MaxSuggestedFileNameLength bounds the sanitized title portion of a
	// suggested filename. Longer titles are truncated, not rejected.
	MaxSuggestedFileNameLength = 64

	// DefaultPageIcon is the placeholder glyph assigned when a page is
	// created without an explicit icon.
	DefaultPageIcon = "📄"
)
