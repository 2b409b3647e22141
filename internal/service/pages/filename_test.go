package pages

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Q2 Report",
			want:  "q2_report",
		},
		{
			name:  "multiple whitespace runs",
			title: "  Budget   2026\tdraft ",
			want:  "budget_2026_draft",
		},
		{
			name:  "punctuation stripped",
			title: "Plan: Phase (1) Final!",
			want:  "plan_phase_1_final",
		},
		{
			name:  "hyphens survive",
			title: "mid-year check-in",
			want:  "mid-year_check-in",
		},
		{
			name:  "emoji only falls back",
			title: "🚀🚀🚀",
			want:  "untitled",
		},
		{
			name:  "empty falls back",
			title: "",
			want:  "untitled",
		},
		{
			name:  "leading and trailing separators trimmed",
			title: "---hello---",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.title); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSanitizeTitleTruncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := SanitizeTitle(long)
	if len(got) != 64 {
		t.Errorf("len = %d, want 64", len(got))
	}

	// Truncation must not leave a dangling separator
	padded := strings.Repeat("a", 63) + "_tail"
	got = SanitizeTitle(padded)
	if strings.HasSuffix(got, "_") || strings.HasSuffix(got, "-") {
		t.Errorf("truncated stem %q ends with a separator", got)
	}
}

func TestSuggestedFileName(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		original string
		want     string
	}{
		{
			name:     "keeps extension",
			title:    "Q2 Report",
			original: "chart.png",
			want:     "q2_report.png",
		},
		{
			name:     "extension lowercased",
			title:    "Q2 Report",
			original: "SCAN.PDF",
			want:     "q2_report.pdf",
		},
		{
			name:     "no extension",
			title:    "Notes",
			original: "dump",
			want:     "notes",
		},
		{
			name:     "multi-dot original keeps last extension",
			title:    "Backup",
			original: "db.2026.tar.gz",
			want:     "backup.gz",
		},
		{
			name:     "unusable title",
			title:    "???",
			original: "photo.jpg",
			want:     "untitled.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestedFileName(tt.title, tt.original); got != tt.want {
				t.Errorf("SuggestedFileName(%q, %q) = %q, want %q", tt.title, tt.original, got, tt.want)
			}
		})
	}
}
