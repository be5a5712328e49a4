package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

func makeFiles(n int) []models.ChangedFile {
	files := make([]models.ChangedFile, n)
	for i := range files {
		files[i] = models.ChangedFile{
			Path:      fmt.Sprintf("src/file%02d.go", i),
			Status:    "modified",
			Additions: i,
			Deletions: 1,
		}
	}
	return files
}

func TestSummarizeDiff_EntryLine(t *testing.T) {
	files := []models.ChangedFile{
		{Path: "app/page.tsx", Status: "added", Additions: 12, Deletions: 0},
	}

	got := SummarizeDiff(files)
	if got != "- app/page.tsx [added] (+12/-0)" {
		t.Errorf("SummarizeDiff() = %q", got)
	}
}

func TestSummarizeDiff_PatchFence(t *testing.T) {
	var patch strings.Builder
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&patch, "+line %d\n", i)
	}
	files := []models.ChangedFile{
		{Path: "main.go", Status: "modified", Additions: 80, Patch: patch.String()},
	}

	got := SummarizeDiff(files)
	lines := strings.Split(got, "\n")

	// header + opening fence + 60 patch lines + closing fence
	if len(lines) != 63 {
		t.Fatalf("line count = %d, want 63", len(lines))
	}
	if lines[1] != "```diff" || lines[62] != "```" {
		t.Errorf("fence lines = %q, %q", lines[1], lines[62])
	}
	if lines[61] != "+line 59" {
		t.Errorf("last patch line = %q, want +line 59", lines[61])
	}
}

func TestSummarizeDiff_FileLimit(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		wantEntries int
		wantTail    string
	}{
		{name: "under limit", count: 3, wantEntries: 3},
		{name: "at limit", count: 25, wantEntries: 25},
		{name: "one over", count: 26, wantEntries: 25, wantTail: "...(1 files more)"},
		{name: "far over", count: 100, wantEntries: 25, wantTail: "...(75 files more)"},
		{name: "empty", count: 0, wantEntries: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeDiff(makeFiles(tt.count))

			entries := strings.Count(got, "- src/file")
			if entries != tt.wantEntries {
				t.Errorf("entries = %d, want %d", entries, tt.wantEntries)
			}
			if tt.wantTail != "" && !strings.HasSuffix(got, tt.wantTail) {
				t.Errorf("summary does not end with %q: %q", tt.wantTail, got[len(got)-40:])
			}
			if tt.wantTail == "" && strings.Contains(got, "files more") {
				t.Errorf("unexpected remainder line in %q", got)
			}
		})
	}
}
