package prompt

import (
	"fmt"
	"strings"

	"github.com/Kavirubc/gh-agentctl/pkg/models"
)

const (
	// MaxDiffFiles is the number of files summarised verbatim
	MaxDiffFiles = 25
	// MaxPatchLines bounds the patch excerpt shown per file
	MaxPatchLines = 60
	// NoPullRequest stands in for the diff summary when nothing is open
	NoPullRequest = "(no open PR)"
)

// SummarizeDiff renders a bounded textual summary of pull request files.
// Files past MaxDiffFiles collapse into a single count line.
func SummarizeDiff(files []models.ChangedFile) string {
	var lines []string

	for i, f := range files {
		if i == MaxDiffFiles {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s [%s] (+%d/-%d)", f.Path, f.Status, f.Additions, f.Deletions))

		if excerpt := patchExcerpt(f.Patch, MaxPatchLines); excerpt != "" {
			lines = append(lines, "```diff", excerpt, "```")
		}
	}

	if len(files) > MaxDiffFiles {
		lines = append(lines, fmt.Sprintf("...(%d files more)", len(files)-MaxDiffFiles))
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func patchExcerpt(patch string, maxLines int) string {
	if patch == "" {
		return ""
	}
	patch = strings.ReplaceAll(patch, "\r\n", "\n")
	lines := strings.Split(strings.TrimSuffix(patch, "\n"), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
