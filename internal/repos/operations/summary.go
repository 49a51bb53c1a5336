package operations

import (
	"context"

	"github.com/temirov/gitsh/internal/repos/naming"
)

// RepositorySummary describes one repository directory for listings.
type RepositorySummary struct {
	Name        string
	Directory   string
	Description string
	Owner       string
	Private     bool
}

// Summarize collects display metadata for each repository directory.
func (guarded *GuardedService) Summarize(executionContext context.Context, directoryNames []string) []RepositorySummary {
	summaries := make([]RepositorySummary, 0, len(directoryNames))
	for _, directoryName := range directoryNames {
		summaries = append(summaries, RepositorySummary{
			Name:        naming.DisplayName(directoryName),
			Directory:   directoryName,
			Description: guarded.Description(executionContext, directoryName),
			Owner:       guarded.Owner(executionContext, directoryName),
			Private:     guarded.Private(directoryName),
		})
	}
	return summaries
}
