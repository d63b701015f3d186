package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// WebSearch looks up ranked sources for a query. Provider failures and empty
// result sets both collapse into fixed user-facing texts; this strategy never
// fails upward.
type WebSearch struct {
	searcher   Searcher
	maxResults int
}

func NewWebSearch(searcher Searcher, maxResults int) *WebSearch {
	return &WebSearch{
		searcher:   searcher,
		maxResults: maxResults,
	}
}

func (s *WebSearch) Respond(ctx context.Context, query string) string {
	results, err := s.searcher.Search(ctx, query, s.maxResults)
	if err != nil {
		slog.Warn("Web search failed", "query", query, "error", err)
		return noSourcesAvailable
	}

	if len(results) == 0 {
		return noSourcesFoundMessage
	}

	var builder strings.Builder
	for i, result := range results {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("%d. %s\n   %s", i+1, result.Title, result.Href))
	}

	return builder.String()
}
