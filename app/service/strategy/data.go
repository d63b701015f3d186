package strategy

import (
	"context"

	"scholarbot/app/client/duckduck"
	"scholarbot/app/client/llmproxy"
)

// Generator is the text-generation backend boundary.
type Generator interface {
	Generate(ctx context.Context, system, query string) (llmproxy.Result, error)
}

// Searcher is the web-search provider boundary.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]duckduck.Result, error)
}

// User-facing fallback texts. Backend failures never leak past a strategy;
// the user only ever sees one of these sentences.
const (
	noResearchDataMessage = "No research data found. Try rewording your question."
	noSummaryMessage      = "No summary could be generated. Try sending the text again."
	noSourcesFoundMessage = "🔎 No sources found for that query."
	noSourcesAvailable    = "🔎 No sources available right now. Please try again later."
	apologyMessage        = "Sorry, I ran into a problem answering that. Please try again."
)
