package strategy

import (
	"context"
	"log/slog"

	_ "embed"
)

//go:embed summarize_prompt.txt
var summarizePrompt string

// Summarize condenses the raw input text. Stateless: it neither reads nor
// writes the session store.
type Summarize struct {
	generator Generator
}

func NewSummarize(generator Generator) *Summarize {
	return &Summarize{generator: generator}
}

func (s *Summarize) Respond(ctx context.Context, text string) string {
	result, err := s.generator.Generate(ctx, summarizePrompt, text)
	if err != nil {
		slog.Error("Summarize strategy failed", "error", err)
		return apologyMessage
	}

	return result.TextOr(noSummaryMessage)
}
