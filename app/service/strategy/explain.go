package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"scholarbot/app/client/llmproxy"
	"scholarbot/app/service/session"

	_ "embed"

	"github.com/elliotchance/pie/v2"
	"golang.org/x/sync/errgroup"
)

//go:embed explain_prompt_template.txt
var explainPromptTemplate string

// Explain answers research questions: a generated structured answer plus
// supplementary web sources, with the user's past exchanges injected into
// the system instruction. The only strategy that writes history.
type Explain struct {
	generator Generator
	webSearch *WebSearch
	store     session.Store
}

func NewExplain(generator Generator, webSearch *WebSearch, store session.Store) *Explain {
	return &Explain{
		generator: generator,
		webSearch: webSearch,
		store:     store,
	}
}

func (s *Explain) Respond(ctx context.Context, userID, query string) string {
	system := strings.ReplaceAll(explainPromptTemplate, "{history}", renderTranscript(s.store.Fetch(userID)))

	var (
		generated llmproxy.Result
		webText   string
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		result, err := s.generator.Generate(groupCtx, system, query)
		if err != nil {
			return fmt.Errorf("generator.Generate: %w", err)
		}

		generated = result
		return nil
	})

	group.Go(func() error {
		webText = s.webSearch.Respond(groupCtx, query)
		return nil
	})

	if err := group.Wait(); err != nil {
		slog.Error("Explain strategy failed",
			"user", userID,
			"query", query,
			"error", err,
		)
		return apologyMessage
	}

	response := fmt.Sprintf("**📖 Research Summary:**\n%s\n\n**🔎 Web Search Results:**\n%s",
		generated.TextOr(noResearchDataMessage), webText)

	s.store.Record(userID, query, response)

	return response
}

// renderTranscript formats past exchanges oldest first, one "User/Bot" pair
// per entry.
func renderTranscript(history []session.Exchange) string {
	if len(history) == 0 {
		return "No previous exchanges"
	}

	lines := pie.Map(history, func(e session.Exchange) string {
		return fmt.Sprintf("User: %s\nBot: %s", e.Query, e.Response)
	})

	return strings.Join(lines, "\n")
}
