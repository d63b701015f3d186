package assistant

import (
	"context"
	"log/slog"

	"scholarbot/app/client/duckduck"
	"scholarbot/app/client/llmproxy"
	"scholarbot/app/config"
	"scholarbot/app/service/intent"
	"scholarbot/app/service/session"
	"scholarbot/app/service/strategy"

	"github.com/samber/do"
)

// Service is the conversation orchestrator: it classifies each inbound
// message, advances the user's stage and dispatches to a response strategy.
type Service struct {
	store session.Store

	explain   *strategy.Explain
	summarize *strategy.Summarize
	webSearch *strategy.WebSearch
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)
	store := do.MustInvoke[*session.Service](di)
	generator := do.MustInvoke[*llmproxy.Client](di)
	searcher := do.MustInvoke[*duckduck.Client](di)

	return newService(store, generator, searcher, cfg.Search.MaxResults), nil
}

func newService(store session.Store, generator strategy.Generator, searcher strategy.Searcher, maxResults int) *Service {
	webSearch := strategy.NewWebSearch(searcher, maxResults)

	return &Service{
		store:     store,
		explain:   strategy.NewExplain(generator, webSearch, store),
		summarize: strategy.NewSummarize(generator),
		webSearch: webSearch,
	}
}

// Respond processes one turn for the given user and returns the reply text.
// Holds the per-user lock for the whole turn, so concurrent messages from one
// identity are serialized while distinct identities proceed in parallel.
func (s *Service) Respond(ctx context.Context, userID, text string) string {
	unlock := s.store.Lock(userID)
	defer unlock()

	// First contact: greet, seed the session and wait for a real request.
	if len(s.store.Fetch(userID)) == 0 {
		s.store.Record(userID, text, sessionSeedResponse)
		s.store.SetStage(userID, session.StageInitial)

		slog.Info("New user session", "user", userID)

		return greetingMessage
	}

	detected := intent.Classify(text)

	// A freshly detected task intent pre-empts whatever stage the user was
	// in; the matching strategy runs on the next message. When the message
	// matches the stage the user is already in, it is the follow-up itself
	// and goes straight to the strategy.
	if stage, ok := intentStages[detected]; ok && stage != s.store.Stage(userID) {
		s.store.SetStage(userID, stage)
		return followUpPrompts[stage]
	}

	switch s.store.Stage(userID) {
	case session.StageExplanation:
		return s.explain.Respond(ctx, userID, text)
	case session.StageSummary:
		return s.summarize.Respond(ctx, text)
	case session.StageWebsearch:
		return s.webSearch.Respond(ctx, text)
	}

	return clarificationMessage
}

// RespondResearch is the simplified routing path: research-style questions go
// straight to the Explain strategy, everything else asks for clarification.
func (s *Service) RespondResearch(ctx context.Context, userID, text string) string {
	unlock := s.store.Lock(userID)
	defer unlock()

	if intent.IsResearchQuery(text) {
		return s.explain.Respond(ctx, userID, text)
	}

	return clarificationMessage
}
