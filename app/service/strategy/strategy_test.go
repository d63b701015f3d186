package strategy

import (
	"context"
	"errors"
	"testing"

	"scholarbot/app/client/duckduck"
	"scholarbot/app/client/llmproxy"
	"scholarbot/app/service/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	result llmproxy.Result
	err    error

	lastSystem string
	lastQuery  string
}

func (f *fakeGenerator) Generate(_ context.Context, system, query string) (llmproxy.Result, error) {
	f.lastSystem = system
	f.lastQuery = query

	return f.result, f.err
}

type fakeSearcher struct {
	results []duckduck.Result
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, _ string, maxResults int) ([]duckduck.Result, error) {
	if f.err != nil {
		return nil, f.err
	}

	if len(f.results) > maxResults {
		return f.results[:maxResults], nil
	}

	return f.results, nil
}

func newSessionStore(t *testing.T) *session.Service {
	t.Helper()

	store, err := session.New(nil)
	require.NoError(t, err)

	return store
}

func TestWebSearchFormatsResults(t *testing.T) {
	searcher := &fakeSearcher{results: []duckduck.Result{
		{Title: "Fusion overview", Href: "https://example.org/fusion"},
		{Title: "Plasma physics", Href: "https://example.org/plasma"},
	}}

	text := NewWebSearch(searcher, 3).Respond(t.Context(), "fusion")

	assert.Equal(t, "1. Fusion overview\n   https://example.org/fusion\n2. Plasma physics\n   https://example.org/plasma", text)
}

func TestWebSearchCapsResults(t *testing.T) {
	searcher := &fakeSearcher{results: []duckduck.Result{
		{Title: "a", Href: "1"}, {Title: "b", Href: "2"},
		{Title: "c", Href: "3"}, {Title: "d", Href: "4"},
	}}

	text := NewWebSearch(searcher, 3).Respond(t.Context(), "q")

	assert.NotContains(t, text, "d")
	assert.Contains(t, text, "3. c")
}

func TestWebSearchEmptyResults(t *testing.T) {
	text := NewWebSearch(&fakeSearcher{}, 3).Respond(t.Context(), "q")

	assert.Equal(t, noSourcesFoundMessage, text)
}

func TestWebSearchProviderFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("connection refused")}

	text := NewWebSearch(searcher, 3).Respond(t.Context(), "q")

	assert.Equal(t, noSourcesAvailable, text)
}

func TestSummarizeReturnsText(t *testing.T) {
	generator := &fakeGenerator{result: llmproxy.Result{Text: "short version", Present: true}}

	text := NewSummarize(generator).Respond(t.Context(), "a very long text")

	assert.Equal(t, "short version", text)
	assert.Equal(t, "a very long text", generator.lastQuery)
}

func TestSummarizeAbsentResult(t *testing.T) {
	text := NewSummarize(&fakeGenerator{}).Respond(t.Context(), "text")

	assert.Equal(t, noSummaryMessage, text)
}

func TestSummarizeBackendFailure(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("backend down")}

	text := NewSummarize(generator).Respond(t.Context(), "text")

	assert.Equal(t, apologyMessage, text)
}

func TestExplainCombinesAnswerAndSources(t *testing.T) {
	store := newSessionStore(t)
	generator := &fakeGenerator{result: llmproxy.Result{Text: "entropy always grows", Present: true}}
	searcher := &fakeSearcher{results: []duckduck.Result{
		{Title: "Second law", Href: "https://example.org/law"},
	}}

	explain := NewExplain(generator, NewWebSearch(searcher, 3), store)

	text := explain.Respond(t.Context(), "alice", "the second law")

	assert.Contains(t, text, "**📖 Research Summary:**\nentropy always grows")
	assert.Contains(t, text, "**🔎 Web Search Results:**\n1. Second law\n   https://example.org/law")
	assert.Equal(t, "the second law", generator.lastQuery)
}

func TestExplainInjectsHistoryTranscript(t *testing.T) {
	store := newSessionStore(t)
	store.Record("alice", "hi", "New user session started.")
	store.Record("alice", "explain entropy", "entropy answer")

	generator := &fakeGenerator{result: llmproxy.Result{Text: "ok", Present: true}}
	explain := NewExplain(generator, NewWebSearch(&fakeSearcher{}, 3), store)

	explain.Respond(t.Context(), "alice", "and the second law?")

	assert.Contains(t, generator.lastSystem, "User: hi\nBot: New user session started.")
	assert.Contains(t, generator.lastSystem, "User: explain entropy\nBot: entropy answer")
}

func TestExplainRecordsExchange(t *testing.T) {
	store := newSessionStore(t)
	generator := &fakeGenerator{result: llmproxy.Result{Text: "answer", Present: true}}
	explain := NewExplain(generator, NewWebSearch(&fakeSearcher{}, 3), store)

	response := explain.Respond(t.Context(), "alice", "what is a chloroplast")

	history := store.Fetch("alice")
	require.Len(t, history, 1)
	assert.Equal(t, "what is a chloroplast", history[0].Query)
	assert.Equal(t, response, history[0].Response)
}

func TestExplainAbsentGeneration(t *testing.T) {
	store := newSessionStore(t)
	explain := NewExplain(&fakeGenerator{}, NewWebSearch(&fakeSearcher{}, 3), store)

	text := explain.Respond(t.Context(), "alice", "q")

	assert.Contains(t, text, noResearchDataMessage)
	assert.Contains(t, text, noSourcesFoundMessage)
}

func TestExplainBackendFailure(t *testing.T) {
	store := newSessionStore(t)
	generator := &fakeGenerator{err: errors.New("backend down")}
	explain := NewExplain(generator, NewWebSearch(&fakeSearcher{}, 3), store)

	text := explain.Respond(t.Context(), "alice", "q")

	assert.Equal(t, apologyMessage, text)
	assert.Empty(t, store.Fetch("alice"))
}

func TestSummarizeNeverTouchesStore(t *testing.T) {
	store := newSessionStore(t)
	generator := &fakeGenerator{result: llmproxy.Result{Text: "summary", Present: true}}

	NewSummarize(generator).Respond(t.Context(), "long text")

	assert.Empty(t, store.Fetch("alice"))
}
