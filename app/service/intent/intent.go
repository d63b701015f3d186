package intent

import "strings"

// Intent is the coarse task category inferred from a single message.
type Intent string

const (
	Explanation Intent = "explanation"
	Summary     Intent = "summary"
	Websearch   Intent = "websearch"
	Unknown     Intent = "unknown"
)

type rule struct {
	intent   Intent
	keywords []string
}

// Rule order is the tie-break: the first matching category wins.
var rules = []rule{
	{
		intent:   Explanation,
		keywords: []string{"explain", "describe", "how does", "what is", "overview", "deep dive"},
	},
	{
		intent:   Summary,
		keywords: []string{"summarize", "condense", "tl;dr", "short version"},
	},
	{
		intent:   Websearch,
		keywords: []string{"find sources", "look up", "research articles", "search online", "credible sources"},
	},
}

// Classify maps raw message text to an intent by case-insensitive keyword
// containment. Pure and deterministic.
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return r.intent
			}
		}
	}

	return Unknown
}

// researchKeywords overlaps the classifier lists on purpose: the simplified
// routing path only needs a coarse is-this-research signal.
var researchKeywords = []string{
	"why", "compare", "impact of", "what is", "how does",
	"explain", "causes of", "effects of", "difference between",
}

// IsResearchQuery reports whether the text reads like a research-style
// question. Independent from Classify; both have their own callers.
func IsResearchQuery(text string) bool {
	lower := strings.ToLower(text)

	for _, keyword := range researchKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}
