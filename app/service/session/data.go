package session

// Exchange is one completed (query, response) turn. Immutable once recorded.
type Exchange struct {
	Query    string
	Response string
}

// Stage tracks which task a user's conversation is currently servicing.
type Stage string

const (
	// StageUninitialized is the implicit stage before any message was seen.
	StageUninitialized Stage = ""
	StageInitial       Stage = "initial"
	StageExplanation   Stage = "explanation"
	StageSummary       Stage = "summary"
	StageWebsearch     Stage = "websearch"
)

type userSession struct {
	history []Exchange
	stage   Stage
}
