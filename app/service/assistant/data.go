package assistant

import (
	"scholarbot/app/service/intent"
	"scholarbot/app/service/session"
)

const sessionSeedResponse = "New user session started."

const greetingMessage = "👋 Hello! I'm your Research Assistant. I can help with:\n" +
	"📖 Detailed explanations of academic topics\n" +
	"📝 Summaries of complex texts\n" +
	"🔎 Finding credible sources online\n" +
	"Just tell me what you need, and I'll assist!"

const clarificationMessage = "🤖 I couldn't determine what you're looking for. Are you asking for:\n" +
	"- A detailed explanation of a topic?\n" +
	"- A summary of a document or text?\n" +
	"- Credible sources and research articles?\n" +
	"Try rephrasing your request or specifying what you need!"

// followUpPrompts are returned when a task intent is detected; the strategy
// itself only runs on the user's next message.
var followUpPrompts = map[session.Stage]string{
	session.StageExplanation: "📖 What topic would you like me to explain?",
	session.StageSummary:     "📝 Please send the text you would like summarized.",
	session.StageWebsearch:   "🔎 What subject should I find credible sources for?",
}

var intentStages = map[intent.Intent]session.Stage{
	intent.Explanation: session.StageExplanation,
	intent.Summary:     session.StageSummary,
	intent.Websearch:   session.StageWebsearch,
}
