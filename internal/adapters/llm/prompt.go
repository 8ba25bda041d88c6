package llm

import "fmt"

// Instructions for the task surfaces. Sessions carry the caller's own
// system prompt; the single-purpose surfaces bring theirs.
const (
	promptSystem = "You are a helpful journaling assistant. Answer in plain text."

	rewriteSystem = "Rewrite the user's text so it reads better. Keep the meaning and the language. " +
		"Return only the rewritten text."

	summarizeSystem = "Summarize the user's text in a few short sentences. " +
		"Return only the summary."

	writeSystem = "You are a writer. Follow the user's writing request and return only the requested text."

	proofreadSystem = "Correct grammar, spelling and punctuation in the user's text. " +
		"Return only the corrected text."
)

// translateSystem builds the instruction for one target language.
func translateSystem(targetLang string) string {
	return fmt.Sprintf("Translate the user's text into the language with code %q. "+
		"Return only the translated text.", targetLang)
}
