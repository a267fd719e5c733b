// Package intent classifies free-text chat messages as conversational or as
// structured profile-update commands.
//
// The matching is deliberately substring-based and order-sensitive: clients
// already depend on the exact tie-breaks, so any "cleanup" here is a breaking
// change requiring a new interaction schema version.
package intent

import (
	"strings"

	"github.com/devmishra/aibot-backend/internal/domain"
	"github.com/devmishra/aibot-backend/internal/profile"
)

var questionWords = map[string]struct{}{
	"is": {}, "are": {}, "can": {}, "could": {}, "will": {}, "would": {},
	"how": {}, "what": {}, "why": {}, "when": {}, "where": {},
}

var actionVerbs = []string{"update", "change", "set", "modify"}

// Classify maps a raw message to an intent. Pure and deterministic: no I/O,
// same input always yields the same result.
func Classify(message string) domain.IntentResult {
	msg := strings.ToLower(strings.TrimSpace(message))
	tokens := strings.Fields(msg)

	isQuestion := strings.Contains(msg, "?") || intersectsQuestionWords(tokens)

	hasAction := false
	for _, v := range actionVerbs {
		if strings.Contains(msg, v) {
			hasAction = true
			break
		}
	}

	hasField := false
	for _, a := range profile.Aliases() {
		if strings.Contains(msg, a.Text) {
			hasField = true
			break
		}
	}

	// Questions fall through to chat unless the message leads with an action
	// verb ("what is my bio?" chats, "update my bio to X?" still acts).
	if isQuestion && !startsWithActionVerb(tokens) {
		return domain.Chat()
	}

	if hasField && !hasAction {
		return domain.PossibleProfileUpdate("Action verb missing (update / change / set)")
	}

	if hasAction {
		// The value is carved out of the original message, not the
		// normalized one, so casing survives.
		toIndex := strings.Index(message, " to ")
		if toIndex == -1 {
			return domain.IncompleteAction("Missing 'to <value>' part")
		}

		value := strings.TrimSpace(message[toIndex+len(" to "):])
		if value == "" {
			return domain.IncompleteAction("Value after 'to' is missing")
		}

		for _, a := range profile.Aliases() {
			if strings.Contains(msg, a.Text) {
				return domain.UpdateProfile(a.Key, value)
			}
		}

		// hasField was computed from the same table, but keep the branch:
		// an action verb with no recognizable field still needs an answer.
		return domain.PossibleProfileUpdate("Unknown profile field")
	}

	return domain.Chat()
}

func intersectsQuestionWords(tokens []string) bool {
	for _, t := range tokens {
		if _, ok := questionWords[t]; ok {
			return true
		}
	}
	return false
}

func startsWithActionVerb(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, v := range actionVerbs {
		if tokens[0] == v {
			return true
		}
	}
	return false
}
