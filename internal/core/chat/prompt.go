package chat

import (
	"fmt"
	"strings"
)

// translationPolicy returns the translation-density clause for a level.
// Pure function of the level code.
func translationPolicy(language, level string) string {
	switch level {
	case "A1", "A2":
		return fmt.Sprintf("After every sentence in %s, add an English translation in square brackets.", language)
	case "B1":
		return "Add an English translation in square brackets only after difficult phrases."
	case "B2":
		return "Add an English translation in square brackets only for very difficult concepts."
	default: // C1, C2
		return "Do not add any English translations."
	}
}

// BuildSystemPrompt constructs the system instruction for the primary
// tutor-reply call. Branches on roleplay presence and on level.
func BuildSystemPrompt(language, level string, roleplay *RoleplayContext, isFirstMessage bool) string {
	var b strings.Builder

	if roleplay != nil {
		b.WriteString(fmt.Sprintf("You are a %s tutor playing a role. Character: %s. Scenario: %s. Setting: %s. ",
			language, roleplay.Character, roleplay.Scenario, roleplay.Setting))
		b.WriteString(fmt.Sprintf("Stay in character and keep the conversation inside the scenario, speaking %s suitable for a %s learner. ", language, level))
		if isFirstMessage {
			b.WriteString("Open the conversation yourself, in character, with a natural greeting that invites the learner to respond. ")
		}
	} else {
		b.WriteString(fmt.Sprintf("You are a friendly %s tutor having a free conversation with a learner at level %s. ", language, level))
		b.WriteString(fmt.Sprintf("Reply in %s, keep your messages short and engaging, and ask questions that keep the learner talking. ", language))
	}

	b.WriteString(translationPolicy(language, level))
	return b.String()
}

// translationExtractionPrompt is the system instruction for the
// translation/hint extraction call.
func translationExtractionPrompt(language string) string {
	return fmt.Sprintf(`You are given a %s tutor's reply to a learner. Return a JSON object with exactly two keys:
"translation": a natural English translation of the whole reply.
"hint": one short English sentence pointing out one challenging phrase in the reply and how the learner might respond to it.
Return only the JSON object, with no other text.`, language)
}

// gradingPrompt is the system instruction for the correction/grading call.
func gradingPrompt(language string) string {
	return fmt.Sprintf(`You are a %s teacher grading a learner's message. Analyze the message and return one JSON object with exactly this shape:
{
  "hasErrors": boolean,
  "corrected": "the corrected message, in %s",
  "mistakes": [{"type": "grammar|vocabulary|structure|spelling", "original": "...", "correction": "...", "explanation": "short English explanation"}],
  "feedback": "encouraging feedback in English",
  "suggestions": ["English improvement suggestions"],
  "grade": {"letter": "A+|A|B+|B|C+|C|D|F", "score": 0-100, "feedback": "one English sentence"}
}
Score weighting: grammar 40%%, vocabulary 30%%, structure 20%%, spelling 10%%.
If the message is not in %s at all, do not grade it as gibberish; note this gently in the feedback and suggest writing in %s.
Return only the JSON object, with no other text.`, language, language, language, language)
}
