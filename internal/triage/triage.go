// Package triage holds the keyword-rule symptom checker and intake chat
// responder. Both are pure functions over an ordered rule table; there is no
// model and no state.
package triage

import "strings"

// Advice is appended to every symptom check result.
const Advice = "This is not medical advice. Please consult a real doctor."

// FallbackCondition is returned when no symptom rule matches.
const FallbackCondition = "General / non-specific illness - further evaluation needed"

// FallbackPrompt is the intake reply when no keyword matches.
const FallbackPrompt = "Can you describe your main symptom, when it started, and what makes it better or worse?"

// symptomRule maps a predicate over lower-cased input to a condition string.
// Rules are checked in order and every match contributes.
type symptomRule struct {
	match     func(text string) bool
	condition string
}

var symptomRules = []symptomRule{
	{
		match: func(text string) bool {
			return strings.Contains(text, "chest pain") || strings.Contains(text, "shortness of breath")
		},
		condition: "Cardiac issue / emergency - seek urgent care",
	},
	{
		match: func(text string) bool {
			return strings.Contains(text, "fever") && strings.Contains(text, "cough")
		},
		condition: "Viral or bacterial respiratory infection",
	},
	{
		match: func(text string) bool {
			return strings.Contains(text, "headache") && strings.Contains(text, "vomit")
		},
		condition: "Migraine or raised intracranial pressure",
	},
}

// intakeRule maps a single keyword to a canned follow-up question. The first
// match wins.
type intakeRule struct {
	keyword string
	reply   string
}

var intakeRules = []intakeRule{
	{keyword: "fever", reply: "How long have you had the fever and how high has it gone?"},
	{keyword: "pain", reply: "Where is the pain located and how severe is it from 1 to 10?"},
	{keyword: "breath", reply: "Are you short of breath at rest, or only on exertion?"},
}

// CheckSymptoms evaluates every symptom rule against the input and returns
// the matched conditions in rule order, falling back to a generic condition
// when nothing matches. The advice string is always returned alongside.
func CheckSymptoms(symptoms string) (conditions []string, advice string) {
	text := strings.ToLower(symptoms)

	for _, rule := range symptomRules {
		if rule.match(text) {
			conditions = append(conditions, rule.condition)
		}
	}

	if len(conditions) == 0 {
		conditions = append(conditions, FallbackCondition)
	}

	return conditions, Advice
}

// IntakeReply returns exactly one follow-up question for a chat message. No
// conversation state is kept server-side; the transcript lives in the client.
func IntakeReply(message string) string {
	text := strings.ToLower(message)

	for _, rule := range intakeRules {
		if strings.Contains(text, rule.keyword) {
			return rule.reply
		}
	}

	return FallbackPrompt
}
