package ai

import (
	"strings"

	"github.com/samber/lo"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

// Confidence scores the answer from retrieval evidence: average relevance of
// the top fragments scaled to 0..100 and clamped to [10, 95]. No evidence
// means a fixed low 30 regardless of how fluent the model sounded.
func Confidence(fragments []types.ScoredFragment) int {
	if len(fragments) == 0 {
		return 30
	}

	top := fragments
	if len(top) > 3 {
		top = top[:3]
	}

	var sum float64
	for _, doc := range top {
		sum += doc.Score
	}
	confidence := int(sum / float64(len(top)) * 100)

	if confidence < 10 {
		return 10
	}
	if confidence > 95 {
		return 95
	}
	return confidence
}

// escalationVocabulary is the fixed sensitive-topic list; order matters only
// for audit logs, any hit forces escalation.
var escalationVocabulary = []string{
	"complaint", "grievance", "urgent", "emergency",
	"fee refund", "ragging", "harassment", "legal",
	"document verification", "certificate issue",
}

var uncertaintyMarkers = []string{
	"i don't have", "i'm not sure", "contact the office",
	"i cannot", "not available", "no information",
}

// NeedsEscalation layers a deterministic, auditable rule over the generated
// answer: sensitive query terms, weak evidence, or an uncertain answer all
// hand the conversation to a human.
func NeedsEscalation(query, response string, confidence int) bool {
	queryLower := strings.ToLower(query)
	for _, keyword := range escalationVocabulary {
		if strings.Contains(queryLower, keyword) {
			return true
		}
	}

	if confidence < 40 {
		return true
	}

	responseLower := strings.ToLower(response)
	for _, phrase := range uncertaintyMarkers {
		if strings.Contains(responseLower, phrase) {
			return true
		}
	}

	return false
}

type intentEntry struct {
	Label    string
	Keywords []string
}

// intentTable is evaluated in order, first matching category wins.
var intentTable = []intentEntry{
	{"fees", []string{"fee", "payment", "dues", "amount", "cost"}},
	{"admission", []string{"admission", "enroll", "join", "apply", "application"}},
	{"scholarship", []string{"scholarship", "financial aid", "concession", "waiver"}},
	{"examination", []string{"exam", "result", "marks", "grade", "revaluation"}},
	{"timetable", []string{"timetable", "schedule", "class", "timing", "lecture"}},
	{"hostel", []string{"hostel", "accommodation", "room", "mess", "stay"}},
	{"library", []string{"library", "book", "borrow", "return", "fine"}},
	{"placement", []string{"placement", "job", "internship", "company", "campus"}},
	{"documents", []string{"certificate", "document", "transcript", "letter"}},
	{"contact", []string{"contact", "phone", "email", "office", "address"}},
}

const INTENT_GENERAL = "general"

// DetectIntent classifies a working-language query into a coarse category.
func DetectIntent(query string) string {
	queryLower := strings.ToLower(query)
	for _, entry := range intentTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(queryLower, keyword) {
				return entry.Label
			}
		}
	}
	return INTENT_GENERAL
}

type suggestionRule struct {
	Keywords  []string
	Questions []string
}

var suggestionTable = []suggestionRule{
	{[]string{"fee", "payment"}, []string{
		"What are the scholarship options available?",
		"What is the last date for fee payment?",
	}},
	{[]string{"admission"}, []string{
		"What documents are required for admission?",
		"What are the eligibility criteria?",
	}},
	{[]string{"exam", "result"}, []string{
		"When will the results be announced?",
		"How can I apply for re-evaluation?",
	}},
	{[]string{"hostel"}, []string{
		"What is the hostel fee structure?",
		"What facilities are available in the hostel?",
	}},
}

var genericSuggestions = []string{
	"What are the important dates to remember?",
	"How can I contact the office?",
}

// SuggestQuestions maps coarse query keywords to canned follow-ups, first
// matching rule wins, capped at the response limit.
func SuggestQuestions(query string) []string {
	queryLower := strings.ToLower(query)

	for _, rule := range suggestionTable {
		if lo.SomeBy(rule.Keywords, func(k string) bool { return strings.Contains(queryLower, k) }) {
			return capSuggestions(rule.Questions)
		}
	}
	return capSuggestions(genericSuggestions)
}

func capSuggestions(questions []string) []string {
	if len(questions) > types.MAX_SUGGESTED_QUESTIONS {
		return questions[:types.MAX_SUGGESTED_QUESTIONS]
	}
	return questions
}
