package types

import "time"

// Working language of the pipeline. Retrieval and generation always operate
// on this language; user-facing text is translated at the edges.
const WORKING_LANGUAGE = "en"

// A session that has seen no activity for this long is treated as absent on
// read and swept to inactive in the background.
const SESSION_TIMEOUT = 24 * time.Hour

const (
	// retrieval defaults
	SEARCH_TOP_K        = 5
	SCORE_THRESHOLD     = 0.3
	FRAGMENT_BATCH_SIZE = 100

	// prompt assembly bounds
	MAX_PROMPT_FRAGMENTS    = 5
	FRAGMENT_CONTENT_LIMIT  = 500
	MAX_HISTORY_TURNS       = 10
	CONTEXT_EXCERPT_TURNS   = 2
	SOURCE_EXCERPT_LIMIT    = 200
	MAX_RESPONSE_SOURCES    = 3
	MAX_SUGGESTED_QUESTIONS = 3

	// inbound message limits
	MESSAGE_MIN_LENGTH = 1
	MESSAGE_MAX_LENGTH = 5000
)

// LANGUAGE_NAMES maps supported language codes to the human-readable names
// used inside generation prompts.
var LANGUAGE_NAMES = map[string]string{
	"en":  "English",
	"hi":  "Hindi",
	"gu":  "Gujarati",
	"mr":  "Marathi",
	"pa":  "Punjabi",
	"ta":  "Tamil",
	"bn":  "Bengali",
	"te":  "Telugu",
	"kn":  "Kannada",
	"ml":  "Malayalam",
	"or":  "Odia",
	"raj": "Hindi", // Rajasthani uses Hindi as fallback
}

func LanguageName(code string) string {
	if name, ok := LANGUAGE_NAMES[code]; ok {
		return name
	}
	return LANGUAGE_NAMES[WORKING_LANGUAGE]
}
