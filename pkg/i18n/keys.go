package i18n

var ALLOW_LANG = map[string]bool{
	"en": true,
	"hi": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOT_FOUND         = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"

	MESSAGE_WELCOME = "message.chat.welcome"
	MESSAGE_APOLOGY = "message.chat.apology"
)
