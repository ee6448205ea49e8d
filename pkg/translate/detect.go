package translate

import (
	"github.com/abadojack/whatlanggo"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

// langCodes maps detector results onto the supported language codes.
var langCodes = map[whatlanggo.Lang]string{
	whatlanggo.Eng: "en",
	whatlanggo.Hin: "hi",
	whatlanggo.Guj: "gu",
	whatlanggo.Mar: "mr",
	whatlanggo.Pan: "pa",
	whatlanggo.Tam: "ta",
	whatlanggo.Ben: "bn",
	whatlanggo.Tel: "te",
	whatlanggo.Kan: "kn",
	whatlanggo.Mal: "ml",
	whatlanggo.Ori: "or",
}

var whatLangOpts = whatlanggo.Options{
	Whitelist: func() map[whatlanggo.Lang]bool {
		wl := make(map[whatlanggo.Lang]bool, len(langCodes))
		for lang := range langCodes {
			wl[lang] = true
		}
		return wl
	}(),
}

// DetectLanguage is best-effort: anything ambiguous or unsupported resolves
// to the working language, never an error.
func DetectLanguage(text string) string {
	info := whatlanggo.DetectWithOptions(text, whatLangOpts)
	if code, ok := langCodes[info.Lang]; ok {
		return code
	}
	return types.WORKING_LANGUAGE
}
