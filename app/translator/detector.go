package translator

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// allowedDetect limits detection to the languages the service translates.
var allowedDetect = map[whatlanggo.Lang]bool{
	whatlanggo.Spa: true,
	whatlanggo.Eng: true,
	whatlanggo.Fra: true,
	whatlanggo.Deu: true,
	whatlanggo.Por: true,
}

// Detector guesses the language of a text.
type Detector struct {
	opts whatlanggo.Options
}

// NewDetector makes a detector restricted to the supported languages.
func NewDetector() *Detector {
	return &Detector{opts: whatlanggo.Options{Whitelist: allowedDetect}}
}

// Detect returns the ISO 639-1 code of text, or "" when the language can't be told.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	info := whatlanggo.DetectWithOptions(text, d.opts)
	if info.Confidence <= 0 || !allowedDetect[info.Lang] {
		return ""
	}
	return info.Lang.Iso6391()
}
