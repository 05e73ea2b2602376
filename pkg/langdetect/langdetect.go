// Package langdetect wraps best-effort language identification behind a
// small capability interface so callers can substitute a deterministic
// stub in tests.
package langdetect

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Detector identifies the language of a piece of free text.
// Implementations must be deterministic: identical input always yields the
// identical code.
type Detector interface {
	// Detect returns the ISO 639-3 code of the detected language and
	// whether detection produced a usable result.
	Detect(text string) (code string, ok bool)
}

type whatlangDetector struct{}

// New returns the default trigram-based detector.
func New() Detector {
	return whatlangDetector{}
}

func (whatlangDetector) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	info := whatlanggo.Detect(text)
	code := whatlanggo.LangToString(info.Lang)
	if code == "" {
		return "", false
	}
	return code, true
}
