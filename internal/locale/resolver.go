package locale

import (
	"context"

	"voice-tool-backend/pkg/langdetect"
	pkgLog "voice-tool-backend/pkg/log"
)

// Resolver picks a supported locale profile for free text. It never fails
// outward: every internal failure degrades to the English profile, and each
// fallback is logged so the decision stays observable.
type Resolver struct {
	l        pkgLog.Logger
	detector langdetect.Detector
}

// NewResolver creates a locale resolver on top of a language detector.
func NewResolver(l pkgLog.Logger, detector langdetect.Detector) *Resolver {
	return &Resolver{
		l:        l,
		detector: detector,
	}
}

// Resolve runs best-effort language identification over text and returns
// the matching profile. Deterministic: identical input yields the identical
// profile.
func (r *Resolver) Resolve(ctx context.Context, text string) Profile {
	if text == "" {
		r.l.Debugf(ctx, "locale: empty query, using default profile %s", defaultProfile.Code)
		return defaultProfile
	}

	code, ok := r.detector.Detect(text)
	if !ok {
		r.l.Debugf(ctx, "locale: language undetectable, using default profile %s", defaultProfile.Code)
		return defaultProfile
	}

	profile, ok := profiles[code]
	if !ok {
		r.l.Debugf(ctx, "locale: detected unsupported language %q, using default profile %s", code, defaultProfile.Code)
		return defaultProfile
	}

	r.l.Debugf(ctx, "locale: resolved %q -> %s", code, profile.Code)
	return profile
}
