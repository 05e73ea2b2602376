package middleware

import (
	"voice-tool-backend/config"
	pkgLog "voice-tool-backend/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.PerMin),
	}
}
