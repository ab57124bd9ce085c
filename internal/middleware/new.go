package middleware

import (
	"neuro-assist/config"
	"neuro-assist/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(cfg.PerMin),
	}
}
