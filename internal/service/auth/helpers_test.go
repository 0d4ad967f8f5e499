package auth

import "time"

// NewTestJWTService creates a JWT service with an injected clock.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
