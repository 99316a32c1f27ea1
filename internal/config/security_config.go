package config

import "time"

type SecurityConfig interface {
	GetProviderTimeout() time.Duration
	GetLocaleCookieMaxAge() time.Duration
}

type Security struct{}

var _ SecurityConfig = Security{}

// GetProviderTimeout bounds the outbound session lookup so a slow identity
// provider cannot stall request handling
func (Security) GetProviderTimeout() time.Duration {
	return 5 * time.Second
}

func (Security) GetLocaleCookieMaxAge() time.Duration {
	return 365 * 24 * time.Hour
}
