package config

import "time"

// MuseumAPIConfig exposes the location of the content/booking REST API
type MuseumAPIConfig interface {
	GetMuseumAPIURL() string
	GetMuseumAPIKey() string
	GetMuseumAPITimeout() time.Duration
}

type MuseumAPI struct{}

var _ MuseumAPIConfig = MuseumAPI{}

func (MuseumAPI) GetMuseumAPIURL() string {
	return GetEnv("MUSEUM_API_URL", "http://localhost:3001")
}

func (MuseumAPI) GetMuseumAPIKey() string {
	return GetEnv("MUSEUM_API_KEY", "")
}

func (MuseumAPI) GetMuseumAPITimeout() time.Duration {
	return 10 * time.Second
}
