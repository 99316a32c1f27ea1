package config

type Config interface {
	EnvConfig
	SupabaseConfig
	MuseumAPIConfig
	LocaleConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Supabase
	MuseumAPI
	Locales
	Security
}

func New() Config {
	return mainConfig{}
}
