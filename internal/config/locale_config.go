package config

type LocaleConfig interface {
	GetDefaultLocale() string
	GetSupportedLocales() []string
}

type Locales struct{}

var _ LocaleConfig = Locales{}

func (Locales) GetDefaultLocale() string {
	return GetEnv("DEFAULT_LOCALE", "it")
}

func (Locales) GetSupportedLocales() []string {
	return []string{"it", "en", "de"}
}
