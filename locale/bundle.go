package locale

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.json
var messageFiles embed.FS

// NewBundle loads the embedded message catalogs for every supported locale.
// The default locale's catalog doubles as the fallback for any message ID
// missing from another language.
func NewBundle(defaultCode string, supported []string) (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.Make(defaultCode))
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, code := range supported {
		path := fmt.Sprintf("messages/active.%s.json", code)
		if _, err := bundle.LoadMessageFileFS(messageFiles, path); err != nil {
			return nil, fmt.Errorf("load message catalog %s: %w", path, err)
		}
	}
	return bundle, nil
}

// Localizer builds a message localizer for the resolved locale, falling
// back to the default locale's catalog for missing messages.
func Localizer(bundle *goi18n.Bundle, code, defaultCode string) *goi18n.Localizer {
	return goi18n.NewLocalizer(bundle, code, defaultCode)
}
