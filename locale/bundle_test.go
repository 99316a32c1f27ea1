package locale_test

import (
	"testing"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"github.com/gianpd/zungri-web/locale"
)

func TestBundleLocalization(t *testing.T) {
	bundle, err := locale.NewBundle("it", []string{"it", "en", "de"})
	require.NoError(t, err)

	tests := []struct {
		code string
		want string
	}{
		{"it", "Biglietti"},
		{"en", "Tickets"},
		{"de", "Tickets"},
	}

	for _, tc := range tests {
		localizer := locale.Localizer(bundle, tc.code, "it")
		msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: "tickets.title"})
		require.NoError(t, err)
		require.Equal(t, tc.want, msg, "locale %s", tc.code)
	}
}

func TestBundleRejectsUnknownCatalog(t *testing.T) {
	_, err := locale.NewBundle("it", []string{"it", "xx"})
	require.Error(t, err)
}
