package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message IDs for localized alert text.
const (
	MsgLoadFailedTitle   = "LoadFailedTitle"
	MsgLoadFailedMessage = "LoadFailedMessage"
	MsgRetryAction       = "RetryAction"
	MsgCancelAction      = "CancelAction"
)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	languageMu sync.RWMutex
	languages  = []string{language.English.String()}
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded locales", "error", err)
			return
		}
		for _, entry := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
				GetInternalLogger().Error("Failed to load locale", "file", entry.Name(), "error", err)
			}
		}
	})
	return bundle
}

// SetLanguage sets the preferred language for localized alerts. The value is any
// BCP 47 tag or Accept-Language string; English is always the final fallback.
func SetLanguage(lang string) {
	if _, err := language.Parse(lang); err != nil {
		if _, _, err := language.ParseAcceptLanguage(lang); err != nil {
			GetInternalLogger().Warn("Ignoring invalid language", "language", lang, "error", err)
			return
		}
	}

	languageMu.Lock()
	defer languageMu.Unlock()
	languages = []string{lang, language.English.String()}
}

// Localize returns the message for id in the current language, filling in data.
// Unknown ids return the id itself.
func Localize(id string, data map[string]any) string {
	languageMu.RLock()
	langs := languages
	languageMu.RUnlock()

	localizer := i18n.NewLocalizer(getBundle(), langs...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Debug("Missing translation", "id", id, "error", err)
		if msg == "" {
			return id
		}
	}
	return msg
}
