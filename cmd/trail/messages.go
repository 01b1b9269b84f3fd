package main

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

type messages struct {
	localizer *i18n.Localizer
}

func newMessages(lang string) (*messages, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if _, err := bundle.LoadMessageFileFS(localeFS, "locales/active.en.toml"); err != nil {
		return nil, err
	}

	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, err
		}
		tag = parsed
	}

	return &messages{localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String())}, nil
}

// get localizes id, falling back to the id itself.
func (m *messages) get(id string, data map[string]any) string {
	config := &i18n.LocalizeConfig{MessageID: id, TemplateData: data}
	if count, ok := data["Count"]; ok {
		config.PluralCount = count
	}

	text, err := m.localizer.Localize(config)
	if err != nil {
		return id
	}
	return text
}
