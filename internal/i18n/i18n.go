// Package i18n localizes the built-in tab titles and page messages.
package i18n

import (
	"embed"
	"encoding/json"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New loads the embedded message files and selects lang, falling back to
// English.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, err
		}
	}

	tr := &Translator{bundle: bundle}
	if err := tr.SetLanguage(lang); err != nil {
		return nil, err
	}
	return tr, nil
}

// SetLanguage switches the active language. An empty code selects English.
func (t *Translator) SetLanguage(code string) error {
	tag := language.English
	if code != "" {
		parsed, err := language.Parse(code)
		if err != nil {
			return err
		}
		tag = parsed
	}
	t.localizer = i18n.NewLocalizer(t.bundle, tag.String(), language.English.String())
	return nil
}

// String returns the message for key. Unknown keys are returned as-is so
// literal titles pass through.
func (t *Translator) String(key string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}

// Plural returns the plural form of key for count, with Count available to
// the template.
func (t *Translator) Plural(key string, count int) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		return key
	}
	return msg
}

// Languages lists the tags that have message files.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}
