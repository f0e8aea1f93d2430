package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when WithDefaultLanguage is not given.
const DefaultLanguage = "pt-BR"

// Translator renders messages from the catalogs loaded by its adapter.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads every catalog from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, messages := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if messages == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded",
		slog.Any("languages", t.supportedLanguages()),
		slog.String("default", t.defaultLang),
	)
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have a catalog.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one has no catalog.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang itself defines key. The default
// language is not consulted.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// T translates key for lang. Args are key/value pairs filling %{key}
// placeholders; an odd trailing arg is ignored. When nothing is found the
// key itself is returned, or "" if WithFallbackToKey(false) was given.
func (t *Translator) T(lang, key string, args ...string) string {
	if msg, ok := t.resolve(lang, key); ok {
		return sprintf(msg, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates key for lang and uses defaultValue when nothing is found.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if msg, ok := t.resolve(lang, key); ok {
		return sprintf(msg, args)
	}
	return sprintf(defaultValue, args)
}

// resolve looks key up in lang and then in the default language.
func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := []string{lang}
	if lang != t.defaultLang {
		langs = append(langs, t.defaultLang)
	}

	for _, l := range langs {
		messages, ok := t.translations[l]
		if !ok {
			continue
		}
		val, ok := lookup(messages, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		}
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", l, "key", key, "type", fmt.Sprintf("%T", val))
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return "", false
}

// lookup walks a nested map using a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces %{name} placeholders with values from key/value args.
// Unknown placeholders are left as they are.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
