package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchLanguage returns the entry of supported that best serves requested,
// or fallback when requested cannot be parsed or nothing is close enough.
// Underscores are accepted as separators, so "pt_br" matches "pt-BR", and a
// bare base language such as "en" matches a regional catalog such as "en-US".
func MatchLanguage(requested string, supported []string, fallback string) string {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(requested), "_", "-"))
	if err != nil {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		t, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, t)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(tags).Match(tag)
	if confidence == language.No {
		return fallback
	}
	return names[index]
}
