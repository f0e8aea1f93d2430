package record

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/mauriciobenjamin700/regexm/pkg/i18n"
	"github.com/mauriciobenjamin700/regexm/pkg/logger"
	"github.com/mauriciobenjamin700/regexm/pkg/validator"
)

//go:embed locales/*.yaml
var locales embed.FS

// Validator renders record reports in one language. It is safe for
// concurrent use.
type Validator struct {
	lang   string
	tr     *i18n.Translator
	logger *slog.Logger
}

type Option func(*Validator)

// WithLanguage selects the message language. Tags are matched loosely, so
// "en-US" or "pt_br" work; unknown languages fall back to the default.
func WithLanguage(lang string) Option {
	return func(v *Validator) {
		v.lang = lang
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithTranslator replaces the embedded catalogs.
func WithTranslator(tr *i18n.Translator) Option {
	return func(v *Validator) {
		v.tr = tr
	}
}

// New loads the embedded catalogs unless WithTranslator is given.
func New(ctx context.Context, opts ...Option) (*Validator, error) {
	v := &Validator{
		lang:   i18n.DefaultLanguage,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Component("record"))

	if v.tr == nil {
		tr, err := i18n.NewTranslator(ctx,
			i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
			i18n.WithLogger(v.logger),
			i18n.WithMissingTranslationsLogging(true),
		)
		if err != nil {
			return nil, fmt.Errorf("load record messages: %w", err)
		}
		v.tr = tr
	}

	requested := v.lang
	v.lang = i18n.MatchLanguage(requested, v.tr.SupportedLanguages(), v.tr.DefaultLanguage())
	if v.lang != requested {
		v.logger.DebugContext(ctx, "language resolved", slog.String("requested", requested), logger.Lang(v.lang))
	}

	return v, nil
}

// Language returns the language reports are rendered in.
func (v *Validator) Language() string {
	return v.lang
}

// Languages returns every language with a catalog.
func (v *Validator) Languages() []string {
	return v.tr.SupportedLanguages()
}

// ValidateDriverData checks CNH, CRV and plate. When all three are empty the
// report holds one aggregate error and every field is marked invalid, with
// no per-field messages.
func (v *Validator) ValidateDriverData(cnh, crv, plate string) Report {
	r := v.report(driverFields, validator.Apply(driverRules(cnh, crv, plate)...))
	v.logger.Debug("driver validated", logger.Valid(r.Valid), slog.Int("errors", len(r.Errors)))
	return r
}

// ValidateDriver is ValidateDriverData for a Driver value.
func (v *Validator) ValidateDriver(d Driver) Report {
	return v.ValidateDriverData(d.CNH, d.CRV, d.Plate)
}

// ValidateUserData checks every field of u. Missing fields are reported
// first, then name, email, password, confirmation and phone.
func (v *Validator) ValidateUserData(u User) Report {
	r := v.report(userFields, validator.Apply(userRules(u)...))
	v.logger.Debug("user validated", logger.Valid(r.Valid), slog.Int("errors", len(r.Errors)))
	return r
}

func (v *Validator) report(fields []string, err error) Report {
	verrs := validator.ExtractValidationErrors(err)

	r := Report{
		Valid:       verrs.IsEmpty(),
		Errors:      make([]string, 0, len(verrs)),
		Fields:      make(map[string]bool, len(fields)),
		FieldErrors: make(map[string]string),
		violations:  verrs,
	}

	for _, f := range fields {
		r.Fields[f] = !verrs.Has(f)
	}

	// the aggregate driver error fails every field
	if verrs.Has(fieldDriver) {
		for _, f := range fields {
			r.Fields[f] = false
		}
	}

	for _, e := range verrs {
		r.Errors = append(r.Errors, v.render(e, "summary"))
		if _, known := r.Fields[e.Field]; !known {
			continue
		}
		if _, seen := r.FieldErrors[e.Field]; !seen {
			r.FieldErrors[e.Field] = v.render(e, "field")
		}
	}

	return r
}

// render looks up key.form and falls back to key.summary, then to the
// rule's own message.
func (v *Validator) render(e validator.ValidationError, form string) string {
	args := translationArgs(e.TranslationValues)
	summary := v.tr.Td(v.lang, e.TranslationKey+".summary", e.Message, args...)
	key := e.TranslationKey + "." + form
	if form == "summary" || !v.hasMessage(key) {
		return summary
	}
	return v.tr.T(v.lang, key, args...)
}

func (v *Validator) hasMessage(key string) bool {
	return v.tr.HasTranslation(v.lang, key) || v.tr.HasTranslation(v.tr.DefaultLanguage(), key)
}

func translationArgs(values map[string]any) []string {
	args := make([]string, 0, len(values)*2)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}

// ValidateDriverDataSimple reports whether the driver record is valid.
// An all-empty record is invalid.
func ValidateDriverDataSimple(cnh, crv, plate string) bool {
	return validator.Apply(driverRules(cnh, crv, plate)...) == nil
}

// ValidateUserDataSimple reports whether the user record is valid.
func ValidateUserDataSimple(u User) bool {
	return validator.Apply(userRules(u)...) == nil
}
