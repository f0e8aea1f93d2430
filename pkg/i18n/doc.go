// Package i18n loads message catalogs and renders localized strings with
// named placeholders.
//
// A Translator delegates storage to a TranslationAdapter. MapAdapter serves an
// in-memory map and FSAdapter reads every catalog file of a directory inside
// an fs.FS, which is usually an embed.FS compiled into the binary. Catalogs are
// parsed by a Parser; YAMLParser is the only one shipped.
//
// Catalog files are keyed by language at the top level and may nest keys:
//
//	pt-BR:
//	  validation:
//	    required:
//	      field: "Campo %{field} é obrigatório"
//
// Nested keys are addressed with dots ("validation.required.field").
// Placeholders use the %{name} form and are filled from key/value pairs:
//
//	msg := tr.T("pt-BR", "validation.required.field", "field", "email")
//
// When a language has no catalog, lookups fall back to the default language
// (WithDefaultLanguage) before giving up. T then returns the key itself
// (WithFallbackToKey) and Td returns the supplied default text.
//
// MatchLanguage canonicalizes user supplied tags such as "pt_br", "PT" or
// "en-US" against the catalog's languages using golang.org/x/text/language.
//
// The Translator is safe for concurrent use.
package i18n
