package document

import (
	"regexp"

	"github.com/mauriciobenjamin700/regexm/pkg/sanitizer"
)

const plateLength = 7

var (
	// Legacy layout: AAA0000
	oldPlateRegex = regexp.MustCompile(`^[A-Z]{3}\d{4}$`)
	// Mercosul layout: AAA0A00
	mercosulPlateRegex = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)

	cleanPlate = sanitizer.Compose(
		sanitizer.RemoveWhitespace,
		sanitizer.RemoveHyphens,
		sanitizer.ToUpper,
	)
)

// PlateKind identifies the layout of a vehicle plate.
type PlateKind int

const (
	PlateUnknown PlateKind = iota
	PlateOld
	PlateMercosul
)

func (k PlateKind) String() string {
	switch k {
	case PlateOld:
		return "old"
	case PlateMercosul:
		return "mercosul"
	default:
		return "unknown"
	}
}

// PlateStyle selects the output of FormatPlate.
type PlateStyle string

const (
	// PlateClean strips spaces and hyphens and uppercases.
	PlateClean PlateStyle = "clean"
	// PlateDash additionally inserts a hyphen after the three letters of a
	// well-formed plate.
	PlateDash PlateStyle = "dash"
)

// PlateKindOf classifies raw after removing whitespace and hyphens.
func PlateKindOf(raw string) PlateKind {
	return plateKind(cleanPlate(raw))
}

func plateKind(clean string) PlateKind {
	switch {
	case oldPlateRegex.MatchString(clean):
		return PlateOld
	case mercosulPlateRegex.MatchString(clean):
		return PlateMercosul
	default:
		return PlateUnknown
	}
}

// ValidatePlate accepts both the legacy and the Mercosul layout.
func ValidatePlate(raw string) bool {
	return PlateKindOf(raw) != PlateUnknown
}

func IsOldFormatPlate(raw string) bool {
	return PlateKindOf(raw) == PlateOld
}

func IsMercosulFormatPlate(raw string) bool {
	return PlateKindOf(raw) == PlateMercosul
}

// FormatPlate cleans raw and, for PlateDash, renders AAA-0000 or AAA-0A00.
// Plates that match neither layout are returned cleaned, without a hyphen.
func FormatPlate(raw string, style PlateStyle) string {
	clean := cleanPlate(raw)
	if style != PlateDash || len(clean) < plateLength || plateKind(clean) == PlateUnknown {
		return clean
	}
	return clean[:3] + "-" + clean[3:]
}
