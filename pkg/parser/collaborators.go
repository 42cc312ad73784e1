package parser

import "github.com/ndisidore/ensemble/pkg/notation"

// ClefResolver maps a clef name to its code.
type ClefResolver interface {
	Resolve(name string) notation.ClefType
}

// IntervalDeriver derives the diatonic spelling of a chromatic interval.
type IntervalDeriver interface {
	Diatonic(chromatic int) int
}

// StaffTypeCatalog looks up staff-type presets.
type StaffTypeCatalog interface {
	ByXMLName(name string) (notation.StaffType, bool)
	Default(g notation.StaffGroup) notation.StaffType
}

// DrumKitSource supplies fresh copies of the standard drum kit.
type DrumKitSource interface {
	Kit() *notation.DrumKit
}

// Translator localizes display text. Context names the message catalog the
// text belongs to.
type Translator interface {
	Translate(context, text string) string
}

// identity returns text unchanged.
type identity struct{}

func (identity) Translate(_, text string) string { return text }
