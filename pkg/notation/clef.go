// Package notation holds the read-only notation tables the catalog parser
// consults: clef codes, interval spelling, staff-type presets and the
// standard drum kit.
package notation

import "strconv"

// ClefType is the numeric clef code stored per staff.
type ClefType int

// Clef codes. The numbering is part of the document format: catalogs may
// refer to clefs by number.
const (
	ClefInvalid ClefType = iota - 1
	ClefG
	ClefG15MB
	ClefG8VB
	ClefG8VA
	ClefG15MA
	ClefG8VBO
	ClefG8VBP
	ClefG1
	ClefC1
	ClefC2
	ClefC3
	ClefC4
	ClefC5
	ClefC19C
	ClefC1F18C
	ClefC3F18C
	ClefC4F18C
	ClefC1F20C
	ClefC3F20C
	ClefC4F20C
	ClefF
	ClefF15MB
	ClefF8VB
	ClefF8VA
	ClefF15MA
	ClefFB
	ClefFC
	ClefFF18C
	ClefF19C
	ClefPerc
	ClefPerc2
	ClefTab
	ClefTab4
	ClefTabSerif
	ClefTab4Serif
	clefMax
)

// _clefNames maps each clef code to its document name; index == code.
var _clefNames = [clefMax]string{
	"G", "G15mb", "G8vb", "G8va", "G15ma", "G8vbo", "G8vbp", "G1",
	"C1", "C2", "C3", "C4", "C5", "C_19C",
	"C1_F18C", "C3_F18C", "C4_F18C", "C1_F20C", "C3_F20C", "C4_F20C",
	"F", "F15mb", "F8vb", "F8va", "F15ma", "F3", "F5", "F_F18C", "F_19C",
	"PERC", "PERC2", "TAB", "TAB4", "TAB_SERIF", "TAB4_SERIF",
}

// String returns the document name of the clef.
func (c ClefType) String() string {
	if c < ClefG || c >= clefMax {
		return "INVALID(" + strconv.Itoa(int(c)) + ")"
	}
	return _clefNames[c]
}

// ClefPair holds the clef shown in concert pitch and the clef shown when the
// score displays transposed pitch.
type ClefPair struct {
	Concert     ClefType
	Transposing ClefType
}

// ClefTable resolves clef names to codes.
type ClefTable struct{}

// Resolve returns the clef whose document name is name. Unknown names
// resolve to the treble clef.
func (ClefTable) Resolve(name string) ClefType {
	for i, n := range _clefNames {
		if n == name {
			return ClefType(i)
		}
	}
	return ClefG
}
