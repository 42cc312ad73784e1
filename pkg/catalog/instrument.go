package catalog

import (
	"slices"

	"github.com/ndisidore/ensemble/pkg/notation"
)

// MaxStaves is the number of staves an instrument may describe. Staff
// references outside [0, MaxStaves-1] are clamped into range.
const MaxStaves = 4

// Default pitch bounds.
const (
	MinPitch = 0
	MaxPitch = 127
)

// StaffName is a long or short instrument name shown at a given position.
type StaffName struct {
	Name string
	Pos  int
}

// PitchRange is an inclusive range of MIDI note numbers.
type PitchRange struct {
	Min int
	Max int
}

// FullRange returns the range covering every MIDI pitch.
func FullRange() PitchRange { return PitchRange{Min: MinPitch, Max: MaxPitch} }

// Transposition is the interval between written and sounding pitch.
type Transposition struct {
	Chromatic int
	Diatonic  int
}

// InstrString is one string of a fretted instrument.
type InstrString struct {
	Pitch int
	Open  bool
}

// StringData describes the strings and frets of a fretted instrument.
type StringData struct {
	Frets   int
	Strings []InstrString
}

// Clone returns a deep copy of the string data.
func (s StringData) Clone() StringData {
	s.Strings = slices.Clone(s.Strings)
	return s
}

// Instrument is the notation and playback description of one instrument.
type Instrument struct {
	ID          string
	MusicXMLID  string
	Name        string
	Description string
	GroupID     string
	Extended    bool

	LongNames  []StaffName
	ShortNames []StaffName

	Staves      int
	Clefs       [MaxStaves]notation.ClefPair
	StaffLines  [MaxStaves]int
	SmallStaff  [MaxStaves]bool
	Bracket     [MaxStaves]notation.BracketType
	BracketSpan [MaxStaves]int
	BarlineSpan [MaxStaves]bool

	AmateurPitchRange      PitchRange
	ProfessionalPitchRange PitchRange
	Transpose              Transposition

	StaffGroup      notation.StaffGroup
	StaffTypePreset *notation.StaffType

	UseDrumset bool
	Drumset    *notation.DrumKit // owned; nil when the instrument has no kit
	StringData StringData

	MidiActions []MidiAction
	Channels    []Channel

	GenreIDs           []string
	FamilyID           string
	SingleNoteDynamics bool
	SequenceOrder      int
}

// NewInstrument returns an instrument with the defaults every definition
// starts from: one five-line standard staff in treble clef with no bracket
// and the full pitch range.
func NewInstrument() Instrument {
	in := Instrument{
		Staves:                 1,
		AmateurPitchRange:      FullRange(),
		ProfessionalPitchRange: FullRange(),
		StaffGroup:             notation.StaffGroupStandard,
	}
	for i := range MaxStaves {
		in.Clefs[i] = notation.ClefPair{Concert: notation.ClefG, Transposing: notation.ClefG}
		in.StaffLines[i] = 5
		in.Bracket[i] = notation.BracketNone
	}
	return in
}

// Clone returns a deep copy of the instrument. The drum kit, staff-type
// preset and every slice are copied so the clone shares no storage.
func (in Instrument) Clone() Instrument {
	in.LongNames = slices.Clone(in.LongNames)
	in.ShortNames = slices.Clone(in.ShortNames)
	in.Drumset = in.Drumset.Clone()
	if in.StaffTypePreset != nil {
		p := *in.StaffTypePreset
		in.StaffTypePreset = &p
	}
	in.StringData = in.StringData.Clone()
	in.MidiActions = cloneActions(in.MidiActions)
	in.Channels = cloneChannels(in.Channels)
	in.GenreIDs = slices.Clone(in.GenreIDs)
	return in
}

// InitFrom overwrites the inheritable fields of in with copies of src's.
// Display name, description, genres, family, group and sequence order are
// left untouched. A drum kit is copied only when src has one.
func (in *Instrument) InitFrom(src *Instrument) {
	in.ID = src.ID
	in.MusicXMLID = src.MusicXMLID
	in.LongNames = slices.Clone(src.LongNames)
	in.ShortNames = slices.Clone(src.ShortNames)
	in.Staves = src.Staves
	in.Extended = src.Extended

	in.Clefs = src.Clefs
	in.StaffLines = src.StaffLines
	in.SmallStaff = src.SmallStaff
	in.Bracket = src.Bracket
	in.BracketSpan = src.BracketSpan
	in.BarlineSpan = src.BarlineSpan

	in.AmateurPitchRange = src.AmateurPitchRange
	in.ProfessionalPitchRange = src.ProfessionalPitchRange
	in.Transpose = src.Transpose
	in.StaffGroup = src.StaffGroup
	in.StaffTypePreset = nil
	if src.StaffTypePreset != nil {
		p := *src.StaffTypePreset
		in.StaffTypePreset = &p
	}
	in.UseDrumset = src.UseDrumset
	if src.Drumset != nil {
		in.Drumset = src.Drumset.Clone()
	}

	in.StringData = src.StringData.Clone()
	in.MidiActions = cloneActions(src.MidiActions)
	in.Channels = cloneChannels(src.Channels)
	in.SingleNoteDynamics = src.SingleNoteDynamics
}

// SetName stores name at pos in names, replacing any entry already at that
// position. New and replacing entries go to the end of the list.
func SetName(names []StaffName, name string, pos int) []StaffName {
	names = slices.DeleteFunc(names, func(n StaffName) bool { return n.Pos == pos })
	return append(names, StaffName{Name: name, Pos: pos})
}

// LongName returns the first long name, or "" when there is none.
func (in *Instrument) LongName() string {
	if len(in.LongNames) == 0 {
		return ""
	}
	return in.LongNames[0].Name
}
