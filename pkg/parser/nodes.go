package parser

// Element is the name of a catalog document element.
type Element string

// Document-level elements.
const (
	ElemMuseScore            Element = "museScore"
	ElemInstrumentGroup      Element = "InstrumentGroup"
	ElemInstrumentGroupAlias Element = "instrument-group"
	ElemArticulation         Element = "Articulation"
	ElemGenre                Element = "Genre"
	ElemFamily               Element = "Family"
	ElemOrder                Element = "Order"
)

// Group elements. Instrument blocks match case-insensitively.
const (
	ElemInstrument Element = "instrument"
	ElemRef        Element = "ref"
	ElemName       Element = "name"
	ElemExtended   Element = "extended"
)

// Instrument elements.
const (
	ElemLongName           Element = "longName"
	ElemShortName          Element = "shortName"
	ElemShortNameAlias     Element = "short-name"
	ElemTrackName          Element = "trackName"
	ElemDescription        Element = "description"
	ElemStaves             Element = "staves"
	ElemClef               Element = "clef"
	ElemConcertClef        Element = "concertClef"
	ElemTransposingClef    Element = "transposingClef"
	ElemStaffLines         Element = "stafflines"
	ElemSmallStaff         Element = "smallStaff"
	ElemBracket            Element = "bracket"
	ElemBracketSpan        Element = "bracketSpan"
	ElemBarlineSpan        Element = "barlineSpan"
	ElemAmateurRange       Element = "aPitchRange"
	ElemProfessionalRange  Element = "pPitchRange"
	ElemTransposition      Element = "transposition"
	ElemTransposeChromatic Element = "transposeChromatic"
	ElemTransposeDiatonic  Element = "transposeDiatonic"
	ElemInstrumentID       Element = "instrumentId"
	ElemMusicXMLID         Element = "musicXMLid"
	ElemStringData         Element = "StringData"
	ElemUseDrumset         Element = "useDrumset"
	ElemDrum               Element = "Drum"
	ElemMidiAction         Element = "MidiAction"
	ElemChannel            Element = "Channel"
	ElemChannelAlias       Element = "channel"
	ElemStaffType          Element = "stafftype"
	ElemInit               Element = "init"
	ElemGenreRef           Element = "genre"
	ElemFamilyRef          Element = "family"
	ElemSingleNoteDynamics Element = "singleNoteDynamics"
)

// Leaf record elements.
const (
	ElemVelocity   Element = "velocity"
	ElemGateTime   Element = "gateTime"
	ElemDescr      Element = "descr"
	ElemProgram    Element = "program"
	ElemController Element = "controller"
	ElemFrets      Element = "frets"
	ElemString     Element = "string"
	ElemSynti      Element = "synti"
	ElemHead       Element = "head"
	ElemLine       Element = "line"
	ElemVoice      Element = "voice"
	ElemStem       Element = "stem"
	ElemShortcut   Element = "shortcut"
)

// Score order elements.
const (
	ElemSoloists Element = "soloists"
	ElemUnsorted Element = "unsorted"
	ElemSection  Element = "section"
)

// Attribute names.
const (
	AttrID                 = "id"
	AttrName               = "name"
	AttrExtended           = "extended"
	AttrPos                = "pos"
	AttrStaff              = "staff"
	AttrStaffTypePreset    = "staffTypePreset"
	AttrValue              = "value"
	AttrCtrl               = "ctrl"
	AttrOpen               = "open"
	AttrPitch              = "pitch"
	AttrGroup              = "group"
	AttrShowSystemMarkings = "showSystemMarkings"
	AttrBarLineSpan        = "barLineSpan"
	AttrThinBrackets       = "thinBrackets"
)

// Translation contexts.
const (
	ContextInstruments = "InstrumentsXML"
	ContextOrders      = "OrderXML"
)
