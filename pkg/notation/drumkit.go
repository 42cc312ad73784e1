package notation

// DrumKitSize is the number of addressable MIDI pitches in a kit.
const DrumKitSize = 128

// StemDirection is the preferred stem direction of a drum note.
type StemDirection int

// Stem directions.
const (
	StemAuto StemDirection = iota
	StemUp
	StemDown
)

// DrumInstrument describes how one MIDI pitch of a kit is notated.
type DrumInstrument struct {
	Name     string
	NoteHead string
	Line     int
	Stem     StemDirection
	Voice    int
	Shortcut string
}

// DrumKit maps MIDI pitches to drum notation. A pitch is in use when its
// entry has a name.
type DrumKit struct {
	Drums [DrumKitSize]DrumInstrument
}

// Valid reports whether pitch addresses a defined drum.
func (k *DrumKit) Valid(pitch int) bool {
	return pitch >= 0 && pitch < DrumKitSize && k.Drums[pitch].Name != ""
}

// Set stores d at pitch. Out-of-range pitches are ignored.
func (k *DrumKit) Set(pitch int, d DrumInstrument) {
	if pitch < 0 || pitch >= DrumKitSize {
		return
	}
	k.Drums[pitch] = d
}

// Clear removes every drum from the kit.
func (k *DrumKit) Clear() {
	k.Drums = [DrumKitSize]DrumInstrument{}
}

// Pitches returns the defined pitches in ascending order.
func (k *DrumKit) Pitches() []int {
	var out []int
	for p := range k.Drums {
		if k.Drums[p].Name != "" {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns an independent copy of the kit.
func (k *DrumKit) Clone() *DrumKit {
	if k == nil {
		return nil
	}
	c := *k
	return &c
}

// StandardKit is the General MIDI percussion kit.
type StandardKit struct{}

// Kit returns a fresh copy of the standard kit.
func (StandardKit) Kit() *DrumKit {
	k := &DrumKit{}
	for _, e := range _gmDrums {
		k.Set(e.pitch, e.drum)
	}
	return k
}

var _gmDrums = []struct {
	pitch int
	drum  DrumInstrument
}{
	{35, DrumInstrument{Name: "Acoustic Bass Drum", NoteHead: "normal", Line: 7, Stem: StemDown, Voice: 1, Shortcut: "B"}},
	{36, DrumInstrument{Name: "Bass Drum 1", NoteHead: "normal", Line: 7, Stem: StemDown, Voice: 1, Shortcut: "B"}},
	{37, DrumInstrument{Name: "Side Stick", NoteHead: "cross", Line: 3, Stem: StemUp}},
	{38, DrumInstrument{Name: "Acoustic Snare", NoteHead: "normal", Line: 3, Stem: StemUp, Shortcut: "A"}},
	{40, DrumInstrument{Name: "Electric Snare", NoteHead: "normal", Line: 3, Stem: StemUp}},
	{41, DrumInstrument{Name: "Low Floor Tom", NoteHead: "normal", Line: 5, Stem: StemUp}},
	{42, DrumInstrument{Name: "Closed Hi-Hat", NoteHead: "cross", Line: -1, Stem: StemUp, Shortcut: "G"}},
	{43, DrumInstrument{Name: "High Floor Tom", NoteHead: "normal", Line: 5, Stem: StemDown, Voice: 1}},
	{44, DrumInstrument{Name: "Pedal Hi-Hat", NoteHead: "cross", Line: 9, Stem: StemDown, Voice: 1, Shortcut: "F"}},
	{45, DrumInstrument{Name: "Low Tom", NoteHead: "normal", Line: 2, Stem: StemUp}},
	{46, DrumInstrument{Name: "Open Hi-Hat", NoteHead: "cross", Line: 1, Stem: StemUp}},
	{47, DrumInstrument{Name: "Low-Mid Tom", NoteHead: "normal", Line: 1, Stem: StemUp}},
	{48, DrumInstrument{Name: "Hi-Mid Tom", NoteHead: "normal", Line: 0, Stem: StemUp}},
	{49, DrumInstrument{Name: "Crash Cymbal 1", NoteHead: "cross", Line: -2, Stem: StemUp, Shortcut: "C"}},
	{50, DrumInstrument{Name: "High Tom", NoteHead: "normal", Line: 0, Stem: StemUp, Shortcut: "E"}},
	{51, DrumInstrument{Name: "Ride Cymbal 1", NoteHead: "cross", Line: 0, Stem: StemUp, Shortcut: "D"}},
	{52, DrumInstrument{Name: "Chinese Cymbal", NoteHead: "cross", Line: -3, Stem: StemUp}},
	{53, DrumInstrument{Name: "Ride Bell", NoteHead: "diamond", Line: 0, Stem: StemUp}},
	{54, DrumInstrument{Name: "Tambourine", NoteHead: "diamond", Line: 2, Stem: StemUp}},
	{55, DrumInstrument{Name: "Splash Cymbal", NoteHead: "cross", Line: -3, Stem: StemUp}},
	{56, DrumInstrument{Name: "Cowbell", NoteHead: "triangle-down", Line: 1, Stem: StemUp}},
	{57, DrumInstrument{Name: "Crash Cymbal 2", NoteHead: "cross", Line: -3, Stem: StemUp}},
	{59, DrumInstrument{Name: "Ride Cymbal 2", NoteHead: "cross", Line: 2, Stem: StemUp}},
	{63, DrumInstrument{Name: "Open Hi Conga", NoteHead: "cross", Line: 4, Stem: StemUp}},
	{64, DrumInstrument{Name: "Low Conga", NoteHead: "cross", Line: 6, Stem: StemUp}},
}
