package parser

import (
	"log/slog"

	"github.com/ndisidore/ensemble/pkg/catalog"
	"github.com/ndisidore/ensemble/pkg/notation"
)

// instrumentState carries per-template parse state that is not part of the
// instrument itself.
type instrumentState struct {
	customDrums bool // the kit has been cleared for explicit Drum elements
	inherited   bool // an init element copied another template's id
}

// readInstrument parses one instrument block. Elements apply in document
// order, so an init element overwrites everything set before it and is
// overridden by everything after it.
func (b *builder) readInstrument(c Cursor) catalog.InstrumentTemplate {
	id, _ := c.Attr(AttrID)
	in := catalog.NewInstrument()
	in.ID = id
	in.SequenceOrder = b.templateSeq
	b.templateSeq++

	var st instrumentState
	for c.Next() {
		b.applyInstrumentField(&in, c, &st)
	}

	catalog.FillDefaults(&in)
	// An inherited id names the source template; keying by it would
	// replace that template.
	if id == "" && !st.inherited {
		id = in.ID
	}
	return catalog.InstrumentTemplate{ID: id, Instrument: in}
}

func (b *builder) applyInstrumentField(in *catalog.Instrument, c Cursor, st *instrumentState) {
	el := Element(c.Name())

	// Per-staff fields share the staff attribute handling.
	switch el {
	case ElemClef, ElemConcertClef, ElemTransposingClef,
		ElemStaffLines, ElemSmallStaff, ElemBracket, ElemBracketSpan,
		ElemBarlineSpan, ElemStaffType:
		b.applyStaffField(in, c, el, staffIndex(c))
		return
	default:
	}

	switch el {
	case ElemLongName, ElemName:
		pos := intAttr(c, AttrPos, 0)
		in.LongNames = catalog.SetName(in.LongNames, b.tr(ContextInstruments, c.Text()), pos)
	case ElemShortName, ElemShortNameAlias:
		pos := intAttr(c, AttrPos, 0)
		in.ShortNames = catalog.SetName(in.ShortNames, b.tr(ContextInstruments, c.Text()), pos)
	case ElemTrackName:
		in.Name = b.tr(ContextInstruments, c.Text())
	case ElemDescription:
		in.Description = b.tr(ContextInstruments, c.Text())
	case ElemExtended:
		in.Extended = toBool(c.Text())
	case ElemStaves:
		in.Staves = toInt(c.Text())
		in.BracketSpan[0] = in.Staves
	case ElemAmateurRange:
		in.AmateurPitchRange = pitchRange(c.Text())
	case ElemProfessionalRange:
		in.ProfessionalPitchRange = pitchRange(c.Text())
	case ElemTransposition:
		in.Transpose.Chromatic = toInt(c.Text())
		in.Transpose.Diatonic = b.p.Intervals.Diatonic(in.Transpose.Chromatic)
	case ElemTransposeChromatic:
		in.Transpose.Chromatic = toInt(c.Text())
	case ElemTransposeDiatonic:
		in.Transpose.Diatonic = toInt(c.Text())
	case ElemInstrumentID, ElemMusicXMLID:
		in.MusicXMLID = c.Text()
	case ElemStringData:
		in.StringData = b.readStringData(c)
	case ElemUseDrumset:
		in.UseDrumset = toBool(c.Text())
		if in.UseDrumset {
			in.Drumset = b.p.Drums.Kit()
		}
	case ElemDrum:
		if in.Drumset == nil {
			in.Drumset = b.p.Drums.Kit()
		}
		if !st.customDrums {
			in.Drumset.Clear()
			st.customDrums = true
		}
		b.readDrum(c, in.Drumset)
	case ElemMidiAction:
		in.MidiActions = append(in.MidiActions, b.readMidiAction(c))
	case ElemChannel, ElemChannelAlias:
		in.Channels = append(in.Channels, b.readChannel(c))
	case ElemArticulation:
		a := b.readArticulation(c)
		b.cat.Articulations.Set(a.Name, a)
	case ElemInit:
		b.applyInit(in, c.Text())
		st.inherited = true
	case ElemGenreRef:
		in.GenreIDs = append(in.GenreIDs, c.Text())
	case ElemFamilyRef:
		in.FamilyID = c.Text()
	case ElemSingleNoteDynamics:
		in.SingleNoteDynamics = toBool(c.Text())
	default:
		b.skip(c, string(ElemInstrument))
	}
}

// applyStaffField sets a field of the staff at idx.
func (b *builder) applyStaffField(in *catalog.Instrument, c Cursor, el Element, idx int) {
	switch el {
	case ElemClef:
		ct := b.readClef(c)
		in.Clefs[idx] = notation.ClefPair{Concert: ct, Transposing: ct}
	case ElemConcertClef:
		in.Clefs[idx].Concert = b.readClef(c)
	case ElemTransposingClef:
		in.Clefs[idx].Transposing = b.readClef(c)
	case ElemStaffLines:
		in.StaffLines[idx] = toInt(c.Text())
	case ElemSmallStaff:
		in.SmallStaff[idx] = toBool(c.Text())
	case ElemBracket:
		in.Bracket[idx] = notation.BracketType(toInt(c.Text()))
	case ElemBracketSpan:
		in.BracketSpan[idx] = toInt(c.Text())
	case ElemBarlineSpan:
		span := toInt(c.Text())
		for i := idx; i < idx+span-1 && i < catalog.MaxStaves; i++ {
			in.BarlineSpan[i] = true
		}
	case ElemStaffType:
		b.applyStaffType(in, c, idx)
	default:
	}
}

// readClef reads a clef given as a numeric code or a clef name.
func (b *builder) readClef(c Cursor) notation.ClefType {
	text := c.Text()
	if n, ok := parseInt(text); ok {
		return notation.ClefType(n)
	}
	return b.p.Clefs.Resolve(text)
}

// applyStaffType sets the staff group from the element text and resolves
// the staff-type preset, falling back to the group default when the named
// preset is missing or belongs to another group.
func (b *builder) applyStaffType(in *catalog.Instrument, c Cursor, idx int) {
	presetName, _ := c.Attr(AttrStaffTypePreset)
	in.StaffGroup = notation.StaffGroupFromText(c.Text())

	in.StaffTypePreset = nil
	if presetName != "" {
		if p, ok := b.p.StaffTypes.ByXMLName(presetName); ok {
			in.StaffTypePreset = &p
		}
	}
	if in.StaffTypePreset == nil || in.StaffTypePreset.Group != in.StaffGroup {
		p := b.p.StaffTypes.Default(in.StaffGroup)
		in.StaffTypePreset = &p
	}
	in.StaffLines[idx] = in.StaffTypePreset.Lines
}

// applyInit copies the inheritable fields of a previously parsed template
// into in. An unknown id copies from a default instrument.
func (b *builder) applyInit(in *catalog.Instrument, templateID string) {
	t, ok := b.cat.Templates.Get(templateID)
	if !ok {
		b.log.Debug("init from unknown template", slog.String("template", templateID))
		src := catalog.NewInstrument()
		in.InitFrom(&src)
		return
	}
	in.InitFrom(&t.Instrument)
}
