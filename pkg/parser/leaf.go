package parser

import (
	"log/slog"

	"github.com/ndisidore/ensemble/pkg/catalog"
	"github.com/ndisidore/ensemble/pkg/notation"
)

func (b *builder) readArticulation(c Cursor) catalog.Articulation {
	name, _ := c.Attr(AttrName)
	a := catalog.Articulation{Name: name}
	for c.Next() {
		switch Element(c.Name()) {
		case ElemVelocity:
			a.Velocity = percent(c.Text())
		case ElemGateTime:
			a.GateTime = percent(c.Text())
		case ElemDescr:
			a.Description = c.Text()
		default:
			b.skip(c, string(ElemArticulation))
		}
	}
	return a
}

func (b *builder) readGenre(c Cursor) catalog.Genre {
	id, _ := c.Attr(AttrID)
	g := catalog.Genre{ID: id}
	g.Name = b.readNamed(c, string(ElemGenre))
	return g
}

func (b *builder) readFamily(c Cursor) catalog.Family {
	id, _ := c.Attr(AttrID)
	f := catalog.Family{ID: id}
	f.Name = b.readNamed(c, string(ElemFamily))
	return f
}

// readNamed consumes an element whose only recognized child is a
// translatable name.
func (b *builder) readNamed(c Cursor, parent string) string {
	var name string
	for c.Next() {
		if Element(c.Name()) == ElemName {
			name = b.tr(ContextInstruments, c.Text())
			continue
		}
		b.skip(c, parent)
	}
	return name
}

func (b *builder) readMidiAction(c Cursor) catalog.MidiAction {
	name, _ := c.Attr(AttrName)
	a := catalog.MidiAction{Name: name}
	for c.Next() {
		switch Element(c.Name()) {
		case ElemProgram:
			a.Events = append(a.Events, catalog.Event{
				Type:       catalog.EventController,
				Controller: catalog.CtrlProgram,
				Value:      intAttr(c, AttrValue, 0),
			})
			c.Skip()
		case ElemController:
			a.Events = append(a.Events, catalog.Event{
				Type:       catalog.EventController,
				Controller: intAttr(c, AttrCtrl, 0),
				Value:      intAttr(c, AttrValue, 0),
			})
			c.Skip()
		case ElemDescr:
			a.Description = c.Text()
		default:
			b.skip(c, string(ElemMidiAction))
		}
	}
	return a
}

func (b *builder) readStringData(c Cursor) catalog.StringData {
	var sd catalog.StringData
	for c.Next() {
		switch Element(c.Name()) {
		case ElemFrets:
			sd.Frets = toInt(c.Text())
		case ElemString:
			open := intAttr(c, AttrOpen, 0) != 0
			sd.Strings = append(sd.Strings, catalog.InstrString{Open: open, Pitch: toInt(c.Text())})
		default:
			b.skip(c, string(ElemStringData))
		}
	}
	return sd
}

// readChannel parses a playback channel. Controller values map onto the
// channel settings; bank select combines the MSB and LSB controllers.
func (b *builder) readChannel(c Cursor) catalog.Channel {
	ch := catalog.NewChannel()
	if name, _ := c.Attr(AttrName); name != "" {
		ch.Name = name
	}
	for c.Next() {
		switch Element(c.Name()) {
		case ElemProgram:
			ch.Program = intAttr(c, AttrValue, -1)
			c.Skip()
		case ElemController:
			applyController(&ch, intAttr(c, AttrCtrl, 0), intAttr(c, AttrValue, 0))
			c.Skip()
		case ElemSynti:
			ch.Synti = c.Text()
		case ElemDescr:
			ch.Description = c.Text()
		case ElemMidiAction:
			ch.MidiActions = append(ch.MidiActions, b.readMidiAction(c))
		default:
			b.skip(c, string(ElemChannel))
		}
	}
	return ch
}

func applyController(ch *catalog.Channel, ctrl, value int) {
	switch ctrl {
	case catalog.CtrlBankMSB:
		ch.Bank = value<<7 | ch.Bank&0x7f
	case catalog.CtrlBankLSB:
		ch.Bank = ch.Bank&^0x7f | value&0x7f
	case catalog.CtrlVolume:
		ch.Volume = value
	case catalog.CtrlPan:
		ch.Pan = value - 64
	case catalog.CtrlReverb:
		ch.Reverb = value
	case catalog.CtrlChorus:
		ch.Chorus = value
	default:
	}
}

// readDrum loads one Drum element into kit. Elements without a valid pitch
// are skipped.
func (b *builder) readDrum(c Cursor, kit *notation.DrumKit) {
	pitch := intAttr(c, AttrPitch, -1)
	if pitch < 0 || pitch >= notation.DrumKitSize {
		b.log.Debug("drum pitch out of range", slog.Int("pitch", pitch))
		c.Skip()
		return
	}
	d := kit.Drums[pitch]
	for c.Next() {
		switch Element(c.Name()) {
		case ElemHead:
			d.NoteHead = c.Text()
		case ElemLine:
			d.Line = toInt(c.Text())
		case ElemVoice:
			d.Voice = toInt(c.Text())
		case ElemName:
			d.Name = b.tr(ContextInstruments, c.Text())
		case ElemStem:
			d.Stem = notation.StemDirection(toInt(c.Text()))
		case ElemShortcut:
			d.Shortcut = c.Text()
		default:
			b.skip(c, string(ElemDrum))
		}
	}
	kit.Set(pitch, d)
}
