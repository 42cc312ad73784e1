package catalog

import "slices"

// DefaultChannelName names a channel that was not given a name.
const DefaultChannelName = "normal"

// Controller numbers understood in channel and action definitions.
const (
	CtrlBankMSB = 0x00
	CtrlVolume  = 0x07
	CtrlPan     = 0x0A
	CtrlBankLSB = 0x20
	CtrlReverb  = 0x5B
	CtrlChorus  = 0x5D
	// CtrlProgram is a pseudo controller carrying a program change.
	CtrlProgram = 0x81
)

// EventController is the MIDI control-change event type.
const EventController = 0xB0

// Event is a MIDI control-change event.
type Event struct {
	Type       int
	Controller int
	Value      int
}

// MidiAction is a named list of MIDI events sent on demand.
type MidiAction struct {
	Name        string
	Description string
	Events      []Event
}

// Articulation describes how an articulation alters note playback.
type Articulation struct {
	Name        string
	Velocity    int // percent
	GateTime    int // percent
	Description string
}

// Channel is a MIDI playback channel of an instrument. Pan is an offset from
// center, so 0 is centered.
type Channel struct {
	Name        string
	Description string
	Synti       string
	Program     int
	Bank        int
	Volume      int
	Pan         int
	Chorus      int
	Reverb      int
	MidiActions []MidiAction
}

// NewChannel returns a channel with the defaults used before a channel
// definition is read.
func NewChannel() Channel {
	return Channel{
		Name:    DefaultChannelName,
		Program: -1,
		Volume:  100,
	}
}

// DefaultChannel returns the channel synthesized for instruments that
// declare none.
func DefaultChannel() Channel {
	return Channel{
		Name:    DefaultChannelName,
		Program: 0,
		Bank:    0,
		Volume:  90,
		Pan:     0,
		Chorus:  0,
		Reverb:  0,
	}
}

func cloneActions(actions []MidiAction) []MidiAction {
	if actions == nil {
		return nil
	}
	out := make([]MidiAction, len(actions))
	for i, a := range actions {
		a.Events = slices.Clone(a.Events)
		out[i] = a
	}
	return out
}

func cloneChannels(channels []Channel) []Channel {
	if channels == nil {
		return nil
	}
	out := make([]Channel, len(channels))
	for i, c := range channels {
		c.MidiActions = cloneActions(c.MidiActions)
		out[i] = c
	}
	return out
}
