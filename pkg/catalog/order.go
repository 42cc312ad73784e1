package catalog

import (
	"cmp"
	"slices"
)

// Reserved family tokens marking placeholder groups in a score order.
const (
	SoloistsFamily = "<soloists>"
	UnsortedFamily = "<unsorted>"
)

// InstrumentOverwrite reassigns an instrument to a different family within
// one score order.
type InstrumentOverwrite struct {
	FamilyID string
	Name     string
}

// ScoreOrderGroup is one entry of a score order. Family is a family id or
// one of the reserved placeholder tokens. The display flags are only set for
// families declared inside a section.
type ScoreOrderGroup struct {
	Index              int
	Family             string
	Section            string
	Unsorted           string
	Bracket            bool
	ShowSystemMarkings bool
	BarLineSpan        bool
	ThinBracket        bool
}

// IsSoloists reports whether the group is the soloists placeholder.
func (g ScoreOrderGroup) IsSoloists() bool { return g.Family == SoloistsFamily }

// IsUnsorted reports whether the group is an unsorted placeholder.
func (g ScoreOrderGroup) IsUnsorted() bool { return g.Family == UnsortedFamily }

// ScoreOrder is a named rule set for the vertical order of instruments.
type ScoreOrder struct {
	ID            string
	Name          string
	Index         int
	InstrumentMap map[string]InstrumentOverwrite
	Groups        []ScoreOrderGroup
}

// AppendGroup adds g at the end of the order, stamping its index with its
// position.
func (o *ScoreOrder) AppendGroup(g ScoreOrderGroup) {
	g.Index = len(o.Groups)
	o.Groups = append(o.Groups, g)
}

// Overwrite records a family override for an instrument id.
func (o *ScoreOrder) Overwrite(instrumentID string, ow InstrumentOverwrite) {
	if o.InstrumentMap == nil {
		o.InstrumentMap = make(map[string]InstrumentOverwrite)
	}
	o.InstrumentMap[instrumentID] = ow
}

// FamilyOf returns the family the order assigns to in, honoring overrides.
func (o *ScoreOrder) FamilyOf(in *Instrument) string {
	if ow, ok := o.InstrumentMap[in.ID]; ok {
		return ow.FamilyID
	}
	return in.FamilyID
}

// GroupIndexOf returns the index of the group that hosts in: the group of
// its family, else the unsorted placeholder tagged with the instrument's
// group, else the first untagged unsorted placeholder, else len(Groups).
func (o *ScoreOrder) GroupIndexOf(in *Instrument) int {
	family := o.FamilyOf(in)
	for _, g := range o.Groups {
		if g.Family == family && !g.IsUnsorted() && !g.IsSoloists() {
			return g.Index
		}
	}
	fallback := len(o.Groups)
	for _, g := range o.Groups {
		if !g.IsUnsorted() {
			continue
		}
		if g.Unsorted != "" && g.Unsorted == in.GroupID {
			return g.Index
		}
		if g.Unsorted == "" && fallback == len(o.Groups) {
			fallback = g.Index
		}
	}
	return fallback
}

// Arrange returns templates sorted into the order's group sequence. Ties
// keep the templates' sequence order.
func (o *ScoreOrder) Arrange(templates []InstrumentTemplate) []InstrumentTemplate {
	out := slices.Clone(templates)
	slices.SortStableFunc(out, func(a, b InstrumentTemplate) int {
		return cmp.Or(
			cmp.Compare(o.GroupIndexOf(&a.Instrument), o.GroupIndexOf(&b.Instrument)),
			cmp.Compare(a.Instrument.SequenceOrder, b.Instrument.SequenceOrder),
		)
	})
	return out
}
