package catalog

import (
	"cmp"
	"slices"
)

// TemplateFilter selects templates from a catalog. Empty fields match
// everything.
type TemplateFilter struct {
	GroupID  string
	GenreID  string
	FamilyID string
	// IncludeExtended keeps instruments flagged as extended (shown only in
	// the full instrument list).
	IncludeExtended bool
}

// Match reports whether the instrument satisfies every set criterion.
func (f TemplateFilter) Match(in *Instrument) bool {
	if f.GroupID != "" && in.GroupID != f.GroupID {
		return false
	}
	if f.FamilyID != "" && in.FamilyID != f.FamilyID {
		return false
	}
	if f.GenreID != "" && !slices.Contains(in.GenreIDs, f.GenreID) {
		return false
	}
	if !f.IncludeExtended && in.Extended {
		return false
	}
	return true
}

// FilterTemplates returns the matching templates ordered by sequence order.
func (c *Catalog) FilterTemplates(f TemplateFilter) []InstrumentTemplate {
	var out []InstrumentTemplate
	for _, t := range c.Templates.All() {
		if f.Match(&t.Instrument) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b InstrumentTemplate) int {
		return cmp.Compare(a.Instrument.SequenceOrder, b.Instrument.SequenceOrder)
	})
	return out
}
