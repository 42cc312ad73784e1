// Package catalog defines the in-memory instrument metadata model built from
// an instrument-definition document.
package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/containerd/errdefs"
	"github.com/opencontainers/go-digest"
)

// Catalog is the complete parsed instrument metadata. Every map is keyed by
// id; a later definition with an existing id replaces the earlier one.
type Catalog struct {
	Source        Source
	Groups        Index[InstrumentGroup]
	Templates     Index[InstrumentTemplate]
	Articulations Index[Articulation]
	Genres        Index[Genre]
	Families      Index[Family]
	Orders        Index[ScoreOrder]
}

// Source identifies the document a catalog was built from.
type Source struct {
	Name   string
	Digest digest.Digest
}

// InstrumentGroup is one instrument-group block of the catalog.
type InstrumentGroup struct {
	ID            string
	Name          string
	Extended      bool
	SequenceOrder int // declaration position, fixed at creation
}

// InstrumentTemplate is one named instrument definition.
type InstrumentTemplate struct {
	ID         string
	Instrument Instrument
}

// Clone returns a deep copy of the template.
func (t InstrumentTemplate) Clone() InstrumentTemplate {
	t.Instrument = t.Instrument.Clone()
	return t
}

// Genre is a musical genre instruments can be tagged with.
type Genre struct {
	ID   string
	Name string
}

// Family is an instrument family referenced by score orders.
type Family struct {
	ID   string
	Name string
}

// Template returns the template with the given id.
func (c *Catalog) Template(id string) (InstrumentTemplate, error) {
	t, ok := c.Templates.Get(id)
	if !ok {
		return InstrumentTemplate{}, fmt.Errorf("template %q: %w", id, errdefs.ErrNotFound)
	}
	return t, nil
}

// Group returns the group with the given id.
func (c *Catalog) Group(id string) (InstrumentGroup, error) {
	g, ok := c.Groups.Get(id)
	if !ok {
		return InstrumentGroup{}, fmt.Errorf("group %q: %w", id, errdefs.ErrNotFound)
	}
	return g, nil
}

// Order returns the score order with the given id.
func (c *Catalog) Order(id string) (ScoreOrder, error) {
	o, ok := c.Orders.Get(id)
	if !ok {
		return ScoreOrder{}, fmt.Errorf("score order %q: %w", id, errdefs.ErrNotFound)
	}
	return o, nil
}

// SortedGroups returns the groups ordered by declaration position.
func (c *Catalog) SortedGroups() []InstrumentGroup {
	groups := c.Groups.Values()
	slices.SortStableFunc(groups, func(a, b InstrumentGroup) int {
		return cmp.Compare(a.SequenceOrder, b.SequenceOrder)
	})
	return groups
}

// GroupTemplates returns the templates stamped with groupID, ordered by
// their sequence order.
func (c *Catalog) GroupTemplates(groupID string) []InstrumentTemplate {
	return c.FilterTemplates(TemplateFilter{GroupID: groupID, IncludeExtended: true})
}
