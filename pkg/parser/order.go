package parser

import "github.com/ndisidore/ensemble/pkg/catalog"

// readScoreOrder parses one Order block. Groups are indexed by their
// position in the order as they are appended.
func (b *builder) readScoreOrder(c Cursor) catalog.ScoreOrder {
	id, _ := c.Attr(AttrID)
	o := catalog.ScoreOrder{ID: id, InstrumentMap: make(map[string]catalog.InstrumentOverwrite)}

	for c.Next() {
		switch Element(c.Name()) {
		case ElemName:
			o.Name = b.tr(ContextOrders, c.Text())
		case ElemInstrument:
			instrumentID, _ := c.Attr(AttrID)
			o.Overwrite(instrumentID, b.readOverwrite(c))
		case ElemFamilyRef:
			o.AppendGroup(catalog.ScoreOrderGroup{Family: c.Text()})
		case ElemSoloists:
			o.AppendGroup(catalog.ScoreOrderGroup{Family: catalog.SoloistsFamily})
			c.Skip()
		case ElemUnsorted:
			o.AppendGroup(unsortedGroup(c, ""))
			c.Skip()
		case ElemSection:
			b.readSection(c, &o)
		default:
			b.skip(c, string(ElemOrder))
		}
	}
	return o
}

// readOverwrite reads the family an order assigns to one instrument.
func (b *builder) readOverwrite(c Cursor) catalog.InstrumentOverwrite {
	var ow catalog.InstrumentOverwrite
	for c.Next() {
		if Element(c.Name()) != ElemFamilyRef {
			b.skip(c, string(ElemInstrument))
			continue
		}
		ow.FamilyID, _ = c.Attr(AttrID)
		ow.Name = c.Text()
	}
	return ow
}

// readSection appends the groups of a bracketed section, tagging each with
// the section id. Families inside a section are bracketed and carry display
// flags.
func (b *builder) readSection(c Cursor, o *catalog.ScoreOrder) {
	section, _ := c.Attr(AttrID)
	for c.Next() {
		switch Element(c.Name()) {
		case ElemFamilyRef:
			g := catalog.ScoreOrderGroup{
				Section:            section,
				Bracket:            true,
				ShowSystemMarkings: boolAttr(c, AttrShowSystemMarkings, false),
				BarLineSpan:        boolAttr(c, AttrBarLineSpan, true),
				ThinBracket:        boolAttr(c, AttrThinBrackets, true),
			}
			g.Family = c.Text()
			o.AppendGroup(g)
		case ElemSoloists:
			o.AppendGroup(catalog.ScoreOrderGroup{Family: catalog.SoloistsFamily, Section: section})
			c.Skip()
		case ElemUnsorted:
			o.AppendGroup(unsortedGroup(c, section))
			c.Skip()
		default:
			b.skip(c, string(ElemSection))
		}
	}
}

func unsortedGroup(c Cursor, section string) catalog.ScoreOrderGroup {
	tag, _ := c.Attr(AttrGroup)
	return catalog.ScoreOrderGroup{Family: catalog.UnsortedFamily, Section: section, Unsorted: tag}
}
