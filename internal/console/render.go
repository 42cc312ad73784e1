package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ndisidore/ensemble/pkg/catalog"
)

// Printer renders catalog listings to a writer. Colors follow the
// capabilities of the writer, so buffers and pipes get plain text.
type Printer struct {
	out   io.Writer
	title lipgloss.Style
	label lipgloss.Style
	dim   lipgloss.Style
	enum  lipgloss.Style
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:   out,
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("6")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("8")),
		enum:  r.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1),
	}
}

func (p *Printer) tree(root string) *tree.Tree {
	return tree.Root(root).EnumeratorStyle(p.enum)
}

// Groups writes every group that has templates matching f, with those
// templates, in declaration order.
func (p *Printer) Groups(cat *catalog.Catalog, f catalog.TemplateFilter) {
	for _, g := range cat.SortedGroups() {
		if f.GroupID != "" && g.ID != f.GroupID {
			continue
		}
		gf := f
		gf.GroupID = g.ID
		templates := cat.FilterTemplates(gf)
		if len(templates) == 0 {
			continue
		}
		t := p.tree(p.title.Render(g.Name) + " " + p.dim.Render("("+g.ID+")"))
		for _, tmpl := range templates {
			t.Child(p.templateLine(tmpl))
		}
		_, _ = fmt.Fprintln(p.out, t.String())
	}
}

func (p *Printer) templateLine(tmpl catalog.InstrumentTemplate) string {
	line := tmpl.Instrument.Name
	if line == "" {
		line = tmpl.ID
	}
	line += " " + p.dim.Render("["+tmpl.ID+"]")
	if tmpl.Instrument.Extended {
		line += " " + p.dim.Render("extended")
	}
	return line
}

// Template writes the details of one template.
func (p *Printer) Template(tmpl catalog.InstrumentTemplate) {
	in := &tmpl.Instrument
	_, _ = fmt.Fprintln(p.out, p.title.Render(in.Name)+" "+p.dim.Render("["+tmpl.ID+"]"))

	row := func(label, value string) {
		if value == "" {
			return
		}
		_, _ = fmt.Fprintf(p.out, "  %s %s\n", p.label.Render(fmt.Sprintf("%-14s", label)), value)
	}
	row("group", in.GroupID)
	row("family", in.FamilyID)
	row("genres", strings.Join(in.GenreIDs, ", "))
	row("musicxml", in.MusicXMLID)
	row("description", in.Description)
	row("long names", joinNames(in.LongNames))
	row("short names", joinNames(in.ShortNames))
	row("staves", strconv.Itoa(in.Staves))
	row("clefs", p.clefs(in))
	row("amateur", formatRange(in.AmateurPitchRange))
	row("professional", formatRange(in.ProfessionalPitchRange))
	if in.Transpose != (catalog.Transposition{}) {
		row("transpose", fmt.Sprintf("%d chromatic, %d diatonic", in.Transpose.Chromatic, in.Transpose.Diatonic))
	}
	if in.StaffTypePreset != nil {
		row("staff type", in.StaffTypePreset.XMLName)
	}
	if in.Drumset != nil {
		row("drums", strconv.Itoa(len(in.Drumset.Pitches())))
	}
	if n := len(in.StringData.Strings); n > 0 {
		row("strings", fmt.Sprintf("%d, %d frets", n, in.StringData.Frets))
	}
	if in.Extended {
		row("extended", "yes")
	}

	t := p.tree(p.label.Render("channels"))
	for _, ch := range in.Channels {
		t.Child(fmt.Sprintf("%s program %d bank %d volume %d pan %+d", ch.Name, ch.Program, ch.Bank, ch.Volume, ch.Pan))
	}
	_, _ = fmt.Fprintln(p.out, "  "+strings.ReplaceAll(t.String(), "\n", "\n  "))
}

func (p *Printer) clefs(in *catalog.Instrument) string {
	n := max(1, min(in.Staves, catalog.MaxStaves))
	parts := make([]string, 0, n)
	for i := range n {
		c := in.Clefs[i]
		if c.Concert == c.Transposing {
			parts = append(parts, c.Concert.String())
			continue
		}
		parts = append(parts, c.Concert.String()+"/"+c.Transposing.String())
	}
	return strings.Join(parts, ", ")
}

func joinNames(names []catalog.StaffName) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n.Pos == 0 {
			parts = append(parts, n.Name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s@%d", n.Name, n.Pos))
	}
	return strings.Join(parts, ", ")
}

func formatRange(r catalog.PitchRange) string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Orders writes every score order with its groups.
func (p *Printer) Orders(cat *catalog.Catalog) {
	for _, o := range cat.Orders.Values() {
		t := p.tree(p.title.Render(o.Name) + " " + p.dim.Render("("+o.ID+")"))
		for _, g := range o.Groups {
			t.Child(p.orderGroupLine(g))
		}
		_, _ = fmt.Fprintln(p.out, t.String())
	}
}

func (p *Printer) orderGroupLine(g catalog.ScoreOrderGroup) string {
	var line string
	switch {
	case g.IsSoloists():
		line = "soloists"
	case g.IsUnsorted() && g.Unsorted != "":
		line = "unsorted " + g.Unsorted
	case g.IsUnsorted():
		line = "unsorted"
	default:
		line = g.Family
	}
	if g.Section != "" {
		line += " " + p.dim.Render("§"+g.Section)
	}
	return line
}

// Arrangement writes templates in the order o places them.
func (p *Printer) Arrangement(o catalog.ScoreOrder, templates []catalog.InstrumentTemplate) {
	t := p.tree(p.title.Render(o.Name) + " " + p.dim.Render("("+o.ID+")"))
	for _, tmpl := range o.Arrange(templates) {
		t.Child(p.templateLine(tmpl) + " " + p.dim.Render(o.FamilyOf(&tmpl.Instrument)))
	}
	_, _ = fmt.Fprintln(p.out, t.String())
}
