// Package parser builds instrument catalogs from instrument-definition
// documents.
//
// Parsing is permissive: unknown elements are skipped, malformed values fall
// back to defaults and dangling references are ignored. Only failing to read
// the source is an error.
package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/beevik/etree"
	"github.com/opencontainers/go-digest"

	"github.com/ndisidore/ensemble/pkg/catalog"
	"github.com/ndisidore/ensemble/pkg/notation"
)

// ErrSource indicates the catalog source could not be read.
var ErrSource = errors.New("reading catalog source")

// Parser builds catalogs. Nil collaborators fall back to the built-in
// notation tables, the local filesystem and untranslated text. A Parser
// holds no per-document state and may be shared between goroutines.
type Parser struct {
	Resolver   Resolver
	Clefs      ClefResolver
	Intervals  IntervalDeriver
	StaffTypes StaffTypeCatalog
	Drums      DrumKitSource
	Translator Translator
	Logger     *slog.Logger
}

// New returns a Parser wired to the built-in collaborators.
func New() *Parser {
	return &Parser{
		Resolver:   &FileResolver{},
		Clefs:      notation.ClefTable{},
		Intervals:  notation.Intervals{},
		StaffTypes: notation.StaffTypes{},
		Drums:      notation.StandardKit{},
		Translator: identity{},
	}
}

// withDefaults returns a copy of p with nil collaborators filled in.
func (p *Parser) withDefaults() Parser {
	d := *p
	if d.Resolver == nil {
		d.Resolver = &FileResolver{}
	}
	if d.Clefs == nil {
		d.Clefs = notation.ClefTable{}
	}
	if d.Intervals == nil {
		d.Intervals = notation.Intervals{}
	}
	if d.StaffTypes == nil {
		d.StaffTypes = notation.StaffTypes{}
	}
	if d.Drums == nil {
		d.Drums = notation.StandardKit{}
	}
	if d.Translator == nil {
		d.Translator = identity{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// ParseFile resolves and parses the catalog at path.
func (p *Parser) ParseFile(path string) (*catalog.Catalog, error) {
	d := p.withDefaults()
	rc, abs, err := d.Resolver.Resolve(path, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	data, err := io.ReadAll(rc)
	if cerr := rc.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSource, abs, err)
	}
	return d.build(data, abs), nil
}

// Parse reads r in full and parses it. filename is used in log records and
// recorded as the catalog source.
func (p *Parser) Parse(r io.Reader, filename string) (*catalog.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSource, filename, err)
	}
	return p.ParseBytes(data, filename), nil
}

// ParseBytes parses an in-memory catalog document. It never fails: content
// problems are tolerated as described in the package documentation.
func (p *Parser) ParseBytes(data []byte, filename string) *catalog.Catalog {
	d := p.withDefaults()
	return d.build(data, filename)
}

// ParseString parses catalog content held in a string.
func (p *Parser) ParseString(content string) *catalog.Catalog {
	return p.ParseBytes([]byte(content), "<string>")
}

func (p *Parser) build(data []byte, filename string) *catalog.Catalog {
	log := p.Logger.With(slog.String("file", filename))

	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(data); err != nil {
		// The tree holds everything read before the syntax error.
		log.Debug("catalog document truncated", slog.String("error", err.Error()))
	}

	cat := &catalog.Catalog{
		Source: catalog.Source{Name: filename, Digest: digest.FromBytes(data)},
	}
	b := &builder{p: p, cat: cat, log: log}
	b.readDocument(newTreeCursor(doc))

	log.Debug("catalog built",
		slog.Int("groups", cat.Groups.Len()),
		slog.Int("templates", cat.Templates.Len()),
		slog.Int("orders", cat.Orders.Len()),
	)
	return cat
}

// builder holds the state of one parse: the catalog under construction and
// the declaration counters.
type builder struct {
	p           *Parser
	cat         *catalog.Catalog
	log         *slog.Logger
	groupSeq    int
	templateSeq int
}

func (b *builder) tr(context, text string) string {
	return b.p.Translator.Translate(context, text)
}

// skip discards the current element and its subtree.
func (b *builder) skip(c Cursor, parent string) {
	b.log.Debug("skipping element", slog.String("element", c.Name()), slog.String("parent", parent))
	c.Skip()
}

// readDocument finds the wrapper element, searching through any other
// elements, and reads the catalog inside it.
func (b *builder) readDocument(c Cursor) {
	for c.Next() {
		if Element(c.Name()) == ElemMuseScore {
			b.readCatalog(c)
			continue
		}
		b.readDocument(c)
	}
}

// readCatalog dispatches the top-level definitions of the wrapper element.
func (b *builder) readCatalog(c Cursor) {
	for c.Next() {
		switch Element(c.Name()) {
		case ElemInstrumentGroup, ElemInstrumentGroupAlias:
			b.readGroup(c)
		case ElemArticulation:
			a := b.readArticulation(c)
			b.cat.Articulations.Set(a.Name, a)
		case ElemGenre:
			g := b.readGenre(c)
			b.cat.Genres.Set(g.ID, g)
		case ElemFamily:
			f := b.readFamily(c)
			b.cat.Families.Set(f.ID, f)
		case ElemOrder:
			o := b.readScoreOrder(c)
			o.Index = b.cat.Orders.Len()
			b.cat.Orders.Set(o.ID, o)
		default:
			b.skip(c, string(ElemMuseScore))
		}
	}
}

// readGroup parses one instrument group and registers it with its
// templates.
func (b *builder) readGroup(c Cursor) {
	id, _ := c.Attr(AttrID)
	name, _ := c.Attr(AttrName)
	extended, _ := c.Attr(AttrExtended)
	g := catalog.InstrumentGroup{
		ID:            id,
		Name:          b.tr(ContextInstruments, name),
		Extended:      toBool(extended),
		SequenceOrder: b.groupSeq,
	}
	b.groupSeq++

	var parsed []string
	for c.Next() {
		switch el := Element(c.Name()); {
		case strings.EqualFold(string(el), string(ElemInstrument)):
			t := b.readInstrument(c)
			t.Instrument.GroupID = g.ID
			b.cat.Templates.Set(t.ID, t)
			parsed = append(parsed, t.ID)
		case el == ElemRef:
			b.readRef(c)
		case el == ElemName:
			g.Name = b.tr(ContextInstruments, c.Text())
		case el == ElemExtended:
			g.Extended = toBool(c.Text())
		default:
			b.skip(c, "group")
		}
	}

	if g.ID == "" {
		g.ID = catalog.DeriveID(g.Name)
		b.stampGroup(parsed, g.ID)
	}
	b.cat.Groups.Set(g.ID, g)
}

// stampGroup assigns a derived group id to the templates parsed inside the
// group before the id was known.
func (b *builder) stampGroup(templateIDs []string, groupID string) {
	for _, id := range templateIDs {
		t, ok := b.cat.Templates.Get(id)
		if !ok || t.Instrument.GroupID != "" {
			continue
		}
		t.Instrument.GroupID = groupID
		b.cat.Templates.Set(id, t)
	}
}

// readRef re-registers an existing template under its own id.
func (b *builder) readRef(c Cursor) {
	id := c.Text()
	t, ok := b.cat.Templates.Get(id)
	if !ok {
		b.log.Debug("ref to unknown template", slog.String("template", id))
		return
	}
	b.cat.Templates.Set(t.ID, t.Clone())
}
