// Package translate loads display-text translations from KDL files.
//
// A translation file names its language once and groups messages by the
// context they belong to:
//
//	language "de"
//	context "InstrumentsXML" {
//		msg "Violin" "Violine"
//	}
package translate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Sentinel errors for translation file failures.
var (
	ErrNoLanguage        = errors.New("no language node found")
	ErrMultipleLanguages = errors.New("multiple language nodes found")
	ErrInvalidLanguage   = errors.New("invalid language tag")
	ErrUnknownNode       = errors.New("unknown node type")
	ErrMissingField      = errors.New("missing required field")
	ErrExtraArgs         = errors.New("too many arguments")
	ErrTypeMismatch      = errors.New("argument type mismatch")
)

// Node names of the translation file format.
const (
	nodeLanguage = "language"
	nodeContext  = "context"
	nodeMsg      = "msg"
)

// Table is a loaded set of translations for one language.
type Table struct {
	tag     language.Tag
	builder *catalog.Builder
	entries int
}

type entry struct {
	context, source, target string
}

// LoadFile reads and parses the translation file at path.
func LoadFile(path string) (t *Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return Load(f, path)
}

// Load parses translation content from the reader.
func Load(r io.Reader, filename string) (*Table, error) {
	doc, err := kdl.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	var (
		tag     language.Tag
		found   bool
		entries []entry
	)
	for _, node := range doc.Nodes {
		switch name := node.Name.ValueString(); name {
		case nodeLanguage:
			if found {
				return nil, fmt.Errorf("%s: %w", filename, ErrMultipleLanguages)
			}
			s, err := requireStringArg(node, filename, nodeLanguage)
			if err != nil {
				return nil, err
			}
			tag, err = language.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("%s: %q: %w: %w", filename, s, ErrInvalidLanguage, err)
			}
			found = true
		case nodeContext:
			ctxEntries, err := parseContext(node, filename)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ctxEntries...)
		default:
			return nil, fmt.Errorf("%s: %q: %w", filename, name, ErrUnknownNode)
		}
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoLanguage)
	}

	t := &Table{tag: tag, builder: catalog.NewBuilder(catalog.Fallback(tag))}
	for _, e := range entries {
		if err := t.builder.SetString(tag, key(e.context, e.source), escape(e.target)); err != nil {
			return nil, fmt.Errorf("%s: context %q: message %q: %w", filename, e.context, e.source, err)
		}
		t.entries++
	}
	return t, nil
}

// LoadString parses translation content held in a string.
func LoadString(content string) (*Table, error) {
	return Load(strings.NewReader(content), "<string>")
}

func parseContext(node *document.Node, filename string) ([]entry, error) {
	name, err := requireStringArg(node, filename, nodeContext)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(node.Children))
	for _, child := range node.Children {
		if childName := child.Name.ValueString(); childName != nodeMsg {
			return nil, fmt.Errorf("%s: context %q: %q: %w", filename, name, childName, ErrUnknownNode)
		}
		args, err := stringArgs2(child, filename, nodeMsg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{context: name, source: args[0], target: args[1]})
	}
	return entries, nil
}

// Language returns the language the table translates into.
func (t *Table) Language() language.Tag { return t.tag }

// Len returns the number of messages in the table.
func (t *Table) Len() int { return t.entries }

// Translator returns a translator for tag. Lookups fall back through the
// parents of tag, so "de-CH" finds messages of a "de" table. language.Und
// selects the table's own language.
func (t *Table) Translator(tag language.Tag) *Translator {
	if tag == language.Und {
		tag = t.tag
	}
	return &Translator{printer: message.NewPrinter(tag, message.Catalog(t.builder))}
}

// Translator localizes display text. Text without a translation is returned
// unchanged. A Translator is safe for concurrent use.
type Translator struct {
	printer *message.Printer
}

// Translate returns the translation of text within context.
func (tr *Translator) Translate(context, text string) string {
	return tr.printer.Sprintf(message.Key(key(context, text), escape(text)))
}

// key joins context and source text the way gettext-style catalogs do.
func key(context, text string) string {
	return context + "\x04" + text
}

// escape protects literal percent signs from message formatting.
func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// stringArgs2 extracts exactly two string arguments from a node.
func stringArgs2(node *document.Node, filename, field string) ([2]string, error) {
	switch {
	case len(node.Arguments) < 2:
		return [2]string{}, fmt.Errorf(
			"%s: %s requires exactly two arguments, got %d: %w",
			filename, field, len(node.Arguments), ErrMissingField,
		)
	case len(node.Arguments) > 2:
		return [2]string{}, fmt.Errorf(
			"%s: %s requires exactly two arguments, got %d: %w",
			filename, field, len(node.Arguments), ErrExtraArgs,
		)
	}
	var out [2]string
	for i := range out {
		v, err := stringArg(node, i)
		if err != nil {
			return [2]string{}, fmt.Errorf("%s: %s: %w", filename, field, err)
		}
		out[i] = v
	}
	return out, nil
}

// requireStringArg extracts the first string argument, wrapping errors with context.
func requireStringArg(node *document.Node, filename, field string) (string, error) {
	v, err := stringArg(node, 0)
	if err != nil {
		return "", fmt.Errorf("%s: %q requires a string value: %w", filename, field, err)
	}
	return v, nil
}

// stringArg returns the string value at the given argument index, or an error.
func stringArg(node *document.Node, idx int) (string, error) {
	if idx >= len(node.Arguments) {
		return "", fmt.Errorf("argument %d: %w", idx, ErrMissingField)
	}
	v, ok := node.Arguments[idx].ResolvedValue().(string)
	if !ok {
		return "", fmt.Errorf("argument %d: not a string: %w", idx, ErrTypeMismatch)
	}
	return v, nil
}
