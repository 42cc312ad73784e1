package parser

import "github.com/beevik/etree"

// Cursor walks the start elements of a document in document order.
//
// After Next reports true the cursor sits on the start of an element. The
// caller must consume it with Text, Skip, or by looping Next over its
// children; calling Next on an unconsumed element descends into it. Next
// reports false once the enclosing element ends.
type Cursor interface {
	Next() bool
	Name() string
	Attr(name string) (string, bool)
	Text() string
	Skip()
}

// treeCursor implements Cursor over a parsed etree document.
type treeCursor struct {
	stack []frame
	cur   *etree.Element
	open  bool // cur is positioned at its start tag and not yet consumed
}

type frame struct {
	children []*etree.Element
	pos      int
}

func newTreeCursor(doc *etree.Document) *treeCursor {
	return &treeCursor{stack: []frame{{children: doc.ChildElements()}}}
}

func (c *treeCursor) Next() bool {
	if c.open {
		c.stack = append(c.stack, frame{children: c.cur.ChildElements()})
		c.open = false
	}
	if len(c.stack) == 0 {
		return false
	}
	top := &c.stack[len(c.stack)-1]
	if top.pos < len(top.children) {
		c.cur = top.children[top.pos]
		top.pos++
		c.open = true
		return true
	}
	c.stack = c.stack[:len(c.stack)-1]
	c.cur = nil
	return false
}

func (c *treeCursor) Name() string {
	if c.cur == nil {
		return ""
	}
	return c.cur.Tag
}

func (c *treeCursor) Attr(name string) (string, bool) {
	if c.cur == nil {
		return "", false
	}
	a := c.cur.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func (c *treeCursor) Text() string {
	if !c.open {
		return ""
	}
	c.open = false
	return c.cur.Text()
}

func (c *treeCursor) Skip() {
	if c.open {
		c.open = false
		return
	}
	// Inside an element's children: discard the rest of them.
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
		c.cur = nil
	}
}
