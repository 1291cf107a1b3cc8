package tagsoup

import (
	"github.com/tagsoup-go/tagsoup/internal/debug"
	"github.com/tagsoup-go/tagsoup/sax"
)

// TreeBuilder is a sax.Handler that assembles the event stream into a
// Document. Because the stream it receives is already balanced it can
// track its position with a single pointer; there is nothing for it
// to repair.
type TreeBuilder struct {
	doc     *Document
	node    Node
	inCDATA bool
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

// Document returns the tree assembled by the last parse.
func (t *TreeBuilder) Document() *Document {
	return t.doc
}

func (t *TreeBuilder) SetDocumentLocator(_ sax.Context, _ sax.DocumentLocator) error {
	return nil
}

func (t *TreeBuilder) StartDocument(_ sax.Context, encoding string) error {
	if debug.Enabled {
		g := debug.IPrintf("START tree.StartDocument")
		defer g.IRelease("END   tree.StartDocument")
	}

	t.doc = NewDocument(encoding)
	t.node = nil
	t.inCDATA = false
	return nil
}

func (t *TreeBuilder) EndDocument(_ sax.Context) error {
	if debug.Enabled {
		g := debug.IPrintf("START tree.EndDocument")
		defer g.IRelease("END   tree.EndDocument")
	}

	t.node = nil
	return nil
}

func (t *TreeBuilder) StartElement(_ sax.Context, elem sax.ParsedElement) error {
	if debug.Enabled {
		g := debug.IPrintf("START tree.StartElement: %s", elem.Name())
		defer g.IRelease("END   tree.StartElement")
	}

	e := t.doc.CreateElement(elem.Name())
	for _, attr := range elem.Attributes() {
		e.SetAttribute(attr.Name(), attr.Value(), attr.Specified())
	}

	if t.node == nil {
		if err := t.doc.AddChild(e); err != nil {
			return err
		}
	} else {
		if err := t.node.AddChild(e); err != nil {
			return err
		}
	}

	t.node = e
	return nil
}

func (t *TreeBuilder) EndElement(_ sax.Context, name string, _ sax.Augmentation) error {
	if debug.Enabled {
		debug.Printf("tree.EndElement: %s", name)
	}

	if t.node != nil {
		t.node = t.node.Parent()
		if _, ok := t.node.(*Document); ok {
			t.node = nil
		}
	}
	return nil
}

func (t *TreeBuilder) Characters(_ sax.Context, data []byte, _ sax.Augmentation) error {
	if debug.Enabled {
		g := debug.IPrintf("START tree.Characters: '%s'", data)
		defer g.IRelease("END   tree.Characters")
	}

	parent := t.node
	if parent == nil {
		// text outside any element hangs off the document itself
		parent = t.doc
	}

	if t.inCDATA {
		return parent.AddChild(t.doc.CreateCDATASection(data))
	}
	return parent.AddContent(data)
}

func (t *TreeBuilder) IgnorableWhitespace(_ sax.Context, _ []byte) error {
	return nil
}

func (t *TreeBuilder) Comment(_ sax.Context, data []byte, _ sax.Augmentation) error {
	if debug.Enabled {
		g := debug.IPrintf("START tree.Comment: %s", data)
		defer g.IRelease("END   tree.Comment")
	}

	c := t.doc.CreateComment(data)
	if t.node == nil {
		return t.doc.AddChild(c)
	}
	return t.node.AddChild(c)
}

func (t *TreeBuilder) StartCDATA(_ sax.Context) error {
	t.inCDATA = true
	return nil
}

func (t *TreeBuilder) EndCDATA(_ sax.Context) error {
	t.inCDATA = false
	return nil
}

func (t *TreeBuilder) ProcessingInstruction(_ sax.Context, target, data string, _ sax.Augmentation) error {
	if debug.Enabled {
		g := debug.IPrintf("START tree.ProcessingInstruction: %s", target)
		defer g.IRelease("END   tree.ProcessingInstruction")
	}

	pi := t.doc.CreatePI(target, data)
	if t.node == nil {
		return t.doc.AddChild(pi)
	}
	return t.node.AddChild(pi)
}
