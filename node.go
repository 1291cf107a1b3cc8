package tagsoup

import "bytes"

type NodeType int

const (
	DocumentNode NodeType = iota + 1
	ElementNode
	TextNode
	CommentNode
	CDATASectionNode
	ProcessingInstructionNode
)

// Node is a node in the document tree built by TreeBuilder. The tree
// mirrors the balanced event stream exactly: because the balancer
// repairs nesting before events reach the builder, the tree never
// needs fixups of its own.
type Node interface {
	Type() NodeType
	Name() string
	Content() []byte
	Parent() Node
	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PrevSibling() Node
	AddChild(Node) error
	AddContent([]byte) error

	setParent(Node)
	setNextSibling(Node)
	setPrevSibling(Node)
}

// docnode carries the link structure shared by every node type.
// Methods that mutate both the receiver and an operand node live on
// the concrete types, not here, so that parent and sibling pointers
// always reference the outer type rather than the embedded docnode.
type docnode struct {
	typ        NodeType
	name       string
	parent     Node
	firstChild Node
	lastChild  Node
	next       Node
	prev       Node
}

func (n *docnode) Type() NodeType {
	return n.typ
}

func (n *docnode) Name() string {
	return n.name
}

func (n *docnode) Parent() Node {
	return n.parent
}

func (n *docnode) FirstChild() Node {
	return n.firstChild
}

func (n *docnode) LastChild() Node {
	return n.lastChild
}

func (n *docnode) NextSibling() Node {
	return n.next
}

func (n *docnode) PrevSibling() Node {
	return n.prev
}

func (n *docnode) setParent(p Node)      { n.parent = p }
func (n *docnode) setNextSibling(s Node) { n.next = s }
func (n *docnode) setPrevSibling(s Node) { n.prev = s }

// addChild links cur as the last child of self. self is the outer
// node, passed explicitly for the reason described on docnode.
func (n *docnode) addChild(self, cur Node) error {
	if cur == nil {
		return ErrNilNode
	}

	// adjacent text merges instead of nesting
	if t, ok := cur.(*Text); ok {
		if last, ok := n.lastChild.(*Text); ok {
			return last.AddContent(t.content)
		}
	}

	cur.setParent(self)
	if last := n.lastChild; last != nil {
		last.setNextSibling(cur)
		cur.setPrevSibling(last)
	} else {
		n.firstChild = cur
	}
	n.lastChild = cur
	return nil
}

func (n *docnode) childContent() []byte {
	buf := bytes.Buffer{}
	for c := n.firstChild; c != nil; c = c.NextSibling() {
		buf.Write(c.Content())
	}
	return buf.Bytes()
}

// Document is the root of a parsed tree. Unlike an XML document it
// may hold any number of element and text children: the parser never
// invents a wrapper element around top-level content.
type Document struct {
	docnode
	encoding string
}

func NewDocument(encoding string) *Document {
	return &Document{
		docnode:  docnode{typ: DocumentNode, name: "#document"},
		encoding: encoding,
	}
}

func (d *Document) Encoding() string {
	return d.encoding
}

func (d *Document) Content() []byte {
	return d.childContent()
}

func (d *Document) AddChild(cur Node) error {
	return d.addChild(d, cur)
}

func (d *Document) AddContent(b []byte) error {
	return d.AddChild(d.CreateText(b))
}

func (d *Document) CreateElement(name string) *Element {
	return &Element{docnode: docnode{typ: ElementNode, name: name}}
}

func (d *Document) CreateText(b []byte) *Text {
	return &Text{
		docnode: docnode{typ: TextNode, name: "#text"},
		content: append([]byte(nil), b...),
	}
}

func (d *Document) CreateComment(b []byte) *Comment {
	return &Comment{
		docnode: docnode{typ: CommentNode, name: "#comment"},
		content: append([]byte(nil), b...),
	}
}

func (d *Document) CreateCDATASection(b []byte) *CDATASection {
	return &CDATASection{
		docnode: docnode{typ: CDATASectionNode, name: "#cdata-section"},
		content: append([]byte(nil), b...),
	}
}

func (d *Document) CreatePI(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{
		docnode: docnode{typ: ProcessingInstructionNode, name: target},
		target:  target,
		data:    data,
	}
}

type Element struct {
	docnode
	attributes []Attribute
}

func (e *Element) Content() []byte {
	return e.childContent()
}

func (e *Element) AddChild(cur Node) error {
	return e.addChild(e, cur)
}

func (e *Element) AddContent(b []byte) error {
	return e.AddChild(&Text{
		docnode: docnode{typ: TextNode, name: "#text"},
		content: append([]byte(nil), b...),
	})
}

func (e *Element) SetAttribute(name, value string, specified bool) {
	for i, a := range e.attributes {
		if a.name == name {
			e.attributes[i].value = value
			e.attributes[i].specified = specified
			return
		}
	}
	e.attributes = append(e.attributes, Attribute{
		name:      name,
		value:     value,
		specified: specified,
	})
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.attributes {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// Attributes returns the element's attributes in source order.
func (e *Element) Attributes() []Attribute {
	return e.attributes
}

type Text struct {
	docnode
	content []byte
}

func (t *Text) Content() []byte {
	return t.content
}

func (t *Text) AddChild(Node) error {
	return ErrInvalidOperation
}

func (t *Text) AddContent(b []byte) error {
	t.content = append(t.content, b...)
	return nil
}

type Comment struct {
	docnode
	content []byte
}

func (c *Comment) Content() []byte {
	return c.content
}

func (c *Comment) AddChild(Node) error {
	return ErrInvalidOperation
}

func (c *Comment) AddContent(b []byte) error {
	c.content = append(c.content, b...)
	return nil
}

type CDATASection struct {
	docnode
	content []byte
}

func (c *CDATASection) Content() []byte {
	return c.content
}

func (c *CDATASection) AddChild(Node) error {
	return ErrInvalidOperation
}

func (c *CDATASection) AddContent(b []byte) error {
	c.content = append(c.content, b...)
	return nil
}

type ProcessingInstruction struct {
	docnode
	target string
	data   string
}

func (p *ProcessingInstruction) Target() string {
	return p.target
}

func (p *ProcessingInstruction) Data() string {
	return p.data
}

func (p *ProcessingInstruction) Content() []byte {
	return []byte(p.data)
}

func (p *ProcessingInstruction) AddChild(Node) error {
	return ErrInvalidOperation
}

func (p *ProcessingInstruction) AddContent(b []byte) error {
	p.data += string(b)
	return nil
}
