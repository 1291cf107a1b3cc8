package tagsoup

import "github.com/tagsoup-go/tagsoup/sax"

type TokenType int

const (
	StartTagToken TokenType = iota + 1
	EndTagToken
	TextToken
	CommentToken
	CDATAToken
	ProcessingInstructionToken
	DoctypeToken
)

func (t TokenType) String() string {
	switch t {
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case TextToken:
		return "Text"
	case CommentToken:
		return "Comment"
	case CDATAToken:
		return "CDATA"
	case ProcessingInstructionToken:
		return "ProcessingInstruction"
	case DoctypeToken:
		return "Doctype"
	default:
		return "Unknown"
	}
}

// Attribute is a single parsed attribute. Specified is true only when
// the source carried an explicit value; a bare attribute name reports
// its own name as the value with Specified set to false.
type Attribute struct {
	name      string
	value     string
	specified bool
}

func (a Attribute) Name() string {
	return a.name
}

func (a Attribute) Value() string {
	return a.value
}

func (a Attribute) Specified() bool {
	return a.specified
}

// Token is a single unit of scanner output. Which fields are populated
// depends on Type: tags use Name and Attributes, character data and
// comments use Data, processing instructions use both (Name holds the
// target), and doctype declarations use Name, PublicID and SystemID.
type Token struct {
	Type        TokenType
	Name        string
	Data        string
	Attributes  []Attribute
	SelfClosing bool
	PublicID    string
	SystemID    string
	LineNumber  int
	Column      int
}

func (t *Token) augmentation(synthetic bool) sax.Augmentation {
	aug := sax.Augmentation{
		sax.AugLine:   t.LineNumber,
		sax.AugColumn: t.Column,
	}
	if synthetic {
		aug[sax.AugSynthetic] = true
	}
	return aug
}

type parsedElement struct {
	local string
	attrs []sax.Attribute
	aug   sax.Augmentation
}

func (e *parsedElement) Name() string {
	return e.local
}

func (e *parsedElement) Attributes() []sax.Attribute {
	return e.attrs
}

func (e *parsedElement) Augmentation() sax.Augmentation {
	return e.aug
}

func (t *Token) element(synthetic bool) *parsedElement {
	attrs := make([]sax.Attribute, len(t.Attributes))
	for i, a := range t.Attributes {
		attrs[i] = a
	}
	return &parsedElement{
		local: t.Name,
		attrs: attrs,
		aug:   t.augmentation(synthetic),
	}
}
