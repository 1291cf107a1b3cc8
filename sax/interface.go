// Package sax defines the structural event surface produced by the parser.
// Consumers implement Handler (or populate the callback-based Handlers) and
// receive a guaranteed well-nested stream: every StartElement is eventually
// paired with an EndElement of the same name, no matter how broken the input
// markup was.
package sax

// Context is an opaque value identifying the parse that produced an event.
// It is always the first argument of every callback.
type Context interface{}

// DocumentLocator reports the current position of the parse. The same
// locator instance is updated in place as parsing progresses; consumers that
// need positions attached to individual events should use Augmentations
// instead.
type DocumentLocator interface {
	LineNumber() int
	Column() int
}

// Attribute is a single parsed attribute. Specified reports whether the
// source spelled out an explicit value ('foo="bar"') as opposed to a bare
// boolean-style attribute ('disabled').
type Attribute interface {
	Name() string
	Value() string
	Specified() bool
}

// ParsedElement is the payload of a StartElement event.
type ParsedElement interface {
	Name() string
	Attributes() []Attribute
	Augmentation() Augmentation
}

type SetDocumentLocatorFunc func(Context, DocumentLocator) error
type StartDocumentFunc func(Context, string) error
type EndDocumentFunc func(Context) error
type StartElementFunc func(Context, ParsedElement) error
type EndElementFunc func(Context, string, Augmentation) error
type CharactersFunc func(Context, []byte, Augmentation) error
type IgnorableWhitespaceFunc func(Context, []byte) error
type CommentFunc func(Context, []byte, Augmentation) error
type StartCDATAFunc func(Context) error
type EndCDATAFunc func(Context) error
type ProcessingInstructionFunc func(Context, string, string, Augmentation) error

// Handler is the interface consumed by anything sitting downstream of the
// tag balancer: DOM builders, serializers, filter stages.
type Handler interface {
	SetDocumentLocator(ctx Context, loc DocumentLocator) error
	StartDocument(ctx Context, encoding string) error
	EndDocument(ctx Context) error
	StartElement(ctx Context, elem ParsedElement) error
	EndElement(ctx Context, name string, aug Augmentation) error
	Characters(ctx Context, data []byte, aug Augmentation) error
	IgnorableWhitespace(ctx Context, data []byte) error
	Comment(ctx Context, data []byte, aug Augmentation) error
	StartCDATA(ctx Context) error
	EndCDATA(ctx Context) error
	ProcessingInstruction(ctx Context, target, data string, aug Augmentation) error
}
