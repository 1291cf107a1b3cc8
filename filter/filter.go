// Package filter provides composable sax.Handler stages. A filter
// receives the balanced event stream, transforms it, and forwards the
// result to the next handler in the chain, so pipelines are built by
// plain nesting: parser -> remover -> writer.
package filter

import "github.com/tagsoup-go/tagsoup/sax"

// Base forwards every event unchanged. Embed it and override the
// methods of interest.
type Base struct {
	next sax.Handler
}

func NewBase(next sax.Handler) *Base {
	return &Base{next: next}
}

// Next returns the downstream handler.
func (f *Base) Next() sax.Handler {
	return f.next
}

func (f *Base) SetDocumentLocator(ctx sax.Context, loc sax.DocumentLocator) error {
	if n := f.next; n != nil {
		return n.SetDocumentLocator(ctx, loc)
	}
	return nil
}

func (f *Base) StartDocument(ctx sax.Context, encoding string) error {
	if n := f.next; n != nil {
		return n.StartDocument(ctx, encoding)
	}
	return nil
}

func (f *Base) EndDocument(ctx sax.Context) error {
	if n := f.next; n != nil {
		return n.EndDocument(ctx)
	}
	return nil
}

func (f *Base) StartElement(ctx sax.Context, elem sax.ParsedElement) error {
	if n := f.next; n != nil {
		return n.StartElement(ctx, elem)
	}
	return nil
}

func (f *Base) EndElement(ctx sax.Context, name string, aug sax.Augmentation) error {
	if n := f.next; n != nil {
		return n.EndElement(ctx, name, aug)
	}
	return nil
}

func (f *Base) Characters(ctx sax.Context, data []byte, aug sax.Augmentation) error {
	if n := f.next; n != nil {
		return n.Characters(ctx, data, aug)
	}
	return nil
}

func (f *Base) IgnorableWhitespace(ctx sax.Context, data []byte) error {
	if n := f.next; n != nil {
		return n.IgnorableWhitespace(ctx, data)
	}
	return nil
}

func (f *Base) Comment(ctx sax.Context, data []byte, aug sax.Augmentation) error {
	if n := f.next; n != nil {
		return n.Comment(ctx, data, aug)
	}
	return nil
}

func (f *Base) StartCDATA(ctx sax.Context) error {
	if n := f.next; n != nil {
		return n.StartCDATA(ctx)
	}
	return nil
}

func (f *Base) EndCDATA(ctx sax.Context) error {
	if n := f.next; n != nil {
		return n.EndCDATA(ctx)
	}
	return nil
}

func (f *Base) ProcessingInstruction(ctx sax.Context, target, data string, aug sax.Augmentation) error {
	if n := f.next; n != nil {
		return n.ProcessingInstruction(ctx, target, data, aug)
	}
	return nil
}
