package filter

import (
	"strings"

	"github.com/tagsoup-go/tagsoup/sax"
)

// ElementRemover drops the named elements and everything inside them
// from the stream. Because the incoming stream is balanced, a single
// suppression depth counter is all the bookkeeping it needs.
type ElementRemover struct {
	*Base
	names map[string]bool
	depth int
}

// NewElementRemover removes every element whose name (matched
// case-insensitively) appears in names, along with its content.
func NewElementRemover(next sax.Handler, names ...string) *ElementRemover {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = true
	}
	return &ElementRemover{
		Base:  NewBase(next),
		names: set,
	}
}

func (f *ElementRemover) StartElement(ctx sax.Context, elem sax.ParsedElement) error {
	if f.depth > 0 {
		f.depth++
		return nil
	}
	if f.names[strings.ToLower(elem.Name())] {
		f.depth = 1
		return nil
	}
	return f.Base.StartElement(ctx, elem)
}

func (f *ElementRemover) EndElement(ctx sax.Context, name string, aug sax.Augmentation) error {
	if f.depth > 0 {
		f.depth--
		return nil
	}
	return f.Base.EndElement(ctx, name, aug)
}

func (f *ElementRemover) Characters(ctx sax.Context, data []byte, aug sax.Augmentation) error {
	if f.depth > 0 {
		return nil
	}
	return f.Base.Characters(ctx, data, aug)
}

func (f *ElementRemover) Comment(ctx sax.Context, data []byte, aug sax.Augmentation) error {
	if f.depth > 0 {
		return nil
	}
	return f.Base.Comment(ctx, data, aug)
}

func (f *ElementRemover) StartCDATA(ctx sax.Context) error {
	if f.depth > 0 {
		return nil
	}
	return f.Base.StartCDATA(ctx)
}

func (f *ElementRemover) EndCDATA(ctx sax.Context) error {
	if f.depth > 0 {
		return nil
	}
	return f.Base.EndCDATA(ctx)
}

func (f *ElementRemover) ProcessingInstruction(ctx sax.Context, target, data string, aug sax.Augmentation) error {
	if f.depth > 0 {
		return nil
	}
	return f.Base.ProcessingInstruction(ctx, target, data, aug)
}
