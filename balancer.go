package tagsoup

// The tag balancer sits between the scanner and the SAX handler and
// guarantees a well-nested event stream: every StartElement it emits
// is eventually paired with an EndElement of the same name, in proper
// LIFO order, no matter how broken the incoming tag soup was. Repairs
// take the form of synthesized EndElement events (marked with
// sax.AugSynthetic) and discarded stray end tags; the balancer never
// invents wrapper elements such as html or body.

import (
	"strings"

	"github.com/tagsoup-go/tagsoup/internal/debug"
	"github.com/tagsoup-go/tagsoup/internal/stack"
	"github.com/tagsoup-go/tagsoup/sax"
)

type openElement struct {
	// name as reported downstream, case folding already applied
	name string
	// lower-cased name used for table lookups
	lower string
	class elementClass
	// the start tag that opened this element; synthesized close
	// events reuse its location
	tok *Token
}

type balancer struct {
	ctx      *parserCtx
	sax      sax.Handler
	stack    stack.Stack[openElement]
	maxDepth int
}

func newBalancer(ctx *parserCtx) *balancer {
	return &balancer{
		ctx:      ctx,
		sax:      ctx.sax,
		maxDepth: ctx.maxDepth,
	}
}

func (b *balancer) feed(tok *Token) error {
	if debug.Enabled {
		g := debug.IPrintf("START balancer.feed %s %q", tok.Type, tok.Name)
		defer g.IRelease("END   balancer.feed")
	}

	switch tok.Type {
	case StartTagToken:
		return b.startTag(tok)
	case EndTagToken:
		return b.endTag(tok)
	case TextToken:
		return b.text(tok)
	case CommentToken:
		if s := b.sax; s != nil {
			if err := s.Comment(b.ctx.userData, []byte(tok.Data), tok.augmentation(false)); err != nil {
				return b.ctx.error(err)
			}
		}
		return nil
	case CDATAToken:
		return b.cdata(tok)
	case ProcessingInstructionToken:
		if s := b.sax; s != nil {
			if err := s.ProcessingInstruction(b.ctx.userData, tok.Name, tok.Data, tok.augmentation(false)); err != nil {
				return b.ctx.error(err)
			}
		}
		return nil
	case DoctypeToken:
		// the event surface has no doctype slot; nothing downstream
		// of the balancer needs it
		return nil
	default:
		return nil
	}
}

func (b *balancer) startTag(tok *Token) error {
	lower := strings.ToLower(tok.Name)
	class := classifyElement(lower)

	// implied closures: the incoming element ends whatever sits on
	// top of the stack that cannot contain it
	for {
		top, ok := b.stack.Peek()
		if !ok || !impliedEnd(lower, top.lower) {
			break
		}
		if err := b.closeTop(tok); err != nil {
			return err
		}
	}

	if class == classVoid || tok.SelfClosing {
		return b.emitVoid(tok)
	}

	if b.stack.Len() >= b.maxDepth {
		return b.ctx.error(ErrNestingTooDeep)
	}

	b.stack.Push(openElement{
		name:  tok.Name,
		lower: lower,
		class: class,
		tok:   tok,
	})
	if s := b.sax; s != nil {
		if err := s.StartElement(b.ctx.userData, tok.element(false)); err != nil {
			return b.ctx.error(err)
		}
	}
	return nil
}

// emitVoid reports an element with no content: a void element, or any
// element written with the XML-style trailing slash. It never touches
// the open element stack.
func (b *balancer) emitVoid(tok *Token) error {
	s := b.sax
	if s == nil {
		return nil
	}
	if err := s.StartElement(b.ctx.userData, tok.element(false)); err != nil {
		return b.ctx.error(err)
	}
	if b.ctx.voidEndEvents {
		if err := s.EndElement(b.ctx.userData, tok.Name, tok.augmentation(true)); err != nil {
			return b.ctx.error(err)
		}
	}
	return nil
}

func (b *balancer) endTag(tok *Token) error {
	lower := strings.ToLower(tok.Name)

	// find the nearest matching open element
	at := -1
	for i := b.stack.Len() - 1; i >= 0; i-- {
		if b.stack.At(i).lower == lower {
			at = i
			break
		}
	}
	if at < 0 {
		// stray end tag: nothing to close, nothing to report
		b.ctx.warn(errStrayEndTag(tok.Name))
		return nil
	}

	// everything above the match closes implicitly first
	for b.stack.Len() > at+1 {
		if err := b.closeTop(tok); err != nil {
			return err
		}
	}

	top, _ := b.stack.Pop()
	if s := b.sax; s != nil {
		if err := s.EndElement(b.ctx.userData, top.name, tok.augmentation(false)); err != nil {
			return b.ctx.error(err)
		}
	}
	return nil
}

// closeTop pops the top of the stack and emits a synthesized
// EndElement for it. cause is the token that forced the closure; the
// synthesized event carries the opening tag's location so consumers
// can see which element was repaired.
func (b *balancer) closeTop(cause *Token) error {
	top, ok := b.stack.Pop()
	if !ok {
		return nil
	}
	if debug.Enabled {
		debug.Printf("synthesizing </%s> forced by %s %q", top.name, cause.Type, cause.Name)
	}
	if s := b.sax; s != nil {
		if err := s.EndElement(b.ctx.userData, top.name, top.tok.augmentation(true)); err != nil {
			return b.ctx.error(err)
		}
	}
	return nil
}

func (b *balancer) text(tok *Token) error {
	s := b.sax
	if s == nil {
		return nil
	}
	data := []byte(tok.Data)
	if len(data) == 0 {
		return nil
	}

	// whitespace between top-level elements is not document content
	if b.stack.Len() == 0 && !b.ctx.keepInterElement && isAllBlank(tok.Data) {
		if err := s.IgnorableWhitespace(b.ctx.userData, data); err != nil {
			return b.ctx.error(err)
		}
		return nil
	}

	if err := s.Characters(b.ctx.userData, data, tok.augmentation(false)); err != nil {
		return b.ctx.error(err)
	}
	return nil
}

func (b *balancer) cdata(tok *Token) error {
	s := b.sax
	if s == nil {
		return nil
	}
	if err := s.StartCDATA(b.ctx.userData); err != nil {
		return b.ctx.error(err)
	}
	if len(tok.Data) > 0 {
		if err := s.Characters(b.ctx.userData, []byte(tok.Data), tok.augmentation(false)); err != nil {
			return b.ctx.error(err)
		}
	}
	if err := s.EndCDATA(b.ctx.userData); err != nil {
		return b.ctx.error(err)
	}
	return nil
}

// finish unwinds whatever is still open at end of input, innermost
// first, so the stream always ends balanced.
func (b *balancer) finish() error {
	for b.stack.Len() > 0 {
		top, _ := b.stack.Pop()
		if s := b.sax; s != nil {
			if err := s.EndElement(b.ctx.userData, top.name, top.tok.augmentation(true)); err != nil {
				return b.ctx.error(err)
			}
		}
	}
	return nil
}

func isAllBlank(s string) bool {
	for _, c := range s {
		if !isBlankCh(c) {
			return false
		}
	}
	return true
}

type errStrayEndTag string

func (e errStrayEndTag) Error() string {
	return "end tag '</" + string(e) + ">' matches no open element"
}
