package tagsoup

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tagsoup-go/tagsoup/internal/debug"
	"github.com/tagsoup-go/tagsoup/sax"
)

// Parse runs b through a parser with default options and returns the
// document tree. Use NewParser for anything configurable.
func Parse(ctx context.Context, b []byte) (*Document, error) {
	builder := NewTreeBuilder()
	p, err := NewParser(WithSAX(builder))
	if err != nil {
		return nil, err
	}
	if err := p.Parse(ctx, b); err != nil {
		return nil, err
	}
	return builder.Document(), nil
}

// NewParser creates a parser. Option validation happens here, not at
// parse time; a parser that constructs successfully will never fail
// over its configuration.
func NewParser(options ...ParseOption) (*Parser, error) {
	p := &Parser{
		nameCase:        NameCaseLower,
		defaultEncoding: "windows-1252",
		maxDepth:        512,
		voidEndEvents:   true,
		errorRecovery:   true,
	}
	if err := p.configure(options...); err != nil {
		return nil, errors.Wrap(err, "failed to configure parser")
	}
	return p, nil
}

// Parse tokenizes and balances b, delivering events to the configured
// SAX handler. The parser itself holds no per-parse state, so a single
// Parser may run any number of Parse calls concurrently.
func (p *Parser) Parse(ctx context.Context, b []byte) error {
	pctx := &parserCtx{}
	if err := pctx.init(p, b); err != nil {
		return err
	}
	defer pctx.release()

	if err := pctx.parseDocument(ctx); err != nil {
		return errors.Wrap(err, "failed to parse document")
	}
	return nil
}

// ParseString is Parse for string input.
func (p *Parser) ParseString(ctx context.Context, s string) error {
	return p.Parse(ctx, []byte(s))
}

func (ctx *parserCtx) parseDocument(c context.Context) error {
	if debug.Enabled {
		g := debug.IPrintf("START parseDocument")
		defer g.IRelease("END   parseDocument")
	}

	if s := ctx.sax; s != nil {
		if err := s.SetDocumentLocator(ctx.userData, &docLocator{ctx: ctx}); err != nil {
			return ctx.error(err)
		}
	}

	if len(ctx.raw) == 0 {
		return ctx.error(ErrEmptyDocument)
	}

	// commit to an encoding: byte order mark, then meta prescan,
	// then the configured default
	if enc, err := ctx.detectEncoding(); err == nil {
		ctx.encoding = enc
		ctx.detectedBy = "bom"
	} else if label := ctx.sniffMeta(); label != "" {
		ctx.encoding = label
		ctx.detectedBy = "meta"
	} else {
		ctx.detectedBy = "default"
	}
	if err := ctx.switchEncoding(); err != nil {
		return err
	}
	if err := ctx.strictErr; err != nil {
		return err
	}
	if debug.Enabled {
		debug.Printf("encoding %s (via %s)", ctx.encoding, ctx.detectedBy)
	}

	if s := ctx.sax; s != nil {
		if err := s.StartDocument(ctx.userData, ctx.encoding); err != nil {
			return ctx.error(err)
		}
	}

	bal := newBalancer(ctx)
	for {
		select {
		case <-c.Done():
			return ctx.error(c.Err())
		default:
		}

		tok, err := ctx.nextToken()
		if err != nil {
			return err
		}
		if tok == nil {
			break
		}
		if err := bal.feed(tok); err != nil {
			return err
		}
		if err := ctx.strictErr; err != nil {
			return err
		}
	}
	if err := bal.finish(); err != nil {
		return err
	}
	if err := ctx.strictErr; err != nil {
		return err
	}

	if s := ctx.sax; s != nil {
		if err := s.EndDocument(ctx.userData); err != nil {
			return ctx.error(err)
		}
	}
	return nil
}

// SetSAXHandler replaces the event handler. Not safe to call while a
// Parse is in flight.
func (p *Parser) SetSAXHandler(s sax.Handler) {
	p.sax = s
}
