package tagsoup

import (
	"fmt"

	"github.com/lestrrat-go/option"
	"github.com/tagsoup-go/tagsoup/encoding"
	"github.com/tagsoup-go/tagsoup/sax"
)

type Option = option.Interface

type identNameCase struct{}
type identDefaultEncoding struct{}
type identMaxDepth struct{}
type identVoidEndEvents struct{}
type identInterElementWhitespace struct{}
type identErrorRecovery struct{}
type identSAX struct{}
type identDiagnosticHandler struct{}

type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithNameCase controls how element and attribute names are folded
// before they are reported. The default is NameCaseLower.
func WithNameCase(v NameCase) ParseOption {
	return &parseOption{option.New(identNameCase{}, v)}
}

// WithDefaultEncoding sets the encoding assumed when neither a byte
// order mark nor a meta declaration identifies one. The default is
// windows-1252, matching what browsers assume for unlabeled content.
func WithDefaultEncoding(v string) ParseOption {
	return &parseOption{option.New(identDefaultEncoding{}, v)}
}

// WithMaxDepth bounds the open element stack. Exceeding it is a fatal
// parse error. The default is 512.
func WithMaxDepth(v int) ParseOption {
	return &parseOption{option.New(identMaxDepth{}, v)}
}

// WithVoidEndEvents controls whether void elements (br, img, ...)
// produce an EndElement event immediately after their StartElement.
// The default is true.
func WithVoidEndEvents(v bool) ParseOption {
	return &parseOption{option.New(identVoidEndEvents{}, v)}
}

// WithInterElementWhitespace controls whether whitespace-only text
// outside any open element is reported. When false (the default) such
// runs are routed to IgnorableWhitespace; when true they are reported
// as ordinary Characters.
func WithInterElementWhitespace(v bool) ParseOption {
	return &parseOption{option.New(identInterElementWhitespace{}, v)}
}

// WithErrorRecovery controls whether recoverable markup problems are
// repaired and reported as diagnostics (true, the default) or abort
// the parse with the first one found.
func WithErrorRecovery(v bool) ParseOption {
	return &parseOption{option.New(identErrorRecovery{}, v)}
}

// WithSAX sets the event handler receiving the balanced stream.
func WithSAX(v sax.Handler) ParseOption {
	return &parseOption{option.New(identSAX{}, v)}
}

// WithDiagnosticHandler sets the callback receiving recoverable parse
// diagnostics. When unset, diagnostics go to the package logger.
func WithDiagnosticHandler(v DiagnosticHandler) ParseOption {
	return &parseOption{option.New(identDiagnosticHandler{}, v)}
}

func (p *Parser) configure(options ...ParseOption) error {
	for _, opt := range options {
		switch opt.Ident().(type) {
		case identNameCase:
			v := opt.Value().(NameCase)
			if v != NameCaseLower && v != NameCaseUpper && v != NameCasePreserve {
				return ErrConfig{Name: "NameCase", Value: v}
			}
			p.nameCase = v
		case identDefaultEncoding:
			v := opt.Value().(string)
			if !encoding.Supported(v) {
				return ErrConfig{Name: "DefaultEncoding", Value: v}
			}
			p.defaultEncoding = v
		case identMaxDepth:
			v := opt.Value().(int)
			if v < 1 {
				return ErrConfig{Name: "MaxDepth", Value: v}
			}
			p.maxDepth = v
		case identVoidEndEvents:
			p.voidEndEvents = opt.Value().(bool)
		case identInterElementWhitespace:
			p.keepInterElement = opt.Value().(bool)
		case identErrorRecovery:
			p.errorRecovery = opt.Value().(bool)
		case identSAX:
			p.sax = opt.Value().(sax.Handler)
		case identDiagnosticHandler:
			p.diag = opt.Value().(DiagnosticHandler)
		default:
			return ErrConfig{Name: fmt.Sprintf("%T", opt.Ident()), Unknown: true}
		}
	}
	return nil
}
