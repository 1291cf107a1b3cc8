package tagsoup

import (
	"errors"

	"github.com/lestrrat-go/strcursor"
	"github.com/tagsoup-go/tagsoup/sax"
)

type parserState int

const (
	psEOF parserState = iota - 1
	psStart
	psContent
	psRawText
	psRCDATA
)

// MaxNameLength bounds tag and attribute names so that a malformed
// document cannot make the scanner buffer unbounded amounts of input.
const MaxNameLength = 50000

var (
	ErrNilNode          = errors.New("nil node")
	ErrInvalidOperation = errors.New("operation cannot be performed")

	ErrEmptyDocument       = errors.New("empty document")
	ErrInvalidCharRef      = errors.New("invalid character reference")
	ErrInvalidEncodingName = errors.New("invalid encoding name")
	ErrInvalidName         = errors.New("invalid name")
	ErrNameTooLong         = errors.New("name is too long")
	ErrNestingTooDeep      = errors.New("element nesting exceeds configured maximum depth")
	ErrUnterminatedComment = errors.New("comment not terminated before end of document")
	ErrUnterminatedCDATA   = errors.New("CDATA section not terminated before end of document")
	ErrUnterminatedTag     = errors.New("tag not terminated before end of document")
)

// ErrParseError wraps a fatal scan or balance error with the location
// where it was raised.
type ErrParseError struct {
	Column     int
	Err        error
	Line       string
	LineNumber int
}

// ErrConfig is returned when parser configuration fails. Unknown is
// true when the option itself is not recognized, false when the option
// is known but its value is invalid.
type ErrConfig struct {
	Name    string
	Value   interface{}
	Unknown bool
}

// NameCase controls how the scanner folds element and attribute names.
type NameCase int

const (
	// NameCaseLower folds names to lower case. This is the default.
	NameCaseLower NameCase = iota
	// NameCaseUpper folds names to upper case.
	NameCaseUpper
	// NameCasePreserve reports names exactly as written in the source.
	NameCasePreserve
)

// Diagnostic describes a recoverable problem found in the input.
// Recoverable problems never stop the parse; they are reported through
// the configured DiagnosticHandler and parsing continues.
type Diagnostic struct {
	Err        error
	Column     int
	LineNumber int
}

// DiagnosticHandler receives recoverable parse diagnostics.
type DiagnosticHandler func(Diagnostic)

// Parser is a reusable tolerant HTML parser. A zero Parser is not
// usable; construct one with NewParser.
type Parser struct {
	sax              sax.Handler
	nameCase         NameCase
	defaultEncoding  string
	maxDepth         int
	voidEndEvents    bool
	keepInterElement bool
	errorRecovery    bool
	diag             DiagnosticHandler
}

type parserCtx struct {
	encoding   string
	detectedBy string
	cursor     *strcursor.RuneCursor
	raw        []byte
	instate    parserState
	sax        sax.Handler
	userData   interface{}
	diag       DiagnosticHandler

	nameCase         NameCase
	defaultEncoding  string
	maxDepth         int
	voidEndEvents    bool
	keepInterElement bool
	errorRecovery    bool

	// strictErr holds the first diagnostic promoted to a fatal error
	// when error recovery is disabled.
	strictErr error

	// rawTag is the name of the open raw text or RCDATA element while
	// instate is psRawText or psRCDATA; everything up to the matching
	// end tag is character data.
	rawTag string
}
