package tagsoup

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lestrrat-go/strcursor"
	"github.com/pkg/errors"
	"github.com/tagsoup-go/tagsoup/encoding"
	"github.com/tagsoup-go/tagsoup/entity"
	"github.com/tagsoup-go/tagsoup/internal/debug"
	"github.com/tagsoup-go/tagsoup/internal/orderedmap"
	"github.com/tagsoup-go/tagsoup/internal/pool"
)

var errFailedToDetectEncoding = errors.New("failed to detect encoding")

func (ctx *parserCtx) init(p *Parser, b []byte) error {
	ctx.encoding = encNone
	ctx.raw = b
	// placeholder until switchEncoding builds the real cursor over the
	// decoded bytes
	ctx.cursor = strcursor.NewRuneCursor(bytes.NewReader(b))
	ctx.instate = psStart
	ctx.sax = p.sax
	ctx.userData = ctx
	ctx.diag = p.diag
	ctx.nameCase = p.nameCase
	ctx.defaultEncoding = p.defaultEncoding
	ctx.maxDepth = p.maxDepth
	ctx.voidEndEvents = p.voidEndEvents
	ctx.keepInterElement = p.keepInterElement
	ctx.errorRecovery = p.errorRecovery
	return nil
}

func (ctx *parserCtx) release() error {
	ctx.sax = nil
	ctx.userData = nil
	ctx.raw = nil
	return nil
}

func (ctx *parserCtx) error(err error) error {
	// If it's wrapped, just return as is
	if _, ok := err.(ErrParseError); ok {
		return err
	}

	return ErrParseError{
		Column:     ctx.cursor.Column(),
		Err:        err,
		Line:       ctx.cursor.Line(),
		LineNumber: ctx.cursor.LineNumber(),
	}
}

// warn reports a recoverable problem and keeps going.
func (ctx *parserCtx) warn(err error) {
	d := Diagnostic{
		Err:        err,
		Column:     ctx.cursor.Column(),
		LineNumber: ctx.cursor.LineNumber(),
	}
	if !ctx.errorRecovery && ctx.strictErr == nil {
		ctx.strictErr = ctx.error(d.Err)
	}
	if h := ctx.diag; h != nil {
		h(d)
		return
	}
	fLogger.WithField("line", d.LineNumber).
		WithField("column", d.Column).
		Warn(d.Err)
}

const (
	encNone    = ""
	encUTF8    = "utf-8"
	encUTF16LE = "utf-16le"
	encUTF16BE = "utf-16be"
)

var (
	patUTF8BOM   = []byte{0xEF, 0xBB, 0xBF}
	patUTF16LE2B = []byte{0xFF, 0xFE}
	patUTF16BE2B = []byte{0xFE, 0xFF}
)

// detectEncoding looks for a byte order mark. The BOM bytes are
// stripped from the raw input before the cursor is built over it, so
// they never show up as character data.
func (ctx *parserCtx) detectEncoding() (string, error) {
	if debug.Enabled {
		g := debug.IPrintf("START detectEncoding")
		defer g.IRelease("END   detectEncoding")
	}

	if bytes.HasPrefix(ctx.raw, patUTF8BOM) {
		ctx.raw = ctx.raw[len(patUTF8BOM):]
		return encUTF8, nil
	}
	if bytes.HasPrefix(ctx.raw, patUTF16BE2B) {
		ctx.raw = ctx.raw[len(patUTF16BE2B):]
		return encUTF16BE, nil
	}
	if bytes.HasPrefix(ctx.raw, patUTF16LE2B) {
		ctx.raw = ctx.raw[len(patUTF16LE2B):]
		return encUTF16LE, nil
	}
	return encNone, errFailedToDetectEncoding
}

// sniffLimit bounds how far into the document the meta prescan looks.
const sniffLimit = 1024

// sniffMeta scans the first kilobyte of raw (undecoded) input for a
// charset declaration: an XML declaration's encoding attribute, a
// <meta charset=...>, or the http-equiv Content-Type form. Labels are
// matched byte-wise, which is safe for every ASCII-compatible encoding
// the prescan can declare.
func (ctx *parserCtx) sniffMeta() string {
	limit := len(ctx.raw)
	if limit > sniffLimit {
		limit = sniffLimit
	}
	window := bytes.ToLower(ctx.raw[:limit])

	if bytes.HasPrefix(window, []byte("<?xml")) {
		decl := window
		if end := bytes.Index(decl, []byte("?>")); end >= 0 {
			decl = decl[:end]
		}
		if k := bytes.Index(decl, []byte("encoding")); k >= 0 {
			rest := bytes.TrimLeft(decl[k+len("encoding"):], " \t\r\n")
			if len(rest) > 0 && rest[0] == '=' {
				if label := charsetLabel(rest[1:]); label != "" {
					return label
				}
			}
		}
	}

	for i := 0; ; {
		j := bytes.Index(window[i:], []byte("<meta"))
		if j < 0 {
			return encNone
		}
		i += j
		end := bytes.IndexByte(window[i:], '>')
		if end < 0 {
			return encNone
		}
		tag := window[i : i+end]
		i += end

		if label := metaCharset(tag); label != "" {
			return label
		}
	}
}

// metaCharset extracts a charset label from the raw bytes of a single
// meta tag, or returns "" if the tag declares none. The "charset="
// match covers both the direct attribute and the http-equiv form,
// where it appears inside the content attribute value.
func metaCharset(tag []byte) string {
	k := bytes.Index(tag, []byte("charset"))
	if k < 0 {
		return ""
	}
	rest := bytes.TrimLeft(tag[k+len("charset"):], " \t\r\n")
	if len(rest) == 0 || rest[0] != '=' {
		return ""
	}
	return charsetLabel(rest[1:])
}

// charsetLabel takes the bytes following "charset=" and cuts out the
// label, honoring optional quoting.
func charsetLabel(label []byte) string {
	if len(label) > 0 && (label[0] == '"' || label[0] == '\'') {
		quote := label[0]
		label = label[1:]
		if j := bytes.IndexByte(label, quote); j >= 0 {
			label = label[:j]
		}
	} else if i := bytes.IndexAny(label, "\"' \t\r\n;/"); i >= 0 {
		label = label[:i]
	}
	return encoding.Normalize(string(label))
}

// switchEncoding re-decodes the remaining input with the encoding
// committed in ctx.encoding and replaces the cursor. An unsupported
// label is recoverable: a diagnostic is raised and the configured
// default takes over.
func (ctx *parserCtx) switchEncoding() error {
	if ctx.encoding == "" {
		ctx.encoding = ctx.defaultEncoding
	}

	enc := encoding.Load(ctx.encoding)
	if enc == nil {
		ctx.warn(errors.Wrap(ErrInvalidEncodingName, ctx.encoding))
		ctx.encoding = ctx.defaultEncoding
		enc = encoding.Load(ctx.encoding)
	}

	// We're going to have to replace the cursor
	b, err := enc.NewDecoder().Bytes(ctx.raw)
	if err != nil {
		return ctx.error(err)
	}

	ctx.cursor = strcursor.NewRuneCursor(bytes.NewReader(b))

	return nil
}

func (ctx *parserCtx) curDone() bool {
	return ctx.cursor.Done()
}

func (ctx *parserCtx) curAdvance(n int) {
	defer ctx.markEOF()
	// Advance only pops runes the cursor has already decoded; PeekN
	// forces the read-ahead buffer to hold n of them first
	ctx.cursor.PeekN(n)
	ctx.cursor.Advance(n)
}

func (ctx *parserCtx) curPeek(n int) rune {
	return ctx.cursor.PeekN(n)
}

func (ctx *parserCtx) markEOF() {
	if ctx.cursor.Done() {
		ctx.instate = psEOF
	}
}

func (ctx *parserCtx) curConsume(n int) string {
	defer ctx.markEOF()
	buf := make([]byte, 0, n)
	for i := 1; i <= n; i++ {
		c := ctx.cursor.PeekN(i)
		if c == utf8.RuneError {
			break
		}
		buf = utf8.AppendRune(buf, c)
	}
	ctx.cursor.Advance(n)
	return string(buf)
}

func (ctx *parserCtx) curConsumePrefix(s string) bool {
	defer ctx.markEOF()
	return ctx.cursor.ConsumeString(s)
}

func (ctx *parserCtx) curHasPrefix(s string) bool {
	return ctx.cursor.HasPrefixString(s)
}

func foldASCII(c rune) rune {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// curHasPrefixFold is the ASCII-case-insensitive version of
// curHasPrefix, for markup keywords like "<!DOCTYPE".
func (ctx *parserCtx) curHasPrefixFold(s string) bool {
	for i, r := range s {
		c := ctx.curPeek(i + 1)
		if c == utf8.RuneError || foldASCII(c) != foldASCII(r) {
			return false
		}
	}
	return true
}

func isBlankCh(c rune) bool {
	return c == 0x20 || (0x9 <= c && c <= 0xa) || c == 0xd
}

func (ctx *parserCtx) skipBlanks() bool {
	i := 1
	for {
		c := ctx.curPeek(i)
		if !isBlankCh(c) {
			break
		}
		i++
	}
	if i > 1 {
		ctx.curAdvance(i - 1)
		return true
	}
	return false
}

// docLocator adapts the cursor to the sax.DocumentLocator interface.
// It is live: its position advances together with the parse.
type docLocator struct {
	ctx *parserCtx
}

func (l *docLocator) LineNumber() int {
	return l.ctx.cursor.LineNumber()
}

func (l *docLocator) Column() int {
	return l.ctx.cursor.Column()
}

func (ctx *parserCtx) newToken(typ TokenType) *Token {
	return &Token{
		Type:       typ,
		LineNumber: ctx.cursor.LineNumber(),
		Column:     ctx.cursor.Column(),
	}
}

func (ctx *parserCtx) foldName(s string) string {
	switch ctx.nameCase {
	case NameCaseUpper:
		return strings.ToUpper(s)
	case NameCasePreserve:
		return s
	default:
		return strings.ToLower(s)
	}
}

func isNameStartCh(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// nextToken produces the next token from the input, or nil at end of
// input. Errors are fatal; everything recoverable has already been
// reported through warn and repaired.
func (ctx *parserCtx) nextToken() (*Token, error) {
	if ctx.instate == psEOF || ctx.curDone() {
		return nil, nil
	}

	if ctx.instate == psRawText || ctx.instate == psRCDATA {
		return ctx.parseRawText()
	}

	if ctx.curPeek(1) != '<' {
		return ctx.parseText()
	}

	switch {
	case ctx.curHasPrefix("<!--"):
		return ctx.parseComment()
	case ctx.curHasPrefix("<![CDATA["):
		return ctx.parseCDATA()
	case ctx.curHasPrefixFold("<!DOCTYPE"):
		return ctx.parseDoctype()
	case ctx.curHasPrefix("<!"):
		return ctx.parseBogusComment(2)
	case ctx.curHasPrefix("<?"):
		return ctx.parsePI()
	case ctx.curPeek(2) == '/':
		if isNameStartCh(ctx.curPeek(3)) {
			return ctx.parseEndTag()
		}
		if ctx.curPeek(3) == '>' {
			// "</>" has no name to act on; drop it
			ctx.warn(ErrInvalidName)
			ctx.curAdvance(3)
			return ctx.nextToken()
		}
		ctx.warn(ErrInvalidName)
		return ctx.parseBogusComment(2)
	case isNameStartCh(ctx.curPeek(2)):
		return ctx.parseStartTag()
	default:
		// a lone '<' that opens nothing is literal text
		return ctx.parseText()
	}
}

// parseText accumulates character data up to the next markup
// candidate, resolving character references along the way. A '<' that
// could not begin markup is consumed here as a literal.
func (ctx *parserCtx) parseText() (*Token, error) {
	tok := ctx.newToken(TextToken)
	buf := pool.ByteSlice().Get()
	defer pool.ByteSlice().Put(buf)

	for !ctx.curDone() {
		c := ctx.curPeek(1)
		if c == '<' && len(buf) > 0 && ctx.startsMarkup() {
			break
		}
		if c == '&' {
			buf = ctx.resolveReference(buf, false)
			continue
		}
		buf = utf8.AppendRune(buf, c)
		ctx.curAdvance(1)
	}

	tok.Data = string(buf)
	return tok, nil
}

// startsMarkup reports whether the '<' at the cursor begins something
// nextToken would treat as markup rather than literal text.
func (ctx *parserCtx) startsMarkup() bool {
	c := ctx.curPeek(2)
	return isNameStartCh(c) || c == '/' || c == '!' || c == '?'
}

// resolveReference consumes the '&' at the cursor plus whatever
// follows it, appending the replacement text (or the literal input
// when nothing matches) to buf. In attribute context a legacy match
// without its semicolon is left literal when followed by an
// alphanumeric or '=', the way browsers keep URLs like ?a=b&not=c
// intact.
func (ctx *parserCtx) resolveReference(buf []byte, inAttr bool) []byte {
	ahead := make([]rune, 0, entity.MaxLookahead)
	for i := 2; i <= entity.MaxLookahead+1; i++ {
		c := ctx.curPeek(i)
		if c == utf8.RuneError {
			break
		}
		ahead = append(ahead, c)
	}

	st := entity.Lookup(string(ahead))
	if !st.Matched {
		if len(ahead) > 0 && ahead[0] == '#' {
			ctx.warn(ErrInvalidCharRef)
		}
		ctx.curAdvance(1)
		return append(buf, '&')
	}

	if inAttr && !st.Semicolon {
		next := rune(0)
		if st.Length < len(ahead) {
			next = ahead[st.Length]
		}
		if next == '=' || unicode.IsLetter(next) || unicode.IsDigit(next) {
			ctx.curAdvance(1)
			return append(buf, '&')
		}
	}

	ctx.curAdvance(1 + st.Length)
	return append(buf, st.Value...)
}

// parseRawText handles the content of raw text and RCDATA elements.
// Everything up to the matching end tag is character data; in RCDATA
// mode character references are still resolved. A missing end tag
// swallows the rest of the document, with the balancer repairing the
// element itself at EOF.
func (ctx *parserCtx) parseRawText() (*Token, error) {
	closing := "</" + ctx.rawTag

	if ctx.curHasPrefixFold(closing) {
		term := ctx.curPeek(len(closing) + 1)
		if isBlankCh(term) || term == '>' || term == '/' || term == utf8.RuneError {
			return ctx.parseRawEndTag()
		}
	}

	tok := ctx.newToken(TextToken)
	buf := pool.ByteSlice().Get()
	defer pool.ByteSlice().Put(buf)

	for !ctx.curDone() {
		if ctx.curPeek(1) == '<' && ctx.curHasPrefixFold(closing) {
			term := ctx.curPeek(len(closing) + 1)
			if isBlankCh(term) || term == '>' || term == '/' || term == utf8.RuneError {
				break
			}
		}
		c := ctx.curPeek(1)
		if c == '&' && ctx.instate == psRCDATA {
			buf = ctx.resolveReference(buf, false)
			continue
		}
		buf = utf8.AppendRune(buf, c)
		ctx.curAdvance(1)
	}

	tok.Data = string(buf)
	return tok, nil
}

func (ctx *parserCtx) parseRawEndTag() (*Token, error) {
	tok := ctx.newToken(EndTagToken)
	tok.Name = ctx.foldName(ctx.rawTag)
	ctx.curAdvance(2 + len(ctx.rawTag))
	for !ctx.curDone() && ctx.curPeek(1) != '>' {
		ctx.curAdvance(1)
	}
	if !ctx.curConsumePrefix(">") {
		ctx.warn(ErrUnterminatedTag)
	}
	ctx.rawTag = ""
	if ctx.instate != psEOF {
		ctx.instate = psContent
	}
	return tok, nil
}

// parseName consumes a tag or attribute name. The first character has
// already been vetted by the caller; everything up to a delimiter is
// taken as-is, however unusual.
func (ctx *parserCtx) parseName(extraDelims string) (string, error) {
	i := 1
	for {
		c := ctx.curPeek(i)
		if c == utf8.RuneError || isBlankCh(c) || c == '>' || c == '/' ||
			strings.ContainsRune(extraDelims, c) {
			break
		}
		i++
		if i > MaxNameLength {
			return "", ctx.error(ErrNameTooLong)
		}
	}
	if i == 1 {
		return "", ctx.error(ErrInvalidName)
	}
	return ctx.curConsume(i - 1), nil
}

func (ctx *parserCtx) parseStartTag() (*Token, error) {
	tok := ctx.newToken(StartTagToken)
	ctx.curAdvance(1) // '<'

	name, err := ctx.parseName("")
	if err != nil {
		return nil, err
	}
	tok.Name = ctx.foldName(name)

	attrs := orderedmap.New[string, Attribute]()
	for {
		ctx.skipBlanks()
		c := ctx.curPeek(1)
		if c == utf8.RuneError {
			ctx.warn(ErrUnterminatedTag)
			break
		}
		if c == '>' {
			ctx.curAdvance(1)
			break
		}
		if c == '/' {
			if ctx.curPeek(2) == '>' {
				tok.SelfClosing = true
				ctx.curAdvance(2)
				break
			}
			// stray slash inside the tag
			ctx.curAdvance(1)
			continue
		}
		if c == '=' || c == '"' || c == '\'' {
			// junk with no attribute name in front of it
			ctx.curAdvance(1)
			continue
		}

		attr, err := ctx.parseAttribute()
		if err != nil {
			return nil, err
		}
		if err := attrs.Set(attr.name, attr); err != nil {
			ctx.warn(errors.Wrap(err, attr.name))
		}
	}

	tok.Attributes = make([]Attribute, 0, attrs.Len())
	attrs.Range(func(_ string, a Attribute) bool {
		tok.Attributes = append(tok.Attributes, a)
		return true
	})

	lower := strings.ToLower(tok.Name)
	switch classifyElement(lower) {
	case classRawText:
		if !tok.SelfClosing {
			ctx.rawTag = lower
			ctx.instate = psRawText
		}
	case classRCDATA:
		if !tok.SelfClosing {
			ctx.rawTag = lower
			ctx.instate = psRCDATA
		}
	}

	if lower == "meta" {
		ctx.checkMetaCharset(tok)
	}

	return tok, nil
}

// checkMetaCharset flags meta charset declarations that disagree with
// the encoding the parse already committed to. Late declarations never
// restart the parse; they only produce a diagnostic.
func (ctx *parserCtx) checkMetaCharset(tok *Token) {
	for _, a := range tok.Attributes {
		if strings.ToLower(a.name) != "charset" {
			continue
		}
		label := encoding.Normalize(a.value)
		if label != "" && label != ctx.encoding {
			ctx.warn(errors.Wrapf(ErrInvalidEncodingName,
				"late charset declaration '%s' ignored (document is %s)",
				label, ctx.encoding))
		}
	}
}

func (ctx *parserCtx) parseAttribute() (Attribute, error) {
	name, err := ctx.parseName("=\"'")
	if err != nil {
		return Attribute{}, err
	}
	attr := Attribute{name: ctx.foldName(name)}

	ctx.skipBlanks()
	if ctx.curPeek(1) != '=' {
		// bare attribute: the name stands in for the value
		attr.value = attr.name
		return attr, nil
	}
	ctx.curAdvance(1)
	ctx.skipBlanks()

	v, err := ctx.parseAttValue()
	if err != nil {
		return Attribute{}, err
	}
	attr.value = v
	attr.specified = true
	return attr, nil
}

func (ctx *parserCtx) parseAttValue() (string, error) {
	buf := pool.ByteSlice().Get()
	defer pool.ByteSlice().Put(buf)

	q := ctx.curPeek(1)
	if q == '"' || q == '\'' {
		ctx.curAdvance(1)
		for {
			c := ctx.curPeek(1)
			if c == utf8.RuneError {
				ctx.warn(ErrUnterminatedTag)
				break
			}
			if c == q {
				ctx.curAdvance(1)
				break
			}
			if c == '&' {
				buf = ctx.resolveReference(buf, true)
				continue
			}
			buf = utf8.AppendRune(buf, c)
			ctx.curAdvance(1)
		}
		return string(buf), nil
	}

	// unquoted value
	for {
		c := ctx.curPeek(1)
		if c == utf8.RuneError || isBlankCh(c) || c == '>' {
			break
		}
		if c == '&' {
			buf = ctx.resolveReference(buf, true)
			continue
		}
		buf = utf8.AppendRune(buf, c)
		ctx.curAdvance(1)
	}
	return string(buf), nil
}

func (ctx *parserCtx) parseEndTag() (*Token, error) {
	tok := ctx.newToken(EndTagToken)
	ctx.curAdvance(2) // '</'

	name, err := ctx.parseName("")
	if err != nil {
		return nil, err
	}
	tok.Name = ctx.foldName(name)

	// junk between the name and '>' is discarded
	for {
		c := ctx.curPeek(1)
		if c == utf8.RuneError {
			ctx.warn(ErrUnterminatedTag)
			break
		}
		ctx.curAdvance(1)
		if c == '>' {
			break
		}
	}
	return tok, nil
}

func (ctx *parserCtx) parseComment() (*Token, error) {
	tok := ctx.newToken(CommentToken)
	ctx.curAdvance(4) // '<!--'

	i := 1
	for {
		c := ctx.curPeek(i)
		if c == utf8.RuneError {
			// unterminated comment swallows the remaining input
			ctx.warn(ErrUnterminatedComment)
			tok.Data = ctx.curConsume(i - 1)
			return tok, nil
		}
		if c == '-' && ctx.curPeek(i+1) == '-' && ctx.curPeek(i+2) == '>' {
			tok.Data = ctx.curConsume(i - 1)
			ctx.curAdvance(3)
			return tok, nil
		}
		i++
	}
}

// parseBogusComment turns malformed markup declarations ("<!foo>") and
// nameless end tags into comment tokens, the way browsers do.
func (ctx *parserCtx) parseBogusComment(skip int) (*Token, error) {
	tok := ctx.newToken(CommentToken)
	ctx.curAdvance(skip)

	i := 1
	for {
		c := ctx.curPeek(i)
		if c == utf8.RuneError {
			tok.Data = ctx.curConsume(i - 1)
			return tok, nil
		}
		if c == '>' {
			tok.Data = ctx.curConsume(i - 1)
			ctx.curAdvance(1)
			return tok, nil
		}
		i++
	}
}

func (ctx *parserCtx) parseCDATA() (*Token, error) {
	tok := ctx.newToken(CDATAToken)
	ctx.curAdvance(9) // '<![CDATA['

	i := 1
	for {
		c := ctx.curPeek(i)
		if c == utf8.RuneError {
			ctx.warn(ErrUnterminatedCDATA)
			tok.Data = ctx.curConsume(i - 1)
			return tok, nil
		}
		if c == ']' && ctx.curPeek(i+1) == ']' && ctx.curPeek(i+2) == '>' {
			tok.Data = ctx.curConsume(i - 1)
			ctx.curAdvance(3)
			return tok, nil
		}
		i++
	}
}

func (ctx *parserCtx) parseDoctype() (*Token, error) {
	tok := ctx.newToken(DoctypeToken)
	ctx.curAdvance(9) // '<!DOCTYPE'
	ctx.skipBlanks()

	if c := ctx.curPeek(1); c != '>' && c != utf8.RuneError {
		name, err := ctx.parseName("")
		if err != nil {
			return nil, err
		}
		tok.Name = strings.ToLower(name)
	}

	// PUBLIC "..." "..." / SYSTEM "..."
	ctx.skipBlanks()
	if ctx.curHasPrefixFold("PUBLIC") {
		ctx.curAdvance(6)
		tok.PublicID = ctx.parseQuotedID()
		tok.SystemID = ctx.parseQuotedID()
	} else if ctx.curHasPrefixFold("SYSTEM") {
		ctx.curAdvance(6)
		tok.SystemID = ctx.parseQuotedID()
	}

	for {
		c := ctx.curPeek(1)
		if c == utf8.RuneError {
			ctx.warn(ErrUnterminatedTag)
			break
		}
		ctx.curAdvance(1)
		if c == '>' {
			break
		}
	}
	return tok, nil
}

func (ctx *parserCtx) parseQuotedID() string {
	ctx.skipBlanks()
	q := ctx.curPeek(1)
	if q != '"' && q != '\'' {
		return ""
	}
	ctx.curAdvance(1)
	i := 1
	for {
		c := ctx.curPeek(i)
		if c == utf8.RuneError || c == '>' {
			return ctx.curConsume(i - 1)
		}
		if c == q {
			s := ctx.curConsume(i - 1)
			ctx.curAdvance(1)
			return s
		}
		i++
	}
}

// parsePI handles '<?...?>'. A plain '>' also terminates, since HTML
// treats the whole construct as a bogus instruction anyway.
func (ctx *parserCtx) parsePI() (*Token, error) {
	tok := ctx.newToken(ProcessingInstructionToken)
	ctx.curAdvance(2) // '<?'

	if isNameStartCh(ctx.curPeek(1)) {
		name, err := ctx.parseName("?")
		if err != nil {
			return nil, err
		}
		tok.Name = name
	}
	ctx.skipBlanks()

	i := 1
	for {
		c := ctx.curPeek(i)
		if c == utf8.RuneError {
			ctx.warn(ErrUnterminatedTag)
			tok.Data = ctx.curConsume(i - 1)
			return tok, nil
		}
		if c == '?' && ctx.curPeek(i+1) == '>' {
			tok.Data = ctx.curConsume(i - 1)
			ctx.curAdvance(2)
			return tok, nil
		}
		if c == '>' {
			tok.Data = ctx.curConsume(i - 1)
			ctx.curAdvance(1)
			return tok, nil
		}
		i++
	}
}
