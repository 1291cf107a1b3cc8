package tagsoup

// Element classification drives both the scanner (raw text and RCDATA
// content modes) and the balancer (implied closures, void handling).
// Names in the tables are lower case; lookups fold the queried name.

import "strings"

type elementClass uint8

const (
	classOrdinary elementClass = iota
	classVoid
	classRawText
	classRCDATA
	classFormatting
	classStructural
)

var voidElements = map[string]bool{
	"area": true, "base": true, "basefont": true, "bgsound": true,
	"br": true, "col": true, "embed": true, "frame": true, "hr": true,
	"img": true, "input": true, "isindex": true, "keygen": true,
	"link": true, "meta": true, "param": true, "source": true,
	"spacer": true, "track": true, "wbr": true,
}

// rawTextElements take opaque content: no tags, no character
// references, everything up to the matching end tag is text.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "xmp": true,
	"iframe": true, "noembed": true, "noframes": true,
}

// rcdataElements take text-only content in which character references
// are still resolved.
var rcdataElements = map[string]bool{
	"title": true, "textarea": true,
}

var formattingElements = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true,
	"font": true, "i": true, "nobr": true, "s": true, "small": true,
	"strike": true, "strong": true, "tt": true, "u": true,
}

var structuralElements = map[string]bool{
	"table": true, "caption": true, "colgroup": true, "thead": true,
	"tbody": true, "tfoot": true, "tr": true, "td": true, "th": true,
}

func classifyElement(name string) elementClass {
	name = strings.ToLower(name)
	switch {
	case voidElements[name]:
		return classVoid
	case rawTextElements[name]:
		return classRawText
	case rcdataElements[name]:
		return classRCDATA
	case formattingElements[name]:
		return classFormatting
	case structuralElements[name]:
		return classStructural
	default:
		return classOrdinary
	}
}

// IsVoidElement reports whether name never takes content or an end
// tag, like br or img. Serializers use it to suppress end tags.
func IsVoidElement(name string) bool {
	return voidElements[strings.ToLower(name)]
}

// IsRawTextElement reports whether name takes opaque text content in
// which character references have no meaning, like script or style.
func IsRawTextElement(name string) bool {
	return rawTextElements[strings.ToLower(name)]
}

// blockElements are the elements whose start tag implies the end of an
// open paragraph.
var blockElements = []string{
	"address", "article", "aside", "blockquote", "center", "details",
	"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
	"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6", "header",
	"hgroup", "hr", "listing", "main", "menu", "nav", "ol", "p",
	"plaintext", "pre", "section", "summary", "table", "ul",
}

// impliedClosers maps an incoming element name to the set of element
// names it implicitly closes while one of them sits on top of the open
// element stack. The closure is applied repeatedly, so nested closable
// runs (td inside tr inside tbody) unwind in one step.
var impliedClosers = map[string]map[string]bool{}

func init() {
	closer := func(incoming string, closes ...string) {
		set, ok := impliedClosers[incoming]
		if !ok {
			set = make(map[string]bool)
			impliedClosers[incoming] = set
		}
		for _, name := range closes {
			set[name] = true
		}
	}

	for _, name := range blockElements {
		closer(name, "p")
	}

	closer("li", "li", "p")
	closer("dd", "dd", "dt", "p")
	closer("dt", "dd", "dt", "p")
	closer("option", "option")
	closer("optgroup", "option", "optgroup")
	closer("rt", "rt", "rp")
	closer("rp", "rt", "rp")

	cells := []string{"td", "th"}
	rowsAndCells := append([]string{"tr"}, cells...)
	sections := []string{"thead", "tbody", "tfoot"}

	closer("td", append(cells, "p")...)
	closer("th", append(cells, "p")...)
	closer("tr", append(rowsAndCells, "p")...)
	for _, name := range sections {
		closer(name, append(rowsAndCells, sections...)...)
		closer(name, "caption", "colgroup")
	}
	closer("caption", append(rowsAndCells, "caption")...)
	closer("colgroup", "colgroup")
	closer("col", "colgroup")

	// A table start forces open inline formatting closed first; text
	// between table structure and formatting tags cannot nest.
	for name := range formattingElements {
		closer("table", name)
	}
	closer("table", "p")
}

// impliedEnd reports whether an incoming start tag for name closes an
// open element called top.
func impliedEnd(name, top string) bool {
	set, ok := impliedClosers[strings.ToLower(name)]
	if !ok {
		return false
	}
	return set[strings.ToLower(top)]
}
