package filter

import (
	"io"
	"strings"

	"github.com/tagsoup-go/tagsoup"
	"github.com/tagsoup-go/tagsoup/entity"
	"github.com/tagsoup-go/tagsoup/sax"
)

// Writer is a terminal sax.Handler that serializes the stream back to
// markup. Fed directly from a parse it produces a cleaned-up version
// of the input: balanced, consistently quoted, entities re-encoded.
type Writer struct {
	out io.Writer
	// names of open raw text elements; content inside them is
	// written verbatim, not escaped
	rawDepth int
	inCDATA  bool
	err      error
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Err returns the first write error encountered. Once set, every
// later event is a no-op.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

// escape rewrites the characters that have markup meaning using their
// named entities. attr additionally escapes the double quote, for use
// inside quoted attribute values.
func escape(s string, attr bool) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&', '<', '>':
			name, _ := entity.Name(r)
			b.WriteByte('&')
			b.WriteString(name)
		case '"':
			if attr {
				name, _ := entity.Name(r)
				b.WriteByte('&')
				b.WriteString(name)
				continue
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (w *Writer) SetDocumentLocator(_ sax.Context, _ sax.DocumentLocator) error {
	return nil
}

func (w *Writer) StartDocument(_ sax.Context, _ string) error {
	return w.err
}

func (w *Writer) EndDocument(_ sax.Context) error {
	return w.err
}

func (w *Writer) StartElement(_ sax.Context, elem sax.ParsedElement) error {
	w.write("<" + elem.Name())
	for _, a := range elem.Attributes() {
		if !a.Specified() {
			w.write(" " + a.Name())
			continue
		}
		w.write(" " + a.Name() + `="` + escape(a.Value(), true) + `"`)
	}
	w.write(">")
	if tagsoup.IsRawTextElement(elem.Name()) {
		w.rawDepth++
	}
	return w.err
}

func (w *Writer) EndElement(_ sax.Context, name string, _ sax.Augmentation) error {
	if tagsoup.IsRawTextElement(name) && w.rawDepth > 0 {
		w.rawDepth--
	}
	if tagsoup.IsVoidElement(name) {
		return w.err
	}
	w.write("</" + name + ">")
	return w.err
}

func (w *Writer) Characters(_ sax.Context, data []byte, _ sax.Augmentation) error {
	if w.rawDepth > 0 || w.inCDATA {
		w.write(string(data))
		return w.err
	}
	w.write(escape(string(data), false))
	return w.err
}

func (w *Writer) IgnorableWhitespace(_ sax.Context, data []byte) error {
	w.write(string(data))
	return w.err
}

func (w *Writer) Comment(_ sax.Context, data []byte, _ sax.Augmentation) error {
	w.write("<!--" + string(data) + "-->")
	return w.err
}

func (w *Writer) StartCDATA(_ sax.Context) error {
	w.inCDATA = true
	w.write("<![CDATA[")
	return w.err
}

func (w *Writer) EndCDATA(_ sax.Context) error {
	w.inCDATA = false
	w.write("]]>")
	return w.err
}

func (w *Writer) ProcessingInstruction(_ sax.Context, target, data string, _ sax.Augmentation) error {
	if data == "" {
		w.write("<?" + target + "?>")
		return w.err
	}
	w.write("<?" + target + " " + data + "?>")
	return w.err
}
