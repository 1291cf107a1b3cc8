package tagsoup

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagsoup-go/tagsoup/sax"
)

type event struct {
	kind      string
	name      string
	data      string
	synthetic bool
	line      int
}

func parseEvents(t *testing.T, src string, options ...ParseOption) ([]event, []Diagnostic, string) {
	t.Helper()

	var (
		events   []event
		diags    []Diagnostic
		encoding string
	)

	h := sax.New()
	h.StartDocumentHandler = func(_ sax.Context, enc string) error {
		encoding = enc
		return nil
	}
	h.StartElementHandler = func(_ sax.Context, e sax.ParsedElement) error {
		events = append(events, event{
			kind: "start",
			name: e.Name(),
			line: e.Augmentation().Line(),
		})
		return nil
	}
	h.EndElementHandler = func(_ sax.Context, name string, aug sax.Augmentation) error {
		events = append(events, event{
			kind:      "end",
			name:      name,
			synthetic: aug.Synthetic(),
			line:      aug.Line(),
		})
		return nil
	}
	h.CharactersHandler = func(_ sax.Context, data []byte, _ sax.Augmentation) error {
		events = append(events, event{kind: "chars", data: string(data)})
		return nil
	}
	h.IgnorableWhitespaceHandler = func(_ sax.Context, data []byte) error {
		events = append(events, event{kind: "ws", data: string(data)})
		return nil
	}
	h.CommentHandler = func(_ sax.Context, data []byte, _ sax.Augmentation) error {
		events = append(events, event{kind: "comment", data: string(data)})
		return nil
	}
	h.StartCDATAHandler = func(_ sax.Context) error {
		events = append(events, event{kind: "cdata-start"})
		return nil
	}
	h.EndCDATAHandler = func(_ sax.Context) error {
		events = append(events, event{kind: "cdata-end"})
		return nil
	}
	h.ProcessingInstructionHandler = func(_ sax.Context, target, data string, _ sax.Augmentation) error {
		events = append(events, event{kind: "pi", name: target, data: data})
		return nil
	}

	options = append(options,
		WithSAX(h),
		WithDiagnosticHandler(func(d Diagnostic) {
			diags = append(diags, d)
		}),
	)
	p, err := NewParser(options...)
	require.NoError(t, err, "NewParser should succeed")
	require.NoError(t, p.Parse(context.Background(), []byte(src)), "Parse should succeed")

	return events, diags, encoding
}

// shorthand for comparing streams without dragging locations along
func kinds(events []event) []string {
	var out []string
	for _, e := range events {
		s := e.kind
		if e.name != "" {
			s += " " + e.name
		}
		if e.data != "" {
			s += " " + e.data
		}
		if e.synthetic {
			s += " (synthetic)"
		}
		out = append(out, s)
	}
	return out
}

func TestBalanceSiblingParagraphs(t *testing.T) {
	events, diags, _ := parseEvents(t, "<p>A<p>B")
	require.Empty(t, diags)
	require.Equal(t, []string{
		"start p",
		"chars A",
		"end p (synthetic)",
		"start p",
		"chars B",
		"end p (synthetic)",
	}, kinds(events), "paragraphs become siblings, not nested")
}

func TestBalanceFormattingAcrossBlocks(t *testing.T) {
	events, diags, _ := parseEvents(t, "<b>A<div>B</div>C</b>")
	require.Empty(t, diags)
	require.Equal(t, []string{
		"start b",
		"chars A",
		"start div",
		"chars B",
		"end div",
		"chars C",
		"end b",
	}, kinds(events), "formatting elements survive block boundaries")
}

func TestBalanceStrayEndTag(t *testing.T) {
	events, diags, _ := parseEvents(t, "A</div>B")
	require.Len(t, diags, 1, "stray end tag should be reported")
	require.Equal(t, []string{
		"chars A",
		"chars B",
	}, kinds(events), "stray end tag produces no events")
}

func TestBalanceListItems(t *testing.T) {
	events, _, _ := parseEvents(t, "<ul><li>a<li>b</ul>")
	require.Equal(t, []string{
		"start ul",
		"start li",
		"chars a",
		"end li (synthetic)",
		"start li",
		"chars b",
		"end li (synthetic)",
		"end ul",
	}, kinds(events))
}

func TestBalanceListItemClosesParagraph(t *testing.T) {
	events, _, _ := parseEvents(t, "<ul><li><p>a<li>b</ul>")
	require.Equal(t, []string{
		"start ul",
		"start li",
		"start p",
		"chars a",
		"end p (synthetic)",
		"end li (synthetic)",
		"start li",
		"chars b",
		"end li (synthetic)",
		"end ul",
	}, kinds(events))
}

func TestBalanceTable(t *testing.T) {
	events, _, _ := parseEvents(t, "<b><table><tr><td>x</table>")
	require.Equal(t, []string{
		"end b (synthetic)",
		"start table",
		"start tr",
		"start td",
		"chars x",
		"end td (synthetic)",
		"end tr (synthetic)",
		"end table",
	}, kinds(events)[1:], "a table cannot sit inside inline formatting")
	require.Equal(t, "start b", kinds(events)[0])
}

func TestBalanceEndTagUnwinds(t *testing.T) {
	events, _, _ := parseEvents(t, "<div><span><i>x</div>")
	require.Equal(t, []string{
		"start div",
		"start span",
		"start i",
		"chars x",
		"end i (synthetic)",
		"end span (synthetic)",
		"end div",
	}, kinds(events), "an end tag closes everything above its match")
}

func TestVoidElements(t *testing.T) {
	events, _, _ := parseEvents(t, "<p>a<br>b</p>")
	require.Equal(t, []string{
		"start p",
		"chars a",
		"start br",
		"end br (synthetic)",
		"chars b",
		"end p",
	}, kinds(events))

	events, _, _ = parseEvents(t, "<p>a<br>b</p>", WithVoidEndEvents(false))
	require.Equal(t, []string{
		"start p",
		"chars a",
		"start br",
		"chars b",
		"end p",
	}, kinds(events))
}

func TestSelfClosingNonVoid(t *testing.T) {
	events, _, _ := parseEvents(t, "<span/>x")
	require.Equal(t, []string{
		"start span",
		"end span (synthetic)",
		"chars x",
	}, kinds(events))
}

func TestCDATAEvents(t *testing.T) {
	events, _, _ := parseEvents(t, "<div><![CDATA[x]]></div>")
	require.Equal(t, []string{
		"start div",
		"cdata-start",
		"chars x",
		"cdata-end",
		"end div",
	}, kinds(events))
}

func TestInterElementWhitespace(t *testing.T) {
	events, _, _ := parseEvents(t, "<p>a</p>\n<p>b</p>")
	require.Equal(t, []string{
		"start p",
		"chars a",
		"end p",
		"ws \n",
		"start p",
		"chars b",
		"end p",
	}, kinds(events))

	events, _, _ = parseEvents(t, "<p>a</p>\n<p>b</p>", WithInterElementWhitespace(true))
	assert.Equal(t, "chars \n", kinds(events)[3],
		"whitespace promoted to character data on request")
}

func TestDoctypeProducesNoEvents(t *testing.T) {
	events, _, _ := parseEvents(t, "<!DOCTYPE html><p>x</p>")
	require.Equal(t, []string{
		"start p",
		"chars x",
		"end p",
	}, kinds(events))
}

func TestSyntheticLocation(t *testing.T) {
	events, _, _ := parseEvents(t, "<p>A\n<p>B")
	require.Equal(t, "end p (synthetic)", kinds(events)[2])
	assert.Equal(t, 1, events[2].line,
		"a synthesized close carries the opening tag's location")
}

func TestMaxDepth(t *testing.T) {
	h := sax.New()
	p, err := NewParser(WithSAX(h), WithMaxDepth(2))
	require.NoError(t, err)

	err = p.Parse(context.Background(), []byte("<a><b><i>x"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNestingTooDeep)
}

func TestEmptyDocument(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)
	err = p.Parse(context.Background(), nil)
	require.ErrorIs(t, err, ErrEmptyDocument)
}

func TestConfigErrors(t *testing.T) {
	_, err := NewParser(WithMaxDepth(0))
	require.Error(t, err)
	var ce ErrConfig
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "MaxDepth", ce.Name)
	assert.False(t, ce.Unknown)

	_, err = NewParser(WithDefaultEncoding("klingon-8"))
	require.Error(t, err)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "DefaultEncoding", ce.Name)
}

func TestErrorRecoveryDisabled(t *testing.T) {
	p, err := NewParser(WithErrorRecovery(false))
	require.NoError(t, err)
	err = p.ParseString(context.Background(), "<p>A</q></p>")
	require.Error(t, err, "a stray end tag is fatal without recovery")

	p, err = NewParser(WithErrorRecovery(false))
	require.NoError(t, err)
	require.NoError(t, p.ParseString(context.Background(), "<p>A</p>"),
		"clean input still parses without recovery")
}

func TestEncodingDefault(t *testing.T) {
	events, _, enc := parseEvents(t, "<p>a\x93b</p>")
	require.Equal(t, "windows-1252", enc)
	require.Equal(t, "chars a“b", kinds(events)[1],
		"unlabeled bytes decode as windows-1252")
}

func TestEncodingMeta(t *testing.T) {
	events, _, enc := parseEvents(t, "<meta charset=\"utf-8\"><p>\xc3\xa9</p>")
	require.Equal(t, "utf-8", enc)
	found := false
	for _, e := range events {
		if e.kind == "chars" && e.data == "é" {
			found = true
		}
	}
	assert.True(t, found, "meta declaration selects utf-8")
}

func TestEncodingXMLDecl(t *testing.T) {
	_, _, enc := parseEvents(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?><p>\xc3\xa9</p>")
	require.Equal(t, "utf-8", enc, "an XML declaration's encoding attribute is honored")
}

func TestEncodingBOM(t *testing.T) {
	events, _, enc := parseEvents(t, "\xef\xbb\xbf<p>xy</p>")
	require.Equal(t, "utf-8", enc)
	require.Equal(t, []string{"start p", "chars xy", "end p"}, kinds(events),
		"the byte order mark never reaches the content")
}

func TestLateCharsetDeclaration(t *testing.T) {
	src := "<!--" + strings.Repeat("x", 1100) + "--><meta charset=\"utf-8\"><p>a</p>"
	_, diags, enc := parseEvents(t, src)
	require.Equal(t, "windows-1252", enc,
		"a declaration beyond the prescan window cannot change the encoding")
	require.NotEmpty(t, diags, "but it is reported")
}

func TestParserReuse(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if err := p.ParseString(context.Background(), "<p>A<p>B<ul><li>x<li>y</ul>"); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestParseCancellation(t *testing.T) {
	c, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := NewParser()
	require.NoError(t, err)
	err = p.ParseString(c, "<p>x</p>")
	require.ErrorIs(t, err, context.Canceled)
}
