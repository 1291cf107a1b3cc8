package filter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagsoup-go/tagsoup"
	"github.com/tagsoup-go/tagsoup/filter"
)

func clean(t *testing.T, src string, stages func(next *filter.Writer) tagsoup.ParseOption) string {
	t.Helper()

	var buf bytes.Buffer
	w := filter.NewWriter(&buf)

	var opt tagsoup.ParseOption
	if stages != nil {
		opt = stages(w)
	} else {
		opt = tagsoup.WithSAX(w)
	}

	p, err := tagsoup.NewParser(opt)
	require.NoError(t, err)
	require.NoError(t, p.Parse(context.Background(), []byte(src)))
	require.NoError(t, w.Err())
	return buf.String()
}

func TestWriterRepairsMarkup(t *testing.T) {
	out := clean(t, "<p>A<p>B", nil)
	assert.Equal(t, "<p>A</p><p>B</p>", out)
}

func TestWriterQuotesAndEscapes(t *testing.T) {
	out := clean(t, `<a href=x&amp;y title=z>a & b < c</a>`, nil)
	assert.Equal(t, `<a href="x&amp;y" title="z">a &amp; b &lt; c</a>`, out)
}

func TestWriterVoidElements(t *testing.T) {
	out := clean(t, "<p>a<br>b</p>", nil)
	assert.Equal(t, "<p>a<br>b</p>", out, "void elements take no end tag")
}

func TestWriterBareAttribute(t *testing.T) {
	out := clean(t, "<input checked>", nil)
	assert.Equal(t, "<input checked>", out)
}

func TestWriterRawText(t *testing.T) {
	out := clean(t, "<script>if (a < b) x();</script>", nil)
	assert.Equal(t, "<script>if (a < b) x();</script>", out,
		"script content must not be entity-escaped")
}

func TestWriterComment(t *testing.T) {
	out := clean(t, "x<!-- note -->y", nil)
	assert.Equal(t, "x<!-- note -->y", out)
}

func TestWriterCDATA(t *testing.T) {
	out := clean(t, "<div><![CDATA[a & b]]></div>", nil)
	assert.Equal(t, "<div><![CDATA[a & b]]></div>", out)
}

func TestElementRemover(t *testing.T) {
	out := clean(t, "<div>A<script>bad()</script>B</div>", func(w *filter.Writer) tagsoup.ParseOption {
		return tagsoup.WithSAX(filter.NewElementRemover(w, "script"))
	})
	assert.Equal(t, "<div>AB</div>", out)
}

func TestElementRemoverNested(t *testing.T) {
	out := clean(t, "<div>A<aside>x<aside>y</aside>z</aside>B</div>", func(w *filter.Writer) tagsoup.ParseOption {
		return tagsoup.WithSAX(filter.NewElementRemover(w, "aside"))
	})
	assert.Equal(t, "<div>AB</div>", out, "nested matches are tracked by depth")
}

func TestBasePassesThrough(t *testing.T) {
	out := clean(t, "<p>a</p>", func(w *filter.Writer) tagsoup.ParseOption {
		return tagsoup.WithSAX(filter.NewBase(w))
	})
	assert.Equal(t, "<p>a</p>", out)
}
