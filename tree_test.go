package tagsoup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeBasic(t *testing.T) {
	doc, err := Parse(context.Background(), []byte(`<p class="x">hello <b>world</b></p><!--done-->`))
	require.NoError(t, err)
	require.NotNil(t, doc)

	p, ok := doc.FirstChild().(*Element)
	require.True(t, ok, "first child should be the p element")
	require.Equal(t, "p", p.Name())

	class, ok := p.Attribute("class")
	require.True(t, ok)
	assert.Equal(t, "x", class)

	assert.Equal(t, "hello world", string(p.Content()))

	b, ok := p.LastChild().(*Element)
	require.True(t, ok)
	assert.Equal(t, "b", b.Name())
	assert.Equal(t, "world", string(b.Content()))

	c, ok := doc.LastChild().(*Comment)
	require.True(t, ok)
	assert.Equal(t, "done", string(c.Content()))
}

func TestTreeTopLevelText(t *testing.T) {
	doc, err := Parse(context.Background(), []byte("x<p>y</p>z"))
	require.NoError(t, err)

	// no wrapper element is invented around top-level content
	first, ok := doc.FirstChild().(*Text)
	require.True(t, ok)
	assert.Equal(t, "x", string(first.Content()))

	last, ok := doc.LastChild().(*Text)
	require.True(t, ok)
	assert.Equal(t, "z", string(last.Content()))

	assert.Equal(t, "xyz", string(doc.Content()))
}

func TestTreeRepairedNesting(t *testing.T) {
	doc, err := Parse(context.Background(), []byte("<ul><li>a<li>b</ul>"))
	require.NoError(t, err)

	ul, ok := doc.FirstChild().(*Element)
	require.True(t, ok)

	var items []string
	for c := ul.FirstChild(); c != nil; c = c.NextSibling() {
		require.Equal(t, "li", c.Name(), "list items should be siblings")
		items = append(items, string(c.Content()))
	}
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestTreeAttributeSpecified(t *testing.T) {
	doc, err := Parse(context.Background(), []byte(`<input type="checkbox" checked>`))
	require.NoError(t, err)

	input, ok := doc.FirstChild().(*Element)
	require.True(t, ok)

	attrs := input.Attributes()
	require.Len(t, attrs, 2)
	assert.True(t, attrs[0].Specified())
	assert.Equal(t, "checkbox", attrs[0].Value())
	assert.False(t, attrs[1].Specified())
	assert.Equal(t, "checked", attrs[1].Value())
}

func TestTreeTextMerging(t *testing.T) {
	// the discarded stray end tag splits the text into two character
	// events; the tree merges them back into a single node
	doc, err := Parse(context.Background(), []byte("<p>a</div>b</p>"))
	require.NoError(t, err)

	p, ok := doc.FirstChild().(*Element)
	require.True(t, ok)
	text, ok := p.FirstChild().(*Text)
	require.True(t, ok)
	assert.Equal(t, "ab", string(text.Content()))
	assert.Nil(t, text.NextSibling())
}

func TestTreeCDATA(t *testing.T) {
	doc, err := Parse(context.Background(), []byte("<div><![CDATA[raw]]></div>"))
	require.NoError(t, err)

	div, ok := doc.FirstChild().(*Element)
	require.True(t, ok)
	cd, ok := div.FirstChild().(*CDATASection)
	require.True(t, ok)
	assert.Equal(t, "raw", string(cd.Content()))
}

func TestTreePI(t *testing.T) {
	doc, err := Parse(context.Background(), []byte("<?php echo 1; ?><p>x</p>"))
	require.NoError(t, err)

	pi, ok := doc.FirstChild().(*ProcessingInstruction)
	require.True(t, ok)
	assert.Equal(t, "php", pi.Target())
	assert.Equal(t, "echo 1; ", pi.Data())
}
