package tagsoup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyElement(t *testing.T) {
	assert.Equal(t, classVoid, classifyElement("br"))
	assert.Equal(t, classVoid, classifyElement("IMG"))
	assert.Equal(t, classRawText, classifyElement("script"))
	assert.Equal(t, classRCDATA, classifyElement("textarea"))
	assert.Equal(t, classFormatting, classifyElement("b"))
	assert.Equal(t, classStructural, classifyElement("td"))
	assert.Equal(t, classOrdinary, classifyElement("div"))
	assert.Equal(t, classOrdinary, classifyElement("custom-widget"))
}

func TestImpliedEnd(t *testing.T) {
	assert.True(t, impliedEnd("p", "p"))
	assert.True(t, impliedEnd("div", "p"))
	assert.True(t, impliedEnd("li", "li"))
	assert.True(t, impliedEnd("dt", "dd"))
	assert.True(t, impliedEnd("tr", "td"))
	assert.True(t, impliedEnd("tbody", "tr"))
	assert.True(t, impliedEnd("table", "b"), "a table ends open inline formatting")
	assert.True(t, impliedEnd("li", "p"), "a list item ends an open paragraph")
	assert.True(t, impliedEnd("dd", "p"))
	assert.True(t, impliedEnd("td", "p"))

	assert.False(t, impliedEnd("span", "p"), "inline content nests inside p")
	assert.False(t, impliedEnd("div", "div"))
}

func TestVoidPredicates(t *testing.T) {
	assert.True(t, IsVoidElement("BR"))
	assert.False(t, IsVoidElement("div"))
	assert.True(t, IsRawTextElement("Script"))
	assert.False(t, IsRawTextElement("title"))
}
