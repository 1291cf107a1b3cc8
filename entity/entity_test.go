package entity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupNamed(t *testing.T) {
	data := map[string]MatchState{
		"Beta;": {Matched: true, EndNode: true, Semicolon: true, Value: "Β", Input: "Beta;", Length: 5},
		"gt":    {Matched: true, EndNode: false, Semicolon: false, Value: ">", Input: "gt", Length: 2},
		"gt;":   {Matched: true, EndNode: true, Semicolon: true, Value: ">", Input: "gt;", Length: 3},
		"amp;":  {Matched: true, EndNode: true, Semicolon: true, Value: "&", Input: "amp;", Length: 4},
		"ccedil": {
			Matched: true, EndNode: false, Semicolon: false, Value: "ç", Input: "ccedil", Length: 6,
		},
	}

	for input, expected := range data {
		input, expected := input, expected
		t.Run(input, func(t *testing.T) {
			require.Equal(t, expected, Lookup(input), "Lookup(%q) returns as expected", input)
		})
	}
}

func TestLookupLongestPrefix(t *testing.T) {
	// "notit;" must resolve the legacy entity "not" and leave "it;" alone
	st := Lookup("notit;")
	require.True(t, st.Matched, "a prefix should match")
	require.Equal(t, "not", st.Input, "match stops at the legacy spelling")
	require.Equal(t, 3, st.Length)
	require.Equal(t, 2, st.Rewind, "'it' was consumed past the accepting state")
	require.False(t, st.EndNode, "'not' has longer continuations")
	require.False(t, st.Semicolon)
	require.Equal(t, "¬", st.Value)
}

func TestLookupDeadEnd(t *testing.T) {
	st := Lookup("abc;")
	require.False(t, st.Matched, "no entity starts with 'ab'")
	require.Equal(t, "ab", st.Input, "fragment is the longest dead-end prefix")
	require.Equal(t, 2, st.Length)
	require.Equal(t, 2, st.Rewind)
}

func TestLookupIdempotent(t *testing.T) {
	inputs := []string{"Beta;", "gt", "gt;", "notit;", "ccedilx", "ampersand"}
	for _, input := range inputs {
		st := Lookup(input)
		require.True(t, st.Matched, "Lookup(%q) should match", input)

		// consuming Length characters then re-scanning the remainder must
		// not change the terminal match
		again := Lookup(input[:st.Length])
		require.Equal(t, st.Value, again.Value, "re-scan of %q is stable", input)
		require.Equal(t, st.Length, again.Length)
	}
}

func TestLookupNumeric(t *testing.T) {
	data := map[string]MatchState{
		"#38;":   {Matched: true, EndNode: true, Semicolon: true, Value: "&", Input: "#38;", Length: 4},
		"#x3C;":  {Matched: true, EndNode: true, Semicolon: true, Value: "<", Input: "#x3C;", Length: 5},
		"#XE9;":  {Matched: true, EndNode: true, Semicolon: true, Value: "é", Input: "#XE9;", Length: 5},
		"#169":   {Matched: true, EndNode: true, Value: "©", Input: "#169", Length: 4},
		"#38 ":   {Matched: true, EndNode: true, Value: "&", Input: "#38", Length: 3, Rewind: 1},
		"#x":     {Input: "#x", Length: 2, Rewind: 2},
		"#;":     {Input: "#", Length: 1, Rewind: 1},
		"#xD800": {Input: "#xD800", Length: 6, Rewind: 6},
	}

	for input, expected := range data {
		input, expected := input, expected
		t.Run(input, func(t *testing.T) {
			require.Equal(t, expected, Lookup(input), "Lookup(%q) returns as expected", input)
		})
	}
}

func TestMatcherStreaming(t *testing.T) {
	m := NewMatcher()
	for _, r := range "gt" {
		require.True(t, m.Feed(r), "walk continues for %q", r)
	}
	require.Equal(t, 0, m.Rewind(), "no overshoot at an accepting state")

	require.False(t, m.Feed('Q'), "'gtQ' cannot continue")
	st := m.Match()
	require.True(t, st.Matched)
	require.Equal(t, ">", st.Value)
	require.Equal(t, 1, st.Rewind, "the rejecting character is pushed back")
}

func TestReverseIndex(t *testing.T) {
	name, ok := Name('©')
	require.True(t, ok)
	require.Equal(t, "copy;", name, "canonical spelling is semicolon-terminated")

	name, ok = Name('&')
	require.True(t, ok)
	require.Equal(t, "amp;", name)

	_, ok = Name('a')
	require.False(t, ok, "plain letters have no entity name")
}

func TestConcurrentLookups(t *testing.T) {
	// the compiled table is shared; hammer it from several goroutines
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				st := Lookup("eacute;")
				if !st.Matched || st.Value != "é" {
					t.Error("concurrent lookup returned a wrong match")
					return
				}
			}
		}()
	}
	wg.Wait()
}
