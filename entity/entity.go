// Package entity resolves HTML character references the way browsers do:
// longest known prefix wins, a handful of legacy names are accepted without
// their trailing semicolon, and anything else falls back to literal text.
// The compiled table is built once per process and is safe for concurrent
// lookups from any number of parser instances.
package entity

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// MaxLookahead is the longest run of characters a lookup may consume,
// including the terminating character that stops the walk. Scanners can use
// it to bound their peek window.
const MaxLookahead = 32

// MatchState is the outcome of a single resolution attempt. It is a plain
// value; nothing in it is shared with the resolver.
type MatchState struct {
	// Matched reports whether any accepting state was reached.
	Matched bool
	// EndNode reports that no longer name could possibly match beyond the
	// accepted one.
	EndNode bool
	// Semicolon reports that the accepted spelling ends with ';'.
	Semicolon bool
	// Value is the decoded replacement text.
	Value string
	// Input is the entity name that matched, or the dead-end fragment that
	// was consumed when nothing matched.
	Input string
	// Length is the number of characters of Input.
	Length int
	// Rewind is the number of characters consumed beyond the last accepting
	// state; the scanner must leave them in the input.
	Rewind int
}

type node struct {
	label     rune
	value     string
	accepting bool
	semicolon bool
	children  []int32
}

type trie struct {
	nodes   []node
	reverse map[rune]string
}

var (
	compileOnce sync.Once
	shared      *trie
)

func compiled() *trie {
	compileOnce.Do(func() {
		shared = compile(defs)
	})
	return shared
}

func compile(table []def) *trie {
	t := &trie{
		nodes:   make([]node, 1, len(table)*8),
		reverse: make(map[rune]string, len(table)),
	}
	for _, d := range table {
		n := t.insert(d.name)
		if d.legacy {
			t.accept(n, d.value, false)
		}
		n = t.insertChild(n, ';')
		t.accept(n, d.value, true)

		if r, size := utf8.DecodeRuneInString(d.value); size == len(d.value) {
			if _, dup := t.reverse[r]; !dup {
				t.reverse[r] = d.name + ";"
			}
		}
	}
	return t
}

func (t *trie) insert(name string) int32 {
	cur := int32(0)
	for _, r := range name {
		cur = t.insertChild(cur, r)
	}
	return cur
}

func (t *trie) insertChild(parent int32, r rune) int32 {
	kids := t.nodes[parent].children
	i, found := slices.BinarySearchFunc(kids, r, func(c int32, r rune) int {
		return int(t.nodes[c].label - r)
	})
	if found {
		return kids[i]
	}
	t.nodes = append(t.nodes, node{label: r})
	child := int32(len(t.nodes) - 1)
	t.nodes[parent].children = slices.Insert(kids, i, child)
	return child
}

func (t *trie) accept(n int32, value string, semicolon bool) {
	if t.nodes[n].accepting {
		panic("entity: duplicate name in table")
	}
	t.nodes[n].accepting = true
	t.nodes[n].value = value
	t.nodes[n].semicolon = semicolon
}

// child finds the transition for r out of n. Any character outside the range
// spanned by n's (sorted) children rejects immediately, without a search.
func (t *trie) child(n int32, r rune) (int32, bool) {
	kids := t.nodes[n].children
	if len(kids) == 0 {
		return 0, false
	}
	if r < t.nodes[kids[0]].label || r > t.nodes[kids[len(kids)-1]].label {
		return 0, false
	}
	i, found := slices.BinarySearchFunc(kids, r, func(c int32, r rune) int {
		return int(t.nodes[c].label - r)
	})
	if !found {
		return 0, false
	}
	return kids[i], true
}

// A Matcher walks the compiled table one character at a time. It is the
// streaming form of Lookup: feed characters until Feed reports false (or the
// input runs out), then collect the result with Match. The zero value is not
// usable; call NewMatcher.
type Matcher struct {
	t        *trie
	node     int32
	consumed []rune
	bestNode int32
	bestLen  int
	dead     bool
}

func NewMatcher() *Matcher {
	return &Matcher{t: compiled(), bestNode: -1}
}

// Feed advances the walk by one character. It returns false once no longer
// match is possible; the rejecting character still counts as consumed so
// that Match can report the dead-end fragment.
func (m *Matcher) Feed(r rune) bool {
	if m.dead {
		return false
	}
	m.consumed = append(m.consumed, r)
	next, ok := m.t.child(m.node, r)
	if !ok || len(m.consumed) > MaxLookahead {
		m.dead = true
		return false
	}
	m.node = next
	if m.t.nodes[next].accepting {
		m.bestNode = next
		m.bestLen = len(m.consumed)
	}
	return true
}

// Match reports the best match seen so far.
func (m *Matcher) Match() MatchState {
	if m.bestNode < 0 {
		frag := string(m.consumed)
		return MatchState{
			Input:  frag,
			Length: len(m.consumed),
			Rewind: len(m.consumed),
		}
	}
	best := m.t.nodes[m.bestNode]
	return MatchState{
		Matched:   true,
		EndNode:   len(best.children) == 0,
		Semicolon: best.semicolon,
		Value:     best.value,
		Input:     string(m.consumed[:m.bestLen]),
		Length:    m.bestLen,
		Rewind:    len(m.consumed) - m.bestLen,
	}
}

// Rewind is the streaming counterpart of MatchState.Rewind.
func (m *Matcher) Rewind() int {
	if m.bestNode < 0 {
		return len(m.consumed)
	}
	return len(m.consumed) - m.bestLen
}

// Lookup resolves the text immediately following an '&'. A leading '#'
// selects numeric resolution; anything else walks the named entity table.
func Lookup(s string) MatchState {
	if strings.HasPrefix(s, "#") {
		return lookupNumeric(s)
	}
	m := NewMatcher()
	for _, r := range s {
		if !m.Feed(r) {
			break
		}
	}
	return m.Match()
}

// lookupNumeric decodes '#NNN' and '#xHHH' forms. A missing terminating
// semicolon is tolerated; a malformed digit sequence or an illegal code
// point is not.
func lookupNumeric(s string) MatchState {
	rest := s[1:]
	hex := false
	prefix := "#"
	if strings.HasPrefix(rest, "x") || strings.HasPrefix(rest, "X") {
		hex = true
		prefix = s[:2]
		rest = rest[1:]
	}

	var val int32
	var err error
	n := 0
	for _, r := range rest {
		var v int32
		if hex {
			v, err = accumulateHexCharRef(val, r)
		} else {
			v, err = accumulateDecimalCharRef(val, r)
		}
		if err != nil {
			// r terminates the digit run; val keeps the accumulated
			// code point
			break
		}
		val = v
		n++
		if val > unicode.MaxRune {
			err = errCharRefOutOfRange
			break
		}
	}

	consumed := prefix + rest[:n]
	if n == 0 {
		return MatchState{Input: consumed, Length: len(consumed), Rewind: len(consumed)}
	}
	if err == errCharRefOutOfRange || !isChar(val) {
		return MatchState{Input: consumed, Length: len(consumed), Rewind: len(consumed)}
	}

	st := MatchState{
		Matched: true,
		EndNode: true,
		Value:   string(rune(val)),
		Input:   consumed,
		Length:  len(consumed),
	}
	if strings.HasPrefix(rest[n:], ";") {
		st.Semicolon = true
		st.Input += ";"
		st.Length++
	} else if len(rest) > n {
		// terminated by something other than ';'; the scanner already
		// peeked it, so report it for pushback accounting
		st.Rewind = 1
	}
	return st
}

// Name returns the canonical spelling (semicolon-terminated) for a code
// point that has a named entity, for use by serializers.
func Name(r rune) (string, bool) {
	s, ok := compiled().reverse[r]
	return s, ok
}
