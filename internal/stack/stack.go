// Package stack provides the slice-backed stack used for tracking open
// elements. Popping shrinks the backing array once it is mostly unused, so
// that a brief burst of deep nesting does not pin memory for the rest of
// the parse.
package stack

// Stack grows at the end; index 0 is the bottom.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	l := len(*s)
	if l == 0 {
		return zero, false
	}
	v := (*s)[l-1]
	(*s)[l-1] = zero
	*s = (*s)[:l-1]
	s.shrink()
	return v, true
}

// Peek returns the top item without removing it.
func (s Stack[T]) Peek() (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// At returns the item at depth i, counting from the bottom.
func (s Stack[T]) At(i int) T {
	return s[i]
}

func (s Stack[T]) Len() int {
	return len(s)
}

// Truncate drops every item at depth n and above.
func (s *Stack[T]) Truncate(n int) {
	if n >= len(*s) {
		return
	}
	var zero T
	for i := n; i < len(*s); i++ {
		(*s)[i] = zero
	}
	*s = (*s)[:n]
	s.shrink()
}

func (s *Stack[T]) shrink() {
	if c := cap(*s); c > 20 && c > len(*s)*2 {
		*s = append(Stack[T](nil), *s...)
	}
}
