package entity

import "errors"

var (
	errInvalidCharRef    = errors.New("invalid character reference digit")
	errCharRefOutOfRange = errors.New("character reference out of range")
)

func accumulateDecimalCharRef(val int32, c rune) (int32, error) {
	if c >= '0' && c <= '9' {
		val = val*10 + (c - '0')
	} else {
		return 0, errInvalidCharRef
	}
	return val, nil
}

func accumulateHexCharRef(val int32, c rune) (int32, error) {
	if c >= '0' && c <= '9' {
		val = val*16 + (c - '0')
	} else if c >= 'a' && c <= 'f' {
		val = val*16 + (c - 'a') + 10
	} else if c >= 'A' && c <= 'F' {
		val = val*16 + (c - 'A') + 10
	} else {
		return 0, errInvalidCharRef
	}
	return val, nil
}

// isChar reports whether the code point is legal in document content.
func isChar(v int32) bool {
	c := uint32(v)
	if c < 0x100 {
		return (0x9 <= c && c <= 0xa) || c == 0xd || 0x20 <= c
	}
	return (0x100 <= c && c <= 0xd7ff) || (0xe000 <= c && c <= 0xfffd) || (0x10000 <= c && c <= 0x10ffff)
}
