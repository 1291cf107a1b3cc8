package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	data := map[string]string{
		"UTF-8":         "utf-8",
		"  utf-8 ":      "utf-8",
		`"Shift_JIS"`:   "shift_jis",
		"'ISO-8859-15'": "iso-8859-15",
	}
	for input, expected := range data {
		require.Equal(t, expected, Normalize(input), "Normalize(%q)", input)
	}
}

func TestLoadAliases(t *testing.T) {
	// HTML folds latin1 labels onto windows-1252
	require.Same(t, Load("windows-1252"), Load("ISO-8859-1"))
	require.Same(t, Load("windows-1252"), Load("latin1"))
	require.NotNil(t, Load("euc-jp"))
	require.NotNil(t, Load("x-user-defined"))
	require.Nil(t, Load("no-such-charset"))
}

func TestWindows1252RoundTrip(t *testing.T) {
	e := Load("iso-8859-1")
	require.NotNil(t, e)
	dec := e.NewDecoder()

	// 0x93 is a curly quote in windows-1252, undefined in real ISO 8859-1
	s, err := dec.String("\x93")
	require.NoError(t, err)
	require.Equal(t, "“", s)
}

func TestSupported(t *testing.T) {
	require.True(t, Supported("UTF-8"))
	require.False(t, Supported("klingon"))
}
