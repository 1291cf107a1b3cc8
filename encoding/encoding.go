// Package encoding maps HTML charset labels onto the decoders in
// golang.org/x/text/encoding. It exists partly because those package names
// ("unicode", "charmap") clash with the stdlib, and partly because HTML
// charset labels need normalization before lookup: labels are matched
// ASCII-case-insensitively with surrounding whitespace stripped, and a few
// aliases are folded onto the encodings browsers actually use.
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var byLabel = map[string]enc.Encoding{
	"utf8":  unicode.UTF8,
	"utf-8": unicode.UTF8,

	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf16be":  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf16le":  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),

	// the HTML standard folds these onto windows-1252
	"iso-8859-1":   charmap.Windows1252,
	"latin1":       charmap.Windows1252,
	"us-ascii":     charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"windows1252":  charmap.Windows1252,
	"cp1252":       charmap.Windows1252,

	"iso-8859-2":  charmap.ISO8859_2,
	"iso-8859-3":  charmap.ISO8859_3,
	"iso-8859-4":  charmap.ISO8859_4,
	"iso-8859-5":  charmap.ISO8859_5,
	"iso-8859-6":  charmap.ISO8859_6,
	"iso-8859-7":  charmap.ISO8859_7,
	"iso-8859-8":  charmap.ISO8859_8,
	"iso-8859-10": charmap.ISO8859_10,
	"iso-8859-13": charmap.ISO8859_13,
	"iso-8859-14": charmap.ISO8859_14,
	"iso-8859-15": charmap.ISO8859_15,
	"iso-8859-16": charmap.ISO8859_16,

	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
	"windows-874":  charmap.Windows874,

	"koi8-r":            charmap.KOI8R,
	"koi8r":             charmap.KOI8R,
	"koi8-u":            charmap.KOI8U,
	"koi8u":             charmap.KOI8U,
	"macintosh":         charmap.Macintosh,
	"x-mac-cyrillic":    charmap.MacintoshCyrillic,
	"macintoshcyrillic": charmap.MacintoshCyrillic,
	"cp437":             charmap.CodePage437,
	"cp866":             charmap.CodePage866,
	"ibm866":            charmap.CodePage866,

	"euc-jp":      japanese.EUCJP,
	"shift_jis":   japanese.ShiftJIS,
	"shift-jis":   japanese.ShiftJIS,
	"shiftjis":    japanese.ShiftJIS,
	"sjis":        japanese.ShiftJIS,
	"cp932":       japanese.ShiftJIS,
	"iso-2022-jp": japanese.ISO2022JP,
	"jis":         japanese.ISO2022JP,
	"big5":        traditionalchinese.Big5,
	"euc-kr":      korean.EUCKR,
	"gbk":         simplifiedchinese.GBK,
	"gb2312":      simplifiedchinese.GBK,
	"gb18030":     simplifiedchinese.GB18030,
	"hz-gb-2312":  simplifiedchinese.HZGB2312,
	"hz-gb2312":   simplifiedchinese.HZGB2312,

	"x-user-defined": charmap.XUserDefined,
}

// Normalize canonicalizes a charset label the way it appears in a meta tag:
// whitespace trimmed, lowercased, stray quotes removed.
func Normalize(label string) string {
	label = strings.TrimSpace(label)
	label = strings.Trim(label, `"'`)
	return strings.ToLower(label)
}

// Load returns the decoder for a charset label, or nil when the label is
// not recognized.
func Load(label string) enc.Encoding {
	return byLabel[Normalize(label)]
}

// Supported reports whether a charset label is recognized.
func Supported(label string) bool {
	return Load(label) != nil
}
