package entity

// def is one row of the named character reference table. Entities flagged
// legacy are accepted without the trailing semicolon, matching what browsers
// do for the HTML 4.01 set. The table must stay free of duplicate names;
// compile panics otherwise.
type def struct {
	name   string
	value  string
	legacy bool
}

var defs = []def{
	// markup characters (legacy, semicolon optional)
	{"quot", "\"", true},
	{"amp", "&", true},
	{"lt", "<", true},
	{"gt", ">", true},
	// XHTML apostrophe (semicolon required)
	{"apos", "'", false},
	// ISO 8859-1 characters (legacy, semicolon optional)
	{"nbsp", "\u00a0", true},
	{"iexcl", "\u00a1", true},
	{"cent", "\u00a2", true},
	{"pound", "\u00a3", true},
	{"curren", "\u00a4", true},
	{"yen", "\u00a5", true},
	{"brvbar", "\u00a6", true},
	{"sect", "\u00a7", true},
	{"uml", "\u00a8", true},
	{"copy", "\u00a9", true},
	{"ordf", "\u00aa", true},
	{"laquo", "\u00ab", true},
	{"not", "\u00ac", true},
	{"shy", "\u00ad", true},
	{"reg", "\u00ae", true},
	{"macr", "\u00af", true},
	{"deg", "\u00b0", true},
	{"plusmn", "\u00b1", true},
	{"sup2", "\u00b2", true},
	{"sup3", "\u00b3", true},
	{"acute", "\u00b4", true},
	{"micro", "\u00b5", true},
	{"para", "\u00b6", true},
	{"middot", "\u00b7", true},
	{"cedil", "\u00b8", true},
	{"sup1", "\u00b9", true},
	{"ordm", "\u00ba", true},
	{"raquo", "\u00bb", true},
	{"frac14", "\u00bc", true},
	{"frac12", "\u00bd", true},
	{"frac34", "\u00be", true},
	{"iquest", "\u00bf", true},
	{"Agrave", "\u00c0", true},
	{"Aacute", "\u00c1", true},
	{"Acirc", "\u00c2", true},
	{"Atilde", "\u00c3", true},
	{"Auml", "\u00c4", true},
	{"Aring", "\u00c5", true},
	{"AElig", "\u00c6", true},
	{"Ccedil", "\u00c7", true},
	{"Egrave", "\u00c8", true},
	{"Eacute", "\u00c9", true},
	{"Ecirc", "\u00ca", true},
	{"Euml", "\u00cb", true},
	{"Igrave", "\u00cc", true},
	{"Iacute", "\u00cd", true},
	{"Icirc", "\u00ce", true},
	{"Iuml", "\u00cf", true},
	{"ETH", "\u00d0", true},
	{"Ntilde", "\u00d1", true},
	{"Ograve", "\u00d2", true},
	{"Oacute", "\u00d3", true},
	{"Ocirc", "\u00d4", true},
	{"Otilde", "\u00d5", true},
	{"Ouml", "\u00d6", true},
	{"times", "\u00d7", true},
	{"Oslash", "\u00d8", true},
	{"Ugrave", "\u00d9", true},
	{"Uacute", "\u00da", true},
	{"Ucirc", "\u00db", true},
	{"Uuml", "\u00dc", true},
	{"Yacute", "\u00dd", true},
	{"THORN", "\u00de", true},
	{"szlig", "\u00df", true},
	{"agrave", "\u00e0", true},
	{"aacute", "\u00e1", true},
	{"acirc", "\u00e2", true},
	{"atilde", "\u00e3", true},
	{"auml", "\u00e4", true},
	{"aring", "\u00e5", true},
	{"aelig", "\u00e6", true},
	{"ccedil", "\u00e7", true},
	{"egrave", "\u00e8", true},
	{"eacute", "\u00e9", true},
	{"ecirc", "\u00ea", true},
	{"euml", "\u00eb", true},
	{"igrave", "\u00ec", true},
	{"iacute", "\u00ed", true},
	{"icirc", "\u00ee", true},
	{"iuml", "\u00ef", true},
	{"eth", "\u00f0", true},
	{"ntilde", "\u00f1", true},
	{"ograve", "\u00f2", true},
	{"oacute", "\u00f3", true},
	{"ocirc", "\u00f4", true},
	{"otilde", "\u00f5", true},
	{"ouml", "\u00f6", true},
	{"divide", "\u00f7", true},
	{"oslash", "\u00f8", true},
	{"ugrave", "\u00f9", true},
	{"uacute", "\u00fa", true},
	{"ucirc", "\u00fb", true},
	{"uuml", "\u00fc", true},
	{"yacute", "\u00fd", true},
	{"thorn", "\u00fe", true},
	{"yuml", "\u00ff", true},
	// symbols, mathematical symbols and Greek letters
	{"fnof", "\u0192", false},
	{"Alpha", "\u0391", false},
	{"Beta", "\u0392", false},
	{"Gamma", "\u0393", false},
	{"Delta", "\u0394", false},
	{"Epsilon", "\u0395", false},
	{"Zeta", "\u0396", false},
	{"Eta", "\u0397", false},
	{"Theta", "\u0398", false},
	{"Iota", "\u0399", false},
	{"Kappa", "\u039a", false},
	{"Lambda", "\u039b", false},
	{"Mu", "\u039c", false},
	{"Nu", "\u039d", false},
	{"Xi", "\u039e", false},
	{"Omicron", "\u039f", false},
	{"Pi", "\u03a0", false},
	{"Rho", "\u03a1", false},
	{"Sigma", "\u03a3", false},
	{"Tau", "\u03a4", false},
	{"Upsilon", "\u03a5", false},
	{"Phi", "\u03a6", false},
	{"Chi", "\u03a7", false},
	{"Psi", "\u03a8", false},
	{"Omega", "\u03a9", false},
	{"alpha", "\u03b1", false},
	{"beta", "\u03b2", false},
	{"gamma", "\u03b3", false},
	{"delta", "\u03b4", false},
	{"epsilon", "\u03b5", false},
	{"zeta", "\u03b6", false},
	{"eta", "\u03b7", false},
	{"theta", "\u03b8", false},
	{"iota", "\u03b9", false},
	{"kappa", "\u03ba", false},
	{"lambda", "\u03bb", false},
	{"mu", "\u03bc", false},
	{"nu", "\u03bd", false},
	{"xi", "\u03be", false},
	{"omicron", "\u03bf", false},
	{"pi", "\u03c0", false},
	{"rho", "\u03c1", false},
	{"sigmaf", "\u03c2", false},
	{"sigma", "\u03c3", false},
	{"tau", "\u03c4", false},
	{"upsilon", "\u03c5", false},
	{"phi", "\u03c6", false},
	{"chi", "\u03c7", false},
	{"psi", "\u03c8", false},
	{"omega", "\u03c9", false},
	{"thetasym", "\u03d1", false},
	{"upsih", "\u03d2", false},
	{"piv", "\u03d6", false},
	{"bull", "\u2022", false},
	{"hellip", "\u2026", false},
	{"prime", "\u2032", false},
	{"Prime", "\u2033", false},
	{"oline", "\u203e", false},
	{"frasl", "\u2044", false},
	{"weierp", "\u2118", false},
	{"image", "\u2111", false},
	{"real", "\u211c", false},
	{"trade", "\u2122", false},
	{"alefsym", "\u2135", false},
	{"larr", "\u2190", false},
	{"uarr", "\u2191", false},
	{"rarr", "\u2192", false},
	{"darr", "\u2193", false},
	{"harr", "\u2194", false},
	{"crarr", "\u21b5", false},
	{"lArr", "\u21d0", false},
	{"uArr", "\u21d1", false},
	{"rArr", "\u21d2", false},
	{"dArr", "\u21d3", false},
	{"hArr", "\u21d4", false},
	{"forall", "\u2200", false},
	{"part", "\u2202", false},
	{"exist", "\u2203", false},
	{"empty", "\u2205", false},
	{"nabla", "\u2207", false},
	{"isin", "\u2208", false},
	{"notin", "\u2209", false},
	{"ni", "\u220b", false},
	{"prod", "\u220f", false},
	{"sum", "\u2211", false},
	{"minus", "\u2212", false},
	{"lowast", "\u2217", false},
	{"radic", "\u221a", false},
	{"prop", "\u221d", false},
	{"infin", "\u221e", false},
	{"ang", "\u2220", false},
	{"and", "\u2227", false},
	{"or", "\u2228", false},
	{"cap", "\u2229", false},
	{"cup", "\u222a", false},
	{"int", "\u222b", false},
	{"there4", "\u2234", false},
	{"sim", "\u223c", false},
	{"cong", "\u2245", false},
	{"asymp", "\u2248", false},
	{"ne", "\u2260", false},
	{"equiv", "\u2261", false},
	{"le", "\u2264", false},
	{"ge", "\u2265", false},
	{"sub", "\u2282", false},
	{"sup", "\u2283", false},
	{"nsub", "\u2284", false},
	{"sube", "\u2286", false},
	{"supe", "\u2287", false},
	{"oplus", "\u2295", false},
	{"otimes", "\u2297", false},
	{"perp", "\u22a5", false},
	{"sdot", "\u22c5", false},
	{"lceil", "\u2308", false},
	{"rceil", "\u2309", false},
	{"lfloor", "\u230a", false},
	{"rfloor", "\u230b", false},
	{"lang", "\u2329", false},
	{"rang", "\u232a", false},
	{"loz", "\u25ca", false},
	{"spades", "\u2660", false},
	{"clubs", "\u2663", false},
	{"hearts", "\u2665", false},
	{"diams", "\u2666", false},
	// markup-significant and internationalization characters
	{"OElig", "\u0152", false},
	{"oelig", "\u0153", false},
	{"Scaron", "\u0160", false},
	{"scaron", "\u0161", false},
	{"Yuml", "\u0178", false},
	{"circ", "\u02c6", false},
	{"tilde", "\u02dc", false},
	{"ensp", "\u2002", false},
	{"emsp", "\u2003", false},
	{"thinsp", "\u2009", false},
	{"zwnj", "\u200c", false},
	{"zwj", "\u200d", false},
	{"lrm", "\u200e", false},
	{"rlm", "\u200f", false},
	{"ndash", "\u2013", false},
	{"mdash", "\u2014", false},
	{"lsquo", "\u2018", false},
	{"rsquo", "\u2019", false},
	{"sbquo", "\u201a", false},
	{"ldquo", "\u201c", false},
	{"rdquo", "\u201d", false},
	{"bdquo", "\u201e", false},
	{"dagger", "\u2020", false},
	{"Dagger", "\u2021", false},
	{"permil", "\u2030", false},
	{"lsaquo", "\u2039", false},
	{"rsaquo", "\u203a", false},
	{"euro", "\u20ac", false},
}
