package json5

import "unicode"

// Character classification for non-ASCII code points, per spec.md §4.2/§6.
// The spec treats this as an external collaborator ("lookup_glyph")
// returning a Unicode general category; the idiomatic Go realization of
// that collaborator is the standard library's unicode package, which
// already exposes these exact general-category RangeTables (the same way
// sqldef-sqldef's lexer classifies runes with unicode.IsLetter/IsSpace/
// IsDigit during SQL tokenization). No third-party table is more
// authoritative than the one the language ships.

// isIdentifierStart reports whether r may begin an unquoted object key.
// ASCII '_', '$', and ASCII letters are covered by the caller before this
// is consulted; this handles the Unicode Letter and NumberLetter (Nl)
// categories (spec.md: LetterUppercase, LetterLowercase, LetterTitlecase,
// LetterModifier, LetterOther, NumberLetter).
func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

// isIdentifierPart reports whether r may continue (but not begin) an
// unquoted object key: NumberDecimalDigit, MarkNonspacing, and
// MarkSpacingCombining, in addition to everything isIdentifierStart
// accepts.
func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r)
}

// isUnicodeSpace reports whether r is a Unicode SeparatorSpace character,
// treated as whitespace by the tokenizer.
func isUnicodeSpace(r rune) bool {
	return unicode.Is(unicode.Zs, r)
}

// isUnicodeLinebreak reports whether r is a Unicode SeparatorParagraph
// character, treated as a line terminator by the tokenizer.
func isUnicodeLinebreak(r rune) bool {
	return unicode.Is(unicode.Zp, r)
}
