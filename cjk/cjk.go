// Package cjk provides character classification and codepoint-view helpers
// for CJK-aware text processing.
//
// All predicates are pure, allocation-free functions over a single rune or
// a []rune view. Undefined or invalid codepoints classify as non-CJK,
// non-ASCII.
package cjk

// IsSpace reports whether r is whitespace. It covers ASCII whitespace and
// the common Unicode space characters including U+3000 (ideographic space).
// The set is deterministic and locale-independent.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	case 0x00A0, // NO-BREAK SPACE
		0x1680, // OGHAM SPACE MARK
		0x2000, 0x2001, 0x2002, 0x2003, 0x2004, // EN QUAD..THREE-PER-EM SPACE
		0x2005, 0x2006, 0x2007, 0x2008, 0x2009, // FOUR-PER-EM..THIN SPACE
		0x200A, // HAIR SPACE
		0x2028, // LINE SEPARATOR
		0x2029, // PARAGRAPH SEPARATOR
		0x202F, // NARROW NO-BREAK SPACE
		0x205F, // MEDIUM MATHEMATICAL SPACE
		0x3000: // IDEOGRAPHIC SPACE
		return true
	}
	return false
}

// Is reports whether r is a CJK ideograph: Extension A (U+3400–U+4DBF),
// Unified Ideographs (U+4E00–U+9FFF), or Compatibility Ideographs
// (U+F900–U+FAFF).
func Is(r rune) bool {
	return (r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0xF900 && r <= 0xFAFF)
}

// IsASCII reports whether r is in the ASCII range.
func IsASCII(r rune) bool {
	return r <= 0x7F
}

// IsASCIIDigit reports whether r is '0'..'9'.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsASCIILetter reports whether r is 'A'..'Z' or 'a'..'z'.
func IsASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// IsASCIILetterOrDigit reports whether r is an ASCII letter or digit.
func IsASCIILetterOrDigit(r rune) bool {
	return IsASCIIDigit(r) || IsASCIILetter(r)
}

// IsFullwidthDigit reports whether r is a full-width digit '０'..'９'
// (U+FF10–U+FF19).
func IsFullwidthDigit(r rune) bool {
	return r >= 0xFF10 && r <= 0xFF19
}

// IsNeutralASCII reports whether r is one of the neutral ASCII separators
// tolerated inside mixed CJK/ASCII lines: space, '-', '/', ':' and '.'.
func IsNeutralASCII(r rune) bool {
	return r == ' ' || r == '-' || r == '/' || r == ':' || r == '.'
}

// IsAllASCII reports whether every rune in s is ASCII.
func IsAllASCII(s []rune) bool {
	for _, r := range s {
		if r > 0x7F {
			return false
		}
	}
	return true
}

// HasLatinLetter reports whether s contains at least one ASCII letter.
func HasLatinLetter(s []rune) bool {
	for _, r := range s {
		if IsASCIILetter(r) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether s contains at least one CJK ideograph.
func ContainsAny(s []rune) bool {
	for _, r := range s {
		if Is(r) {
			return true
		}
	}
	return false
}

// IsMixed reports whether s mixes CJK and ASCII letter/digit content,
// as in "第3章 Chapter 1" or "iPhone 16 Pro Max".
//
// Neutral separators (space - / : .) are ignored; full-width digits count
// as ASCII content. Any other ASCII punctuation, or any non-CJK non-ASCII
// character, disqualifies the line. Both sides must be present.
func IsMixed(s []rune) bool {
	hasCJK := false
	hasASCII := false

	for _, r := range s {
		if IsNeutralASCII(r) {
			continue
		}
		if r <= 0x7F {
			if !IsASCIILetterOrDigit(r) {
				return false
			}
			hasASCII = true
			continue
		}
		if IsFullwidthDigit(r) {
			hasASCII = true
			continue
		}
		if Is(r) {
			hasCJK = true
			continue
		}
		return false
	}

	return hasCJK && hasASCII
}

// IsMostly reports whether s is predominantly CJK: at least one ideograph,
// and at least as many ideographs as ASCII letters. Digits (ASCII and
// full-width), whitespace, and ASCII punctuation are neutral.
func IsMostly(s []rune) bool {
	var cjk, ascii int

	for _, r := range s {
		if IsSpace(r) || IsASCIIDigit(r) || IsFullwidthDigit(r) {
			continue
		}
		if Is(r) {
			cjk++
			continue
		}
		if r <= 0x7F && IsASCIILetter(r) {
			ascii++
		}
	}

	return cjk > 0 && cjk >= ascii
}

// IsAll reports whether s consists entirely of CJK ideographs. Whitespace
// handling is controlled by allowSpace. Empty or whitespace-only views
// return false.
func IsAll(s []rune, allowSpace bool) bool {
	seen := false
	for _, r := range s {
		if IsSpace(r) {
			if !allowSpace {
				return false
			}
			continue
		}
		seen = true
		if !Is(r) {
			return false
		}
	}
	return seen
}

// EndsWithEllipsis reports whether s ends with an ellipsis ('…' or an OCR
// ASCII "..."), ignoring trailing whitespace. Only meaningful in CJK
// context, so non-mostly-CJK views return false.
func EndsWithEllipsis(s []rune) bool {
	if len(s) == 0 {
		return false
	}
	if !IsMostly(s) {
		return false
	}

	i := len(s)
	for i > 0 && IsSpace(s[i-1]) {
		i--
	}
	if i == 0 {
		return false
	}

	if s[i-1] == '…' {
		return true
	}
	return i >= 3 && s[i-1] == '.' && s[i-2] == '.' && s[i-3] == '.'
}
