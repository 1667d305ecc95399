// Package punct provides the punctuation and bracket tables used by the
// reflow engine: tiered sentence-end punctuation, dialogue quote sets,
// comma/colon soft-continuation classes, and the generic bracket-pair
// table with balance scans.
package punct

import "github.com/zhtext/reflow/cjk"

// clauseOrEnd is the tier-2 set: punctuation that ends a clause or a
// sentence. Usable as a paragraph boundary only under additional safety
// checks (see the segment package).
const clauseOrEnd = "。！？；：…—”」’』）】》〗〕〉］｝＞.!?):?>"

// dialogOpeners and dialogClosers match the six quote styles tracked by
// the dialogue counters, including the vertical presentation forms.
const (
	dialogOpeners = "“‘「『﹁﹃"
	dialogClosers = "”’」』﹂﹄"
)

// IsStrongEnd reports whether r is tier-1 sentence-end punctuation,
// always safe to end a paragraph on.
func IsStrongEnd(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?':
		return true
	}
	return false
}

// IsClauseOrEnd reports whether r is in the tier-2 clause-or-end set.
func IsClauseOrEnd(r rune) bool {
	return runeIn(clauseOrEnd, r)
}

// IsCommaLike reports whether r is a comma-class soft continuation mark.
func IsCommaLike(r rune) bool {
	return r == '，' || r == ',' || r == '、'
}

// IsColonLike reports whether r is a colon-class soft continuation mark.
func IsColonLike(r rune) bool {
	return r == '：' || r == ':'
}

// ContainsCommaLike reports whether s contains any comma-class rune.
func ContainsCommaLike(s []rune) bool {
	for _, r := range s {
		if IsCommaLike(r) {
			return true
		}
	}
	return false
}

// ContainsStrongEnd reports whether s contains tier-1 punctuation.
func ContainsStrongEnd(s []rune) bool {
	for _, r := range s {
		if IsStrongEnd(r) {
			return true
		}
	}
	return false
}

// EndsWithStrongEnd reports whether the last non-whitespace rune of s is
// tier-1 punctuation.
func EndsWithStrongEnd(s []rune) bool {
	last, _, ok := cjk.LastNonSpace(s)
	return ok && IsStrongEnd(last)
}

// IsDialogOpener reports whether r opens one of the dialogue quote styles.
func IsDialogOpener(r rune) bool {
	return runeIn(dialogOpeners, r)
}

// IsDialogCloser reports whether r closes one of the dialogue quote styles.
func IsDialogCloser(r rune) bool {
	return runeIn(dialogClosers, r)
}

// BeginsWithDialogOpener reports whether the first non-whitespace rune of
// s is a dialogue opener.
func BeginsWithDialogOpener(s []rune) bool {
	first, _, ok := cjk.FirstNonSpace(s)
	return ok && IsDialogOpener(first)
}

// EndsWithDialogCloser reports whether the last non-whitespace rune of s
// is a dialogue closer.
func EndsWithDialogCloser(s []rune) bool {
	last, _, ok := cjk.LastNonSpace(s)
	return ok && IsDialogCloser(last)
}

func runeIn(set string, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
