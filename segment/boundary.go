package segment

import (
	"github.com/zhtext/reflow/cjk"
	"github.com/zhtext/reflow/punct"
)

// BoundaryLevel selects how lenient sentence-boundary detection is.
// Higher levels apply stricter rules only.
type BoundaryLevel int

const (
	// LevelLoose additionally accepts bare semicolons and colons.
	LevelLoose BoundaryLevel = 1
	// LevelLenient accepts tier-1 ends, closers after tier-1, full-width
	// colons on mostly-CJK text, and ellipses. The engine default.
	LevelLenient BoundaryLevel = 2
	// LevelStrict accepts only tier-1 ends, closers after tier-1, and
	// the OCR ASCII-period-in-CJK-context forms.
	LevelStrict BoundaryLevel = 3
)

// atEndAllowingClosers reports whether only whitespace, quote closers,
// and bracket closers follow index in s.
func atEndAllowingClosers(s []rune, index int) bool {
	for j := index + 1; j < len(s); j++ {
		r := s[j]
		if cjk.IsSpace(r) {
			continue
		}
		if punct.IsDialogCloser(r) || punct.IsBracketCloser(r) {
			continue
		}
		return false
	}
	return true
}

// ocrASCIIPunctAtEnd reports whether an ASCII '.' or ':' ending the line
// is acting as CJK sentence punctuation: the preceding rune is CJK and
// the line is mostly CJK.
func ocrASCIIPunctAtEnd(s []rune, lastIdx int) bool {
	if lastIdx == 0 {
		return false
	}
	return cjk.Is(s[lastIdx-1]) && cjk.IsMostly(s)
}

// ocrASCIIPunctBeforeClosers is the relaxed form for patterns like “.”
// or .） where closers trail the period.
func ocrASCIIPunctBeforeClosers(s []rune, index int) bool {
	if !atEndAllowingClosers(s, index) {
		return false
	}
	prev, _, ok := cjk.PrevNonSpace(s, index)
	if !ok {
		return false
	}
	return cjk.Is(prev) && cjk.IsMostly(s)
}

// EndsWithSentenceBoundary reports whether s ends at a sentence boundary
// under the given leniency level.
func EndsWithSentenceBoundary(s []rune, level BoundaryLevel) bool {
	if len(s) == 0 {
		return false
	}

	last, lastIdx, ok := cjk.LastNonSpace(s)
	if !ok {
		return false
	}

	if punct.IsStrongEnd(last) {
		return true
	}

	if level >= LevelStrict {
		if (last == '.' || last == ':') && ocrASCIIPunctAtEnd(s, lastIdx) {
			return true
		}
	}

	// A closer may trail the real sentence end: 。」 or ！）.
	if punct.IsDialogCloser(last) || punct.IsTrailingCloser(last) {
		if prev, prevIdx, hasPrev := cjk.PrevNonSpace(s, lastIdx); hasPrev {
			if punct.IsStrongEnd(prev) {
				return true
			}
			// OCR artifact: '.' acting as '。' before the closer.
			if prev == '.' && ocrASCIIPunctBeforeClosers(s, prevIdx) {
				return true
			}
		}
	}

	if level >= LevelStrict {
		return false
	}

	// Lenient: a trailing full-width colon on mostly-CJK text is a weak
	// boundary ("他说：" with the dialogue on the next line).
	if last == '：' && cjk.IsMostly(s) {
		return true
	}

	if cjk.EndsWithEllipsis(s) {
		return true
	}

	if level >= LevelLenient {
		return false
	}

	return last == '；' || last == '：' || last == ';' || last == ':'
}

// EndsWithBracketBoundary reports whether s, trimmed, is wholly wrapped
// by one matching bracket pair whose content is mostly CJK and whose
// bracket type is balanced inside s. ASCII parentheses and square
// brackets additionally require at least one ideograph inside, since
// "(test)" or "[1.2]" are not paragraph boundaries.
func EndsWithBracketBoundary(s []rune) bool {
	s = cjk.TrimSpace(s)
	if len(s) < 2 {
		return false
	}

	open := s[0]
	if !punct.IsMatchingPair(open, s[len(s)-1]) {
		return false
	}

	inner := cjk.TrimSpace(s[1 : len(s)-1])
	if len(inner) == 0 {
		return false
	}

	if !cjk.IsMostly(inner) {
		return false
	}

	if (open == '(' || open == '[') && !cjk.ContainsAny(inner) {
		return false
	}

	return punct.IsPairBalanced(s, open)
}
