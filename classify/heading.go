package classify

import (
	"github.com/zhtext/reflow/cjk"
	"github.com/zhtext/reflow/punct"
)

// Fixed title words recognized at the start of a line.
var titleWords = []string{
	"前言", "序章", "终章", "尾声", "后记",
	"番外", "尾聲", "後記", "楔子",
}

const (
	// Chapter markers like 章 / 节 / 部 / 卷 / 節 / 回.
	chapterMarkers = "章节部卷節回"

	// Characters that invalidate a chapter heading when they appear
	// immediately after the marker ("第三章的" is prose, not a heading).
	excludedAfterMarker = "分合的"

	// Chinese numerals for the bare 卷X / 章X pattern.
	cnNumerals = "一二三四五六七八九十"

	// Closing brackets stripped before the chapter-ending check.
	chapterEndBrackets = "】》〗〕〉」』）］"

	titleMaxLen        = 50
	shortHeadingMaxLen = 8
	chapterEndingMax   = 15
)

// IsTitleHeading reports whether s (left-stripped) is a standalone title
// or chapter heading line.
//
// A title line is at most 50 runes, contains no comma, and either starts
// with a fixed title word (番外 allows a suffix of up to 15 runes),
// contains a 第…章/节/部/卷/節/回 pattern not followed by 分/合/的, or
// starts with 卷/章 plus a Chinese numeral.
func IsTitleHeading(s []rune) bool {
	n := len(s)
	if n == 0 || n > titleMaxLen {
		return false
	}

	for _, r := range s {
		if r == ',' || r == '，' {
			return false
		}
	}

	// Fixed title words at the start of the line.
	for _, w := range titleWords {
		wr := []rune(w)
		if !hasPrefix(s, wr) {
			continue
		}
		if w == "番外" {
			return n <= len(wr)+15
		}
		return true
	}

	// 第 within the first 10 runes, then a chapter marker within the next
	// 5, not followed by an excluded character.
	di := -1
	maxBefore := 10
	if maxBefore > n-1 {
		maxBefore = n - 1
	}
	for i := 0; i <= maxBefore; i++ {
		if s[i] == '第' {
			di = i
			break
		}
	}
	if di >= 0 {
		maxMarker := di + 6
		if maxMarker > n-1 {
			maxMarker = n - 1
		}
		for j := di + 1; j <= maxMarker; j++ {
			if !contains(chapterMarkers, s[j]) {
				continue
			}
			if j+1 < n && contains(excludedAfterMarker, s[j+1]) {
				continue
			}
			return true
		}
	}

	// Bare 卷X / 章X with a Chinese numeral, short tail allowed.
	if n >= 2 && (s[0] == '卷' || s[0] == '章') && contains(cnNumerals, s[1]) {
		return n == 2 || n-2 <= 20
	}

	return false
}

// IsHeadingLike reports whether s is a weak heading candidate: a short
// line that may become a standalone segment if the paragraph before it
// ended cleanly. Whether it actually splits is the state machine's call.
//
// Lines ending in clause or sentence punctuation, lines with unclosed
// brackets, and lines over the length cap (8 runes for CJK/mixed content,
// 16 for pure ASCII) are rejected. Accepted shapes: pure ASCII digits,
// CJK/mixed content not ending in a comma, bracket-wrapped mostly-CJK
// content, item titles like "物品准备：", and short pure-ASCII lines
// containing a letter.
func IsHeadingLike(raw []rune) bool {
	s := trimmed(raw)
	if len(s) == 0 {
		return false
	}

	if IsPageMarker(s) {
		return false
	}

	if punct.HasUnclosedBracket(s) {
		return false
	}

	last, lastIdx, ok := cjk.LastNonSpace(s)
	if !ok {
		return false
	}

	maxLen := shortHeadingMaxLen
	if cjk.IsAllASCII(s) || cjk.IsMixed(s) {
		maxLen = shortHeadingMaxLen * 2
	}
	n := len(s)

	// Item-title shortcut: all-CJK key followed by a colon.
	if punct.IsColonLike(last) && n <= maxLen && lastIdx > 0 &&
		cjk.IsAll(s[:lastIdx], false) {
		return true
	}

	// Trailing closer is fine as long as nothing before it reads like a
	// clause fragment.
	if punct.IsTrailingCloser(last) && !punct.ContainsCommaLike(s[:lastIdx]) {
		return true
	}

	// Bracket-wrapped heading, e.g. 【番外】.
	if punct.IsWrappedByPair(s) {
		inner := trimmed(s[1 : len(s)-1])
		if len(inner) > 0 && cjk.IsMostly(inner) {
			return true
		}
	}

	if punct.IsClauseOrEnd(last) ||
		punct.ContainsCommaLike(s) ||
		punct.ContainsStrongEnd(s) {
		return false
	}

	if n > maxLen {
		return false
	}

	hasNonASCII := false
	allASCII := true
	hasLetter := false
	allDigits := true
	for _, r := range s {
		if r > 0x7F {
			hasNonASCII = true
			allASCII = false
			allDigits = false
			continue
		}
		if !cjk.IsASCIIDigit(r) {
			allDigits = false
		}
		if cjk.IsASCIILetter(r) {
			hasLetter = true
		}
	}

	if allDigits {
		return true
	}
	if hasNonASCII && !punct.IsCommaLike(last) {
		return true
	}
	return allASCII && hasLetter
}

// IsChapterEnding reports whether s reads like the tail of a chapter
// reference: at most 15 runes after stripping trailing closing brackets,
// with a chapter marker as its last rune.
func IsChapterEnding(s []rune) bool {
	if len(s) > chapterEndingMax {
		return false
	}
	end := len(s)
	for end > 0 && contains(chapterEndBrackets, s[end-1]) {
		end--
	}
	if end == 0 {
		return false
	}
	return contains(chapterMarkers, s[end-1])
}

func hasPrefix(s, prefix []rune) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
