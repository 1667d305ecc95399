// Package classify provides the per-line classifiers the reflow state
// machine evaluates before deciding to merge or flush: page markers,
// visual dividers, title headings, metadata lines, weak heading-like
// lines, and chapter-like endings.
//
// Each classifier takes a stripped line view and returns a boolean.
// Classifiers carry no state; all lookup tables are immutable package
// data.
package classify

import "github.com/zhtext/reflow/cjk"

// IsPageMarker reports whether s is a page-marker line of the fixed form
// "=== ... ===" inserted by the extraction stage. Markers always become
// standalone segments and are never merged with prose.
func IsPageMarker(s []rune) bool {
	if len(s) < 7 {
		return false
	}
	if s[0] != '=' || s[1] != '=' || s[2] != '=' || s[3] != ' ' {
		return false
	}
	n := len(s)
	return s[n-1] == '=' && s[n-2] == '=' && s[n-3] == '='
}

// IsVisualDivider reports whether s is a decorative divider line: nothing
// but whitespace plus box-drawing glyphs (U+2500–U+257F), dashes,
// underscores, tildes, or asterisk/star glyphs, with at least three
// significant characters. Dividers force a hard paragraph break.
func IsVisualDivider(s []rune) bool {
	total := 0
	for _, r := range s {
		if isDividerSpace(r) {
			continue
		}
		total++

		if r >= 0x2500 && r <= 0x257F { // box drawing
			continue
		}
		if r == '-' || r == '=' || r == '_' || r == '~' || r == 0xFF5E { // ～
			continue
		}
		if r == '*' || r == 0xFF0A || r == 0x2605 || r == 0x2606 { // ＊ ★ ☆
			continue
		}
		return false
	}
	return total >= 3
}

func isDividerSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == 0x3000
}

// IsIndented reports whether the raw (unstripped) line starts with at
// least two spaces, tabs, or ideographic spaces. Indentation marks the
// first line of a new paragraph in many CJK layouts.
func IsIndented(raw []rune) bool {
	count := 0
	for _, r := range raw {
		if r == ' ' || r == '\t' || r == 0x3000 {
			count++
			if count >= 2 {
				return true
			}
			continue
		}
		break
	}
	return false
}

// contains reports whether set contains r.
func contains(set string, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}

// trimmed strips line whitespace from both ends of s.
func trimmed(s []rune) []rune {
	return cjk.Trim(s)
}
