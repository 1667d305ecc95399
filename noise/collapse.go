// Package noise removes OCR and typesetting artifacts from extracted text
// lines, most notably styled headings that the extractor renders several
// times in a row.
//
// The collapse routines are intentionally conservative: bounded unit
// lengths and a minimum repeat count keep legitimate repetition in prose
// (e.g. "哈哈哈哈") untouched.
package noise

const (
	minTokenLen  = 4
	maxTokenLen  = 200
	minUnitLen   = 4
	maxUnitLen   = 10
	minRepeats   = 3
	maxPhraseLen = 8
)

// CollapseToken collapses a single whitespace-delimited token made
// entirely of one repeated unit. Units of 4 to 10 runes repeated at least
// three times with no remainder collapse to a single unit; anything else
// is returned unchanged. The result is a subslice of token.
func CollapseToken(token []rune) []rune {
	n := len(token)
	if n < minTokenLen || n > maxTokenLen {
		return token
	}

	for unit := minUnitLen; unit <= maxUnitLen && unit <= n/minRepeats; unit++ {
		if n%unit != 0 {
			continue
		}
		all := true
		for pos := unit; pos < n && all; pos += unit {
			for k := 0; k < unit; k++ {
				if token[pos+k] != token[k] {
					all = false
					break
				}
			}
		}
		if all {
			return token[:unit]
		}
	}

	return token
}

// CollapsePhrases collapses the first contiguous run of a repeated phrase
// within a token sequence. A phrase of 1 to 8 tokens repeated at least
// three times is replaced by a single copy; the prefix and tail are
// preserved. Sequences with no such run are returned unchanged.
func CollapsePhrases(parts [][]rune) [][]rune {
	n := len(parts)
	if n < minRepeats {
		return parts
	}

	for start := 0; start < n; start++ {
		for phrase := 1; phrase <= maxPhraseLen && start+phrase <= n; phrase++ {
			count := 1
			for {
				next := start + count*phrase
				if next+phrase > n {
					break
				}
				if !phraseEqual(parts, start, next, phrase) {
					break
				}
				count++
			}
			if count < minRepeats {
				continue
			}

			out := make([][]rune, 0, n-(count-1)*phrase)
			out = append(out, parts[:start]...)
			out = append(out, parts[start:start+phrase]...)
			out = append(out, parts[start+count*phrase:]...)
			return out
		}
	}

	return parts
}

func phraseEqual(parts [][]rune, a, b, n int) bool {
	for k := 0; k < n; k++ {
		if !runesEqual(parts[a+k], parts[b+k]) {
			return false
		}
	}
	return true
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CollapseLine applies phrase-level then token-level collapse to one line.
// The line is split on spaces and tabs; surviving tokens are rejoined with
// single spaces. Lines with no tokens are returned unchanged.
func CollapseLine(line []rune) []rune {
	if len(line) == 0 {
		return line
	}

	var parts [][]rune
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		parts = append(parts, line[start:i])
	}

	if len(parts) == 0 {
		return line
	}

	parts = CollapsePhrases(parts)

	out := make([]rune, 0, len(line))
	for i, tok := range parts {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, CollapseToken(tok)...)
	}
	return out
}
