package punct

// bracketPairs maps each opener to its closer. The table covers ASCII and
// full-width parentheses, square brackets, curly braces, angle brackets,
// and the four CJK bracket styles.
var bracketPairs = [...][2]rune{
	{'（', '）'},
	{'(', ')'},
	{'［', '］'},
	{'[', ']'},
	{'｛', '｝'},
	{'{', '}'},
	{'＜', '＞'},
	{'<', '>'},
	{'⟨', '⟩'},
	{'〈', '〉'},
	{'【', '】'},
	{'《', '》'},
	{'〔', '〕'},
	{'〖', '〗'},
}

// IsBracketOpener reports whether r opens a pair in the bracket table.
func IsBracketOpener(r rune) bool {
	for _, p := range bracketPairs {
		if p[0] == r {
			return true
		}
	}
	return false
}

// IsBracketCloser reports whether r closes a pair in the bracket table.
func IsBracketCloser(r rune) bool {
	for _, p := range bracketPairs {
		if p[1] == r {
			return true
		}
	}
	return false
}

// IsMatchingPair reports whether open and close form a pair in the table.
func IsMatchingPair(open, close rune) bool {
	for _, p := range bracketPairs {
		if p[0] == open && p[1] == close {
			return true
		}
	}
	return false
}

// MatchingCloser returns the closer paired with open. ok is false if open
// is not a known opener.
func MatchingCloser(open rune) (close rune, ok bool) {
	for _, p := range bracketPairs {
		if p[0] == open {
			return p[1], true
		}
	}
	return 0, false
}

// IsTrailingCloser reports whether r may legitimately trail sentence-end
// punctuation: any generic bracket closer.
func IsTrailingCloser(r rune) bool {
	return IsBracketCloser(r)
}

// IsWrappedByPair reports whether s starts with an opener and ends with
// its matching closer.
func IsWrappedByPair(s []rune) bool {
	if len(s) < 2 {
		return false
	}
	return IsMatchingPair(s[0], s[len(s)-1])
}

// IsPairBalanced reports whether the bracket type identified by open is
// balanced within s: the signed depth never goes negative and returns to
// zero at the end. Unknown openers report false.
func IsPairBalanced(s []rune, open rune) bool {
	close, ok := MatchingCloser(open)
	if !ok {
		return false
	}

	depth := 0
	for _, r := range s {
		switch r {
		case open:
			depth++
		case close:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// HasUnclosedBracket reports whether s contains an unclosed or mismatched
// bracket of any type in the table: a stray or wrongly-nested closer, or
// an opener left open at the end.
func HasUnclosedBracket(s []rune) bool {
	var stack []rune
	for _, r := range s {
		if IsBracketOpener(r) {
			stack = append(stack, r)
			continue
		}
		if !IsBracketCloser(r) {
			continue
		}
		if len(stack) == 0 || !IsMatchingPair(stack[len(stack)-1], r) {
			return true
		}
		stack = stack[:len(stack)-1]
	}
	return len(stack) > 0
}
