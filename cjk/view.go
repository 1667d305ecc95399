package cjk

// View helpers operate on []rune slices without allocating. Trim functions
// return subslices of their argument.

// lineSpace is the trim set used for line stripping: ASCII layout
// whitespace plus the ideographic space. Narrower than IsSpace on purpose;
// exotic Unicode spaces inside a line are content, not layout.
func lineSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == 0x3000
}

// TrimRight returns s without trailing line whitespace.
func TrimRight(s []rune) []rune {
	end := len(s)
	for end > 0 && lineSpace(s[end-1]) {
		end--
	}
	return s[:end]
}

// TrimLeft returns s without leading line whitespace.
func TrimLeft(s []rune) []rune {
	start := 0
	for start < len(s) && lineSpace(s[start]) {
		start++
	}
	return s[start:]
}

// Trim returns s without leading and trailing line whitespace.
func Trim(s []rune) []rune {
	return TrimRight(TrimLeft(s))
}

// TrimSpace returns s without leading and trailing whitespace, using the
// full IsSpace set.
func TrimSpace(s []rune) []rune {
	start := 0
	for start < len(s) && IsSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && IsSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// LastNonSpace returns the last non-whitespace rune in s and its index.
// ok is false if s is empty or all whitespace.
func LastNonSpace(s []rune) (r rune, i int, ok bool) {
	for i = len(s) - 1; i >= 0; i-- {
		if !IsSpace(s[i]) {
			return s[i], i, true
		}
	}
	return 0, -1, false
}

// FirstNonSpace returns the first non-whitespace rune in s and its index.
// ok is false if s is empty or all whitespace.
func FirstNonSpace(s []rune) (r rune, i int, ok bool) {
	for i = 0; i < len(s); i++ {
		if !IsSpace(s[i]) {
			return s[i], i, true
		}
	}
	return 0, -1, false
}

// PrevNonSpace returns the last non-whitespace rune strictly before index
// before. ok is false if none exists.
func PrevNonSpace(s []rune, before int) (r rune, i int, ok bool) {
	if before > len(s) {
		before = len(s)
	}
	for i = before - 1; i >= 0; i-- {
		if !IsSpace(s[i]) {
			return s[i], i, true
		}
	}
	return 0, -1, false
}
