package segment

// DialogState tracks how many quotes of each dialogue style are open in
// the paragraph under construction. Counters never go negative: a stray
// closer under malformed input is ignored rather than corrupting state.
//
// The zero value is ready to use. State is reset whenever the paragraph
// buffer is flushed.
type DialogState struct {
	doubleQuote int // “ ”
	singleQuote int // ‘ ’
	corner      int // 「 」
	cornerBold  int // 『 』
	cornerTop   int // ﹁ ﹂
	cornerWide  int // ﹃ ﹄
}

// Reset clears all counters.
func (d *DialogState) Reset() {
	*d = DialogState{}
}

// Update scans s and adjusts the counters for every dialogue opener and
// closer it contains.
func (d *DialogState) Update(s []rune) {
	for _, r := range s {
		switch r {
		case '“':
			d.doubleQuote++
		case '”':
			if d.doubleQuote > 0 {
				d.doubleQuote--
			}
		case '‘':
			d.singleQuote++
		case '’':
			if d.singleQuote > 0 {
				d.singleQuote--
			}
		case '「':
			d.corner++
		case '」':
			if d.corner > 0 {
				d.corner--
			}
		case '『':
			d.cornerBold++
		case '』':
			if d.cornerBold > 0 {
				d.cornerBold--
			}
		case '﹁':
			d.cornerTop++
		case '﹂':
			if d.cornerTop > 0 {
				d.cornerTop--
			}
		case '﹃':
			d.cornerWide++
		case '﹄':
			if d.cornerWide > 0 {
				d.cornerWide--
			}
		}
	}
}

// Unclosed reports whether any dialogue style is still open. While it is,
// the engine never flushes, regardless of other signals.
func (d *DialogState) Unclosed() bool {
	return d.doubleQuote > 0 ||
		d.singleQuote > 0 ||
		d.corner > 0 ||
		d.cornerBold > 0 ||
		d.cornerTop > 0 ||
		d.cornerWide > 0
}
