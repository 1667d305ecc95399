// Package convert defines the contract for the downstream word-conversion
// stage (simplified/traditional Chinese), which consumes reflowed text.
//
// The conversion engine itself lives outside this module; callers plug in
// an implementation. Noop and Chain cover composition and testing.
package convert

// Converter converts text according to a named conversion configuration
// (e.g. "s2t", "t2s"). punctuation controls whether punctuation is
// converted alongside the characters.
type Converter interface {
	Convert(text, configID string, punctuation bool) (string, error)
}

// Func adapts a plain function to the Converter interface.
type Func func(text, configID string, punctuation bool) (string, error)

// Convert calls f.
func (f Func) Convert(text, configID string, punctuation bool) (string, error) {
	return f(text, configID, punctuation)
}

// Noop returns its input unchanged.
var Noop Converter = Func(func(text, _ string, _ bool) (string, error) {
	return text, nil
})

// Chain applies converters in order, feeding each output to the next.
// An error aborts the chain.
func Chain(converters ...Converter) Converter {
	return Func(func(text, configID string, punctuation bool) (string, error) {
		var err error
		for _, c := range converters {
			text, err = c.Convert(text, configID, punctuation)
			if err != nil {
				return "", err
			}
		}
		return text, nil
	})
}
