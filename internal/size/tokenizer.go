package size

import (
	"strings"
	"unicode/utf8"
)

// Tokenizer turns text into an ordered token sequence. The token count of a
// span is the length of that sequence. Implementations must be
// deterministic: same text, same tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// TokenizerFunc adapts a function to the Tokenizer interface.
type TokenizerFunc func(text string) ([]string, error)

func (f TokenizerFunc) Tokenize(text string) ([]string, error) { return f(text) }

// WhitespaceTokenizer splits on whitespace runs. It is the default measurer
// when no model-specific tokenizer is supplied.
func WhitespaceTokenizer() Tokenizer {
	return TokenizerFunc(func(text string) ([]string, error) {
		return strings.Fields(text), nil
	})
}

// EstimateTokenizer approximates subword token counts with the common
// ~4 chars/token heuristic, counting characters as runes like every other
// measurement here. It emits placeholder tokens so that count is still
// sequence length.
func EstimateTokenizer() Tokenizer {
	return TokenizerFunc(func(text string) ([]string, error) {
		n := utf8.RuneCountInString(text) / 4
		if n == 0 && len(text) > 0 {
			n = 1
		}
		return make([]string, n), nil
	})
}

// ForName returns a tokenizer by configuration name, defaulting to
// whitespace splitting.
func ForName(name string) Tokenizer {
	switch name {
	case "estimate":
		return EstimateTokenizer()
	default:
		return WhitespaceTokenizer()
	}
}
