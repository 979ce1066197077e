// Package tokenizer splits English review text into word-level tokens.
//
// Segmentation follows the Penn Treebank conventions used by common English
// tokenisers closely enough for bag-of-words features:
//
//   - Runs of letters and digits form one token. A single hyphen between
//     two such characters joins them ("well-known"), as does a decimal
//     point or thousands comma between digits ("3.5", "1,000").
//   - Clitics are split off: "don't" becomes "do" + "n't" and "film's"
//     becomes "film" + "'s". Other apostrophes inside a word keep it whole.
//   - Consecutive identical punctuation marks form one token ("!!", "...").
//   - Whitespace separates tokens and is never returned.
//
// The tokenizer does not change case. All functions are safe for
// concurrent use.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Contains at least one letter
	Number                       // Digits with optional decimal point or thousands comma
	Clitic                       // Contraction suffix split from a word: n't, 's, 're, 've, 'll, 'd, 'm
	Punctuation                  // Run of one repeated punctuation mark
	Symbol                       // Anything else: emoji, currency, maths symbols
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Clitic:
		return "Clitic"
	case Punctuation:
		return "Punctuation"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one unit of text with its byte offsets.
// The invariant s[t.Start:t.End] == t.Text holds for every token.
type Token struct {
	Text  string
	Start int
	End   int
	Type  TokenType
}

// String returns a debug representation, e.g. Word("movie")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits s into tokens with offsets and types.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns the text of every token in order.
// Punctuation, numbers and clitics are included; callers filter them.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := scan(s)
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}
