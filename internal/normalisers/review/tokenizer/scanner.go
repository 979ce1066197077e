package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// clitics are the contraction suffixes split from the end of a word,
// without their leading apostrophe.
var clitics = map[string]struct{}{
	"s": {}, "re": {}, "ve": {}, "ll": {}, "d": {}, "m": {},
}

// scan splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/5+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if unicode.IsSpace(r) {
			i += size
			continue
		}

		if isWordRune(r) {
			end := scanWord(s, i)
			tokens = appendWord(tokens, s, i, end)
			i = end
			continue
		}

		if unicode.IsPunct(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if nr != r {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanWord consumes a run of word runes starting at pos, joining across a
// single hyphen, apostrophe, or digit separator when word runes follow.
func scanWord(s string, pos int) int {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isWordRune(r) || unicode.Is(unicode.Mn, r) {
			i += size
			continue
		}
		if !isJoiner(r) || i == pos {
			break
		}
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		next, nextSize := utf8.DecodeRuneInString(s[i+size:])
		if i+size >= len(s) || !isWordRune(next) {
			break
		}
		switch {
		case r == '-':
		case isApostrophe(r):
			if !unicode.IsLetter(prev) || !unicode.IsLetter(next) {
				return i
			}
		case r == '.' || r == ',':
			if !unicode.IsDigit(prev) || !unicode.IsDigit(next) {
				return i
			}
		}
		i += size + nextSize
	}
	return i
}

// appendWord classifies s[start:end] and splits a trailing clitic.
func appendWord(tokens []Token, s string, start, end int) []Token {
	text := s[start:end]

	if cut := cliticStart(text); cut > 0 {
		tokens = append(tokens, Token{Text: text[:cut], Start: start, End: start + cut, Type: classify(text[:cut])})
		return append(tokens, Token{Text: text[cut:], Start: start + cut, End: end, Type: Clitic})
	}

	return append(tokens, Token{Text: text, Start: start, End: end, Type: classify(text)})
}

// cliticStart returns the byte offset at which a clitic suffix begins,
// or 0 if text has none. "n't" takes the n with it: "don't" -> "do" + "n't".
func cliticStart(text string) int {
	idx := strings.LastIndexFunc(text, isApostrophe)
	if idx <= 0 {
		return 0
	}
	_, aposSize := utf8.DecodeRuneInString(text[idx:])
	suffix := strings.ToLower(text[idx+aposSize:])

	if suffix == "t" && idx >= 2 && (text[idx-1] == 'n' || text[idx-1] == 'N') {
		return idx - 1
	}
	if _, ok := clitics[suffix]; ok {
		return idx
	}
	return 0
}

func classify(text string) TokenType {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return Word
		}
	}
	return Number
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isJoiner(r rune) bool {
	return r == '-' || r == '.' || r == ',' || isApostrophe(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}
