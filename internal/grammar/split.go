package grammar

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// token is one lexed piece of a value. Top is set when the token sits outside
// every function and parenthesized group.
type token struct {
	tt   css.TokenType
	data string
	top  bool
}

// tokenize lexes v with the CSS lexer. Joining the data of every token gives
// back v.
func tokenize(v string) []token {
	lexer := css.NewLexer(parse.NewInputString(v))

	var out []token
	depth, offset := 0, 0
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// The lexer stops on a NUL byte; keep the rest as one opaque token.
			if offset < len(v) {
				out = append(out, token{tt: css.DelimToken, data: v[offset:], top: depth == 0})
			}
			return out
		}
		offset += len(data)

		top := depth == 0
		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		}
		out = append(out, token{tt: tt, data: string(data), top: top})
	}
}

// Fields splits v on whitespace that is not inside parentheses or quotes.
func Fields(v string) []string {
	var out []string
	var field strings.Builder
	flush := func() {
		if field.Len() > 0 {
			out = append(out, field.String())
			field.Reset()
		}
	}
	for _, t := range tokenize(v) {
		if t.top && t.tt == css.WhitespaceToken {
			flush()
			continue
		}
		field.WriteString(t.data)
	}
	flush()
	return out
}

// Split cuts v at every top-level occurrence of sep and trims each part.
func Split(v string, sep byte) []string {
	var out []string
	var part strings.Builder
	for _, t := range tokenize(v) {
		if t.top && isSeparator(t, sep) {
			out = append(out, strings.TrimSpace(part.String()))
			part.Reset()
			continue
		}
		part.WriteString(t.data)
	}
	return append(out, strings.TrimSpace(part.String()))
}

func isSeparator(t token, sep byte) bool {
	if len(t.data) != 1 || t.data[0] != sep {
		return false
	}
	switch t.tt {
	case css.CommaToken, css.DelimToken, css.ColonToken, css.SemicolonToken:
		return true
	}
	return false
}

// Tighten removes whitespace around top-level commas so that a comma-separated
// group survives Fields as a single token.
func Tighten(v string) string {
	return rejoin(v, ",", ",")
}

// Isolate surrounds every top-level occurrence of sep with single spaces so that
// it becomes a token of its own under Fields.
func Isolate(v string, sep byte) string {
	return rejoin(v, string(sep), " "+string(sep)+" ")
}

func rejoin(v, sep, with string) string {
	parts := Split(v, sep[0])
	if len(parts) == 1 {
		return v
	}
	return strings.Join(parts, with)
}
