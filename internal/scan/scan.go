// Package scan splits CSS declaration text into name, value and priority.
//
// The scanner is permissive: fragments without a colon, and declarations with
// an empty name or value, are skipped without error. Parentheses, strings,
// url() tokens and comments are handled by the tdewolff CSS lexer, so
// semicolons and colons inside them never split a declaration.
package scan

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Pair is one declaration found in the text.
type Pair struct {
	Name      string
	Value     string
	Important bool
	// Offset is the byte offset of the name within the scanned text.
	Offset int
}

var importantRe = regexp.MustCompile(`(?i)!\s*important\s*$`)

// Scan calls onPair for each declaration of text, in source order.
func Scan(text string, onPair func(Pair)) {
	lexer := css.NewLexer(parse.NewInputString(text))

	var name, value strings.Builder
	inValue := false
	depth := 0
	offset, start := 0, -1

	flush := func() {
		if inValue {
			emit(name.String(), value.String(), start, onPair)
		}
		name.Reset()
		value.Reset()
		inValue = false
		depth = 0
		start = -1
	}

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// EOF or an unrecoverable lexer error; either way the input ends here.
			flush()
			return
		}
		pos := offset
		offset += len(data)

		switch tt {
		case css.CommentToken:
			continue
		case css.SemicolonToken:
			if depth == 0 {
				flush()
				continue
			}
		case css.ColonToken:
			if depth == 0 && !inValue {
				inValue = true
				continue
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		}

		if inValue {
			value.Write(data)
			continue
		}
		if start < 0 && tt != css.WhitespaceToken {
			start = pos
		}
		name.Write(data)
	}
}

// All returns every declaration of text.
func All(text string) []Pair {
	var pairs []Pair
	Scan(text, func(p Pair) {
		pairs = append(pairs, p)
	})
	return pairs
}

func emit(rawName, rawValue string, start int, onPair func(Pair)) {
	name := strings.TrimSpace(rawName)
	value := strings.TrimSpace(rawValue)
	important := false
	if loc := importantRe.FindStringIndex(value); loc != nil {
		important = true
		value = strings.TrimSpace(value[:loc[0]])
	}
	if name == "" || value == "" {
		return
	}
	onPair(Pair{Name: name, Value: value, Important: important, Offset: start})
}
