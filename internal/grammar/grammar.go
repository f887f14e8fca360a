// Package grammar holds the value grammar shared by every property validator.
//
// Each function takes one raw token and returns its normalized form, or false
// when the token does not belong to the category. Functions are pure and safe
// for concurrent use; the lookup tables they consult are built once at package
// initialization and never mutated afterwards.
package grammar

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Keywords is an immutable set of lower-case CSS identifiers.
type Keywords map[string]struct{}

// NewKeywords builds a keyword set.
func NewKeywords(words ...string) Keywords {
	k := make(Keywords, len(words))
	for _, w := range words {
		k[w] = struct{}{}
	}
	return k
}

// Match reports whether v (case-insensitively) is one of the keywords and
// returns it lower-cased.
func (k Keywords) Match(v string) (string, bool) {
	lower := strings.ToLower(v)
	if _, ok := k[lower]; ok {
		return lower, true
	}
	return "", false
}

// Has reports membership without normalization.
func (k Keywords) Has(v string) bool {
	_, ok := k[v]
	return ok
}

var (
	globals = NewKeywords("inherit", "initial", "unset", "revert")

	lengthUnits = map[string]string{
		"px": "px", "em": "em", "rem": "rem", "ex": "ex", "ch": "ch",
		"vw": "vw", "vh": "vh", "vmin": "vmin", "vmax": "vmax",
		"cm": "cm", "mm": "mm", "in": "in", "pt": "pt", "pc": "pc", "q": "Q",
	}

	contentKeywords = NewKeywords("max-content", "min-content", "fit-content")

	variableRe = regexp.MustCompile(`^var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,\s*(.*?))?\s*\)$`)
	urlRe      = regexp.MustCompile(`(?i)^url\(\s*(.*?)\s*\)$`)
	gradientRe = regexp.MustCompile(`(?i)^((?:repeating-)?(?:linear|radial|conic)-gradient)\((.+)\)$`)
	fitRe      = regexp.MustCompile(`(?i)^fit-content\((.+)\)$`)
	commaRe    = regexp.MustCompile(`\s*,\s*`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// Global matches the css-wide keywords inherit, initial, unset and revert.
func Global(v string) (string, bool) {
	return globals.Match(v)
}

// GlobalExceptInitial is Global without initial.
func GlobalExceptInitial(v string) (string, bool) {
	g, ok := globals.Match(v)
	if !ok || g == "initial" {
		return "", false
	}
	return g, true
}

// Variable matches a var() reference, with an optional fallback.
func Variable(v string) (string, bool) {
	m := variableRe.FindStringSubmatch(v)
	if m == nil {
		return "", false
	}
	if m[2] == "" {
		return "var(" + m[1] + ")", true
	}
	return "var(" + m[1] + ", " + m[2] + ")", true
}

// FormatNumber rounds to six decimal places and prints the shortest form.
// Halves round towards positive infinity and negative zero prints as 0.
func FormatNumber(f float64) string {
	// From 1e15 up a float64 has no digits below the sixth decimal, and
	// scaling by 1e6 could overflow to Inf.
	if math.Abs(f) < 1e15 {
		f = math.Floor(f*1e6+0.5) / 1e6
	}
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// dimension splits v into its numeric part and unit. The whole input must be
// consumed by the two parts.
func dimension(v string) (float64, string, bool) {
	b := []byte(v)
	num, unit := parse.Dimension(b)
	if num == 0 || num+unit != len(b) {
		return 0, "", false
	}
	f, err := strconv.ParseFloat(v[:num], 64)
	if err != nil {
		return 0, "", false
	}
	return f, v[num:], true
}

// Number matches a bare number and returns it unformatted.
func Number(v string) (float64, bool) {
	f, unit, ok := dimension(v)
	if !ok || unit != "" {
		return 0, false
	}
	return f, true
}

// Length matches <length>. The literal 0 normalizes to 0px.
func Length(v string) (string, bool) {
	if v == "0" {
		return "0px", true
	}
	f, unit, ok := dimension(v)
	if !ok || unit == "" {
		return "", false
	}
	u, ok := lengthUnits[strings.ToLower(unit)]
	if !ok {
		return "", false
	}
	return FormatNumber(f) + u, true
}

// Percentage matches <percentage>. The literal 0 normalizes to 0%.
func Percentage(v string) (string, bool) {
	if v == "0" {
		return "0%", true
	}
	f, unit, ok := dimension(v)
	if !ok || unit != "%" {
		return "", false
	}
	return FormatNumber(f) + "%", true
}

// Degree matches an angle in degrees. The literal 0 normalizes to 0deg.
func Degree(v string) (string, bool) {
	if v == "0" {
		return "0deg", true
	}
	f, unit, ok := dimension(v)
	if !ok || strings.ToLower(unit) != "deg" {
		return "", false
	}
	return FormatNumber(f) + "deg", true
}

// Integer matches an optionally signed run of digits.
func Integer(v string) (string, bool) {
	s := strings.TrimPrefix(v, "+")
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0", true
	}
	if strings.HasPrefix(s, "-") {
		return "-" + digits, true
	}
	return digits, true
}

// Float matches a bare number, rounded to six decimal places.
func Float(v string) (string, bool) {
	f, ok := Number(v)
	if !ok {
		return "", false
	}
	return FormatNumber(f), true
}

// Calc matches calc(...) with balanced parentheses. Internal whitespace is
// collapsed and the function name lower-cased.
func Calc(v string) (string, bool) {
	if len(v) < 6 || !strings.EqualFold(v[:5], "calc(") || v[len(v)-1] != ')' {
		return "", false
	}
	if !balanced(v) {
		return "", false
	}
	inner := strings.TrimSpace(v[5 : len(v)-1])
	if inner == "" {
		return "", false
	}
	return "calc(" + spaceRe.ReplaceAllString(inner, " ") + ")", true
}

// URL matches url(...). Matching quotes are stripped; an unquoted body may not
// contain parentheses, whitespace or quotes unless escaped. The literal none
// is accepted as is.
func URL(v string) (string, bool) {
	if strings.EqualFold(v, "none") {
		return "none", true
	}
	m := urlRe.FindStringSubmatch(v)
	if m == nil {
		return "", false
	}
	u := m[1]
	if u != "" && (u[0] == '"' || u[0] == '\'') {
		if len(u) < 2 || u[len(u)-1] != u[0] {
			return "", false
		}
		u = u[1 : len(u)-1]
	}
	for i := 0; i < len(u); i++ {
		switch u[i] {
		case '(', ')', ' ', '\t', '\n', '\'', '"':
			return "", false
		case '\\':
			i++
		}
	}
	return `url("` + u + `")`, true
}

// Gradient matches the linear, radial and conic gradient functions and their
// repeating forms. Only the spacing around commas is canonicalized.
func Gradient(v string) (string, bool) {
	m := gradientRe.FindStringSubmatch(v)
	if m == nil || !balanced(v) {
		return "", false
	}
	inner := commaRe.ReplaceAllString(strings.TrimSpace(m[2]), ", ")
	return strings.ToLower(m[1]) + "(" + inner + ")", true
}

// Image matches url(), none or a gradient.
func Image(v string) (string, bool) {
	if u, ok := URL(v); ok {
		return u, true
	}
	return Gradient(v)
}

// Measurement matches a length, percentage, calc() or var() reference.
func Measurement(v string) (string, bool) {
	if r, ok := Variable(v); ok {
		return r, true
	}
	if r, ok := Calc(v); ok {
		return r, true
	}
	if r, ok := Length(v); ok {
		return r, true
	}
	return Percentage(v)
}

// AutoMeasurement matches auto or a measurement.
func AutoMeasurement(v string) (string, bool) {
	if strings.EqualFold(v, "auto") {
		return "auto", true
	}
	return Measurement(v)
}

// ContentMeasurement matches min-content, max-content, fit-content,
// fit-content(<measurement>) or a measurement.
func ContentMeasurement(v string) (string, bool) {
	if k, ok := contentKeywords.Match(v); ok {
		return k, true
	}
	if m := fitRe.FindStringSubmatch(v); m != nil {
		if inner, ok := Measurement(strings.TrimSpace(m[1])); ok {
			return "fit-content(" + inner + ")", true
		}
		return "", false
	}
	return Measurement(v)
}

// balanced reports whether parentheses in v nest correctly.
func balanced(v string) bool {
	depth := 0
	for _, t := range tokenize(v) {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
