package property

import (
	"regexp"
	"strings"

	"github.com/yacobolo/cssdecl/internal/grammar"
)

// Validator normalizes one value of a longhand, or reports false.
type Validator func(v string) (string, bool)

var (
	borderStyles = grammar.NewKeywords(
		"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset",
	)
	lineWidths = grammar.NewKeywords("thin", "medium", "thick")
	displays   = grammar.NewKeywords(
		"none", "contents", "block", "inline", "inline-block", "run-in", "flow", "flow-root",
		"flex", "inline-flex", "grid", "inline-grid", "list-item",
		"table", "inline-table", "table-row-group", "table-header-group", "table-footer-group",
		"table-row", "table-cell", "table-column-group", "table-column", "table-caption",
	)
	positions     = grammar.NewKeywords("static", "relative", "absolute", "fixed", "sticky")
	floats        = grammar.NewKeywords("none", "left", "right", "inline-start", "inline-end")
	clears        = grammar.NewKeywords("none", "left", "right", "both", "inline-start", "inline-end")
	visibilities  = grammar.NewKeywords("visible", "hidden", "collapse")
	overflows     = grammar.NewKeywords("visible", "hidden", "clip", "scroll", "auto")
	boxSizings    = grammar.NewKeywords("border-box", "content-box")
	directions    = grammar.NewKeywords("ltr", "rtl")
	collapses     = grammar.NewKeywords("separate", "collapse")
	imageRepeats  = grammar.NewKeywords("stretch", "repeat", "round", "space")
	repeatAxes    = grammar.NewKeywords("repeat", "space", "round", "no-repeat")
	repeatSingles = grammar.NewKeywords("repeat-x", "repeat-y")
	attachments   = grammar.NewKeywords("scroll", "fixed", "local")
	boxes         = grammar.NewKeywords("border-box", "padding-box", "content-box")
	sizes         = grammar.NewKeywords("cover", "contain")
	fontStyles    = grammar.NewKeywords("normal", "italic", "oblique")
	fontVariants  = grammar.NewKeywords("normal", "small-caps")
	fontWeights   = grammar.NewKeywords("normal", "bold", "bolder", "lighter")
	fontStretches = grammar.NewKeywords(
		"normal", "ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
		"semi-expanded", "expanded", "extra-expanded", "ultra-expanded",
	)
	fontSizes = grammar.NewKeywords(
		"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large",
		"larger", "smaller",
	)
	textTransforms = grammar.NewKeywords("none", "capitalize", "uppercase", "lowercase", "full-width", "full-size-kana")
	textAligns     = grammar.NewKeywords("left", "right", "center", "justify", "start", "end", "match-parent")
	whiteSpaces    = grammar.NewKeywords("normal", "nowrap", "pre", "pre-wrap", "pre-line", "break-spaces")
	horizontal     = grammar.NewKeywords("left", "center", "right")
	vertical       = grammar.NewKeywords("top", "center", "bottom")

	rectRe   = regexp.MustCompile(`(?i)^rect\(([^()]*)\)$`)
	familyRe = regexp.MustCompile(`^(?:"[^"]*"|'[^']*'|-?[A-Za-z_][A-Za-z0-9_-]*(?:\s+-?[A-Za-z_][A-Za-z0-9_-]*)*)$`)
)

// oneOf tries each validator in turn.
func oneOf(fns ...Validator) Validator {
	return func(v string) (string, bool) {
		for _, fn := range fns {
			if r, ok := fn(v); ok {
				return r, true
			}
		}
		return "", false
	}
}

func keywords(k grammar.Keywords) Validator {
	return k.Match
}

func keyword(word string) Validator {
	return func(v string) (string, bool) {
		if strings.EqualFold(v, word) {
			return word, true
		}
		return "", false
	}
}

// list accepts lo to hi whitespace separated tokens, each matched by fn.
func list(lo, hi int, fn Validator) Validator {
	return func(v string) (string, bool) {
		fields := grammar.Fields(v)
		if len(fields) < lo || len(fields) > hi {
			return "", false
		}
		for i, f := range fields {
			r, ok := fn(f)
			if !ok {
				return "", false
			}
			fields[i] = r
		}
		return strings.Join(fields, " "), true
	}
}

// layered accepts a comma separated list of layers, each matched by fn.
func layered(fn Validator) Validator {
	return func(v string) (string, bool) {
		layers := grammar.Split(v, ',')
		for i, l := range layers {
			r, ok := fn(l)
			if !ok {
				return "", false
			}
			layers[i] = r
		}
		return strings.Join(layers, ", "), true
	}
}

func nonNegative(fn Validator) Validator {
	return func(v string) (string, bool) {
		r, ok := fn(v)
		if !ok || strings.HasPrefix(r, "-") {
			return "", false
		}
		return r, true
	}
}

var (
	lineWidth   = oneOf(keywords(lineWidths), grammar.Length, grammar.Calc, grammar.Variable)
	borderStyle = keywords(borderStyles)
	length      = oneOf(grammar.Length, grammar.Calc, grammar.Variable)
	number      = grammar.Float
	boxSize     = oneOf(keyword("auto"), grammar.ContentMeasurement)
	spacing     = oneOf(keyword("normal"), grammar.Measurement)

	fontWeight = oneOf(keywords(fontWeights), func(v string) (string, bool) {
		f, ok := grammar.Number(v)
		if !ok || f < 1 || f > 1000 {
			return "", false
		}
		return grammar.FormatNumber(f), true
	})

	fontSize = oneOf(keywords(fontSizes), nonNegative(grammar.Measurement))

	lineHeight = oneOf(keyword("normal"), nonNegative(grammar.Float), nonNegative(grammar.Measurement))

	fontStyle = oneOf(keywords(fontStyles), func(v string) (string, bool) {
		f := grammar.Fields(v)
		if len(f) != 2 || !strings.EqualFold(f[0], "oblique") {
			return "", false
		}
		deg, ok := grammar.Degree(f[1])
		if !ok {
			return "", false
		}
		return "oblique " + deg, true
	})

	overflow = list(1, 2, keywords(overflows))

	clip = oneOf(keyword("auto"), func(v string) (string, bool) {
		m := rectRe.FindStringSubmatch(v)
		if m == nil {
			return "", false
		}
		parts := grammar.Split(m[1], ',')
		if len(parts) == 1 {
			parts = grammar.Fields(m[1])
		}
		if len(parts) != 4 {
			return "", false
		}
		for i, p := range parts {
			r, ok := oneOf(keyword("auto"), length)(p)
			if !ok {
				return "", false
			}
			parts[i] = r
		}
		return "rect(" + strings.Join(parts, ", ") + ")", true
	})

	imageSlice = func(v string) (string, bool) {
		fields := grammar.Fields(v)
		fill := false
		var out []string
		for _, f := range fields {
			if strings.EqualFold(f, "fill") {
				if fill {
					return "", false
				}
				fill = true
				continue
			}
			r, ok := oneOf(nonNegative(grammar.Float), nonNegative(grammar.Percentage))(f)
			if !ok {
				return "", false
			}
			out = append(out, r)
		}
		if len(out) < 1 || len(out) > 4 {
			return "", false
		}
		if fill {
			out = append(out, "fill")
		}
		return strings.Join(out, " "), true
	}

	imageWidth  = list(1, 4, oneOf(keyword("auto"), nonNegative(grammar.Float), nonNegative(grammar.Measurement)))
	imageOutset = list(1, 4, oneOf(nonNegative(grammar.Float), nonNegative(length)))
	imageRepeat = list(1, 2, keywords(imageRepeats))

	radius = list(1, 2, nonNegative(grammar.Measurement))

	backgroundRepeat = func(v string) (string, bool) {
		if r, ok := repeatSingles.Match(v); ok {
			return r, true
		}
		return list(1, 2, keywords(repeatAxes))(v)
	}

	backgroundSize = oneOf(keywords(sizes), list(1, 2, nonNegative(grammar.AutoMeasurement)))

	positionX = positionAxis(horizontal, "left", "right")
	positionY = positionAxis(vertical, "top", "bottom")

	fontFamily = func(v string) (string, bool) {
		families := grammar.Split(v, ',')
		for i, f := range families {
			if !familyRe.MatchString(f) {
				return "", false
			}
			if f[0] != '"' && f[0] != '\'' {
				f = strings.Join(strings.Fields(f), " ")
			}
			families[i] = f
		}
		return strings.Join(families, ", "), true
	}

	opacity = oneOf(grammar.Float, grammar.Percentage)
)

// positionAxis accepts a keyword, a measurement, or an edge keyword
// followed by an offset.
func positionAxis(k grammar.Keywords, start, end string) Validator {
	return func(v string) (string, bool) {
		fields := grammar.Fields(v)
		switch len(fields) {
		case 1:
			if r, ok := k.Match(fields[0]); ok {
				return r, true
			}
			return grammar.Measurement(fields[0])
		case 2:
			edge, ok := k.Match(fields[0])
			if !ok || (edge != start && edge != end) {
				return "", false
			}
			offset, ok := grammar.Measurement(fields[1])
			if !ok {
				return "", false
			}
			return edge + " " + offset, true
		}
		return "", false
	}
}

var validators = [count]Validator{
	MarginTop:    grammar.AutoMeasurement,
	MarginRight:  grammar.AutoMeasurement,
	MarginBottom: grammar.AutoMeasurement,
	MarginLeft:   grammar.AutoMeasurement,

	PaddingTop:    nonNegative(grammar.Measurement),
	PaddingRight:  nonNegative(grammar.Measurement),
	PaddingBottom: nonNegative(grammar.Measurement),
	PaddingLeft:   nonNegative(grammar.Measurement),

	Width:     boxSize,
	Height:    boxSize,
	MinWidth:  boxSize,
	MinHeight: boxSize,
	MaxWidth:  oneOf(keyword("none"), grammar.ContentMeasurement),
	MaxHeight: oneOf(keyword("none"), grammar.ContentMeasurement),
	Top:       grammar.AutoMeasurement,
	Right:     grammar.AutoMeasurement,
	Bottom:    grammar.AutoMeasurement,
	Left:      grammar.AutoMeasurement,

	BorderTopWidth:    lineWidth,
	BorderRightWidth:  lineWidth,
	BorderBottomWidth: lineWidth,
	BorderLeftWidth:   lineWidth,
	BorderTopStyle:    borderStyle,
	BorderRightStyle:  borderStyle,
	BorderBottomStyle: borderStyle,
	BorderLeftStyle:   borderStyle,
	BorderTopColor:    grammar.Color,
	BorderRightColor:  grammar.Color,
	BorderBottomColor: grammar.Color,
	BorderLeftColor:   grammar.Color,

	BorderImageSource: grammar.Image,
	BorderImageSlice:  imageSlice,
	BorderImageWidth:  imageWidth,
	BorderImageOutset: imageOutset,
	BorderImageRepeat: imageRepeat,

	BorderTopLeftRadius:     radius,
	BorderTopRightRadius:    radius,
	BorderBottomRightRadius: radius,
	BorderBottomLeftRadius:  radius,
	BorderCollapse:          keywords(collapses),

	OutlineWidth:  lineWidth,
	OutlineStyle:  oneOf(keyword("auto"), borderStyle),
	OutlineColor:  oneOf(keyword("invert"), grammar.Color),
	OutlineOffset: length,

	Display:    keywords(displays),
	Position:   keywords(positions),
	Float:      keywords(floats),
	Clear:      keywords(clears),
	Visibility: keywords(visibilities),
	Overflow:   overflow,
	ZIndex:     oneOf(keyword("auto"), grammar.Integer),
	BoxSizing:  keywords(boxSizings),
	Direction:  keywords(directions),
	Clip:       clip,
	FlexGrow:   nonNegative(number),
	FlexShrink: nonNegative(number),
	FlexBasis:  oneOf(keyword("auto"), keyword("content"), grammar.ContentMeasurement),

	BackgroundColor:      grammar.Color,
	BackgroundImage:      layered(grammar.Image),
	BackgroundRepeat:     layered(backgroundRepeat),
	BackgroundAttachment: layered(keywords(attachments)),
	BackgroundPositionX:  layered(positionX),
	BackgroundPositionY:  layered(positionY),
	BackgroundSize:       layered(backgroundSize),
	BackgroundOrigin:     layered(keywords(boxes)),
	BackgroundClip:       layered(oneOf(keywords(boxes), keyword("text"))),

	Color:         grammar.Color,
	FontStyle:     fontStyle,
	FontVariant:   keywords(fontVariants),
	FontWeight:    fontWeight,
	FontStretch:   oneOf(keywords(fontStretches), nonNegative(grammar.Percentage)),
	FontSize:      fontSize,
	FontFamily:    fontFamily,
	LineHeight:    lineHeight,
	TextTransform: keywords(textTransforms),
	TextAlign:     keywords(textAligns),
	WhiteSpace:    keywords(whiteSpaces),
	LetterSpacing: spacing,
	WordSpacing:   spacing,

	Opacity:    opacity,
	FloodColor: grammar.Color,
}

// Component validates v as a token inside a shorthand value. CSS-wide
// keywords are not accepted at this level.
func Component(id ID, v string) (string, bool) {
	if !id.IsLonghand() {
		return "", false
	}
	if r, ok := grammar.Variable(v); ok {
		return r, true
	}
	return validators[id](v)
}

// Validate normalizes a value assigned directly to a longhand: a var()
// reference first, then a css-wide keyword, then the property grammar.
func Validate(id ID, v string) (string, bool) {
	if !id.IsLonghand() {
		return "", false
	}
	if r, ok := grammar.Variable(v); ok {
		return r, true
	}
	if r, ok := grammar.Global(v); ok {
		return r, true
	}
	return validators[id](v)
}
