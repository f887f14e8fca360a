package shorthand

import (
	"strings"

	"github.com/yacobolo/cssdecl/internal/grammar"
	"github.com/yacobolo/cssdecl/internal/property"
)

// Source provides the stored longhand values a shorthand is rebuilt from.
type Source interface {
	Lookup(id property.ID) (property.Value, bool)
}

type collapser func(v values) (string, bool)

// values holds the stored value of every required longhand.
type values map[property.ID]string

var collapsers map[property.ID]collapser

func init() {
	collapsers = map[property.ID]collapser{
		property.Margin:       collapseEdge(property.Margin),
		property.Padding:      collapseEdge(property.Padding),
		property.BorderWidth:  collapseEdge(property.BorderWidth),
		property.BorderStyle:  collapseEdge(property.BorderStyle),
		property.BorderColor:  collapseEdge(property.BorderColor),
		property.BorderRadius: collapseRadius,

		property.Border:             collapseBorder,
		property.BorderTop:          collapseSequence(property.BorderTopWidth, property.BorderTopStyle, property.BorderTopColor),
		property.BorderRight:        collapseSequence(property.BorderRightWidth, property.BorderRightStyle, property.BorderRightColor),
		property.BorderBottom:       collapseSequence(property.BorderBottomWidth, property.BorderBottomStyle, property.BorderBottomColor),
		property.BorderLeft:         collapseSequence(property.BorderLeftWidth, property.BorderLeftStyle, property.BorderLeftColor),
		property.BorderImage:        collapseBorderImage,
		property.Outline:            collapseSequence(property.OutlineWidth, property.OutlineStyle, property.OutlineColor),
		property.Flex:               collapseSequence(property.FlexGrow, property.FlexShrink, property.FlexBasis),
		property.Font:               collapseFont,
		property.Background:         collapseBackground,
		property.BackgroundPosition: collapseBackgroundPosition,
	}
}

// Collapse rebuilds the value of shorthand id from src. It reports false when
// a required longhand is missing or the longhands cannot be written as one
// shorthand value. The result is important only when every required longhand
// is.
func Collapse(id property.ID, src Source) (property.Value, bool) {
	fn, ok := collapsers[id]
	if !ok {
		return property.Value{}, false
	}

	required := property.Required(id)
	vals := make(values, len(required))
	important := true
	for _, l := range required {
		pv, ok := src.Lookup(l)
		if !ok {
			return property.Value{}, false
		}
		vals[l] = pv.Value
		important = important && pv.Important
	}

	if kw, ok := commonKeyword(id, required, vals); ok {
		return property.Value{Value: kw, Important: important}, kw != ""
	}

	v, ok := fn(vals)
	if !ok {
		return property.Value{}, false
	}
	if v == "" {
		v = initial
	}
	return property.Value{Value: v, Important: important}, true
}

// initialKeyword lists the shorthands that collapse to a uniform initial as
// a keyword. Every other shorthand builds its component list from it.
var initialKeyword = map[property.ID]bool{
	property.Border:     true,
	property.Background: true,
	property.Flex:       true,
	property.Font:       true,
}

// commonKeyword handles css-wide keywords. When every required longhand
// holds the same keyword the shorthand is that keyword. Composite shorthands
// omit initial components, so initial mixed with ordinary values is left to
// the collapser.
//
// Any other mix involving a keyword is reported as ok with an empty keyword,
// meaning not collapsible. A component list such as "inherit 1px" could be
// built instead but is not valid CSS.
func commonKeyword(id property.ID, required []property.ID, vals values) (string, bool) {
	composite := property.KindOf(id) == property.CompositeShorthand
	first := vals[required[0]]
	same := true
	keyword := false
	for _, l := range required {
		v := vals[l]
		if v != first {
			same = false
		}
		if _, ok := grammar.Global(v); ok && !(composite && v == initial) {
			keyword = true
		}
	}
	if _, ok := grammar.Global(first); ok && same {
		if first != initial || initialKeyword[id] {
			return first, true
		}
		return "", false
	}
	if keyword {
		return "", true
	}
	return "", false
}

// minimize applies the 1 to 4 value rule in reverse.
func minimize(v [4]string) []string {
	out := []string{v[0]}
	keep1 := !(v[1] == v[0] && v[2] == v[0] && v[3] == v[1])
	keep2 := !(v[2] == v[0] && v[3] == v[1])
	keep3 := v[3] != v[1]
	switch {
	case keep3:
		return append(out, v[1], v[2], v[3])
	case keep2:
		return append(out, v[1], v[2])
	case keep1:
		return append(out, v[1])
	}
	return out
}

func collapseEdge(id property.ID) collapser {
	components := property.Components(id)
	return func(vals values) (string, bool) {
		var v [4]string
		for i, c := range components {
			v[i] = vals[c]
		}
		return strings.Join(minimize(v), " "), true
	}
}

func collapseRadius(vals values) (string, bool) {
	var h, v [4]string
	elliptical := false
	for i, c := range property.Components(property.BorderRadius) {
		parts := grammar.Fields(vals[c])
		h[i], v[i] = parts[0], parts[0]
		if len(parts) == 2 {
			v[i] = parts[1]
			elliptical = true
		}
	}
	out := strings.Join(minimize(h), " ")
	if elliptical {
		out += " / " + strings.Join(minimize(v), " ")
	}
	return out, true
}

// collapseSequence joins the components in order, omitting initial ones.
func collapseSequence(components ...property.ID) collapser {
	return func(vals values) (string, bool) {
		var parts []string
		for _, c := range components {
			if v := vals[c]; v != initial {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, " "), true
	}
}

// uniform returns the single value shared by every longhand of group.
func uniform(vals values, group property.ID) (string, bool) {
	components := property.Closure(group)
	first := vals[components[0]]
	for _, c := range components[1:] {
		if vals[c] != first {
			return "", false
		}
	}
	return first, true
}

func collapseBorder(vals values) (string, bool) {
	for _, l := range property.Closure(property.BorderImage) {
		if v := vals[l]; v != initial && v != property.Initial(l) {
			return "", false
		}
	}
	var parts []string
	for _, group := range []property.ID{property.BorderWidth, property.BorderStyle, property.BorderColor} {
		v, ok := uniform(vals, group)
		if !ok {
			return "", false
		}
		if v != initial {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " "), true
}

func collapseBorderImage(vals values) (string, bool) {
	source := vals[property.BorderImageSource]
	slice := vals[property.BorderImageSlice]
	width := vals[property.BorderImageWidth]
	outset := vals[property.BorderImageOutset]
	repeat := vals[property.BorderImageRepeat]

	var parts []string
	if source != initial {
		parts = append(parts, source)
	}
	if slice != initial || width != initial || outset != initial {
		if slice == initial {
			slice = property.Initial(property.BorderImageSlice)
		}
		group := slice
		if width != initial || outset != initial {
			if width == initial {
				width = property.Initial(property.BorderImageWidth)
			}
			group += " / " + width
		}
		if outset != initial {
			group += " / " + outset
		}
		parts = append(parts, group)
	}
	if repeat != initial {
		parts = append(parts, repeat)
	}
	return strings.Join(parts, " "), true
}

func collapseFont(vals values) (string, bool) {
	size := vals[property.FontSize]
	family := vals[property.FontFamily]

	rest := true
	for _, c := range property.Closure(property.Font) {
		if c != property.FontFamily && vals[c] != initial {
			rest = false
		}
	}
	if rest && systemFonts.Has(family) {
		return family, true
	}
	if size == initial || family == initial {
		return "", false
	}

	var parts []string
	for _, c := range []property.ID{property.FontStyle, property.FontVariant, property.FontWeight, property.FontStretch} {
		if v := vals[c]; v != initial {
			parts = append(parts, v)
		}
	}
	if lh := vals[property.LineHeight]; lh != initial {
		size += "/" + lh
	}
	parts = append(parts, size, family)
	return strings.Join(parts, " "), true
}

func collapseBackground(vals values) (string, bool) {
	count := 1
	layers := make(map[property.ID][]string, len(backgroundLayered))
	for _, id := range backgroundLayered {
		if v := vals[id]; v != initial {
			layers[id] = grammar.Split(v, ',')
			count = max(count, len(layers[id]))
		}
	}
	for _, l := range layers {
		if len(l) != count {
			return "", false
		}
	}

	get := func(id property.ID, i int) (string, bool) {
		l, ok := layers[id]
		if !ok {
			return property.Initial(id), false
		}
		return l[i], true
	}

	out := make([]string, count)
	for i := range out {
		var parts []string
		if v, ok := get(property.BackgroundImage, i); ok {
			parts = append(parts, v)
		}

		x, hasX := get(property.BackgroundPositionX, i)
		y, hasY := get(property.BackgroundPositionY, i)
		size, hasSize := get(property.BackgroundSize, i)
		if hasX || hasY || hasSize {
			pos := x + " " + y
			if hasSize {
				pos += " / " + size
			}
			parts = append(parts, pos)
		}

		for _, id := range []property.ID{property.BackgroundRepeat, property.BackgroundAttachment} {
			if v, ok := get(id, i); ok {
				parts = append(parts, v)
			}
		}

		origin, hasOrigin := get(property.BackgroundOrigin, i)
		clip, hasClip := get(property.BackgroundClip, i)
		switch {
		case hasOrigin && hasClip && origin == clip:
			parts = append(parts, origin)
		case hasOrigin || hasClip:
			parts = append(parts, origin, clip)
		}

		if i == count-1 {
			if c := vals[property.BackgroundColor]; c != initial {
				parts = append(parts, c)
			}
		}
		out[i] = strings.Join(parts, " ")
	}
	return strings.Join(out, ", "), true
}

func collapseBackgroundPosition(vals values) (string, bool) {
	if vals[property.BackgroundPositionX] == initial && vals[property.BackgroundPositionY] == initial {
		return "", true
	}
	xs := grammar.Split(vals[property.BackgroundPositionX], ',')
	ys := grammar.Split(vals[property.BackgroundPositionY], ',')
	if len(xs) != len(ys) {
		return "", false
	}
	out := make([]string, len(xs))
	for i := range xs {
		out[i] = xs[i] + " " + ys[i]
	}
	return strings.Join(out, ", "), true
}
