// Package shorthand converts between shorthand values and their longhands.
//
// Expand runs in the set direction and is all or nothing: either every
// longhand a shorthand owns receives a value, or nothing is returned.
// Collapse runs in the get direction and rebuilds the shortest equivalent
// shorthand value from stored longhands.
package shorthand

import (
	"strings"

	"github.com/yacobolo/cssdecl/internal/grammar"
	"github.com/yacobolo/cssdecl/internal/property"
)

const initial = "initial"

type expander func(s *property.Set, value string) bool

var expanders map[property.ID]expander

func init() {
	expanders = map[property.ID]expander{
		property.Margin:       edge(property.Margin),
		property.Padding:      edge(property.Padding),
		property.BorderWidth:  edge(property.BorderWidth),
		property.BorderStyle:  edge(property.BorderStyle),
		property.BorderColor:  edge(property.BorderColor),
		property.BorderRadius: expandRadius,

		property.Border:             expandBorder,
		property.BorderTop:          borderSide(property.BorderTop),
		property.BorderRight:        borderSide(property.BorderRight),
		property.BorderBottom:       borderSide(property.BorderBottom),
		property.BorderLeft:         borderSide(property.BorderLeft),
		property.BorderImage:        expandBorderImage,
		property.Outline:            expandOutline,
		property.Flex:               expandFlex,
		property.Font:               expandFont,
		property.Background:         expandBackground,
		property.BackgroundPosition: expandBackgroundPosition,
	}
}

// Expand splits value into the longhands of shorthand id.
//
// A var() reference cannot be expanded statically and is returned on the
// shorthand's own slot. A css-wide keyword is copied to every owned longhand.
// Any other value is tokenized and matched against the component grammars.
func Expand(id property.ID, value string) (*property.Set, bool) {
	fn, ok := expanders[id]
	if !ok {
		return nil, false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false
	}

	s := &property.Set{}
	if v, ok := grammar.Variable(value); ok {
		s.Put(id, v)
		return s, true
	}
	if kw, ok := grammar.Global(value); ok {
		s.PutAll(id, kw)
		return s, true
	}
	if !fn(s, value) {
		return nil, false
	}
	return s, true
}

// tokens splits a shorthand value on whitespace, keeping comma groups
// together.
func tokens(value string) []string {
	return grammar.Fields(grammar.Tighten(value))
}

// sides applies the 1 to 4 value rule for top, right, bottom, left.
func sides(values []string) ([4]string, bool) {
	switch len(values) {
	case 1:
		return [4]string{values[0], values[0], values[0], values[0]}, true
	case 2:
		return [4]string{values[0], values[1], values[0], values[1]}, true
	case 3:
		return [4]string{values[0], values[1], values[2], values[1]}, true
	case 4:
		return [4]string{values[0], values[1], values[2], values[3]}, true
	}
	return [4]string{}, false
}

func edge(id property.ID) expander {
	components := property.Components(id)
	return func(s *property.Set, value string) bool {
		values, ok := sides(tokens(value))
		if !ok {
			return false
		}
		for i, c := range components {
			v, ok := property.Component(c, values[i])
			if !ok {
				return false
			}
			s.Put(c, v)
		}
		return true
	}
}

// expandRadius handles border-radius, including the horizontal / vertical
// elliptical form.
func expandRadius(s *property.Set, value string) bool {
	parts := grammar.Split(value, '/')
	if len(parts) > 2 {
		return false
	}
	h, ok := sides(grammar.Fields(parts[0]))
	if !ok {
		return false
	}
	v := h
	if len(parts) == 2 {
		if v, ok = sides(grammar.Fields(parts[1])); !ok {
			return false
		}
	}
	for i, c := range property.Components(property.BorderRadius) {
		corner := h[i]
		if v[i] != h[i] {
			corner += " " + v[i]
		}
		r, ok := property.Component(c, corner)
		if !ok {
			return false
		}
		// A corner normalizes to a single value when both radii agree.
		if f := strings.Fields(r); len(f) == 2 && f[0] == f[1] {
			r = f[0]
		}
		s.Put(c, r)
	}
	return true
}

// match tries each component in order and returns the first that accepts t.
func match(t string, components ...property.ID) (property.ID, string, bool) {
	for _, c := range components {
		if v, ok := property.Component(c, t); ok {
			return c, v, true
		}
	}
	return property.Unknown, "", false
}

// window returns the widest run of tokens starting at i, at most widest
// long, that component accepts.
func window(toks []string, i, widest int, component property.ID) (string, int, bool) {
	for n := min(widest, len(toks)-i); n > 0; n-- {
		if v, ok := property.Component(component, strings.Join(toks[i:i+n], " ")); ok {
			return v, n, true
		}
	}
	return "", 0, false
}
