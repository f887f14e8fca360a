package shorthand

import (
	"github.com/yacobolo/cssdecl/internal/grammar"
	"github.com/yacobolo/cssdecl/internal/property"
)

// borderSide expands border-top and friends: width, style and color of one
// side. The shared border-image group is reset to initial.
func borderSide(id property.ID) expander {
	components := property.Components(id)
	width, style, color := components[0], components[1], components[2]
	return func(s *property.Set, value string) bool {
		s.PutAll(id, initial)
		for _, t := range tokens(value) {
			c, v, ok := match(t, width, style, color)
			if !ok {
				return false
			}
			s.Put(c, v)
		}
		return true
	}
}

// expandBorder sets all four sides from one width, style and color.
func expandBorder(s *property.Set, value string) bool {
	s.PutAll(property.Border, initial)
	for _, t := range tokens(value) {
		c, v, ok := match(t, property.BorderTopWidth, property.BorderTopStyle, property.BorderTopColor)
		if !ok {
			return false
		}
		var group property.ID
		switch c {
		case property.BorderTopWidth:
			group = property.BorderWidth
		case property.BorderTopStyle:
			group = property.BorderStyle
		default:
			group = property.BorderColor
		}
		s.PutAll(group, v)
	}
	return true
}

func expandOutline(s *property.Set, value string) bool {
	s.PutAll(property.Outline, initial)
	for _, t := range tokens(value) {
		c, v, ok := match(t, property.OutlineWidth, property.OutlineStyle, property.OutlineColor)
		if !ok {
			return false
		}
		s.Put(c, v)
	}
	return true
}

// expandBorderImage parses
//
//	<source> || <slice> [ / <width>? [ / <outset> ]? ]? || <repeat>
//
// where slice, width and outset each span up to four tokens.
func expandBorderImage(s *property.Set, value string) bool {
	s.PutAll(property.BorderImage, initial)
	toks := grammar.Fields(grammar.Isolate(grammar.Tighten(value), '/'))

	for i := 0; i < len(toks); {
		if v, ok := property.Component(property.BorderImageSource, toks[i]); ok {
			s.Put(property.BorderImageSource, v)
			i++
			continue
		}
		if v, n, ok := window(toks, i, 2, property.BorderImageRepeat); ok {
			s.Put(property.BorderImageRepeat, v)
			i += n
			continue
		}

		v, n, ok := window(toks, i, 5, property.BorderImageSlice)
		if !ok {
			return false
		}
		s.Put(property.BorderImageSlice, v)
		i += n

		if i < len(toks) && toks[i] == "/" {
			i++
			v, n, ok := window(toks, i, 4, property.BorderImageWidth)
			if ok {
				s.Put(property.BorderImageWidth, v)
				i += n
			}
			outset := i < len(toks) && toks[i] == "/"
			if !ok && !outset {
				return false
			}
			if outset {
				i++
				v, n, ok := window(toks, i, 4, property.BorderImageOutset)
				if !ok {
					return false
				}
				s.Put(property.BorderImageOutset, v)
				i += n
			}
		}
	}
	return true
}
