package shorthand

import (
	"strings"

	"github.com/yacobolo/cssdecl/internal/grammar"
	"github.com/yacobolo/cssdecl/internal/property"
)

var systemFonts = grammar.NewKeywords("caption", "icon", "menu", "message-box", "small-caption", "status-bar")

// expandFont parses
//
//	[ <style> || <variant> || <weight> || <stretch> ]? <size> [ / <line-height> ]? <family>
//
// or a system font keyword. Everything after the size is the family list.
func expandFont(s *property.Set, value string) bool {
	s.PutAll(property.Font, initial)
	if kw, ok := systemFonts.Match(value); ok {
		s.Put(property.FontFamily, kw)
		return true
	}

	toks := grammar.Fields(grammar.Isolate(value, '/'))
	i := 0
	for ; i < len(toks); i++ {
		t := toks[i]
		if strings.EqualFold(t, "normal") {
			continue
		}
		if strings.EqualFold(t, "oblique") && i+1 < len(toks) {
			if v, ok := property.Component(property.FontStyle, t+" "+toks[i+1]); ok {
				s.Put(property.FontStyle, v)
				i++
				continue
			}
		}
		if c, v, ok := match(t, property.FontStyle, property.FontVariant, property.FontWeight); ok {
			s.Put(c, v)
			continue
		}
		// Only the keyword form of font-stretch is allowed here.
		if v, ok := property.Component(property.FontStretch, t); ok && !strings.HasSuffix(v, "%") {
			s.Put(property.FontStretch, v)
			continue
		}
		break
	}

	if i >= len(toks) {
		return false
	}
	size, ok := property.Component(property.FontSize, toks[i])
	if !ok {
		return false
	}
	s.Put(property.FontSize, size)
	i++

	if i < len(toks) && toks[i] == "/" {
		if i+1 >= len(toks) {
			return false
		}
		lh, ok := property.Component(property.LineHeight, toks[i+1])
		if !ok {
			return false
		}
		s.Put(property.LineHeight, lh)
		i += 2
	}

	if i >= len(toks) {
		return false
	}
	family, ok := property.Component(property.FontFamily, strings.Join(toks[i:], " "))
	if !ok {
		return false
	}
	s.Put(property.FontFamily, family)
	return true
}

// expandFlex parses none, auto, or
//
//	<grow> <shrink>? || <basis>
//
// Omitted numbers default to 1 and an omitted basis to 0%.
func expandFlex(s *property.Set, value string) bool {
	switch strings.ToLower(value) {
	case "none":
		s.Put(property.FlexGrow, "0")
		s.Put(property.FlexShrink, "0")
		s.Put(property.FlexBasis, "auto")
		return true
	case "auto":
		s.Put(property.FlexGrow, "1")
		s.Put(property.FlexShrink, "1")
		s.Put(property.FlexBasis, "auto")
		return true
	}

	toks := tokens(value)
	if len(toks) == 0 || len(toks) > 3 {
		return false
	}
	var numbers []string
	basis := ""
	// The two numbers must be adjacent; a basis may only come before or after them.
	split := false
	for _, t := range toks {
		if _, isNumber := grammar.Number(t); isNumber {
			if len(numbers) == 2 || len(numbers) == 1 && split {
				return false
			}
			v, ok := property.Component(property.FlexGrow, t)
			if !ok {
				return false
			}
			numbers = append(numbers, v)
			continue
		}
		v, ok := property.Component(property.FlexBasis, t)
		if !ok || basis != "" {
			return false
		}
		basis = v
		split = len(numbers) > 0
	}

	grow, shrink := "1", "1"
	if len(numbers) > 0 {
		grow = numbers[0]
	}
	if len(numbers) > 1 {
		shrink = numbers[1]
	}
	if basis == "" {
		basis = "0%"
	}
	s.Put(property.FlexGrow, grow)
	s.Put(property.FlexShrink, shrink)
	s.Put(property.FlexBasis, basis)
	return true
}
