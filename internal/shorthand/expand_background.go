package shorthand

import (
	"strings"

	"github.com/yacobolo/cssdecl/internal/grammar"
	"github.com/yacobolo/cssdecl/internal/property"
)

var (
	horizontalEdges = grammar.NewKeywords("left", "right")
	verticalEdges   = grammar.NewKeywords("top", "bottom")
)

// layered longhands of the background shorthand, in serialization order.
var backgroundLayered = []property.ID{
	property.BackgroundImage,
	property.BackgroundPositionX,
	property.BackgroundPositionY,
	property.BackgroundSize,
	property.BackgroundRepeat,
	property.BackgroundAttachment,
	property.BackgroundOrigin,
	property.BackgroundClip,
}

// layer holds the values one background layer assigns, keyed by longhand.
type layer map[property.ID]string

// expandBackground parses a comma separated list of layers. Each layer is
//
//	<image> || <position> [ / <size> ]? || <repeat> || <attachment> || <box> || <box> || <color>
//
// A color is accepted in any layer.
func expandBackground(s *property.Set, value string) bool {
	s.PutAll(property.Background, initial)

	var layers []layer
	for _, l := range grammar.Split(value, ',') {
		parsed, color, ok := backgroundLayer(l)
		if !ok {
			return false
		}
		if color != "" {
			s.Put(property.BackgroundColor, color)
		}
		layers = append(layers, parsed)
	}

	for _, id := range backgroundLayered {
		assigned := false
		values := make([]string, len(layers))
		for i, l := range layers {
			if v, ok := l[id]; ok {
				values[i] = v
				assigned = true
			} else {
				values[i] = property.Initial(id)
			}
		}
		if assigned {
			s.Put(id, strings.Join(values, ", "))
		}
	}
	return true
}

func backgroundLayer(value string) (layer, string, bool) {
	toks := grammar.Fields(grammar.Isolate(value, '/'))
	if len(toks) == 0 {
		return nil, "", false
	}

	l := layer{}
	color := ""
	var boxes []string
	for i := 0; i < len(toks); {
		t := toks[i]
		if v, ok := grammar.Image(t); ok {
			l[property.BackgroundImage] = v
			i++
			continue
		}
		if v, ok := property.Component(property.BackgroundAttachment, t); ok {
			l[property.BackgroundAttachment] = v
			i++
			continue
		}
		if v, ok := property.Component(property.BackgroundOrigin, t); ok {
			if len(boxes) == 2 {
				return nil, "", false
			}
			boxes = append(boxes, v)
			i++
			continue
		}
		if v, n, ok := window(toks, i, 2, property.BackgroundRepeat); ok {
			l[property.BackgroundRepeat] = v
			i += n
			continue
		}
		if v, ok := grammar.Color(t); ok {
			color = v
			i++
			continue
		}

		x, y, n, ok := positionWindow(toks, i)
		if !ok {
			return nil, "", false
		}
		l[property.BackgroundPositionX] = x
		l[property.BackgroundPositionY] = y
		i += n

		if i < len(toks) && toks[i] == "/" {
			size, n, ok := window(toks, i+1, 2, property.BackgroundSize)
			if !ok {
				return nil, "", false
			}
			l[property.BackgroundSize] = size
			i += 1 + n
		}
	}

	switch len(boxes) {
	case 1:
		l[property.BackgroundOrigin] = boxes[0]
		l[property.BackgroundClip] = boxes[0]
	case 2:
		l[property.BackgroundOrigin] = boxes[0]
		l[property.BackgroundClip] = boxes[1]
	}
	return l, color, true
}

// positionWindow matches the widest position, up to four tokens, at i.
func positionWindow(toks []string, i int) (string, string, int, bool) {
	for n := min(4, len(toks)-i); n > 0; n-- {
		if x, y, ok := position(toks[i : i+n]); ok {
			return x, y, n, true
		}
	}
	return "", "", 0, false
}

// position resolves a <bg-position> into its horizontal and vertical parts.
func position(toks []string) (string, string, bool) {
	for _, t := range toks {
		if t == "/" {
			return "", "", false
		}
	}

	var x, y string
	switch len(toks) {
	case 1:
		t := strings.ToLower(toks[0])
		switch {
		case verticalEdges.Has(t):
			x, y = "center", t
		case horizontalEdges.Has(t), t == "center":
			x, y = t, "center"
		default:
			x, y = toks[0], "center"
		}
	case 2:
		a, b := toks[0], toks[1]
		if verticalEdges.Has(strings.ToLower(a)) || horizontalEdges.Has(strings.ToLower(b)) {
			a, b = b, a
		}
		x, y = a, b
	case 3, 4:
		items, ok := edgeOffsets(toks)
		if !ok || len(items) != 2 {
			return "", "", false
		}
		first, second := items[0], items[1]
		if verticalEdges.Has(first.edge) || horizontalEdges.Has(second.edge) {
			first, second = second, first
		}
		x, y = first.String(), second.String()
	default:
		return "", "", false
	}

	xv, ok := property.Component(property.BackgroundPositionX, x)
	if !ok {
		return "", "", false
	}
	yv, ok := property.Component(property.BackgroundPositionY, y)
	if !ok {
		return "", "", false
	}
	return xv, yv, true
}

type edgeOffset struct {
	edge   string
	offset string
}

func (e edgeOffset) String() string {
	if e.offset == "" {
		return e.edge
	}
	return e.edge + " " + e.offset
}

// edgeOffsets groups the 3 and 4 token position forms into keyword and
// optional offset pairs.
func edgeOffsets(toks []string) ([]edgeOffset, bool) {
	var items []edgeOffset
	for i := 0; i < len(toks); i++ {
		kw := strings.ToLower(toks[i])
		if kw != "center" && !horizontalEdges.Has(kw) && !verticalEdges.Has(kw) {
			return nil, false
		}
		item := edgeOffset{edge: kw}
		if kw != "center" && i+1 < len(toks) {
			if _, ok := grammar.Measurement(toks[i+1]); ok {
				item.offset = toks[i+1]
				i++
			}
		}
		items = append(items, item)
	}
	return items, true
}

// expandBackgroundPosition splits comma separated positions into the x and y
// longhands.
func expandBackgroundPosition(s *property.Set, value string) bool {
	layers := grammar.Split(value, ',')
	xs := make([]string, len(layers))
	ys := make([]string, len(layers))
	for i, l := range layers {
		x, y, ok := position(grammar.Fields(l))
		if !ok {
			return false
		}
		xs[i], ys[i] = x, y
	}
	s.Put(property.BackgroundPositionX, strings.Join(xs, ", "))
	s.Put(property.BackgroundPositionY, strings.Join(ys, ", "))
	return true
}
