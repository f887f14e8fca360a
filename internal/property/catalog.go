package property

// Kind tells how a property relates to the longhand map.
type Kind uint8

const (
	// Longhand properties are stored as is.
	Longhand Kind = iota
	// EdgeShorthand properties map 1 to 4 values onto top, right, bottom, left.
	EdgeShorthand
	// CompositeShorthand properties match tokens against heterogeneous components.
	CompositeShorthand
)

func (k Kind) String() string {
	switch k {
	case EdgeShorthand:
		return "edge shorthand"
	case CompositeShorthand:
		return "composite shorthand"
	default:
		return "longhand"
	}
}

type entry struct {
	kind       Kind
	components []ID
	// required lists the longhands that must be present to rebuild the
	// shorthand. Nil means every owned longhand.
	required []ID
}

var shorthands = [count]entry{
	Margin:       {kind: EdgeShorthand, components: []ID{MarginTop, MarginRight, MarginBottom, MarginLeft}},
	Padding:      {kind: EdgeShorthand, components: []ID{PaddingTop, PaddingRight, PaddingBottom, PaddingLeft}},
	BorderWidth:  {kind: EdgeShorthand, components: []ID{BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth}},
	BorderStyle:  {kind: EdgeShorthand, components: []ID{BorderTopStyle, BorderRightStyle, BorderBottomStyle, BorderLeftStyle}},
	BorderColor:  {kind: EdgeShorthand, components: []ID{BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor}},
	BorderRadius: {kind: EdgeShorthand, components: []ID{BorderTopLeftRadius, BorderTopRightRadius, BorderBottomRightRadius, BorderBottomLeftRadius}},

	Border: {kind: CompositeShorthand, components: []ID{BorderWidth, BorderStyle, BorderColor, BorderImage}},
	BorderTop: {
		kind:       CompositeShorthand,
		components: []ID{BorderTopWidth, BorderTopStyle, BorderTopColor, BorderImage},
		required:   []ID{BorderTopWidth, BorderTopStyle, BorderTopColor},
	},
	BorderRight: {
		kind:       CompositeShorthand,
		components: []ID{BorderRightWidth, BorderRightStyle, BorderRightColor, BorderImage},
		required:   []ID{BorderRightWidth, BorderRightStyle, BorderRightColor},
	},
	BorderBottom: {
		kind:       CompositeShorthand,
		components: []ID{BorderBottomWidth, BorderBottomStyle, BorderBottomColor, BorderImage},
		required:   []ID{BorderBottomWidth, BorderBottomStyle, BorderBottomColor},
	},
	BorderLeft: {
		kind:       CompositeShorthand,
		components: []ID{BorderLeftWidth, BorderLeftStyle, BorderLeftColor, BorderImage},
		required:   []ID{BorderLeftWidth, BorderLeftStyle, BorderLeftColor},
	},
	BorderImage: {kind: CompositeShorthand, components: []ID{BorderImageSource, BorderImageSlice, BorderImageWidth, BorderImageOutset, BorderImageRepeat}},
	Outline:     {kind: CompositeShorthand, components: []ID{OutlineWidth, OutlineStyle, OutlineColor}},
	Flex:        {kind: CompositeShorthand, components: []ID{FlexGrow, FlexShrink, FlexBasis}},
	Font: {kind: CompositeShorthand, components: []ID{
		FontStyle, FontVariant, FontWeight, FontStretch, FontSize, LineHeight, FontFamily,
	}},
	Background: {kind: CompositeShorthand, components: []ID{
		BackgroundImage, BackgroundPosition, BackgroundSize, BackgroundRepeat,
		BackgroundAttachment, BackgroundOrigin, BackgroundClip, BackgroundColor,
	}},
	BackgroundPosition: {kind: CompositeShorthand, components: []ID{BackgroundPositionX, BackgroundPositionY}},
}

// closures holds the transitive longhand set of every shorthand, in
// component order.
var closures = func() [count][]ID {
	var out [count][]ID
	var expand func(id ID) []ID
	expand = func(id ID) []ID {
		if !id.IsShorthand() {
			return []ID{id}
		}
		if out[id] != nil {
			return out[id]
		}
		var all []ID
		for _, c := range shorthands[id].components {
			all = append(all, expand(c)...)
		}
		out[id] = all
		return all
	}
	for id := firstShorthand; id < count; id++ {
		expand(id)
	}
	return out
}()

// KindOf returns the property kind.
func KindOf(id ID) Kind {
	if !id.IsShorthand() {
		return Longhand
	}
	return shorthands[id].kind
}

// Components returns the direct components of a shorthand, which may
// themselves be shorthands.
func Components(id ID) []ID {
	if !id.IsShorthand() {
		return nil
	}
	return shorthands[id].components
}

// Closure returns every longhand a shorthand owns, or the property itself
// for a longhand. The result must not be modified.
func Closure(id ID) []ID {
	if !id.IsShorthand() {
		if id == Unknown {
			return nil
		}
		return []ID{id}
	}
	return closures[id]
}

// Required returns the longhands that must be present to rebuild a
// shorthand.
func Required(id ID) []ID {
	if id.IsShorthand() && shorthands[id].required != nil {
		return shorthands[id].required
	}
	return Closure(id)
}

// initial holds the CSS initial value of longhands whose initial value is
// written out explicitly when a layered shorthand pads missing layers.
var initial = [count]string{
	BackgroundColor:      "transparent",
	BackgroundImage:      "none",
	BackgroundRepeat:     "repeat",
	BackgroundAttachment: "scroll",
	BackgroundPositionX:  "0%",
	BackgroundPositionY:  "0%",
	BackgroundSize:       "auto",
	BackgroundOrigin:     "padding-box",
	BackgroundClip:       "border-box",
	BorderImageSource:    "none",
	BorderImageSlice:     "100%",
	BorderImageWidth:     "1",
	BorderImageOutset:    "0",
	BorderImageRepeat:    "stretch",
	FlexGrow:             "0",
	FlexShrink:           "1",
	FlexBasis:            "auto",
}

// Initial returns the concrete initial value of a longhand, or "" when the
// catalog does not record one.
func Initial(id ID) string {
	if id >= count {
		return ""
	}
	return initial[id]
}

// related holds, per property, every shorthand sharing at least one longhand
// with it.
var related = func() [count][]ID {
	var out [count][]ID
	for id := Unknown + 1; id < count; id++ {
		owned := map[ID]bool{}
		for _, l := range Closure(id) {
			owned[l] = true
		}
		for sh := firstShorthand; sh < count; sh++ {
			for _, l := range closures[sh] {
				if owned[l] {
					out[id] = append(out[id], sh)
					break
				}
			}
		}
	}
	return out
}()

// Related returns every shorthand that shares a longhand with id, including
// id itself when it is a shorthand.
func Related(id ID) []ID {
	if id >= count {
		return nil
	}
	return related[id]
}
