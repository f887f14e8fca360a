package property

// ID identifies a property of the fixed catalog. Longhands come first, then
// shorthands; Unknown marks a name outside the catalog.
type ID uint16

const (
	Unknown ID = iota

	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	Width
	Height
	MinWidth
	MinHeight
	MaxWidth
	MaxHeight
	Top
	Right
	Bottom
	Left

	BorderTopWidth
	BorderRightWidth
	BorderBottomWidth
	BorderLeftWidth
	BorderTopStyle
	BorderRightStyle
	BorderBottomStyle
	BorderLeftStyle
	BorderTopColor
	BorderRightColor
	BorderBottomColor
	BorderLeftColor
	BorderImageSource
	BorderImageSlice
	BorderImageWidth
	BorderImageOutset
	BorderImageRepeat
	BorderTopLeftRadius
	BorderTopRightRadius
	BorderBottomRightRadius
	BorderBottomLeftRadius
	BorderCollapse
	OutlineWidth
	OutlineStyle
	OutlineColor
	OutlineOffset

	Display
	Position
	Float
	Clear
	Visibility
	Overflow
	ZIndex
	BoxSizing
	Direction
	Clip
	FlexGrow
	FlexShrink
	FlexBasis

	BackgroundColor
	BackgroundImage
	BackgroundRepeat
	BackgroundAttachment
	BackgroundPositionX
	BackgroundPositionY
	BackgroundSize
	BackgroundOrigin
	BackgroundClip

	Color
	FontStyle
	FontVariant
	FontWeight
	FontStretch
	FontSize
	FontFamily
	LineHeight
	TextTransform
	TextAlign
	WhiteSpace
	LetterSpacing
	WordSpacing

	Opacity
	FloodColor

	// Shorthands.
	Margin
	Padding
	BorderWidth
	BorderStyle
	BorderColor
	BorderRadius
	Border
	BorderTop
	BorderRight
	BorderBottom
	BorderLeft
	BorderImage
	Outline
	Flex
	Font
	Background
	BackgroundPosition

	count
)

const firstShorthand = Margin

var names = [count]string{
	MarginTop:    "margin-top",
	MarginRight:  "margin-right",
	MarginBottom: "margin-bottom",
	MarginLeft:   "margin-left",

	PaddingTop:    "padding-top",
	PaddingRight:  "padding-right",
	PaddingBottom: "padding-bottom",
	PaddingLeft:   "padding-left",

	Width:     "width",
	Height:    "height",
	MinWidth:  "min-width",
	MinHeight: "min-height",
	MaxWidth:  "max-width",
	MaxHeight: "max-height",
	Top:       "top",
	Right:     "right",
	Bottom:    "bottom",
	Left:      "left",

	BorderTopWidth:          "border-top-width",
	BorderRightWidth:        "border-right-width",
	BorderBottomWidth:       "border-bottom-width",
	BorderLeftWidth:         "border-left-width",
	BorderTopStyle:          "border-top-style",
	BorderRightStyle:        "border-right-style",
	BorderBottomStyle:       "border-bottom-style",
	BorderLeftStyle:         "border-left-style",
	BorderTopColor:          "border-top-color",
	BorderRightColor:        "border-right-color",
	BorderBottomColor:       "border-bottom-color",
	BorderLeftColor:         "border-left-color",
	BorderImageSource:       "border-image-source",
	BorderImageSlice:        "border-image-slice",
	BorderImageWidth:        "border-image-width",
	BorderImageOutset:       "border-image-outset",
	BorderImageRepeat:       "border-image-repeat",
	BorderTopLeftRadius:     "border-top-left-radius",
	BorderTopRightRadius:    "border-top-right-radius",
	BorderBottomRightRadius: "border-bottom-right-radius",
	BorderBottomLeftRadius:  "border-bottom-left-radius",
	BorderCollapse:          "border-collapse",
	OutlineWidth:            "outline-width",
	OutlineStyle:            "outline-style",
	OutlineColor:            "outline-color",
	OutlineOffset:           "outline-offset",

	Display:    "display",
	Position:   "position",
	Float:      "float",
	Clear:      "clear",
	Visibility: "visibility",
	Overflow:   "overflow",
	ZIndex:     "z-index",
	BoxSizing:  "box-sizing",
	Direction:  "direction",
	Clip:       "clip",
	FlexGrow:   "flex-grow",
	FlexShrink: "flex-shrink",
	FlexBasis:  "flex-basis",

	BackgroundColor:      "background-color",
	BackgroundImage:      "background-image",
	BackgroundRepeat:     "background-repeat",
	BackgroundAttachment: "background-attachment",
	BackgroundPositionX:  "background-position-x",
	BackgroundPositionY:  "background-position-y",
	BackgroundSize:       "background-size",
	BackgroundOrigin:     "background-origin",
	BackgroundClip:       "background-clip",

	Color:         "color",
	FontStyle:     "font-style",
	FontVariant:   "font-variant",
	FontWeight:    "font-weight",
	FontStretch:   "font-stretch",
	FontSize:      "font-size",
	FontFamily:    "font-family",
	LineHeight:    "line-height",
	TextTransform: "text-transform",
	TextAlign:     "text-align",
	WhiteSpace:    "white-space",
	LetterSpacing: "letter-spacing",
	WordSpacing:   "word-spacing",

	Opacity:    "opacity",
	FloodColor: "flood-color",

	Margin:             "margin",
	Padding:            "padding",
	BorderWidth:        "border-width",
	BorderStyle:        "border-style",
	BorderColor:        "border-color",
	BorderRadius:       "border-radius",
	Border:             "border",
	BorderTop:          "border-top",
	BorderRight:        "border-right",
	BorderBottom:       "border-bottom",
	BorderLeft:         "border-left",
	BorderImage:        "border-image",
	Outline:            "outline",
	Flex:               "flex",
	Font:               "font",
	Background:         "background",
	BackgroundPosition: "background-position",
}

var byName = func() map[string]ID {
	m := make(map[string]ID, count)
	for id := Unknown + 1; id < count; id++ {
		m[names[id]] = id
	}
	return m
}()

// Lookup resolves a lower-case property name.
func Lookup(name string) ID {
	return byName[name]
}

// String returns the property name, or "" for Unknown.
func (id ID) String() string {
	if id >= count {
		return ""
	}
	return names[id]
}

// IsShorthand reports whether the property expands to other properties.
func (id ID) IsShorthand() bool {
	return id >= firstShorthand && id < count
}

// IsLonghand reports whether the property is a catalog longhand.
func (id ID) IsLonghand() bool {
	return id > Unknown && id < firstShorthand
}

// Longhands returns every catalog longhand in ID order.
func Longhands() []ID {
	out := make([]ID, 0, firstShorthand-1)
	for id := Unknown + 1; id < firstShorthand; id++ {
		out = append(out, id)
	}
	return out
}
