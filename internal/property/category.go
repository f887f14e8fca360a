package property

import "strings"

// Category groups related CSS properties.
type Category string

// Property categories for organizing CSS properties
const (
	CategoryVisual     Category = "Visual"
	CategoryLayout     Category = "Layout"
	CategoryTypography Category = "Typography"
	CategoryEffects    Category = "Effects"
	CategoryTokens     Category = "Tokens"
	CategoryInternal   Category = "Internal"
)

// categories maps catalog properties to categories.
var categories = [count]Category{
	// Visual
	Background:           CategoryVisual,
	BackgroundColor:      CategoryVisual,
	BackgroundImage:      CategoryVisual,
	BackgroundSize:       CategoryVisual,
	BackgroundPosition:   CategoryVisual,
	BackgroundPositionX:  CategoryVisual,
	BackgroundPositionY:  CategoryVisual,
	BackgroundRepeat:     CategoryVisual,
	BackgroundAttachment: CategoryVisual,
	BackgroundOrigin:     CategoryVisual,
	BackgroundClip:       CategoryVisual,
	Color:                CategoryVisual,
	Outline:              CategoryVisual,
	OutlineColor:         CategoryVisual,
	OutlineWidth:         CategoryVisual,
	OutlineStyle:         CategoryVisual,
	OutlineOffset:        CategoryVisual,
	Visibility:           CategoryVisual,

	// Layout
	Display:    CategoryLayout,
	Flex:       CategoryLayout,
	FlexGrow:   CategoryLayout,
	FlexShrink: CategoryLayout,
	FlexBasis:  CategoryLayout,
	Position:   CategoryLayout,
	Float:      CategoryLayout,
	Clear:      CategoryLayout,
	Top:        CategoryLayout,
	Right:      CategoryLayout,
	Bottom:     CategoryLayout,
	Left:       CategoryLayout,
	Width:      CategoryLayout,
	Height:     CategoryLayout,
	MinWidth:   CategoryLayout,
	MinHeight:  CategoryLayout,
	MaxWidth:   CategoryLayout,
	MaxHeight:  CategoryLayout,
	Overflow:   CategoryLayout,
	ZIndex:     CategoryLayout,
	BoxSizing:  CategoryLayout,
	Direction:  CategoryLayout,

	// Typography
	Font:          CategoryTypography,
	FontFamily:    CategoryTypography,
	FontSize:      CategoryTypography,
	FontWeight:    CategoryTypography,
	FontStyle:     CategoryTypography,
	FontVariant:   CategoryTypography,
	FontStretch:   CategoryTypography,
	LineHeight:    CategoryTypography,
	LetterSpacing: CategoryTypography,
	WordSpacing:   CategoryTypography,
	TextAlign:     CategoryTypography,
	TextTransform: CategoryTypography,
	WhiteSpace:    CategoryTypography,

	// Effects
	Opacity:    CategoryEffects,
	FloodColor: CategoryEffects,
	Clip:       CategoryEffects,
}

// outsideCatalog categorizes common properties the catalog stores opaquely.
var outsideCatalog = map[string]Category{
	"box-shadow":      CategoryVisual,
	"fill":            CategoryVisual,
	"stroke":          CategoryVisual,
	"gap":             CategoryLayout,
	"row-gap":         CategoryLayout,
	"column-gap":      CategoryLayout,
	"inset":           CategoryLayout,
	"aspect-ratio":    CategoryLayout,
	"text-decoration": CategoryTypography,
	"text-overflow":   CategoryTypography,
	"word-break":      CategoryTypography,
	"transition":      CategoryEffects,
	"transform":       CategoryEffects,
	"animation":       CategoryEffects,
	"filter":          CategoryEffects,
	"backdrop-filter": CategoryEffects,
	"mix-blend-mode":  CategoryEffects,
	"clip-path":       CategoryEffects,
}

// CategoryOf determines the category of a CSS property name.
func CategoryOf(name string) Category {
	if strings.HasPrefix(name, "--") {
		return CategoryTokens
	}
	if id := Lookup(name); id != Unknown && categories[id] != "" {
		return categories[id]
	}
	if cat, exists := outsideCatalog[name]; exists {
		return cat
	}

	// Vendor prefixes
	if strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-moz-") ||
		strings.HasPrefix(name, "-ms-") ||
		strings.HasPrefix(name, "-o-") {
		return CategoryInternal
	}

	if strings.HasPrefix(name, "flex-") || strings.HasPrefix(name, "grid-") {
		return CategoryLayout
	}
	if strings.HasPrefix(name, "border") {
		return CategoryVisual
	}
	if strings.HasPrefix(name, "padding") || strings.HasPrefix(name, "margin") {
		return CategoryLayout
	}
	if strings.HasPrefix(name, "font-") || strings.HasPrefix(name, "text-") {
		return CategoryTypography
	}
	if strings.HasPrefix(name, "transition-") || strings.HasPrefix(name, "animation-") {
		return CategoryEffects
	}

	// Default to Layout for unknown properties
	return CategoryLayout
}
