package cssdecl

import (
	"strings"

	"github.com/yacobolo/cssdecl/internal/property"
)

// Category groups properties for reporting.
type Category = property.Category

// Property categories.
const (
	CategoryVisual     = property.CategoryVisual
	CategoryLayout     = property.CategoryLayout
	CategoryTypography = property.CategoryTypography
	CategoryEffects    = property.CategoryEffects
	CategoryTokens     = property.CategoryTokens
	CategoryInternal   = property.CategoryInternal
)

// IsShorthand reports whether name is a shorthand in the catalog.
func IsShorthand(name string) bool {
	return property.Lookup(normalizeName(name)).IsShorthand()
}

// IsKnown reports whether name is validated against the catalog.
func IsKnown(name string) bool {
	return property.Lookup(normalizeName(name)) != property.Unknown
}

// Longhands returns every longhand name owns, nested shorthands included,
// in serialization order. A longhand returns itself; an unknown name returns
// nil.
func Longhands(name string) []string {
	ids := property.Closure(property.Lookup(normalizeName(name)))
	if ids == nil {
		return nil
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}

// CategoryOf returns the reporting category of a property name.
func CategoryOf(name string) Category {
	return property.CategoryOf(normalizeName(name))
}

// normalizeName trims name and lowercases it unless it is a custom property.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	return strings.ToLower(name)
}
