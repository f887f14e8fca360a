package cssdecl

import (
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssdecl/internal/grammar"
	"github.com/yacobolo/cssdecl/internal/property"
	"github.com/yacobolo/cssdecl/internal/scan"
	"github.com/yacobolo/cssdecl/internal/shorthand"
)

// PropertyValue is a stored or synthesized declaration value.
type PropertyValue struct {
	Value     string
	Important bool
}

// Declaration is a CSS declaration block.
//
// Values are stored per longhand. A shorthand set to a var() reference is
// stored under its own name since it cannot be expanded. Unknown names are
// stored as given.
//
// A Declaration is not safe for concurrent use; Clone it to hand it over.
type Declaration struct {
	props   *orderedmap.OrderedMap[string, PropertyValue]
	defined *orderedmap.OrderedMap[string, struct{}]
	log     *zap.Logger
}

// Option configures a Declaration.
type Option func(*Declaration)

// WithLogger sets the logger used to report dropped declarations.
func WithLogger(log *zap.Logger) Option {
	return func(d *Declaration) {
		if log != nil {
			d.log = log.Named("declaration")
		}
	}
}

// New returns a Declaration holding the declarations of text. Invalid and
// malformed declarations are skipped.
func New(text string, opts ...Option) *Declaration {
	d, _ := Parse(text, opts...)
	return d
}

// Parse is New that also returns every rejected declaration as a combined
// *InvalidValueError list. The returned Declaration is usable either way.
func Parse(text string, opts ...Option) (*Declaration, error) {
	d := &Declaration{
		props:   orderedmap.NewOrderedMap[string, PropertyValue](),
		defined: orderedmap.NewOrderedMap[string, struct{}](),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, d.load(text)
}

func (d *Declaration) load(text string) error {
	var errs error
	scan.Scan(text, func(p scan.Pair) {
		name := normalizeName(p.Name)
		if !p.Important {
			if cur, ok := d.props.Get(name); ok && cur.Important {
				d.log.Debug("skipped overridden declaration",
					zap.String("property", name),
					zap.String("value", p.Value))
				return
			}
		}
		errs = multierr.Append(errs, d.Set(name, p.Value, p.Important))
	})
	return errs
}

// SetCSSText replaces every declaration with those of text and returns the
// rejected ones, like Parse.
func (d *Declaration) SetCSSText(text string) error {
	d.props = orderedmap.NewOrderedMap[string, PropertyValue]()
	d.defined = orderedmap.NewOrderedMap[string, struct{}]()
	return d.load(text)
}

// Get returns the value of name. A shorthand is rebuilt from its longhands
// when all of them are present; otherwise, like any other name, its stored
// value is returned as is.
func (d *Declaration) Get(name string) (PropertyValue, bool) {
	name = normalizeName(name)
	if id := property.Lookup(name); id.IsShorthand() {
		// Longhands are only all present when set after a var() value.
		if v, ok := shorthand.Collapse(id, longhands{d.props}); ok {
			return PropertyValue(v), true
		}
	}
	v, ok := d.props.Get(name)
	return v, ok
}

// Value returns the value of name, or "" when it has none.
func (d *Declaration) Value(name string) string {
	v, _ := d.Get(name)
	return v.Value
}

// Important reports whether name is set with !important.
func (d *Declaration) Important(name string) bool {
	v, _ := d.Get(name)
	return v.Important
}

// Set assigns value to name. An empty value removes name.
//
// Shorthands are expanded into every longhand they own. Known longhands are
// validated and normalized. When a known property rejects value, Set returns
// an *InvalidValueError and the block is left unchanged. Unknown names are
// stored without validation.
func (d *Declaration) Set(name, value string, important bool) error {
	name = normalizeName(name)
	if name == "" {
		return ErrEmptyName
	}
	value = strings.TrimSpace(value)
	if value == "" {
		d.Remove(name)
		return nil
	}

	id := property.Lookup(name)
	switch {
	case id.IsShorthand():
		set, ok := shorthand.Expand(id, value)
		if !ok {
			return d.reject(name, value)
		}
		d.dropVariables(id)
		if v, ok := set.Get(id); ok {
			for _, l := range property.Closure(id) {
				d.props.Delete(l.String())
			}
			d.props.Set(name, PropertyValue{Value: v, Important: important})
			break
		}
		set.Each(func(l property.ID, v string) {
			d.props.Set(l.String(), PropertyValue{Value: v, Important: important})
		})

	case id != property.Unknown:
		v, ok := property.Validate(id, value)
		if !ok {
			return d.reject(name, value)
		}
		d.props.Set(name, PropertyValue{Value: v, Important: important})

	default:
		if kw, ok := grammar.Global(value); ok {
			value = kw
		}
		d.log.Debug("stored unknown property",
			zap.String("property", name),
			zap.String("value", value))
		d.props.Set(name, PropertyValue{Value: value, Important: important})
	}

	// Re-setting a name keeps its original position.
	d.defined.Set(name, struct{}{})
	return nil
}

func (d *Declaration) reject(name, value string) error {
	d.log.Debug("rejected value",
		zap.String("property", name),
		zap.String("value", value))
	return &InvalidValueError{Property: name, Value: value}
}

// dropVariables removes var() values stored on shorthands that share a
// longhand with the shorthand id. Longhands are merged next to such a value
// and never drop it.
func (d *Declaration) dropVariables(id property.ID) {
	for _, sh := range property.Related(id) {
		d.props.Delete(sh.String())
	}
}

// Remove deletes name and returns its previous value. Removing a shorthand
// deletes every longhand it owns, nested shorthands included.
func (d *Declaration) Remove(name string) string {
	name = normalizeName(name)
	prev := d.Value(name)

	d.props.Delete(name)
	d.defined.Delete(name)
	id := property.Lookup(name)
	if !id.IsShorthand() {
		return prev
	}
	d.dropVariables(id)
	for _, l := range property.Closure(id) {
		d.props.Delete(l.String())
		d.defined.Delete(l.String())
	}
	return prev
}

// Clone returns an independent copy of d.
func (d *Declaration) Clone() *Declaration {
	return &Declaration{
		props:   d.props.Copy(),
		defined: d.defined.Copy(),
		log:     d.log,
	}
}

// Len returns the number of stored properties.
func (d *Declaration) Len() int {
	return d.props.Len()
}

// Item returns the name of the i-th stored property, or "" when i is out of
// range.
func (d *Declaration) Item(i int) string {
	if i < 0 {
		return ""
	}
	for el := d.props.Front(); el != nil; el = el.Next() {
		if i == 0 {
			return el.Key
		}
		i--
	}
	return ""
}

// Names returns the names set on d, shorthands included, in the order they
// were first set.
func (d *Declaration) Names() []string {
	names := make([]string, 0, d.defined.Len())
	for el := d.defined.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// serialization lists the shorthands String tries to collapse, in order. When
// a shorthand has no collapsed form its fallbacks are tried instead.
var serialization = []struct {
	id        property.ID
	fallbacks []property.ID
}{
	{id: property.Margin},
	{id: property.Padding},
	{
		id: property.Border,
		fallbacks: []property.ID{
			property.BorderWidth,
			property.BorderStyle,
			property.BorderColor,
			property.BorderImage,
		},
	},
	{id: property.BorderRadius},
	{id: property.Background, fallbacks: []property.ID{property.BackgroundPosition}},
	{id: property.Font},
}

// String serializes the block. Shorthands are collapsed where possible.
// Names that were set are written first in the order they were set,
// followed by shorthands that were only built from longhands.
func (d *Declaration) String() string {
	work := d.props.Copy()
	staged := orderedmap.NewOrderedMap[string, PropertyValue]()

	stage := func(id property.ID) bool {
		v, ok := shorthand.Collapse(id, longhands{work})
		if !ok {
			return false
		}
		for _, l := range property.Closure(id) {
			work.Delete(l.String())
		}
		// Longhands set after a var() value win over it.
		work.Delete(id.String())
		staged.Set(id.String(), PropertyValue(v))
		return true
	}
	for _, entry := range serialization {
		if stage(entry.id) {
			continue
		}
		for _, fb := range entry.fallbacks {
			stage(fb)
		}
	}
	for el := work.Front(); el != nil; el = el.Next() {
		staged.Set(el.Key, el.Value)
	}

	var lines []string
	for el := d.defined.Front(); el != nil; el = el.Next() {
		if v, ok := staged.Get(el.Key); ok {
			lines = append(lines, line(el.Key, v))
			staged.Delete(el.Key)
		}
	}
	for el := staged.Front(); el != nil; el = el.Next() {
		lines = append(lines, line(el.Key, el.Value))
	}
	return strings.Join(lines, " ")
}

func line(name string, v PropertyValue) string {
	if v.Important {
		return name + ": " + v.Value + " !important;"
	}
	return name + ": " + v.Value + ";"
}

// longhands exposes the stored longhands to the collapser.
type longhands struct {
	props *orderedmap.OrderedMap[string, PropertyValue]
}

func (l longhands) Lookup(id property.ID) (property.Value, bool) {
	v, ok := l.props.Get(id.String())
	return property.Value(v), ok
}
