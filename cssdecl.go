// Package cssdecl parses, validates and serializes CSS declaration blocks.
//
// A Declaration is the property bag behind an element's style attribute. It
// stores values at longhand granularity, expands shorthands on the way in and
// rebuilds the shortest shorthand form on the way out.
//
// # Setting values
//
// Values are validated against a fixed property catalog. Invalid values for
// known properties are dropped, unknown names are kept as written:
//
//	d := cssdecl.New("margin: 1px 2px; color: red")
//	_ = d.Set("border", "1px solid #000", false)
//	d.Value("margin-left") // "2px"
//	d.Value("border")      // "1px solid #000"
//
// # Shorthands
//
//   - Edge shorthands (margin, padding, border-width, ...) follow the 1 to 4
//     value rule and collapse back to the minimal form.
//   - Composite shorthands (border, font, background, ...) seed every owned
//     longhand with initial, then assign each token to the component that
//     accepts it.
//   - A var() reference is stored on the shorthand itself; a css-wide keyword
//     is copied to every longhand.
//
// # Serialization
//
// String emits the block with shorthands collapsed where possible, in the
// order names were first set:
//
//	d.String() // "margin: 1px 2px; color: red; border: 1px solid #000;"
//
// # CLI Tool
//
// cssdecl also provides a CLI tool to format declaration blocks and lint
// inline style attributes. Install with:
//
//	go install github.com/yacobolo/cssdecl/cmd/cssdecl@latest
package cssdecl
