package grammar

import (
	"regexp"
	"strings"
)

var namedColors = NewKeywords(
	"transparent", "currentcolor",
	"aliceblue", "antiquewhite", "aqua", "aquamarine", "azure", "beige",
	"bisque", "black", "blanchedalmond", "blue", "blueviolet", "brown",
	"burlywood", "cadetblue", "chartreuse", "chocolate", "coral",
	"cornflowerblue", "cornsilk", "crimson", "cyan", "darkblue", "darkcyan",
	"darkgoldenrod", "darkgray", "darkgreen", "darkgrey", "darkkhaki",
	"darkmagenta", "darkolivegreen", "darkorange", "darkorchid", "darkred",
	"darksalmon", "darkseagreen", "darkslateblue", "darkslategray",
	"darkslategrey", "darkturquoise", "darkviolet", "deeppink", "deepskyblue",
	"dimgray", "dimgrey", "dodgerblue", "firebrick", "floralwhite",
	"forestgreen", "fuchsia", "gainsboro", "ghostwhite", "gold", "goldenrod",
	"gray", "green", "greenyellow", "grey", "honeydew", "hotpink", "indianred",
	"indigo", "ivory", "khaki", "lavender", "lavenderblush", "lawngreen",
	"lemonchiffon", "lightblue", "lightcoral", "lightcyan",
	"lightgoldenrodyellow", "lightgray", "lightgreen", "lightgrey", "lightpink",
	"lightsalmon", "lightseagreen", "lightskyblue", "lightslategray",
	"lightslategrey", "lightsteelblue", "lightyellow", "lime", "limegreen",
	"linen", "magenta", "maroon", "mediumaquamarine", "mediumblue",
	"mediumorchid", "mediumpurple", "mediumseagreen", "mediumslateblue",
	"mediumspringgreen", "mediumturquoise", "mediumvioletred", "midnightblue",
	"mintcream", "mistyrose", "moccasin", "navajowhite", "navy", "oldlace",
	"olive", "olivedrab", "orange", "orangered", "orchid", "palegoldenrod",
	"palegreen", "paleturquoise", "palevioletred", "papayawhip", "peachpuff",
	"peru", "pink", "plum", "powderblue", "purple", "rebeccapurple", "red",
	"rosybrown", "royalblue", "saddlebrown", "salmon", "sandybrown",
	"seagreen", "seashell", "sienna", "silver", "skyblue", "slateblue",
	"slategray", "slategrey", "snow", "springgreen", "steelblue", "tan", "teal",
	"thistle", "tomato", "turquoise", "violet", "wheat", "white", "whitesmoke",
	"yellow", "yellowgreen",
)

var (
	hexColorRe  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	colorFuncRe = regexp.MustCompile(`(?i)^(rgba?|hsla?)\(\s*(.*?)\s*\)$`)
)

// Color matches a named color, a hex color or one of the rgb(), rgba(),
// hsl() and hsla() functions in comma or space syntax. A var() anywhere in
// the argument list makes the arguments opaque.
func Color(v string) (string, bool) {
	if c, ok := namedColors.Match(v); ok {
		return c, true
	}
	if hexColorRe.MatchString(v) {
		return v, true
	}
	m := colorFuncRe.FindStringSubmatch(v)
	if m == nil || !balanced(v) {
		return "", false
	}
	fn, args := strings.ToLower(m[1]), m[2]
	if args == "" {
		return "", false
	}
	if strings.Contains(args, "var(") {
		return fn + "(" + commaRe.ReplaceAllString(args, ", ") + ")", true
	}
	hue := fn[0] == 'h'

	if strings.Contains(args, ",") {
		parts := Split(args, ',')
		if len(parts) != 3 && len(parts) != 4 {
			return "", false
		}
		for i := range parts {
			c, ok := channel(parts[i], hue && i == 0)
			if !ok {
				return "", false
			}
			parts[i] = c
		}
		return fn + "(" + strings.Join(parts, ", ") + ")", true
	}

	fields := Fields(Isolate(args, '/'))
	switch {
	case len(fields) == 3:
	case len(fields) == 5 && fields[3] == "/":
	default:
		return "", false
	}
	for i := range fields {
		if i == 3 {
			continue
		}
		c, ok := channel(fields[i], hue && i == 0)
		if !ok {
			return "", false
		}
		fields[i] = c
	}
	return fn + "(" + strings.Join(fields, " ") + ")", true
}

// channel validates one color function argument: a number, a percentage or,
// for the hue position, an angle in degrees.
func channel(v string, hue bool) (string, bool) {
	if strings.EqualFold(v, "none") {
		return "none", true
	}
	if f, ok := Float(v); ok {
		return f, true
	}
	if p, ok := Percentage(v); ok {
		return p, true
	}
	if hue {
		return Degree(v)
	}
	return "", false
}
