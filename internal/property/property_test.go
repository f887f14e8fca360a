package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNames(t *testing.T) {
	for id := Unknown + 1; id < count; id++ {
		name := id.String()
		require.NotEmpty(t, name, "id %d has no name", id)
		assert.Equal(t, id, Lookup(name), name)
		if id.IsLonghand() {
			assert.NotNil(t, validators[id], "%s has no validator", name)
		} else {
			assert.NotEmpty(t, shorthands[id].components, "%s has no components", name)
		}
	}
	assert.Equal(t, Unknown, Lookup("not-a-property"))
	assert.Equal(t, "", Unknown.String())
}

func TestClosure(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want []ID
	}{
		{
			name: "edge",
			id:   Margin,
			want: []ID{MarginTop, MarginRight, MarginBottom, MarginLeft},
		},
		{
			name: "border side owns border image",
			id:   BorderTop,
			want: []ID{
				BorderTopWidth, BorderTopStyle, BorderTopColor,
				BorderImageSource, BorderImageSlice, BorderImageWidth, BorderImageOutset, BorderImageRepeat,
			},
		},
		{
			name: "nested background position",
			id:   Background,
			want: []ID{
				BackgroundImage, BackgroundPositionX, BackgroundPositionY, BackgroundSize,
				BackgroundRepeat, BackgroundAttachment, BackgroundOrigin, BackgroundClip, BackgroundColor,
			},
		},
		{
			name: "longhand",
			id:   Color,
			want: []ID{Color},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Closure(tt.id))
		})
	}

	assert.Len(t, Closure(Border), 17)
	assert.Nil(t, Closure(Unknown))
	assert.Equal(t, []ID{BorderLeftWidth, BorderLeftStyle, BorderLeftColor}, Required(BorderLeft))
	assert.Equal(t, Closure(Border), Required(Border))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, EdgeShorthand, KindOf(BorderRadius))
	assert.Equal(t, CompositeShorthand, KindOf(Font))
	assert.Equal(t, Longhand, KindOf(FontSize))
	assert.Equal(t, Longhand, KindOf(Unknown))
	assert.Equal(t, "composite shorthand", KindOf(Flex).String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		id   ID
		in   string
		want string
		ok   bool
	}{
		{Width, "0", "0px", true},
		{Width, "AUTO", "auto", true},
		{Width, "fit-content", "fit-content", true},
		{Width, "inherit", "inherit", true},
		{Width, "var(--w)", "var(--w)", true},
		{Width, "wide", "", false},
		{MaxWidth, "none", "none", true},
		{PaddingTop, "-1px", "", false},
		{MarginTop, "-1px", "-1px", true},
		{BorderTopWidth, "thick", "thick", true},
		{BorderTopWidth, "10%", "", false},
		{BorderTopStyle, "Dashed", "dashed", true},
		{BorderTopColor, "#000", "#000", true},
		{BorderImageSource, "url(a.png)", `url("a.png")`, true},
		{BorderImageSlice, "10 20% fill", "10 20% fill", true},
		{BorderImageSlice, "fill 10", "10 fill", true},
		{BorderImageSlice, "1 2 3 4 5", "", false},
		{BorderImageRepeat, "round space", "round space", true},
		{BorderTopLeftRadius, "10px 5%", "10px 5%", true},
		{OutlineStyle, "auto", "auto", true},
		{OutlineColor, "invert", "invert", true},
		{Display, "Inline-Flex", "inline-flex", true},
		{Overflow, "hidden scroll", "hidden scroll", true},
		{ZIndex, "+10", "10", true},
		{ZIndex, "1.5", "", false},
		{Clip, "rect(1px 2px 3px 4px)", "rect(1px, 2px, 3px, 4px)", true},
		{FlexGrow, "2", "2", true},
		{FlexGrow, "-1", "", false},
		{FlexBasis, "content", "content", true},
		{BackgroundImage, "url(a.png),none", `url("a.png"), none`, true},
		{BackgroundRepeat, "repeat-x, no-repeat round", "repeat-x, no-repeat round", true},
		{BackgroundPositionX, "right 10px, center", "right 10px, center", true},
		{BackgroundPositionX, "top", "", false},
		{BackgroundPositionY, "bottom", "bottom", true},
		{BackgroundSize, "cover, 10px auto", "cover, 10px auto", true},
		{BackgroundClip, "text", "text", true},
		{FontStyle, "oblique 10deg", "oblique 10deg", true},
		{FontWeight, "700", "700", true},
		{FontWeight, "1001", "", false},
		{FontStretch, "condensed", "condensed", true},
		{FontSize, "Large", "large", true},
		{FontFamily, `Arial,  "Helvetica Neue" , sans-serif`, `Arial, "Helvetica Neue", sans-serif`, true},
		{FontFamily, "Times  New Roman", "Times New Roman", true},
		{FontFamily, "12px", "", false},
		{LineHeight, "1.5", "1.5", true},
		{LineHeight, "normal", "normal", true},
		{LetterSpacing, "0.1em", "0.1em", true},
		{Opacity, "0.5", "0.5", true},
		{Opacity, "50%", "50%", true},
		{FloodColor, "rgb(0,0,0)", "rgb(0, 0, 0)", true},
	}

	for _, tt := range tests {
		t.Run(tt.id.String()+" "+tt.in, func(t *testing.T) {
			got, ok := Validate(tt.id, tt.in)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Validate(Margin, "1px")
	assert.False(t, ok, "shorthands are not validated as longhands")
}

func TestComponentRejectsGlobals(t *testing.T) {
	_, ok := Component(BorderTopStyle, "inherit")
	assert.False(t, ok)

	got, ok := Component(BorderTopColor, "var(--c)")
	require.True(t, ok)
	assert.Equal(t, "var(--c)", got)
}

func TestSet(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Len())

	s.PutAll(Margin, "initial")
	assert.Equal(t, 4, s.Len())

	var o Set
	o.Put(MarginTop, "1px")
	o.Put(Color, "red")
	s.Merge(&o)

	got, ok := s.Get(MarginTop)
	require.True(t, ok)
	assert.Equal(t, "1px", got)
	assert.Equal(t, 5, s.Len())

	s.Put(Color, "")
	_, ok = s.Get(Color)
	assert.False(t, ok)
	assert.Equal(t, 4, s.Len())

	var ids []ID
	s.Each(func(id ID, _ string) { ids = append(ids, id) })
	assert.Equal(t, []ID{MarginTop, MarginRight, MarginBottom, MarginLeft}, ids)
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"background-color", CategoryVisual},
		{"border-top-width", CategoryVisual},
		{"margin", CategoryLayout},
		{"padding-left", CategoryLayout},
		{"font", CategoryTypography},
		{"opacity", CategoryEffects},
		{"transform", CategoryEffects},
		{"--brand-color", CategoryTokens},
		{"-webkit-appearance", CategoryInternal},
		{"grid-area", CategoryLayout},
		{"text-shadow", CategoryTypography},
		{"something-else", CategoryLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(tt.name))
		})
	}
}

func TestRelated(t *testing.T) {
	assert.Equal(t, []ID{Margin}, Related(MarginTop))
	assert.Contains(t, Related(BorderTopColor), BorderColor)
	assert.Contains(t, Related(BorderTopColor), BorderTop)
	assert.Contains(t, Related(BorderTopColor), Border)
	assert.NotContains(t, Related(BorderTopColor), BorderLeft)
	assert.Contains(t, Related(BorderLeft), BorderTop, "sides share the border image group")
	assert.Empty(t, Related(Unknown))
}
