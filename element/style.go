package element

// FlexDirection chooses the main axis of a container.
type FlexDirection uint8

const (
	Row FlexDirection = iota
	Column
	RowReverse
	ColumnReverse
)

// AlignItems positions children along the cross axis.
type AlignItems uint8

const (
	AlignStretch AlignItems = iota
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
)

// JustifyContent positions children along the main axis.
type JustifyContent uint8

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Position chooses whether a node participates in flex flow.
type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// Overflow controls clipping of content that exceeds a node's box.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// TextWrap controls how a text leaf handles content wider than its box.
type TextWrap uint8

const (
	WrapText TextWrap = iota
	TruncateText
	TruncateStart
	TruncateMiddle
	TruncateEnd
)

// BorderStyle selects the box-drawing glyph set used to render a border.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRound
	BorderBold
	BorderSingleDouble
	BorderDoubleSingle
	BorderClassic
)

// IsVisible reports whether the style paints a border at all.
func (b BorderStyle) IsVisible() bool { return b != BorderNone }

// BorderChars is the six box-drawing glyphs for one border style:
// top-left, top-right, bottom-left, bottom-right, horizontal, vertical.
type BorderChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical string
}

var borderChars = map[BorderStyle]BorderChars{
	BorderNone:         {" ", " ", " ", " ", " ", " "},
	BorderSingle:       {"┌", "┐", "└", "┘", "─", "│"},
	BorderDouble:       {"╔", "╗", "╚", "╝", "═", "║"},
	BorderRound:        {"╭", "╮", "╰", "╯", "─", "│"},
	BorderBold:         {"┏", "┓", "┗", "┛", "━", "┃"},
	BorderSingleDouble: {"╓", "╖", "╙", "╜", "─", "║"},
	BorderDoubleSingle: {"╒", "╕", "╘", "╛", "═", "│"},
	BorderClassic:      {"+", "+", "+", "+", "-", "|"},
}

// Chars returns the glyph set for this border style.
func (b BorderStyle) Chars() BorderChars { return borderChars[b] }

// DimensionKind distinguishes how a Dimension's numeric value is interpreted.
type DimensionKind uint8

const (
	DimAuto DimensionKind = iota
	DimPoints
	DimPercent
)

// Dimension is a width/height/basis value: automatic, a fixed cell count,
// or a percentage of the containing block.
type Dimension struct {
	Kind  DimensionKind
	Value float64
}

// Auto is the "let the layout engine decide" dimension.
var Auto = Dimension{Kind: DimAuto}

// Points constructs a fixed-size dimension measured in terminal cells.
func Points(v float64) Dimension { return Dimension{Kind: DimPoints, Value: v} }

// Percent constructs a dimension relative to the parent's size, 0-100.
func Percent(v float64) Dimension { return Dimension{Kind: DimPercent, Value: v} }

// Edges holds four side values, used for padding and margin.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgesAll builds uniform edges on all four sides.
func EdgesAll(v float64) Edges { return Edges{v, v, v, v} }

// Style is the union of every visual and layout facet an Element can carry.
// It deliberately mirrors a single flat struct rather than nested facet
// structs: merge() only touches the visual+border fields, so keeping them
// flat avoids a second indirection on the hot per-cell paint path.
type Style struct {
	// Layout facet.
	Position      Position
	Top, Right, Bottom, Left *float64

	FlexDirection FlexDirection
	FlexWrap      bool
	FlexGrow      float64
	FlexShrink    float64
	FlexBasis     Dimension
	AlignItems    AlignItems
	AlignSelf     *AlignItems
	JustifyContent JustifyContent

	Padding  Edges
	Margin   Edges
	Gap      float64
	RowGap    *float64
	ColumnGap *float64

	Width, Height             Dimension
	MinWidth, MinHeight       Dimension
	MaxWidth, MaxHeight       Dimension

	OverflowX, OverflowY Overflow

	// Border facet.
	BorderStyle  BorderStyle
	BorderColor  *Color
	BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor *Color
	BorderDim    bool
	BorderTop, BorderBottom, BorderLeft, BorderRight bool
	BorderLabel  string

	// Visual facet.
	Color           *Color
	BackgroundColor *Color
	Bold, Italic, Underline, Strikethrough, Dim, Inverse bool
	TextWrap TextWrap

	// Internal flags.
	IsStatic bool
}

// NewStyle returns the default style: shrinkable, bordered on all sides
// (though BorderStyle defaults to None so nothing actually paints).
func NewStyle() Style {
	return Style{
		FlexShrink:  1,
		BorderTop:    true,
		BorderBottom: true,
		BorderLeft:   true,
		BorderRight:  true,
	}
}

// Merge composes only the visual and border facets of other onto a copy of
// s; layout facets are never merged — the caller must pick one. This is a
// deliberate asymmetry, not an oversight: a component composing two style
// fragments into "what to paint" should not also have to reconcile two
// conflicting flex layouts.
func (s Style) Merge(other Style) Style {
	if other.Color != nil {
		s.Color = other.Color
	}
	if other.BackgroundColor != nil {
		s.BackgroundColor = other.BackgroundColor
	}
	if other.Bold {
		s.Bold = true
	}
	if other.Italic {
		s.Italic = true
	}
	if other.Underline {
		s.Underline = true
	}
	if other.Strikethrough {
		s.Strikethrough = true
	}
	if other.Dim {
		s.Dim = true
	}
	if other.Inverse {
		s.Inverse = true
	}
	if other.BorderStyle != BorderNone {
		s.BorderStyle = other.BorderStyle
	}
	if other.BorderColor != nil {
		s.BorderColor = other.BorderColor
	}
	return s
}

// Equal reports whether s and other describe the same style, comparing
// every pointer field (Color, BackgroundColor, BorderColor and its
// per-edge variants, Top/Right/Bottom/Left, AlignSelf, RowGap/ColumnGap)
// by dereferenced value rather than by address. Style cannot be compared
// with == for this purpose: Fg/Bg/etc. allocate a fresh pointer on every
// call, so two renders of the identical color would otherwise never
// compare equal.
func (s Style) Equal(other Style) bool {
	a, b := s, other
	a.Top, b.Top = nil, nil
	a.Right, b.Right = nil, nil
	a.Bottom, b.Bottom = nil, nil
	a.Left, b.Left = nil, nil
	a.AlignSelf, b.AlignSelf = nil, nil
	a.RowGap, b.RowGap = nil, nil
	a.ColumnGap, b.ColumnGap = nil, nil
	a.BorderColor, b.BorderColor = nil, nil
	a.BorderTopColor, b.BorderTopColor = nil, nil
	a.BorderRightColor, b.BorderRightColor = nil, nil
	a.BorderBottomColor, b.BorderBottomColor = nil, nil
	a.BorderLeftColor, b.BorderLeftColor = nil, nil
	a.Color, b.Color = nil, nil
	a.BackgroundColor, b.BackgroundColor = nil, nil

	return a == b &&
		equalFloatPtr(s.Top, other.Top) &&
		equalFloatPtr(s.Right, other.Right) &&
		equalFloatPtr(s.Bottom, other.Bottom) &&
		equalFloatPtr(s.Left, other.Left) &&
		equalAlignPtr(s.AlignSelf, other.AlignSelf) &&
		equalFloatPtr(s.RowGap, other.RowGap) &&
		equalFloatPtr(s.ColumnGap, other.ColumnGap) &&
		equalColorPtr(s.BorderColor, other.BorderColor) &&
		equalColorPtr(s.BorderTopColor, other.BorderTopColor) &&
		equalColorPtr(s.BorderRightColor, other.BorderRightColor) &&
		equalColorPtr(s.BorderBottomColor, other.BorderBottomColor) &&
		equalColorPtr(s.BorderLeftColor, other.BorderLeftColor) &&
		equalColorPtr(s.Color, other.Color) &&
		equalColorPtr(s.BackgroundColor, other.BackgroundColor)
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalAlignPtr(a, b *AlignItems) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalColorPtr(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func colorPtr(c Color) *Color { return &c }

// Fg sets the foreground color.
func (s Style) Fg(c Color) Style { s.Color = colorPtr(c); return s }

// Bg sets the background color.
func (s Style) Bg(c Color) Style { s.BackgroundColor = colorPtr(c); return s }

// WithBold marks the style bold.
func (s Style) WithBold() Style { s.Bold = true; return s }

// ErrorStyle is a preset: bold red foreground, for diagnostic text.
func ErrorStyle() Style { return NewStyle().Fg(Named(Red)).WithBold() }

// SuccessStyle is a preset: green foreground.
func SuccessStyle() Style { return NewStyle().Fg(Named(Green)) }

// WarningStyle is a preset: yellow foreground.
func WarningStyle() Style { return NewStyle().Fg(Named(Yellow)) }

// InfoStyle is a preset: cyan foreground.
func InfoStyle() Style { return NewStyle().Fg(Named(Cyan)) }
