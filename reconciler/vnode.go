package reconciler

import (
	"fmt"
	"strconv"

	"github.com/majiayu000/rnk/element"
)

// PropsHash is a stable hash of a node's style (plus text, for leaves)
// used to detect prop changes without a full deep comparison at every
// level.
type PropsHash string

// hashProps builds PropsHash from the dereferenced *values* behind
// element.Style's pointer fields (Color, BorderColor, Top/Right/Bottom/
// Left, AlignSelf, RowGap/ColumnGap, ...), never from the pointers
// themselves. Component functions rebuild Style fresh every render —
// Fg/Bg allocate a new *Color on every call — so hashing with %#v
// directly on e.Style would hash pointer addresses and flag a change on
// every frame even when nothing about the style actually differs.
func hashProps(e element.Element) PropsHash {
	s := e.Style
	snap := styleSnapshot{
		Position:       s.Position,
		Top:            hashFloatPtr(s.Top),
		Right:          hashFloatPtr(s.Right),
		Bottom:         hashFloatPtr(s.Bottom),
		Left:           hashFloatPtr(s.Left),
		FlexDirection:  s.FlexDirection,
		FlexWrap:       s.FlexWrap,
		FlexGrow:       s.FlexGrow,
		FlexShrink:     s.FlexShrink,
		FlexBasis:      s.FlexBasis,
		AlignItems:     s.AlignItems,
		AlignSelf:      hashAlignPtr(s.AlignSelf),
		JustifyContent: s.JustifyContent,
		Padding:        s.Padding,
		Margin:         s.Margin,
		Gap:            s.Gap,
		RowGap:         hashFloatPtr(s.RowGap),
		ColumnGap:      hashFloatPtr(s.ColumnGap),
		Width:          s.Width,
		Height:         s.Height,
		MinWidth:       s.MinWidth,
		MinHeight:      s.MinHeight,
		MaxWidth:       s.MaxWidth,
		MaxHeight:      s.MaxHeight,
		OverflowX:      s.OverflowX,
		OverflowY:      s.OverflowY,
		BorderStyle:       s.BorderStyle,
		BorderColor:       hashColorPtr(s.BorderColor),
		BorderTopColor:    hashColorPtr(s.BorderTopColor),
		BorderRightColor:  hashColorPtr(s.BorderRightColor),
		BorderBottomColor: hashColorPtr(s.BorderBottomColor),
		BorderLeftColor:   hashColorPtr(s.BorderLeftColor),
		BorderDim:         s.BorderDim,
		BorderTop:         s.BorderTop,
		BorderBottom:      s.BorderBottom,
		BorderLeft:        s.BorderLeft,
		BorderRight:       s.BorderRight,
		BorderLabel:       s.BorderLabel,
		Color:           hashColorPtr(s.Color),
		BackgroundColor: hashColorPtr(s.BackgroundColor),
		Bold:            s.Bold,
		Italic:          s.Italic,
		Underline:       s.Underline,
		Strikethrough:   s.Strikethrough,
		Dim:             s.Dim,
		Inverse:         s.Inverse,
		TextWrap:        s.TextWrap,
		IsStatic:        s.IsStatic,
	}
	return PropsHash(fmt.Sprintf("%#v|%s", snap, e.Text))
}

// styleSnapshot mirrors element.Style field-for-field, except every
// pointer field is replaced by the dereferenced value (or "nil")
// formatted as a string. %#v on this struct therefore hashes the
// style's actual content, never a pointer address.
type styleSnapshot struct {
	Position       element.Position
	Top, Right, Bottom, Left string

	FlexDirection  element.FlexDirection
	FlexWrap       bool
	FlexGrow       float64
	FlexShrink     float64
	FlexBasis      element.Dimension
	AlignItems     element.AlignItems
	AlignSelf      string
	JustifyContent element.JustifyContent

	Padding   element.Edges
	Margin    element.Edges
	Gap       float64
	RowGap    string
	ColumnGap string

	Width, Height       element.Dimension
	MinWidth, MinHeight element.Dimension
	MaxWidth, MaxHeight element.Dimension

	OverflowX, OverflowY element.Overflow

	BorderStyle                                                         element.BorderStyle
	BorderColor                                                         string
	BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor string
	BorderDim                                                            bool
	BorderTop, BorderBottom, BorderLeft, BorderRight                     bool
	BorderLabel                                                          string

	Color, BackgroundColor                               string
	Bold, Italic, Underline, Strikethrough, Dim, Inverse bool
	TextWrap element.TextWrap

	IsStatic bool
}

func hashFloatPtr(p *float64) string {
	if p == nil {
		return "nil"
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func hashColorPtr(c *element.Color) string {
	if c == nil {
		return "nil"
	}
	return c.String()
}

func hashAlignPtr(a *element.AlignItems) string {
	if a == nil {
		return "nil"
	}
	return strconv.Itoa(int(*a))
}

// VNode is the reconciler's lightweight mirror of one Element: just enough
// to diff and to drive the layout/paint patch stream. Build builds the
// tree fresh from an Element; Key identity is assigned by Build and
// Diff, never carried over from the Element itself (Element.ID is
// frame-local and has no cross-frame meaning, per spec I1).
type VNode struct {
	Key       NodeKey
	ElementID element.Id // frame-local only; never compared during diff
	Type      element.TypeTag
	Kind      element.Kind
	Style     element.Style
	Text      string
	PropsHash PropsHash
	Children  []VNode
}

// Build constructs a VNode tree from an Element tree, assigning NodeKeys
// rooted at parentKey (RootKey for the tree root itself).
func Build(e element.Element, parentKey NodeKey, siblingIndex int) VNode {
	key := Child(parentKey, e.Key, siblingIndex, e.Type)
	v := VNode{
		Key:       key,
		ElementID: e.ID,
		Type:      e.Type,
		Kind:      e.Kind,
		Style:     e.Style,
		Text:      e.Text,
		PropsHash: hashProps(e),
	}
	if e.Kind == element.KindContainer {
		v.Children = make([]VNode, len(e.Children))
		for i, child := range e.Children {
			v.Children[i] = Build(child, key, i)
		}
	}
	return v
}

// BuildRoot is Build rooted at the tree root.
func BuildRoot(e element.Element) VNode {
	return Build(e, RootKey, 0)
}
