// Package theme holds the semantic color palette components read
// instead of hard-coding raw colors, grounded on original_source's
// components/theme.rs: a Theme struct, preset builders (dark/light/
// monokai), a fluent Builder, and a package-level fallback stack
// (SetFallback/CurrentFallback, PushFallback/PopFallback) standing in for
// theme.rs's thread_local CURRENT_THEME cell. This package does not look
// up an active RuntimeContext itself.
package theme

import "github.com/majiayu000/rnk/element"

// TextColors groups the text color variants a theme defines.
type TextColors struct {
	Primary   element.Color
	Secondary element.Color
	Disabled  element.Color
	Inverted  element.Color
	Link      element.Color
}

// BackgroundColors groups the background color variants a theme defines.
type BackgroundColors struct {
	Default  element.Color
	Elevated element.Color
	Selected element.Color
	Hover    element.Color
	Disabled element.Color
}

// BorderColors groups the border color variants a theme defines.
type BorderColors struct {
	Default  element.Color
	Focused  element.Color
	Error    element.Color
	Disabled element.Color
}

// Theme is a complete, named palette.
type Theme struct {
	Name       string
	Primary    element.Color
	Secondary  element.Color
	Success    element.Color
	Warning    element.Color
	Error      element.Color
	Info       element.Color
	Text       TextColors
	Background BackgroundColors
	Border     BorderColors
}

// Dark is the default theme.
func Dark() Theme {
	return Theme{
		Name:      "dark",
		Primary:   element.Named(element.Cyan),
		Secondary: element.Named(element.Magenta),
		Success:   element.Named(element.Green),
		Warning:   element.Named(element.Yellow),
		Error:     element.Named(element.Red),
		Info:      element.Named(element.Blue),
		Text: TextColors{
			Primary:   element.Named(element.White),
			Secondary: element.Named(element.BrightBlack),
			Disabled:  element.Named(element.BrightBlack),
			Inverted:  element.Named(element.Black),
			Link:      element.Named(element.Cyan),
		},
		Background: BackgroundColors{
			Default:  element.Named(element.Black),
			Elevated: element.Named(element.BrightBlack),
			Selected: element.Named(element.Blue),
			Hover:    element.Named(element.BrightBlack),
			Disabled: element.Named(element.BrightBlack),
		},
		Border: BorderColors{
			Default:  element.Named(element.BrightBlack),
			Focused:  element.Named(element.Cyan),
			Error:    element.Named(element.Red),
			Disabled: element.Named(element.BrightBlack),
		},
	}
}

// Light is a light-background preset theme.
func Light() Theme {
	return Theme{
		Name:      "light",
		Primary:   element.Named(element.Blue),
		Secondary: element.Named(element.Magenta),
		Success:   element.Named(element.Green),
		Warning:   element.Named(element.Yellow),
		Error:     element.Named(element.Red),
		Info:      element.Named(element.Cyan),
		Text: TextColors{
			Primary:   element.Named(element.Black),
			Secondary: element.Named(element.BrightBlack),
			Disabled:  element.Named(element.BrightBlack),
			Inverted:  element.Named(element.White),
			Link:      element.Named(element.Blue),
		},
		Background: BackgroundColors{
			Default:  element.Named(element.White),
			Elevated: element.Named(element.BrightWhite),
			Selected: element.Named(element.Cyan),
			Hover:    element.Named(element.BrightWhite),
			Disabled: element.Named(element.BrightWhite),
		},
		Border: BorderColors{
			Default:  element.Named(element.BrightBlack),
			Focused:  element.Named(element.Blue),
			Error:    element.Named(element.Red),
			Disabled: element.Named(element.BrightWhite),
		},
	}
}

// Monokai is an RGB preset theme, for terminals that support truecolor.
func Monokai() Theme {
	rgb := element.RGB
	return Theme{
		Name:      "monokai",
		Primary:   rgb(166, 226, 46),
		Secondary: rgb(174, 129, 255),
		Success:   rgb(166, 226, 46),
		Warning:   rgb(230, 219, 116),
		Error:     rgb(249, 38, 114),
		Info:      rgb(102, 217, 239),
		Text: TextColors{
			Primary:   rgb(248, 248, 242),
			Secondary: rgb(117, 113, 94),
			Disabled:  rgb(117, 113, 94),
			Inverted:  rgb(39, 40, 34),
			Link:      rgb(102, 217, 239),
		},
		Background: BackgroundColors{
			Default:  rgb(39, 40, 34),
			Elevated: rgb(49, 50, 44),
			Selected: rgb(73, 72, 62),
			Hover:    rgb(59, 60, 54),
			Disabled: rgb(49, 50, 44),
		},
		Border: BorderColors{
			Default:  rgb(117, 113, 94),
			Focused:  rgb(166, 226, 46),
			Error:    rgb(249, 38, 114),
			Disabled: rgb(73, 72, 62),
		},
	}
}

// Builder fluently constructs a custom theme starting from Dark.
type Builder struct{ theme Theme }

// NewBuilder starts a custom theme named name, seeded from Dark.
func NewBuilder(name string) *Builder {
	t := Dark()
	t.Name = name
	return &Builder{theme: t}
}

func (b *Builder) Primary(c element.Color) *Builder    { b.theme.Primary = c; return b }
func (b *Builder) Secondary(c element.Color) *Builder  { b.theme.Secondary = c; return b }
func (b *Builder) Success(c element.Color) *Builder    { b.theme.Success = c; return b }
func (b *Builder) Warning(c element.Color) *Builder    { b.theme.Warning = c; return b }
func (b *Builder) ErrorColor(c element.Color) *Builder { b.theme.Error = c; return b }
func (b *Builder) Info(c element.Color) *Builder       { b.theme.Info = c; return b }

func (b *Builder) TextColors(c TextColors) *Builder             { b.theme.Text = c; return b }
func (b *Builder) BackgroundColors(c BackgroundColors) *Builder { b.theme.Background = c; return b }
func (b *Builder) BorderColors(c BorderColors) *Builder         { b.theme.Border = c; return b }

// Build returns the constructed theme.
func (b *Builder) Build() Theme { return b.theme }

var fallbackStack = []Theme{Dark()}

// SetFallback replaces the top of the fallback stack, used only by code
// with no active runtime.
func SetFallback(t Theme) { fallbackStack[len(fallbackStack)-1] = t }

// CurrentFallback returns the top of the fallback stack.
func CurrentFallback() Theme { return fallbackStack[len(fallbackStack)-1] }

// PushFallback pushes t as the new top of the fallback stack; pair with
// PopFallback.
func PushFallback(t Theme) { fallbackStack = append(fallbackStack, t) }

// PopFallback pops the fallback stack, restoring the previous theme.
func PopFallback() {
	if len(fallbackStack) > 1 {
		fallbackStack = fallbackStack[:len(fallbackStack)-1]
	}
}
