package runtime

import (
	"github.com/majiayu000/rnk/hooks"
	"github.com/majiayu000/rnk/runtime/inputreg"
)

// inputSlot is the hook-order marker UseInput/UseMouse/UsePaste occupy;
// it carries no state of its own since the registry itself (not the
// hook context) owns the handler list (spec.md §4.8: "occupy a slot for
// ordering, register a handler in the current runtime context").
type inputSlot struct{}

// UseInput registers handler on the current runtime's key handler list
// for this frame. Handlers are cleared every frame (Context.BeginFrame),
// so components re-register on every render; call order across sibling
// components decides dispatch order for the frame.
func UseInput(c *hooks.Context, handler inputreg.KeyHandler) {
	hooks.UseHook(c, func() inputSlot { return inputSlot{} })
	if rt := Current(); rt != nil {
		rt.Input.RegisterKey(handler)
	}
}

// UseMouse registers handler on the current runtime's mouse handler list
// for this frame.
func UseMouse(c *hooks.Context, handler inputreg.MouseHandler) {
	hooks.UseHook(c, func() inputSlot { return inputSlot{} })
	if rt := Current(); rt != nil {
		rt.Input.RegisterMouse(handler)
	}
}

// UsePaste registers handler on the current runtime's bracketed-paste
// handler list for this frame.
func UsePaste(c *hooks.Context, handler inputreg.PasteHandler) {
	hooks.UseHook(c, func() inputSlot { return inputSlot{} })
	if rt := Current(); rt != nil {
		rt.Input.RegisterPaste(handler)
	}
}
