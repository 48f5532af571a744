// Package tui provides immediate-mode drawing primitives over a terminal.Frame.
//
// Core abstraction is Region, a rectangular window into the frame's cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Usage pattern:
//
//	screen.Draw(func(f *terminal.Frame) {
//	    root := tui.FromFrame(f).HMargin(1)
//	    rows := tui.SplitV(root, tui.Length(4), tui.Percentage(100))
//	    rows[0].TextCenter(1, "banner", fg, terminal.RGBDefault, terminal.AttrBold)
//	    body := rows[1].Card("SETUP", tui.LineRounded, borderColor)
//	    body.Form(form, tui.FormOpts{Spacing: 2})
//	})
package tui
