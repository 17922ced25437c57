// Package modal provides dialog parts for hosting dropdowns.
//
// A dialog publishes a Context (popup flag and close callback); parts such
// as Header read it on every render instead of holding their own state.
//
//	ctx := modal.Context{OnClose: func() tea.Cmd { return closeDialog }}
//	hdr := modal.Header{Title: "Settings"}
//	r := hdr.Render(ctx, 40, hovered)
//
//	// In Update(), with coordinates relative to the header:
//	cmd := hdr.HandleClick(ctx, r, x, y)
package modal
