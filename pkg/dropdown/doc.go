// Package dropdown provides a floating, keyboard-navigable overlay menu for
// bubbletea programs.
//
// A dropdown is a trigger control plus a panel of items. The panel is
// positioned relative to the trigger, rendered only while open, and driven by
// a small state machine (open, active index, selected index) that is
// independent of rendering.
//
// # Quick Start
//
//	dd := dropdown.New("Fruit", []dropdown.Node{
//	    dropdown.Header("Pick one"),
//	    dropdown.Item("Apple"),
//	    dropdown.Item("Banana"),
//	    dropdown.Divider(),
//	    dropdown.Item("Cherry", dropdown.WithValue("c")),
//	}, dropdown.WithPlacement(dropdown.PlacementBottomStart))
//	dd.Focus()
//
//	// In Update():
//	cmd := dd.Update(msg)
//	if sel, ok := msg.(dropdown.SelectMsg); ok {
//	    // sel.Index, sel.Label, sel.Value
//	}
//
//	// In View(): place the trigger, then composite the panel.
//	dd.SetOrigin(2, 1)
//	screen := layout(dd.View())
//	screen = dd.Overlay(screen, width, height)
//
// # Keyboard
//
//   - Enter / Space / Down / Up on the trigger open the menu
//   - Up/Down move the active item, wrapping at the ends
//   - Home/End (PgUp/PgDn) jump to the first/last item
//   - Enter / Space pick the active item
//   - Esc closes without picking
//   - Printable keys run typeahead; while closed they pick directly
//
// # Items
//
// Items receive a Context value from the root on every render: the active
// index, the dismiss-on-click flag, an item prop accessor and the select
// callback. Custom nodes implement Node, and Listable to join navigation.
package dropdown
