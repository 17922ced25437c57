package dropdown

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUseClickSkipsSpaceWhileTyping(t *testing.T) {
	ctx := newTestContext(3)
	typing := true
	b := UseClick(ctx, DefaultKeyMap(), func() bool { return typing })

	b.Reference().Fire(OnKeyDown, tea.KeyMsg{Type: tea.KeySpace})
	if ctx.Open() {
		t.Error("space during typeahead should not open")
	}

	typing = false
	b.Reference().Fire(OnKeyDown, tea.KeyMsg{Type: tea.KeySpace})
	if !ctx.Open() {
		t.Error("space should open when not typing")
	}
}

func TestUseDismissOutsidePress(t *testing.T) {
	ctx := newTestContext(3)
	ctx.SetOpen(true, "")
	UseDismiss(ctx, DefaultKeyMap()).Floating().Fire(OnOutsidePress, nil)
	if ctx.Open() {
		t.Error("outside press should close")
	}
}

func TestUseListNavigationWheel(t *testing.T) {
	ctx := newTestContext(3)
	r := NewRegistry()
	r.Register("a", false)
	r.Register("b", false)
	r.Register("c", false)
	ctx.SetOpen(true, "")

	b := UseListNavigation(ctx, r, ListNavigation{Loop: true}, DefaultKeyMap(), func(i int) {
		ctx.Dispatch(NavigateTo{Index: i})
	})
	wheel := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	b.Floating().Fire(OnWheel, wheel)
	b.Floating().Fire(OnWheel, wheel)
	if got := ctx.State().ActiveIndex; got != 1 {
		t.Errorf("ActiveIndex after two wheel-downs = %d, want 1", got)
	}

	b.Item(2).Fire(OnMouseEnter, nil)
	if got := ctx.State().ActiveIndex; got != 2 {
		t.Errorf("ActiveIndex after hovering item 2 = %d, want 2", got)
	}
}

func TestInteractionsUserHandlerRunsFirst(t *testing.T) {
	ctx := newTestContext(3)
	var openWhenUserRan bool
	user := Props{Handlers: map[EventType]Handler{
		OnClick: func(tea.Msg) tea.Cmd { openWhenUserRan = ctx.Open(); return nil },
	}}
	in := NewInteractions(UseRole(ctx, "menu"), UseClick(ctx, DefaultKeyMap(), nil))

	in.GetReferenceProps(user).Fire(OnClick, nil)
	if openWhenUserRan {
		t.Error("user handler should run before the click behavior opens the menu")
	}
	if !ctx.Open() {
		t.Error("click behavior should still run")
	}
}
