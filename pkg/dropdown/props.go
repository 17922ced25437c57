package dropdown

import (
	tea "github.com/charmbracelet/bubbletea"
)

// EventType names an input a Props handler can receive.
type EventType string

const (
	OnKeyDown      EventType = "keydown"
	OnClick        EventType = "click"
	OnMouseEnter   EventType = "mouseenter"
	OnMouseLeave   EventType = "mouseleave"
	OnWheel        EventType = "wheel"
	OnOutsidePress EventType = "outsidepress"
)

// Handler reacts to one input message.
type Handler func(msg tea.Msg) tea.Cmd

// Props are the attributes and handlers attached to a rendered part
// (trigger, panel or item).
type Props struct {
	Attrs    map[string]string
	Handlers map[EventType]Handler
}

// Attr returns the attribute value for key.
func (p Props) Attr(key string) string {
	return p.Attrs[key]
}

// Handler returns the handler for ev, or nil.
func (p Props) Handler(ev EventType) Handler {
	return p.Handlers[ev]
}

// Fire runs the handler for ev with msg. Parts with no handler return nil.
func (p Props) Fire(ev EventType, msg tea.Msg) tea.Cmd {
	h := p.Handlers[ev]
	if h == nil {
		return nil
	}
	return h(msg)
}

// WithAttr returns a copy of p with key set.
func (p Props) WithAttr(key, value string) Props {
	out := p.clone()
	out.Attrs[key] = value
	return out
}

// WithHandler returns a copy of p with the handler for ev replaced.
func (p Props) WithHandler(ev EventType, h Handler) Props {
	out := p.clone()
	out.Handlers[ev] = h
	return out
}

func (p Props) clone() Props {
	out := Props{
		Attrs:    make(map[string]string, len(p.Attrs)),
		Handlers: make(map[EventType]Handler, len(p.Handlers)),
	}
	for k, v := range p.Attrs {
		out.Attrs[k] = v
	}
	for k, v := range p.Handlers {
		out.Handlers[k] = v
	}
	return out
}

// MergeProps folds fragments left to right. Attributes from later fragments
// replace earlier ones; handlers are chained so every fragment's handler
// runs, earlier first.
func MergeProps(fragments ...Props) Props {
	out := Props{Attrs: map[string]string{}, Handlers: map[EventType]Handler{}}
	for _, f := range fragments {
		for k, v := range f.Attrs {
			out.Attrs[k] = v
		}
		for ev, h := range f.Handlers {
			if h == nil {
				continue
			}
			out.Handlers[ev] = chain(out.Handlers[ev], h)
		}
	}
	return out
}

// OverrideProps applies override on top of base with last-write-wins
// semantics for attributes and handlers alike.
func OverrideProps(base, override Props) Props {
	out := base.clone()
	for k, v := range override.Attrs {
		out.Attrs[k] = v
	}
	for ev, h := range override.Handlers {
		if h != nil {
			out.Handlers[ev] = h
		}
	}
	return out
}

func chain(first, second Handler) Handler {
	if first == nil {
		return second
	}
	return func(msg tea.Msg) tea.Cmd {
		return tea.Batch(first(msg), second(msg))
	}
}
