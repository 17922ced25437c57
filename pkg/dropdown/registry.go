package dropdown

import "github.com/marcus/dropdown/pkg/mouse"

// NoIndex marks the absence of an active or selected item.
const NoIndex = -1

// Handle is a measured region of the rendered frame. It plays the role an
// element reference plays in a DOM: position anchoring and hit testing.
type Handle struct {
	ID   string
	Rect mouse.Rect
}

// Entry is one registered list item.
type Entry struct {
	Label    string // matchable text, empty when the item takes no part in typeahead
	Disabled bool
	handle   *Handle
	removed  bool
}

// Handle returns the entry's mounted handle, or nil while unmounted.
func (e Entry) Handle() *Handle {
	return e.handle
}

// Registry is the ordered list of navigable items. Labels and handles live in
// the same record, so they are always index aligned.
//
// Unregistering leaves a tombstone in place; indices of the items that follow
// never shift. Trailing tombstones are trimmed so Len tracks the highest
// still-registered index.
type Registry struct {
	entries []Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends an item and returns its index.
func (r *Registry) Register(label string, disabled bool) int {
	r.entries = append(r.entries, Entry{Label: label, Disabled: disabled})
	return len(r.entries) - 1
}

// Unregister removes the item at i. Out of range indices are ignored.
func (r *Registry) Unregister(i int) {
	if !r.Contains(i) {
		return
	}
	r.entries[i] = Entry{removed: true}
	for len(r.entries) > 0 && r.entries[len(r.entries)-1].removed {
		r.entries = r.entries[:len(r.entries)-1]
	}
}

// Len returns the current index bound.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Contains reports whether i is a live registered index.
func (r *Registry) Contains(i int) bool {
	return i >= 0 && i < len(r.entries) && !r.entries[i].removed
}

// Navigable reports whether list navigation may land on i.
func (r *Registry) Navigable(i int) bool {
	return r.Contains(i) && !r.entries[i].Disabled
}

// Entry returns the record at i.
func (r *Registry) Entry(i int) (Entry, bool) {
	if !r.Contains(i) {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Label returns the matchable label at i ("" for tombstones and out of range).
func (r *Registry) Label(i int) string {
	if !r.Contains(i) {
		return ""
	}
	return r.entries[i].Label
}

// Labels returns the typeahead view of the registry: one slot per index,
// empty for entries that cannot match (tombstones, disabled, unlabeled).
func (r *Registry) Labels() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		if e.removed || e.Disabled {
			continue
		}
		out[i] = e.Label
	}
	return out
}

// Mount records the rendered handle of item i.
func (r *Registry) Mount(i int, h Handle) {
	if r.Contains(i) {
		r.entries[i].handle = &h
	}
}

// UnmountAll forgets every handle, as happens when the panel closes.
func (r *Registry) UnmountAll() {
	for i := range r.entries {
		r.entries[i].handle = nil
	}
}

// Validate returns i when it is a live index, NoIndex otherwise.
func (r *Registry) Validate(i int) int {
	if r.Contains(i) {
		return i
	}
	return NoIndex
}
