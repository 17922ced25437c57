package dropdown

import "testing"

func navRegistry() *Registry {
	r := NewRegistry()
	r.Register("a", false) // 0
	r.Register("b", true)  // 1 disabled
	r.Register("c", false) // 2
	r.Register("d", false) // 3
	return r
}

func TestListNavigationNext(t *testing.T) {
	r := navRegistry()

	tests := []struct {
		name    string
		loop    bool
		current int
		key     NavKey
		want    int
	}{
		{"next skips disabled", true, 0, NavNext, 2},
		{"prev skips disabled", true, 2, NavPrev, 0},
		{"next wraps", true, 3, NavNext, 0},
		{"prev wraps", true, 0, NavPrev, 3},
		{"next stops without loop", false, 3, NavNext, 3},
		{"prev stops without loop", false, 0, NavPrev, 0},
		{"next from none is first", true, NoIndex, NavNext, 0},
		{"prev from none is last", true, NoIndex, NavPrev, 3},
		{"first", true, 3, NavFirst, 0},
		{"last", true, 0, NavLast, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := ListNavigation{Loop: tt.loop}
			if got := nav.Next(r, tt.current, tt.key); got != tt.want {
				t.Errorf("Next(%d, %d) = %d, want %d", tt.current, tt.key, got, tt.want)
			}
		})
	}
}

func TestListNavigationEmpty(t *testing.T) {
	nav := ListNavigation{Loop: true}
	if got := nav.Next(NewRegistry(), NoIndex, NavNext); got != NoIndex {
		t.Errorf("Next on empty registry = %d, want NoIndex", got)
	}

	r := NewRegistry()
	r.Register("x", true)
	if got := nav.Next(r, NoIndex, NavFirst); got != NoIndex {
		t.Errorf("NavFirst with only disabled items = %d, want NoIndex", got)
	}
}
