package selection

import (
	"reflect"
	"testing"
)

func TestSet_Toggle(t *testing.T) {
	var s Set
	s.Toggle("a")
	if !s.IsSelected("a") || s.Count() != 1 {
		t.Fatalf("after toggle a: selected=%v count=%d", s.IsSelected("a"), s.Count())
	}
	s.Toggle("b")
	s.Toggle("a")
	if s.IsSelected("a") || !s.IsSelected("b") || s.Count() != 1 {
		t.Fatalf("toggle should only affect one id, got %v", s.IDs())
	}
}

func TestSet_ToggleAllSelectsVisible(t *testing.T) {
	s := New("x")
	s.ToggleAll([]string{"a", "b"})
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"a", "b", "x"}) {
		t.Fatalf("IDs = %v, want [a b x]", got)
	}
}

func TestSet_ToggleAllClearsOnlyVisible(t *testing.T) {
	s := New("a", "b", "x")
	s.ToggleAll([]string{"a", "b"})
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("IDs = %v, want [x]", got)
	}
}

func TestSet_ToggleAllPartialSelectsRest(t *testing.T) {
	s := New("a")
	s.ToggleAll([]string{"a", "b", "c"})
	if s.Count() != 3 {
		t.Fatalf("Count = %d, want 3", s.Count())
	}
}

func TestSet_ToggleAllTwiceRestoresVisibleState(t *testing.T) {
	cases := []struct {
		name    string
		initial []string
		visible []string
	}{
		{"none selected", nil, []string{"a", "b"}},
		{"all selected", []string{"a", "b"}, []string{"a", "b"}},
		{"outside ids", []string{"x"}, []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.initial...)
			before := s.IDs()
			s.ToggleAll(tc.visible)
			s.ToggleAll(tc.visible)
			if got := s.IDs(); !reflect.DeepEqual(got, before) {
				t.Fatalf("IDs = %v, want %v", got, before)
			}
		})
	}
}

func TestSet_ToggleAllEmptyVisibleIsNoop(t *testing.T) {
	s := New("a")
	s.ToggleAll(nil)
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("IDs = %v, want [a]", got)
	}
}

func TestSet_AcceptsUnknownIDs(t *testing.T) {
	var s Set
	s.Toggle("")
	s.Toggle("not-in-catalog")
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
}

func TestSet_Clear(t *testing.T) {
	s := New("a", "b")
	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("Count after Clear = %d", s.Count())
	}
	s.Toggle("z")
	if !s.IsSelected("z") {
		t.Fatalf("set unusable after Clear")
	}
}
