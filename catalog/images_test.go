package catalog

import (
	"reflect"
	"testing"
)

func TestImageSlotsAdd(t *testing.T) {
	tests := []struct {
		name          string
		adds          []string
		wantPrimary   string
		wantSecondary []string
	}{
		{
			name:        "first url becomes primary",
			adds:        []string{"a.png"},
			wantPrimary: "a.png",
		},
		{
			name:          "later urls append to secondaries",
			adds:          []string{"a.png", "b.png", "c.png"},
			wantPrimary:   "a.png",
			wantSecondary: []string{"b.png", "c.png"},
		},
		{
			name:          "empty url is ignored",
			adds:          []string{"", "a.png", "", "b.png"},
			wantPrimary:   "a.png",
			wantSecondary: []string{"b.png"},
		},
		{
			name:          "adds past the limit are ignored",
			adds:          []string{"a.png", "b.png", "c.png", "d.png", "e.png", "f.png"},
			wantPrimary:   "a.png",
			wantSecondary: []string{"b.png", "c.png", "d.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ImageSlots
			for _, u := range tt.adds {
				s.Add(u)
			}
			if s.Primary != tt.wantPrimary {
				t.Errorf("primary = %q, want %q", s.Primary, tt.wantPrimary)
			}
			if !reflect.DeepEqual(s.Secondary, tt.wantSecondary) {
				t.Errorf("secondary = %v, want %v", s.Secondary, tt.wantSecondary)
			}
			if s.Count() > MaxImages {
				t.Errorf("count = %d exceeds limit %d", s.Count(), MaxImages)
			}
		})
	}
}

func TestImageSlotsRemove(t *testing.T) {
	tests := []struct {
		name          string
		start         ImageSlots
		index         int
		wantPrimary   string
		wantSecondary []string
	}{
		{
			name:          "removing primary promotes first secondary",
			start:         ImageSlots{Primary: "a", Secondary: []string{"b", "c"}},
			index:         0,
			wantPrimary:   "b",
			wantSecondary: []string{"c"},
		},
		{
			name:        "removing primary with no secondaries empties it",
			start:       ImageSlots{Primary: "a"},
			index:       0,
			wantPrimary: "",
		},
		{
			name:          "removing a middle secondary shifts the rest left",
			start:         ImageSlots{Primary: "a", Secondary: []string{"b", "c", "d"}},
			index:         2,
			wantPrimary:   "a",
			wantSecondary: []string{"b", "d"},
		},
		{
			name:          "removing the last secondary",
			start:         ImageSlots{Primary: "a", Secondary: []string{"b", "c"}},
			index:         2,
			wantPrimary:   "a",
			wantSecondary: []string{"b"},
		},
		{
			name:          "out of range index is a no-op",
			start:         ImageSlots{Primary: "a", Secondary: []string{"b"}},
			index:         5,
			wantPrimary:   "a",
			wantSecondary: []string{"b"},
		},
		{
			name:          "negative index is a no-op",
			start:         ImageSlots{Primary: "a", Secondary: []string{"b"}},
			index:         -1,
			wantPrimary:   "a",
			wantSecondary: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.Remove(tt.index)
			if s.Primary != tt.wantPrimary {
				t.Errorf("primary = %q, want %q", s.Primary, tt.wantPrimary)
			}
			if !reflect.DeepEqual(s.Secondary, tt.wantSecondary) {
				t.Errorf("secondary = %v, want %v", s.Secondary, tt.wantSecondary)
			}
		})
	}
}

func TestImageSlotsFlat(t *testing.T) {
	var s ImageSlots
	if got := s.Flat(); got != nil {
		t.Errorf("empty slots flat = %v, want nil", got)
	}
	s.Add("a")
	s.Add("b")
	if got, want := s.Flat(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("flat = %v, want %v", got, want)
	}
}

func TestImageSlotsDisplay(t *testing.T) {
	s := ImageSlots{Primary: "a", Secondary: []string{"b"}}
	got := s.Display()
	want := []string{"a", "b", "", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("display = %v, want %v", got, want)
	}
}
