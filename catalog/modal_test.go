package catalog

import (
	"reflect"
	"testing"
)

func TestModalOpenReplacesDraft(t *testing.T) {
	var m Modal

	p := Product{ID: "p1", Title: "Oolong"}
	m.Open(ModeEdit, &p)
	m.Draft().Title = "edited but never saved"
	m.Close()

	// Add mode always starts from the blank template, no matter what was
	// edited before.
	m.Open(ModeAdd, nil)
	if m.Mode() != ModeAdd {
		t.Fatalf("mode = %s, want add", m.Mode())
	}
	if got := *m.Draft(); !reflect.DeepEqual(got, BlankDraft()) {
		t.Errorf("draft after open(add) = %+v, want blank", got)
	}
}

func TestModalCloseKeepsDraft(t *testing.T) {
	var m Modal
	p := Product{ID: "p1", Title: "Oolong"}
	m.Open(ModeEdit, &p)
	m.Close()

	if m.Mode() != ModeClosed {
		t.Fatalf("mode = %s, want closed", m.Mode())
	}
	if m.Draft().Title != "Oolong" {
		t.Errorf("draft title = %q, want kept until next open", m.Draft().Title)
	}
}

func TestModalOpenToOpenReplacesEverything(t *testing.T) {
	var m Modal
	a := Product{ID: "a", Title: "A"}
	b := Product{ID: "b", Title: "B"}

	m.Open(ModeEdit, &a)
	m.Open(ModeDelete, &b)

	if m.Mode() != ModeDelete {
		t.Fatalf("mode = %s, want delete", m.Mode())
	}
	if m.Product().ID != "b" || m.Draft().ID != "b" {
		t.Errorf("payload = %q/%q, want b/b", m.Product().ID, m.Draft().ID)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "add", want: ModeAdd},
		{in: "edit", want: ModeEdit},
		{in: "delete", want: ModeDelete},
		{in: "preview", want: ModePreview},
		{in: "closed", wantErr: true},
		{in: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) err = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) err = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
