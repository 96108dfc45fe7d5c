package catalog

import "fmt"

// Mode identifies what the single modal instance is being used for.
type Mode int

const (
	ModeClosed Mode = iota
	ModeAdd
	ModeEdit
	ModeDelete
	ModePreview
)

var modeNames = map[Mode]string{
	ModeClosed:  "closed",
	ModeAdd:     "add",
	ModeEdit:    "edit",
	ModeDelete:  "delete",
	ModePreview: "preview",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps the wire name of an open mode. "closed" is not accepted;
// closing goes through Close, never through Open.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s && m != ModeClosed {
			return m, nil
		}
	}
	return ModeClosed, fmt.Errorf("unknown modal mode %q", s)
}

// Modal is the mode-with-payload state of the single reused modal. Every
// Open replaces both the mode and the draft, so stale draft data can never
// leak between modes; Close hides the modal but keeps the draft (it is
// overwritten on the next Open anyway).
type Modal struct {
	mode    Mode
	draft   Draft
	product Product
}

func (m *Modal) Mode() Mode { return m.mode }

// Draft exposes the editable draft. Only meaningful while the mode is add or
// edit; mutating it in any other mode has no effect on anything visible.
func (m *Modal) Draft() *Draft { return &m.draft }

// Product returns the payload loaded for delete and preview modes.
func (m *Modal) Product() Product { return m.product }

// Open loads the draft (merged over the blank template) and switches mode.
// A nil product means start from the blank template.
func (m *Modal) Open(mode Mode, p *Product) {
	if p == nil {
		m.draft = BlankDraft()
		m.product = Product{}
	} else {
		m.draft = DraftOf(*p)
		m.product = *p
	}
	m.mode = mode
}

// Close hides the modal without clearing the draft.
func (m *Modal) Close() {
	m.mode = ModeClosed
}
