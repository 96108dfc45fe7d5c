package catalog

// ImageSlots holds the primary image and the ordered secondary images of a
// draft. The visible sequence never has gaps: removing a slot shifts the
// ones after it left, and removing the primary promotes the first secondary.
type ImageSlots struct {
	Primary   string
	Secondary []string
}

// Count returns the number of filled slots.
func (s *ImageSlots) Count() int {
	if s.Primary == "" {
		return 0
	}
	return 1 + len(s.Secondary)
}

// Add places url into the next free slot: the primary if it is empty,
// otherwise appended after the existing secondaries. Empty urls and adds
// beyond the slot limit are ignored.
func (s *ImageSlots) Add(url string) {
	if url == "" || s.Count() >= MaxImages {
		return
	}
	if s.Primary == "" {
		s.Primary = url
		return
	}
	s.Secondary = append(s.Secondary, url)
}

// Remove clears the slot at index in the flat [primary, secondaries...] view.
// Removing the primary promotes the first secondary if there is one.
func (s *ImageSlots) Remove(index int) {
	if index < 0 || index >= s.Count() {
		return
	}
	if index == 0 {
		if len(s.Secondary) == 0 {
			s.Primary = ""
			return
		}
		s.Primary = s.Secondary[0]
		s.Secondary = append(s.Secondary[:0:0], s.Secondary[1:]...)
		return
	}
	i := index - 1
	s.Secondary = append(s.Secondary[:i:i], s.Secondary[i+1:]...)
}

// Flat returns [primary, secondaries...], or nil when no primary is set.
func (s *ImageSlots) Flat() []string {
	if s.Primary == "" {
		return nil
	}
	out := make([]string, 0, 1+len(s.Secondary))
	out = append(out, s.Primary)
	out = append(out, s.Secondary...)
	return out
}

// Display pads the flat view with empty placeholders up to the slot limit.
// The placeholders exist only for rendering; they are never submitted.
func (s *ImageSlots) Display() []string {
	out := make([]string, MaxImages)
	copy(out, s.Flat())
	return out
}
