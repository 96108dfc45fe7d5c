package catalog

import "strconv"

// Draft is the editable copy of a product held while the modal is open.
// Numeric fields stay raw strings so the user can clear them; they are only
// coerced to numbers when the draft is submitted.
type Draft struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	OriginPrice string     `json:"origin_price"`
	Price       string     `json:"price"`
	Unit        string     `json:"unit"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	IsEnabled   bool       `json:"is_enabled"`
	Images      ImageSlots `json:"-"`
}

// BlankDraft is the template every modal open starts from.
func BlankDraft() Draft {
	return Draft{}
}

// DraftOf merges a product over the blank template.
func DraftOf(p Product) Draft {
	d := BlankDraft()
	d.ID = p.ID
	d.Title = p.Title
	d.Category = p.Category
	d.OriginPrice = formatNumber(p.OriginPrice)
	d.Price = formatNumber(p.Price)
	d.Unit = p.Unit
	d.Description = p.Description
	d.Content = p.Content
	d.IsEnabled = p.IsEnabled == 1
	d.Images = slotsOf(p)
	return d
}

func slotsOf(p Product) ImageSlots {
	var s ImageSlots
	s.Add(p.ImageURL)
	for _, u := range p.ImagesURL {
		s.Add(u)
	}
	return s
}

// NormalizeNumber sanitizes raw numeric input as it is typed: the empty
// string is kept (the user is clearing the field), a parsed negative value is
// clamped to "0", and anything else stays the raw string until submit.
func NormalizeNumber(raw string) string {
	if raw == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil && n < 0 {
		return "0"
	}
	return raw
}

// Product coerces the draft into the wire record: numbers are parsed
// (unparseable input becomes 0), the enabled flag becomes exactly 1 or 0,
// and empty image slots are dropped from the submitted lists.
func (d Draft) Product() Product {
	p := Product{
		ID:          d.ID,
		Title:       d.Title,
		Category:    d.Category,
		OriginPrice: parseNumber(d.OriginPrice),
		Price:       parseNumber(d.Price),
		Unit:        d.Unit,
		Description: d.Description,
		Content:     d.Content,
		ImageURL:    d.Images.Primary,
	}
	if d.IsEnabled {
		p.IsEnabled = 1
	}
	p.ImagesURL = make([]string, 0, len(d.Images.Secondary))
	for _, u := range d.Images.Secondary {
		if u != "" {
			p.ImagesURL = append(p.ImagesURL, u)
		}
	}
	return p
}

func parseNumber(raw string) float64 {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return n
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
