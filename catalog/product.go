package catalog

// Product mirrors the backend record. Numeric fields are real numbers on the
// wire; is_enabled is 0/1, not a bool. imageUrl is the primary image and
// imagesUrl holds up to three secondary images.
type Product struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	OriginPrice float64  `json:"origin_price"`
	Price       float64  `json:"price"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	IsEnabled   int      `json:"is_enabled"`
	ImageURL    string   `json:"imageUrl"`
	ImagesURL   []string `json:"imagesUrl"`
}

// MaxImages is the backend limit: one primary plus three secondaries.
const MaxImages = 4
