package book

// Book is a catalog entry. Identity is the ID alone: two books are the
// same entity iff their IDs are equal. IDs are assigned once at ingestion
// and never reused.
type Book struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Summary         string   `json:"summary"`
	Price           string   `json:"price"`
	CoverURL        string   `json:"cover_url"`
	Category        string   `json:"category"`
	Rating          float64  `json:"rating"`
	Reviews         []string `json:"reviews"`
	PublicationDate string   `json:"publication_date"`
	Pages           int      `json:"pages"`
	Bestseller      bool     `json:"bestseller,omitempty"`
}
