package catalog

import (
	"fmt"

	"github.com/example/bookshop/internal/domain/book"
)

// fallbackBooks is the fixed default catalog, shown at startup and as
// the recovery view when a recommendation stream fails. IDs are stable
// so repeated inventory merges stay idempotent.
var fallbackBooks = []book.Book{
	{
		ID:              "seed-001",
		Title:           "Pride and Prejudice",
		Author:          "Jane Austen",
		Summary:         "Elizabeth Bennet navigates manners, marriage and her own first impressions in Regency England.",
		Price:           "$9.99",
		Category:        "Classic Fiction",
		Rating:          4.6,
		PublicationDate: "1813-01-28",
		Pages:           432,
		Bestseller:      true,
	},
	{
		ID:              "seed-002",
		Title:           "The Count of Monte Cristo",
		Author:          "Alexandre Dumas",
		Summary:         "Wrongly imprisoned, Edmond Dantes escapes to pursue a meticulous campaign of revenge and redemption.",
		Price:           "$12.99",
		Category:        "Adventure",
		Rating:          4.8,
		PublicationDate: "1844-08-28",
		Pages:           1276,
	},
	{
		ID:              "seed-003",
		Title:           "Frankenstein",
		Author:          "Mary Shelley",
		Summary:         "A young scientist animates a creature from dead matter and must face what he has made.",
		Price:           "$8.99",
		Category:        "Gothic Fiction",
		Rating:          4.3,
		PublicationDate: "1818-01-01",
		Pages:           280,
	},
	{
		ID:              "seed-004",
		Title:           "The Adventures of Sherlock Holmes",
		Author:          "Arthur Conan Doyle",
		Summary:         "Twelve cases for the consulting detective of Baker Street and his companion Dr. Watson.",
		Price:           "$10.99",
		Category:        "Mystery",
		Rating:          4.7,
		PublicationDate: "1892-10-14",
		Pages:           307,
		Bestseller:      true,
	},
	{
		ID:              "seed-005",
		Title:           "Moby-Dick",
		Author:          "Herman Melville",
		Summary:         "Ishmael joins the whaler Pequod, whose captain hunts the white whale that took his leg.",
		Price:           "$11.99",
		Category:        "Classic Fiction",
		Rating:          4.1,
		PublicationDate: "1851-10-18",
		Pages:           635,
	},
	{
		ID:              "seed-006",
		Title:           "A Tale of Two Cities",
		Author:          "Charles Dickens",
		Summary:         "London and Paris in the years of the French Revolution, and a sacrifice that redeems a wasted life.",
		Price:           "$9.49",
		Category:        "Historical Fiction",
		Rating:          4.4,
		PublicationDate: "1859-04-30",
		Pages:           489,
	},
}

// Fallback returns a fresh copy of the default catalog.
func Fallback() []book.Book {
	out := make([]book.Book, len(fallbackBooks))
	copy(out, fallbackBooks)
	for i := range out {
		out[i].CoverURL = fmt.Sprintf("https://picsum.photos/seed/%s/300/450", out[i].ID)
		out[i].Reviews = []string{}
	}
	return out
}
