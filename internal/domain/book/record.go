package book

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Record is a raw recommendation payload as produced by the generator,
// before normalization into a Book.
type Record struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	Summary         string `json:"summary" validate:"required"`
	Category        string `json:"category" validate:"required"`
	PublicationDate string `json:"publicationDate" validate:"required"`
	Pages           int    `json:"pages" validate:"required,gt=0"`
}

// Validate checks that all required fields are present.
func (r Record) Validate() error {
	return validate.Struct(r)
}
