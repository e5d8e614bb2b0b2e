package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Validate(t *testing.T) {
	valid := Record{
		Title:           "Dune",
		Author:          "Frank Herbert",
		Summary:         "A desert planet and the spice that rules it.",
		Category:        "Science Fiction",
		PublicationDate: "1965-08-01",
		Pages:           412,
	}

	tests := []struct {
		name    string
		mutate  func(*Record)
		wantErr bool
	}{
		{"complete record", func(*Record) {}, false},
		{"missing title", func(r *Record) { r.Title = "" }, true},
		{"missing author", func(r *Record) { r.Author = "" }, true},
		{"missing summary", func(r *Record) { r.Summary = "" }, true},
		{"missing category", func(r *Record) { r.Category = "" }, true},
		{"missing publication date", func(r *Record) { r.PublicationDate = "" }, true},
		{"zero pages", func(r *Record) { r.Pages = 0 }, true},
		{"negative pages", func(r *Record) { r.Pages = -10 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid
			tt.mutate(&rec)
			err := rec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
