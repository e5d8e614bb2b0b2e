package recommend

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/domain/book"
)

// systemInstruction frames the generator call. The generator is expected
// to answer with one JSON object per book.
const systemInstruction = "You are a bookshop assistant. Recommend books matching the reader's request. " +
	"Respond with one JSON object per book with fields title, author, summary, category, publicationDate and pages."

// Ingestor drives a recommendation stream: it validates each raw
// record, assigns a fresh ID, synthesizes the presentation fields and
// reports every accepted book to the caller in arrival order.
type Ingestor struct {
	gen   Generator
	synth *Synthesizer
}

func NewIngestor(gen Generator, synth *Synthesizer) *Ingestor {
	if synth == nil {
		synth = NewSynthesizer(nil)
	}
	return &Ingestor{gen: gen, synth: synth}
}

// Ingest consumes the stream for prompt. onItem is invoked synchronously
// for each accepted book, so the caller can render partial progress; the
// accumulated list grows monotonically and is never reordered
// mid-stream. Malformed records are dropped and the stream continues.
// On transport failure the partial accumulation is returned along with
// the error; the caller must discard it for display purposes.
func (ing *Ingestor) Ingest(ctx context.Context, prompt string, onItem func(book.Book)) ([]book.Book, error) {
	stream, err := ing.gen.Recommend(ctx, prompt, systemInstruction)
	if err != nil {
		return nil, err
	}

	var books []book.Book
	for {
		rec, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return books, nil
		}
		if err != nil {
			return books, err
		}

		if err := rec.Validate(); err != nil {
			logrus.WithError(err).WithField("title", rec.Title).Debug("[Ingest] dropping malformed record")
			continue
		}

		id := uuid.New().String()
		b := book.Book{
			ID:              id,
			Title:           rec.Title,
			Author:          rec.Author,
			Summary:         rec.Summary,
			Price:           ing.synth.Price(),
			CoverURL:        ing.synth.CoverURL(id),
			Category:        rec.Category,
			Rating:          ing.synth.Rating(),
			Reviews:         []string{},
			PublicationDate: rec.PublicationDate,
			Pages:           rec.Pages,
			Bestseller:      ing.synth.Bestseller(),
		}
		books = append(books, b)
		if onItem != nil {
			onItem(b)
		}
	}
}
