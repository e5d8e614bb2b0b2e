package recommend

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/example/bookshop/internal/domain/book"
)

// Stream yields raw book records one at a time. Recv returns io.EOF on
// graceful stream end and any other error on transport failure.
type Stream interface {
	Recv() (book.Record, error)
}

// Generator is the external recommendation collaborator. It produces a
// stream of raw book payloads for a prompt; the caller has no control
// over pacing or ordering beyond consuming in order.
type Generator interface {
	Recommend(ctx context.Context, prompt, instruction string) (Stream, error)
}

// HTTPGenerator streams recommendations from an NDJSON endpoint: one
// raw book record per line, stream end on EOF.
type HTTPGenerator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGenerator(baseURL string) *HTTPGenerator {
	return &HTTPGenerator{
		baseURL: baseURL,
		// No client timeout: streams stay open as long as the
		// generator keeps producing. Cancellation is via ctx.
		client: &http.Client{},
	}
}

func (g *HTTPGenerator) Recommend(ctx context.Context, prompt, instruction string) (Stream, error) {
	payload, err := json.Marshal(map[string]string{
		"prompt":      prompt,
		"instruction": instruction,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/recommendations", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/x-ndjson")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("recommendation service returned status %d", resp.StatusCode)
	}

	return &ndjsonStream{body: resp.Body, scanner: bufio.NewScanner(resp.Body)}, nil
}

type ndjsonStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

// Recv returns the next parseable record. Lines that are not valid JSON
// are skipped; shape validation is the ingestor's concern.
func (s *ndjsonStream) Recv() (book.Record, error) {
	for s.scanner.Scan() {
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec book.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		return rec, nil
	}

	s.body.Close()
	if err := s.scanner.Err(); err != nil {
		return book.Record{}, err
	}
	return book.Record{}, io.EOF
}
