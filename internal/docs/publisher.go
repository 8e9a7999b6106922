// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/getkin/kin-openapi/openapi3"
)

// Publisher hands out the rendered API document.
type Publisher interface {
	Document(ctx context.Context, format Format) ([]byte, error)
}

// Generator produces the API document. It is called at most once per
// publisher.
type Generator func() (*openapi3.T, error)

// PrecomputedPublisher serves documents persisted to disk when it was
// created.
type PrecomputedPublisher struct {
	dir       string
	documents map[Format][]byte
}

// NewPrecomputedPublisher generates the document, writes openapi.json and
// openapi.yaml into dir and loads the written files back for serving.
func NewPrecomputedPublisher(dir string, generate Generator, log *logger.Logger) (*PrecomputedPublisher, error) {
	doc, err := generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingDocument, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistingDocument, err)
	}

	p := &PrecomputedPublisher{dir: dir, documents: make(map[Format][]byte, 2)}
	for _, format := range []Format{JSON, YAML} {
		body, err := Render(doc, format)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, format.FileName())
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPersistingDocument, err)
		}

		persisted, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPersistingDocument, err)
		}
		p.documents[format] = persisted

		log.Info().
			Str("func", "NewPrecomputedPublisher").
			Str("path", path).
			Int("size", len(persisted)).
			Msg("persisted api document")
	}

	return p, nil
}

func (p *PrecomputedPublisher) Document(_ context.Context, format Format) ([]byte, error) {
	body, ok := p.documents[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return body, nil
}

// Dir is the directory the documents were written to.
func (p *PrecomputedPublisher) Dir() string {
	return p.dir
}

// LivePublisher renders the document in memory on first request.
type LivePublisher struct {
	documents func() (map[Format][]byte, error)
}

func NewLivePublisher(generate Generator) *LivePublisher {
	return &LivePublisher{
		documents: sync.OnceValues(func() (map[Format][]byte, error) {
			doc, err := generate()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBuildingDocument, err)
			}

			documents := make(map[Format][]byte, 2)
			for _, format := range []Format{JSON, YAML} {
				body, err := Render(doc, format)
				if err != nil {
					return nil, err
				}
				documents[format] = body
			}
			return documents, nil
		}),
	}
}

func (p *LivePublisher) Document(ctx context.Context, format Format) ([]byte, error) {
	documents, err := p.documents()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*LivePublisher.Document").Msg("api document unavailable")
		return nil, err
	}

	body, ok := documents[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return body, nil
}
