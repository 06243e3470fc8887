// Package file implements the stores as JSON documents kept in a model.Storage,
// one document per table. Writes are serialized per document inside one
// process only; concurrent writers in separate processes race.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dtroode/chessacademy-server/internal/model"
)

const (
	usersKey         = "users.json"
	leadsKey         = "leads.json"
	refreshTokensKey = "refresh_tokens.json"
	availabilityKey  = "availability.json"
)

type document[T any] struct {
	storage model.Storage
	key     string
	mu      sync.Mutex
}

func newDocument[T any](storage model.Storage, key string) *document[T] {
	return &document[T]{storage: storage, key: key}
}

// read returns the decoded document. A missing document is the zero value.
func (d *document[T]) read(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load(ctx)
}

// errUnchanged lets an update callback skip the write.
var errUnchanged = errors.New("document unchanged")

// update runs fn on the current document and writes it back when fn succeeds.
func (d *document[T]) update(ctx context.Context, fn func(doc *T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, err := d.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}
	return d.save(ctx, doc)
}

func (d *document[T]) load(ctx context.Context) (T, error) {
	var doc T

	rc, err := d.storage.Download(ctx, d.key)
	if errors.Is(err, model.ErrNotFound) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("failed to read %s: %w", d.key, err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(&doc); err != nil {
		return doc, fmt.Errorf("failed to decode %s: %w", d.key, err)
	}
	return doc, nil
}

func (d *document[T]) save(ctx context.Context, doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.key, err)
	}
	if err := d.storage.Upload(ctx, d.key, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.key, err)
	}
	return nil
}

// docID accepts both string and numeric ids found in older documents.
type docID string

func (id *docID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = docID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("invalid numeric id: %w", err)
	}
	*id = docID(n.String())
	return nil
}
