// Package memory implements the repository contracts on process memory. It
// backs the test suite and lets the server run without a MongoDB instance.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/repositories"
	"github.com/sarathmw/portfolio-api/internal/utils"
)

// ContentLess sorts content listings by display order with creation time as
// the tie-break, the same order the Mongo backend requests.
func ContentLess[T models.Ordered](a, b T) bool {
	ao, ac := a.SortKey()
	bo, bc := b.SortKey()
	if ao != bo {
		return ao < bo
	}
	return ac.Before(bc)
}

// NewestFirst sorts the contact inbox.
func NewestFirst(a, b models.ContactMessage) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

type Collection[T repositories.Document] struct {
	mu   sync.RWMutex
	docs map[string]T
	less func(a, b T) bool
}

func NewCollection[T repositories.Document](less func(a, b T) bool) *Collection[T] {
	return &Collection[T]{docs: make(map[string]T), less: less}
}

func (c *Collection[T]) Insert(ctx context.Context, doc T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[doc.DocumentID()] = doc
	return nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	if !ok {
		var zero T
		return zero, utils.ErrNotFound
	}
	return doc, nil
}

func (c *Collection[T]) List(ctx context.Context, limit int64) ([]T, error) {
	c.mu.RLock()
	out := make([]T, 0, len(c.docs))
	for _, d := range c.docs {
		out = append(out, d)
	}
	c.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return c.less(out[i], out[j]) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Replace merges through the same bson field maps the Mongo backend writes,
// so id and created_at survive here too.
func (c *Collection[T]) Replace(ctx context.Context, id string, doc T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.docs[id]
	if !ok {
		return utils.ErrNotFound
	}
	fields, err := repositories.SetFields(doc)
	if err != nil {
		return err
	}
	merged, err := repositories.Overlay(cur, fields)
	if err != nil {
		return err
	}
	c.docs[id] = merged
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(c.docs, id)
	return nil
}

// Singleton holds at most one document; upserts serialize behind the mutex,
// which stands in for the unique index the Mongo backend relies on.
type Singleton[T any] struct {
	mu  sync.Mutex
	doc *T
}

func NewSingleton[T any]() *Singleton[T] {
	return &Singleton[T]{}
}

func (s *Singleton[T]) Get(ctx context.Context) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		var zero T
		return zero, utils.ErrNotFound
	}
	return *s.doc, nil
}

func (s *Singleton[T]) Upsert(ctx context.Context, candidate T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		s.doc = &candidate
		return candidate, nil
	}

	var zero T
	fields, err := repositories.SetFields(candidate)
	if err != nil {
		return zero, err
	}
	merged, err := repositories.Overlay(*s.doc, fields)
	if err != nil {
		return zero, err
	}
	s.doc = &merged
	return merged, nil
}
