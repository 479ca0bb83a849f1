package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sarathmw/portfolio-api/internal/cache"
	"github.com/sarathmw/portfolio-api/internal/repositories"
	"github.com/sarathmw/portfolio-api/internal/utils"
)

const (
	// listLimit caps every listing. The admin UI always fetches whole
	// sections, so there is no pagination below this bound.
	listLimit = 1000

	listTTL = 5 * time.Minute
)

// nowUTC stamps documents at the store's millisecond precision, so a
// timestamp returned at write time always compares equal to the stored one.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ContentService is the CRUD engine shared by the skill, experience,
// education and language resources. The per-resource schema lives entirely
// in the document type and its request binding; nothing here branches on the
// kind beyond messages and cache keys.
type ContentService[T repositories.Document, PT repositories.Stampable[T]] struct {
	kind  string // cache-key segment, e.g. "skills"
	label string // human label for messages, e.g. "Skill category"
	col   repositories.Collection[T]
	cache cache.Cache
}

func NewContentService[T repositories.Document, PT repositories.Stampable[T]](kind, label string, col repositories.Collection[T], cc cache.Cache) *ContentService[T, PT] {
	return &ContentService[T, PT]{kind: kind, label: label, col: col, cache: cc}
}

// Label is the human-readable resource name used in response messages.
func (s *ContentService[T, PT]) Label() string { return s.label }

func (s *ContentService[T, PT]) cacheKey() string { return "portfolio:" + s.kind + ":list" }

func (s *ContentService[T, PT]) Create(ctx context.Context, doc T) (T, error) {
	op := "ContentService.Create." + s.kind
	var zero T

	PT(&doc).Stamp(uuid.NewString(), nowUTC())
	if err := s.col.Insert(ctx, doc); err != nil {
		return zero, utils.E(utils.CodeInternal, op, "failed to store "+s.kind, err)
	}
	_ = s.cache.Del(ctx, s.cacheKey())
	return doc, nil
}

func (s *ContentService[T, PT]) List(ctx context.Context) ([]T, error) {
	op := "ContentService.List." + s.kind

	var cached []T
	if hit, _ := s.cache.GetJSON(ctx, s.cacheKey(), &cached); hit {
		return cached, nil
	}

	out, err := s.col.List(ctx, listLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list "+s.kind, err)
	}
	if out == nil {
		out = []T{}
	}
	_ = s.cache.SetJSON(ctx, s.cacheKey(), out, listTTL)
	return out, nil
}

func (s *ContentService[T, PT]) Update(ctx context.Context, id string, doc T) (T, error) {
	op := "ContentService.Update." + s.kind
	var zero T

	if id == "" {
		return zero, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	PT(&doc).Touch(nowUTC())
	if err := s.col.Replace(ctx, id, doc); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return zero, utils.E(utils.CodeNotFound, op, s.label+" not found", err)
		}
		return zero, utils.E(utils.CodeInternal, op, "failed to update "+s.kind, err)
	}

	// Re-read so the caller sees the store's authoritative record, with the
	// original id and created_at intact.
	out, err := s.col.FindByID(ctx, id)
	if err != nil {
		return zero, utils.E(utils.CodeInternal, op, "failed to reload "+s.kind, err)
	}
	_ = s.cache.Del(ctx, s.cacheKey())
	return out, nil
}

func (s *ContentService[T, PT]) Delete(ctx context.Context, id string) error {
	op := "ContentService.Delete." + s.kind

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.col.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, s.label+" not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete "+s.kind, err)
	}
	_ = s.cache.Del(ctx, s.cacheKey())
	return nil
}
