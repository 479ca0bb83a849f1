package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sarathmw/portfolio-api/internal/cache"
	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/repositories"
	"github.com/sarathmw/portfolio-api/internal/utils"
)

const personalInfoCacheKey = "portfolio:personal_info"

type PersonalInfoService interface {
	Get(ctx context.Context) (models.PersonalInfo, error)
	Upsert(ctx context.Context, info models.PersonalInfo) (models.PersonalInfo, error)
}

type personalInfoService struct {
	store repositories.Singleton[models.PersonalInfo]
	cache cache.Cache
}

func NewPersonalInfoService(store repositories.Singleton[models.PersonalInfo], cc cache.Cache) PersonalInfoService {
	return &personalInfoService{store: store, cache: cc}
}

func (s *personalInfoService) Get(ctx context.Context) (models.PersonalInfo, error) {
	const op = "PersonalInfoService.Get"

	var cached models.PersonalInfo
	if hit, _ := s.cache.GetJSON(ctx, personalInfoCacheKey, &cached); hit {
		return cached, nil
	}

	info, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return models.PersonalInfo{}, utils.E(utils.CodeNotFound, op, "personal information not found", err)
		}
		return models.PersonalInfo{}, utils.E(utils.CodeInternal, op, "failed to get personal information", err)
	}

	_ = s.cache.SetJSON(ctx, personalInfoCacheKey, info, listTTL)
	return info, nil
}

// Upsert is keyed by existence, not by a caller-supplied id: the first call
// creates the single record, every later call overwrites its fields in
// place. The candidate's fresh identity only takes effect on the create
// path; the store keeps the existing id and created_at otherwise.
func (s *personalInfoService) Upsert(ctx context.Context, info models.PersonalInfo) (models.PersonalInfo, error) {
	const op = "PersonalInfoService.Upsert"

	info.Stamp(uuid.NewString(), nowUTC())
	out, err := s.store.Upsert(ctx, info)
	if err != nil {
		return models.PersonalInfo{}, utils.E(utils.CodeInternal, op, "failed to update personal information", err)
	}

	_ = s.cache.Del(ctx, personalInfoCacheKey)
	return out, nil
}
