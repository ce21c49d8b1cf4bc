package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"checkinn/internal/domain"
)

// CatalogService owns the immutable hotel list. Browse re-derives the
// filtered/sorted view on every call; Get serves hotel detail through
// the cache, with concurrent misses for the same id collapsed into one
// load (screens may overlap their fetches).
type CatalogService struct {
	hotels   []domain.Hotel
	cache    domain.Cache
	cacheTTL time.Duration
	sf       singleflight.Group
}

// NewCatalogService normalizes raw catalog records (either historical
// layout) through the mapping layer.
func NewCatalogService(raw []map[string]any, cache domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{hotels: mapHotels(raw), cache: cache, cacheTTL: ttl}
}

func (s *CatalogService) Browse(q domain.CatalogQuery) []domain.Hotel {
	return domain.FilterHotels(s.hotels, q)
}

func (s *CatalogService) Len() int { return len(s.hotels) }

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Hotel, error) {
	key := "hotel:" + id
	if s.cache != nil {
		var h domain.Hotel
		if ok, _ := s.cache.Get(ctx, key, &h); ok {
			return h, nil
		}
	}
	v, err, _ := s.sf.Do(key, func() (any, error) {
		for _, h := range s.hotels {
			if h.ID == id {
				if s.cache != nil {
					_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
				}
				return h, nil
			}
		}
		return domain.Hotel{}, fmt.Errorf("hotel %q: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return domain.Hotel{}, err
	}
	return v.(domain.Hotel), nil
}
