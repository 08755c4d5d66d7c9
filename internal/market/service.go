package market

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/metrics"
)

// PriceFetcher is the slice of the game API client the market needs.
type PriceFetcher interface {
	FetchPrices(ctx context.Context, materials []string) ([]domain.MaterialPrice, error)
}

// HistoryReader reads recorded price points back out of the activity
// ledger.
type HistoryReader interface {
	PriceHistory(ctx context.Context, material string, since time.Time) ([]domain.PricePoint, error)
}

// Service serves market prices through a per-material expirable cache
// and historical prices from the ledger.
type Service interface {
	Prices(ctx context.Context, materials []string) ([]domain.MaterialPrice, error)
	History(ctx context.Context, material string, since time.Time) ([]domain.PricePoint, error)
}

type service struct {
	fetcher  PriceFetcher
	history  HistoryReader
	eventBus event.Bus
	cache    *expirable.LRU[string, domain.MaterialPrice]
}

// NewService creates a market service. Size bounds the cache; ttl is
// how long a fetched price stays fresh.
func NewService(fetcher PriceFetcher, history HistoryReader, eventBus event.Bus, size int, ttl time.Duration) Service {
	return &service{
		fetcher:  fetcher,
		history:  history,
		eventBus: eventBus,
		cache:    expirable.NewLRU[string, domain.MaterialPrice](size, nil, ttl),
	}
}

// Prices returns current prices for the requested materials, in
// request order. Cached entries are served as-is; the remainder is
// fetched in one API call, cached, and announced on the event bus so
// the ledger records the points. An empty materials slice bypasses
// the cache lookup and asks the API for everything it tracks.
func (s *service) Prices(ctx context.Context, materials []string) ([]domain.MaterialPrice, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPricesCalled, "materials", len(materials))

	known := make(map[string]domain.MaterialPrice, len(materials))
	var misses []string
	for _, m := range materials {
		if p, ok := s.cache.Get(m); ok {
			known[m] = p
			metrics.MarketCacheHits.Inc()
			continue
		}
		misses = append(misses, m)
		metrics.MarketCacheMisses.Inc()
	}

	if len(materials) == 0 || len(misses) > 0 {
		fetched, err := s.fetcher.FetchPrices(ctx, misses)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtFetchFailed, err)
		}
		for _, p := range fetched {
			s.cache.Add(p.Material, p)
			known[p.Material] = p
		}
		if len(fetched) > 0 {
			log.Info(LogMsgPricesFetched, "count", len(fetched))
			s.publishRefreshed(ctx, fetched)
		}
		if len(materials) == 0 {
			return fetched, nil
		}
	}

	out := make([]domain.MaterialPrice, 0, len(materials))
	for _, m := range materials {
		if p, ok := known[m]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// History returns recorded price points for one material since the
// given time. A zero since means the full recorded history.
func (s *service) History(ctx context.Context, material string, since time.Time) ([]domain.PricePoint, error) {
	logger.FromContext(ctx).Debug(LogMsgHistoryCalled, "material", material)

	if material == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyMaterial)
	}
	return s.history.PriceHistory(ctx, material, since)
}

func (s *service) publishRefreshed(ctx context.Context, prices []domain.MaterialPrice) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, event.NewPricesRefreshedEvent(prices, PriceSourceGameAPI)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "error", err)
	}
}
