package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
	refreshPageLen = 12
)

// Refresher keeps hot discovery data warm so first paints of the guide
// directory come from cache. On every tick it re-fetches the region list,
// then fans region jobs out to a fixed set of workers sharded by region
// slug, each re-fetching and caching the first listing page of its region.
// All fetches are anonymous: only public discovery data is warmed.
type Refresher struct {
	workers  []chan domain.Region
	guides   ports.GuideAPI
	treks    ports.TrekAPI
	cache    ports.DirectoryCache
	interval time.Duration
	log      zerolog.Logger
}

// NewRefresher creates a Refresher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRefresher(numWorkers int, guides ports.GuideAPI, treks ports.TrekAPI, cache ports.DirectoryCache, interval time.Duration, log zerolog.Logger) *Refresher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Refresher{
		workers:  make([]chan domain.Region, numWorkers),
		guides:   guides,
		treks:    treks,
		cache:    cache,
		interval: interval,
		log:      log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan domain.Region, channelBuffer)
	}
	return r
}

// Start launches the workers and the tick loop. Everything stops when ctx
// is cancelled. No-op when the refresh interval is zero.
func (r *Refresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		return
	}
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
	go r.runTicker(ctx)
}

func (r *Refresher) runTicker(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refreshRegions(ctx)
		}
	}
}

// refreshRegions re-caches the region list and enqueues one job per
// region. Enqueueing is non-blocking: a full worker channel means that
// region's previous refresh is still running, so the tick is skipped.
func (r *Refresher) refreshRegions(ctx context.Context) {
	regions, err := r.treks.ListRegions(ctx, "")
	if err != nil {
		r.log.Warn().Err(err).Msg("region refresh failed")
		return
	}
	if err := r.cache.SetRegions(ctx, regions); err != nil {
		r.log.Warn().Err(err).Msg("failed to cache regions")
	}

	for _, region := range regions {
		select {
		case r.workers[r.shardIndex(region.Slug)] <- region:
		default:
			r.log.Debug().Str("region", region.Slug).Msg("refresh worker busy, skipping tick")
		}
	}
}

// shardIndex maps a region slug deterministically to a worker index.
func (r *Refresher) shardIndex(slug string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(slug))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Refresher) runWorker(ctx context.Context, id int, ch <-chan domain.Region) {
	for {
		select {
		case <-ctx.Done():
			return
		case region, ok := <-ch:
			if !ok {
				return
			}
			if err := r.refreshGuides(ctx, region); err != nil {
				r.log.Warn().Err(err).
					Str("region", region.Slug).
					Int("worker_id", id).
					Msg("guide listing refresh failed")
			}
		}
	}
}

func (r *Refresher) refreshGuides(ctx context.Context, region domain.Region) error {
	filter := ports.ListGuidesFilter{Region: region.Slug, Page: 1, Limit: refreshPageLen}
	list, err := r.guides.List(ctx, "", filter)
	if err != nil {
		return err
	}
	return r.cache.SetGuideList(ctx, filter.CacheKey(), list)
}
