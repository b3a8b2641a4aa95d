package worker

import (
	"context"
	"time"

	"petfinder/crawlworker/internal/crawl"
	"petfinder/crawlworker/logger"
	"petfinder/crawlworker/services/store"
)

// Worker periodically crawls all enabled shops and merges the results
// into the pet store
type Worker struct {
	ctx      context.Context
	crawlSvc *crawl.Service
	petStore store.PetStore
	interval time.Duration
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	crawlSvc *crawl.Service,
	petStore store.PetStore,
	interval time.Duration,
) *Worker {
	return &Worker{
		ctx:      ctx,
		crawlSvc: crawlSvc,
		petStore: petStore,
		interval: interval,
	}
}

// Start runs the crawl loop until the context is cancelled
func (w *Worker) Start() error {
	log := logger.ForWorker()

	for {
		start := time.Now()
		w.runOnce()
		log.Info().
			Dur("elapsed", time.Since(start)).
			Msg("크롤링 주기 완료")

		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-time.After(w.interval):
		}
	}
}

// runOnce performs one crawl-all pass and persists the successful results
func (w *Worker) runOnce() {
	log := logger.ForWorker()

	summary := w.crawlSvc.CrawlAll()
	for _, failure := range summary.Failed {
		log.Error().
			Str("shop", failure.ShopID).
			Str("error", failure.Error).
			Msg("샵 크롤링 실패")
	}

	for _, result := range summary.Results {
		if result.Count == 0 {
			continue
		}
		if err := w.petStore.AddPets(w.ctx, result.Pets); err != nil {
			log.Error().Err(err).Str("shop", result.ShopID).Msg("크롤링 결과 저장 실패")
		}
	}

	log.Info().
		Int("shops", len(summary.Results)).
		Int("failed", len(summary.Failed)).
		Int("total_pets", summary.Total).
		Msg("크롤링 완료")
}
