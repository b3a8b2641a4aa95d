package crawl

import (
	"fmt"
	"sync"
	"time"

	"petfinder/crawlworker/internal/scraper"
	"petfinder/crawlworker/internal/shop"
	"petfinder/crawlworker/logger"
	"petfinder/crawlworker/pkg/errors"
	"petfinder/crawlworker/services/cache"
)

// FailedCrawl identifies a shop whose crawl did not produce a CrawlResult
type FailedCrawl struct {
	ShopID string `json:"shopId"`
	Error  string `json:"error"`
}

// CrawlSummary aggregates an all-shops crawl pass
type CrawlSummary struct {
	Success bool                  `json:"success"`
	Results []scraper.CrawlResult `json:"results"`
	Failed  []FailedCrawl         `json:"failed"`
	Total   int                   `json:"total"`
}

// Service dispatches crawls to per-shop scrapers and aggregates outcomes
type Service struct {
	cacheSvc  cache.CacheService
	blockTime time.Duration

	// scraperFor and enabledShops are replaced in tests
	scraperFor   func(shop.PetShop) scraper.Scraper
	enabledShops func() []shop.PetShop
}

// NewService creates a crawl service using the scraper factory
func NewService(cacheSvc cache.CacheService, blockTime time.Duration) *Service {
	svc := &Service{
		cacheSvc:  cacheSvc,
		blockTime: blockTime,
	}
	svc.scraperFor = func(s shop.PetShop) scraper.Scraper {
		return scraper.ForShop(s, svc.cacheSvc, svc.blockTime)
	}
	svc.enabledShops = shop.EnabledShops
	return svc
}

// WithScraperFactory overrides how scrapers are selected for a shop
func (svc *Service) WithScraperFactory(f func(shop.PetShop) scraper.Scraper) *Service {
	svc.scraperFor = f
	return svc
}

// WithShops overrides the enabled-shop listing used by CrawlAll
func (svc *Service) WithShops(f func() []shop.PetShop) *Service {
	svc.enabledShops = f
	return svc
}

// CrawlShop selects the scraper for the shop, invokes it, and wraps the
// outcome. This is the sole place a failure surfaces as Success=false;
// scrapers degrade their own fetch/parse failures to empty results.
func (svc *Service) CrawlShop(s shop.PetShop) (result scraper.CrawlResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogError("dispatcher", fmt.Errorf("%v", r), "크롤러 패닉: %s", s.ID)
			result = scraper.CrawlResult{
				Success:  false,
				ShopID:   s.ID,
				ShopName: s.Name,
				Pets:     []scraper.Pet{},
				Error:    fmt.Sprintf("crawl panicked: %v", r),
				Count:    0,
			}
		}
	}()

	sc := svc.scraperFor(s)
	pets, err := sc.ScrapePets()
	if err != nil {
		return scraper.CrawlResult{
			Success:  false,
			ShopID:   s.ID,
			ShopName: s.Name,
			Pets:     []scraper.Pet{},
			Error:    err.Error(),
			Count:    0,
		}
	}

	if pets == nil {
		pets = []scraper.Pet{}
	}
	return scraper.CrawlResult{
		Success:  true,
		ShopID:   s.ID,
		ShopName: s.Name,
		Pets:     pets,
		Count:    len(pets),
	}
}

// CrawlShopByID looks up the shop in the registry before dispatching.
// An unregistered id never invokes a scraper.
func (svc *Service) CrawlShopByID(id string) (scraper.CrawlResult, error) {
	s, ok := shop.Find(id)
	if !ok {
		return scraper.CrawlResult{}, errors.NewNotFound(id)
	}
	return svc.CrawlShop(s), nil
}

// CrawlAll crawls every enabled shop concurrently and waits for all of them.
// Each dispatched task carries its shop id, so failures are reported by id
// rather than by position. One bad shop never aborts its siblings.
func (svc *Service) CrawlAll() CrawlSummary {
	shops := svc.enabledShops()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = []scraper.CrawlResult{}
		failed  = []FailedCrawl{}
	)

	for _, s := range shops {
		wg.Add(1)
		go func(s shop.PetShop) {
			defer wg.Done()
			result := svc.CrawlShop(s)

			mu.Lock()
			defer mu.Unlock()
			if result.Success {
				results = append(results, result)
			} else {
				failed = append(failed, FailedCrawl{ShopID: result.ShopID, Error: result.Error})
			}
		}(s)
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += r.Count
	}

	return CrawlSummary{
		Success: true,
		Results: results,
		Failed:  failed,
		Total:   total,
	}
}
