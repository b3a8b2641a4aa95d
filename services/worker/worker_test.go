package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"petfinder/crawlworker/internal/crawl"
	"petfinder/crawlworker/internal/scraper"
	"petfinder/crawlworker/internal/shop"
	"petfinder/crawlworker/services/store"
)

type stubScraper struct {
	shopID string
	pets   []scraper.Pet
}

func (s *stubScraper) ScrapePets() ([]scraper.Pet, error) { return s.pets, nil }
func (s *stubScraper) GetName() string                    { return "stubScraper" }
func (s *stubScraper) GetShopID() string                  { return s.shopID }

func newTestCrawlService(pets map[string][]scraper.Pet, shops []shop.PetShop) *crawl.Service {
	return crawl.NewService(nil, 0).
		WithScraperFactory(func(s shop.PetShop) scraper.Scraper {
			return &stubScraper{shopID: s.ID, pets: pets[s.ID]}
		}).
		WithShops(func() []shop.PetShop { return shops })
}

func TestWorkerRunOnceMergesResults(t *testing.T) {
	shops := []shop.PetShop{
		{ID: "a", Name: "A샵", URL: "http://a.test", Enabled: true},
		{ID: "b", Name: "B샵", URL: "http://b.test", Enabled: true},
	}
	svc := newTestCrawlService(map[string][]scraper.Pet{
		"a": {{ID: "a-0", Name: "초코", ShopID: "a"}},
		"b": {{ID: "b-0", Name: "보리", ShopID: "b"}, {ID: "b-1", Name: "콩이", ShopID: "b"}},
	}, shops)

	petStore := store.NewMemoryStore()
	w := NewWorker(context.Background(), svc, petStore, time.Minute)
	w.runOnce()

	stored, err := petStore.GetPets(context.Background())
	assert.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestWorkerRunOnceIsIdempotent(t *testing.T) {
	shops := []shop.PetShop{
		{ID: "a", Name: "A샵", URL: "http://a.test", Enabled: true},
	}
	svc := newTestCrawlService(map[string][]scraper.Pet{
		"a": {{ID: "a-0", Name: "초코", ShopID: "a"}},
	}, shops)

	petStore := store.NewMemoryStore()
	w := NewWorker(context.Background(), svc, petStore, time.Minute)
	w.runOnce()
	w.runOnce()

	stored, err := petStore.GetPets(context.Background())
	assert.NoError(t, err)
	assert.Len(t, stored, 1, "repeated crawls must not duplicate pets")
}

func TestWorkerStartStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestCrawlService(nil, nil)
	w := NewWorker(ctx, svc, store.NewMemoryStore(), time.Hour)

	done := make(chan error, 1)
	go func() { done <- w.Start() }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
