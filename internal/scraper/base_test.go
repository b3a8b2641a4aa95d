package scraper

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"petfinder/crawlworker/internal/shop"
)

func TestFetchWithCacheBlocksWhileRateLimited(t *testing.T) {
	cacheSvc := NewMockCacheService()
	b := NewBaseScraper(demoShop, cacheSvc, 500*time.Second)

	cacheSvc.Set(b.CacheKey, []byte("500"), 500*time.Second)

	_, err := b.fetchWithCache()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), b.CacheKey)
}

func TestFetchWithCacheSetsBlockKeyOnRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cacheSvc := NewMockCacheService()
	rateLimited := shop.PetShop{ID: "demo", Name: "데모샵", URL: server.URL}
	b := NewBaseScraper(rateLimited, cacheSvc, 500*time.Second)

	_, err := b.fetchWithCache()
	assert.Error(t, err)

	// The 429 response must leave the block key behind
	value, err := cacheSvc.Get("demo_rate_limited")
	assert.NoError(t, err)
	assert.Equal(t, "500", string(value))

	// Subsequent fetches are blocked without touching the site
	_, err = b.fetchWithCache()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "demo_rate_limited")
}

func TestImageSourcePrefersLazyAttrs(t *testing.T) {
	b := NewBaseScraper(demoShop, nil, 0)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div class="card"><img src="/img/spinner.gif" data-original="/img/real.jpg" /></div>
		<div class="plain"><img src="/img/plain.jpg" /></div>
		<div class="empty"></div>`))
	assert.NoError(t, err)

	assert.Equal(t, "/img/real.jpg", b.imageSource(doc.Find(".card")))
	assert.Equal(t, "/img/plain.jpg", b.imageSource(doc.Find(".plain")))
	assert.Empty(t, b.imageSource(doc.Find(".empty")))
}

func TestNewPetAppliesDefaults(t *testing.T) {
	b := NewBaseScraper(demoShop, nil, 0)

	pet := b.newPet(3, "Buddy", "", "나이 미상", "", "금액 미정", "", "", "dog", "서울")
	assert.Equal(t, "demo-3", pet.ID)
	assert.Equal(t, breedUnknown, pet.Breed)
	assert.Equal(t, ageUnknown, pet.Age)
	assert.Equal(t, "수컷", pet.Gender)
	assert.Equal(t, 0, pet.Price)
	assert.False(t, pet.Vaccinated)
	assert.False(t, pet.Registered)

	_, err := time.Parse(time.RFC3339, pet.CrawledAt)
	assert.NoError(t, err)
}

func TestNewPetResolvesRelativeImage(t *testing.T) {
	b := NewBaseScraper(demoShop, nil, 0)

	pet := b.newPet(0, "초코", "푸들", "3개월", "암", "90만원", "/thumb/1.png", "", "dog", "서울")
	assert.Equal(t, "http://x.test/thumb/1.png", pet.Image)
	assert.Equal(t, "3개월", pet.Age)
	assert.Equal(t, "암컷", pet.Gender)
	assert.Equal(t, 90, pet.Price)
}
