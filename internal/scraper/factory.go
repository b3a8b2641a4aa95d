package scraper

import (
	"time"

	"petfinder/crawlworker/internal/shop"
	"petfinder/crawlworker/services/cache"
)

// siteScraperBuilder builds a site-specific scraper for a shop
type siteScraperBuilder func(shop.PetShop, cache.CacheService, time.Duration) Scraper

// siteScrapers maps shop ids to their dedicated scraper implementations.
// Shops without an entry fall back to the generic scraper.
var siteScrapers = map[string]siteScraperBuilder{
	"babymong": func(s shop.PetShop, c cache.CacheService, bt time.Duration) Scraper {
		return NewBabymongScraper(s, c, bt)
	},
	"petj": func(s shop.PetShop, c cache.CacheService, bt time.Duration) Scraper {
		return NewPetJScraper(s, c, bt)
	},
	"petami": func(s shop.PetShop, c cache.CacheService, bt time.Duration) Scraper {
		return NewPetamiScraper(s, c, bt)
	},
}

// ForShop returns the scraper for a shop: the site-specific one when
// registered, otherwise the generic fallback
func ForShop(s shop.PetShop, cacheSvc cache.CacheService, blockTime time.Duration) Scraper {
	if build, ok := siteScrapers[s.ID]; ok {
		return build(s, cacheSvc, blockTime)
	}
	return NewGenericScraper(s, cacheSvc, blockTime)
}
