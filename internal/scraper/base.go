package scraper

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"petfinder/crawlworker/helpers"
	"petfinder/crawlworker/internal/shop"
	"petfinder/crawlworker/services/cache"
)

// lazy-loading attributes checked before the plain src attribute
var lazyImageAttrs = []string{"data-src", "data-original", "data-lazy", "data-url"}

// BaseScraper provides common functionality for all scrapers
type BaseScraper struct {
	Shop      shop.PetShop
	CacheKey  string
	CacheSvc  cache.CacheService
	BlockTime time.Duration

	// fetchFunc is replaced in tests to avoid real HTTP traffic
	fetchFunc func() (io.Reader, error)
}

// NewBaseScraper creates a base scraper for the given shop
func NewBaseScraper(s shop.PetShop, cacheSvc cache.CacheService, blockTime time.Duration) BaseScraper {
	b := BaseScraper{
		Shop:      s,
		CacheKey:  s.ID + "_rate_limited",
		CacheSvc:  cacheSvc,
		BlockTime: blockTime,
	}
	b.fetchFunc = b.fetchWithCache
	return b
}

// GetShopID returns the id of the shop this scraper targets
func (b *BaseScraper) GetShopID() string {
	return b.Shop.ID
}

// fetchWithCache fetches the shop page, honoring the rate-limit block key
func (b *BaseScraper) fetchWithCache() (io.Reader, error) {
	// Check if the scraper is rate limited
	if b.CacheSvc != nil && b.CacheKey != "" {
		if _, err := b.CacheSvc.Get(b.CacheKey); err == nil {
			return nil, fmt.Errorf("%s: %d초 동안 더 이상 요청을 보내지 않음", b.CacheKey, int(b.BlockTime/time.Second))
		}
	}

	// Fetch the page
	utf8Body, err := helpers.FetchHTML(b.Shop.URL)
	if err != nil {
		if b.CacheSvc != nil && b.CacheKey != "" && strings.HasPrefix(err.Error(), "rate limited") {
			// Set rate limiting cache
			b.CacheSvc.Set(b.CacheKey, []byte(fmt.Sprintf("%d", int(b.BlockTime/time.Second))), b.BlockTime)
		}
		return nil, err
	}

	return utf8Body, nil
}

// createDocument creates a goquery document from a reader
func (b *BaseScraper) createDocument(reader io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("HTML 파싱 오류: %v", err)
	}
	return doc, nil
}

// resolveImageURL makes an image URL absolute against the shop base URL
func (b *BaseScraper) resolveImageURL(src string) string {
	return helpers.MakeAbsoluteURL(src, b.Shop.URL)
}

// imageSource returns the image URL from a selection's first <img>,
// preferring lazy-loading attributes over plain src
func (b *BaseScraper) imageSource(s *goquery.Selection) string {
	img := s.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	return imageAttr(img)
}

// imageAttr reads the image URL from an <img> selection, checking the
// lazy-loading attributes before plain src
func imageAttr(img *goquery.Selection) string {
	for _, attr := range lazyImageAttrs {
		if src, exists := img.Attr(attr); exists && src != "" {
			return src
		}
	}
	src, _ := img.Attr("src")
	return src
}

// newPet constructs a Pet record with the shop fields and defaults applied
func (b *BaseScraper) newPet(index int, name, breed, ageText, genderText, priceText, imageSrc, description, petType, location string) Pet {
	if breed == "" {
		breed = breedUnknown
	}
	return Pet{
		ID:          fmt.Sprintf("%s-%d", b.Shop.ID, index),
		Name:        name,
		Breed:       breed,
		Age:         helpers.ExtractAge(ageText),
		Gender:      helpers.ExtractGender(genderText),
		Price:       helpers.ExtractPrice(priceText),
		Location:    location,
		Image:       b.resolveImageURL(imageSrc),
		Shop:        b.Shop.Name,
		ShopURL:     b.Shop.URL,
		ShopID:      b.Shop.ID,
		Type:        petType,
		Description: description,
		Vaccinated:  false,
		Registered:  false,
		CrawledAt:   time.Now().Format(time.RFC3339),
	}
}
