package scraper

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"petfinder/crawlworker/internal/shop"
	"petfinder/crawlworker/logger"
	"petfinder/crawlworker/services/cache"
)

// BabymongScraper scrapes listings from the 베이비몽 shop site
type BabymongScraper struct {
	BaseScraper
}

// NewBabymongScraper creates a scraper for the babymong shop
func NewBabymongScraper(s shop.PetShop, cacheSvc cache.CacheService, blockTime time.Duration) *BabymongScraper {
	return &BabymongScraper{
		BaseScraper: NewBaseScraper(s, cacheSvc, blockTime),
	}
}

// GetName returns the scraper's name
func (c *BabymongScraper) GetName() string {
	return "BabymongScraper"
}

// ScrapePets parses the babymong listing page into Pet records.
// Fetch and parse failures degrade to an empty result.
func (c *BabymongScraper) ScrapePets() ([]Pet, error) {
	log := logger.ForScraper(c.GetName())

	body, err := c.fetchFunc()
	if err != nil {
		log.Error().Err(err).Msg("페이지 조회 실패")
		return []Pet{}, nil
	}

	doc, err := c.createDocument(body)
	if err != nil {
		log.Error().Err(err).Msg("HTML 파싱 실패")
		return []Pet{}, nil
	}

	var pets []Pet
	doc.Find(".pet-item, .dog-item, .cat-item, [class*='pet']").Each(func(i int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find(".name, h3, h4").First().Text())
		priceText := s.Find(".price").First().Text()
		image := c.imageSource(s)

		// Mandatory fields: skip items without a name or price text
		if name == "" || priceText == "" {
			return
		}

		pets = append(pets, c.newPet(
			i,
			name,
			strings.TrimSpace(s.Find(".breed").Text()),
			s.Find(".age").Text(),
			s.Find("[class*='gender']").Text(),
			priceText,
			image,
			strings.TrimSpace(s.Find(".desc, .description").Text()),
			"dog",
			"서울",
		))
	})

	return pets, nil
}
