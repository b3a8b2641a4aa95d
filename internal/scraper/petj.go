package scraper

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"petfinder/crawlworker/internal/shop"
	"petfinder/crawlworker/logger"
	"petfinder/crawlworker/services/cache"
)

// PetJScraper scrapes listings from the 펫제이 shop site
type PetJScraper struct {
	BaseScraper
}

// NewPetJScraper creates a scraper for the petj shop
func NewPetJScraper(s shop.PetShop, cacheSvc cache.CacheService, blockTime time.Duration) *PetJScraper {
	return &PetJScraper{
		BaseScraper: NewBaseScraper(s, cacheSvc, blockTime),
	}
}

// GetName returns the scraper's name
func (c *PetJScraper) GetName() string {
	return "PetJScraper"
}

// ScrapePets parses the petj listing page into Pet records.
// Fetch and parse failures degrade to an empty result.
func (c *PetJScraper) ScrapePets() ([]Pet, error) {
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
	doc.Find(".pet-list-item, [class*='pet-list']").Each(func(i int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find(".pet-name, h3").First().Text())
		priceText := s.Find(".price, .pet-price").First().Text()
		image := c.imageSource(s)

		if name == "" || priceText == "" {
			return
		}

		pets = append(pets, c.newPet(
			i,
			name,
			strings.TrimSpace(s.Find(".breed, .pet-breed").Text()),
			s.Find(".age, .pet-age").Text(),
			s.Find("[class*='gender']").Text(),
			priceText,
			image,
			strings.TrimSpace(s.Find(".desc").Text()),
			"dog",
			"서울",
		))
	})

	return pets, nil
}
