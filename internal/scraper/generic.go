package scraper

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"petfinder/crawlworker/helpers"
	"petfinder/crawlworker/internal/shop"
	"petfinder/crawlworker/logger"
	"petfinder/crawlworker/services/cache"
)

// genericMaxPets caps the result size; generic matching is noisy
const genericMaxPets = 20

// image URL substrings that look pet-related
var petImageHints = []string{"pet", "dog", "cat", "animal"}

// GenericScraper is the fallback scraper for shops without a site-specific
// implementation. It scans images that look pet-related and climbs to the
// nearest card container to extract fields.
type GenericScraper struct {
	BaseScraper
}

// NewGenericScraper creates a generic scraper for the given shop
func NewGenericScraper(s shop.PetShop, cacheSvc cache.CacheService, blockTime time.Duration) *GenericScraper {
	return &GenericScraper{
		BaseScraper: NewBaseScraper(s, cacheSvc, blockTime),
	}
}

// GetName returns the scraper's name
func (c *GenericScraper) GetName() string {
	return "GenericScraper"
}

// ScrapePets heuristically parses an unknown page layout into Pet records.
// Fetch and parse failures degrade to an empty result.
func (c *GenericScraper) ScrapePets() ([]Pet, error) {
	log := logger.ForScraper(c.GetName())

	body, err := c.fetchFunc()
	if err != nil {
		log.Error().Err(err).Str("shop", c.Shop.ID).Msg("페이지 조회 실패")
		return []Pet{}, nil
	}

	doc, err := c.createDocument(body)
	if err != nil {
		log.Error().Err(err).Str("shop", c.Shop.ID).Msg("HTML 파싱 실패")
		return []Pet{}, nil
	}

	petType := "dog"
	if c.Shop.Type == shop.TypeCat {
		petType = "cat"
	}

	var pets []Pet
	doc.Find("img").Each(func(i int, img *goquery.Selection) {
		src := imageAttr(img)
		if src == "" || !looksLikePetImage(src) {
			return
		}

		card := img.Closest("div, article, li, .item, .card, .pet")
		if card.Length() == 0 {
			return
		}

		name := strings.TrimSpace(card.Find("h1, h2, h3, h4, .title, .name").First().Text())
		priceText := card.Find(".price, .cost, [class*='price']").First().Text()
		price := helpers.ExtractPrice(priceText)

		// Only keep cards with a real name and a parseable price
		if price <= 0 || name == "" || name == "이름 없음" {
			return
		}

		ageText := card.Find(".age, [class*='age']").First().Text()
		if ageText == "" {
			ageText = ageUnknown
		}

		pets = append(pets, c.newPet(
			i,
			name,
			strings.TrimSpace(card.Find(".breed, [class*='breed']").First().Text()),
			ageText,
			card.Find("[class*='gender'], [class*='sex']").First().Text(),
			priceText,
			src,
			strings.TrimSpace(card.Find(".description, .desc, p").First().Text()),
			petType,
			c.Shop.Name,
		))
	})

	if len(pets) > genericMaxPets {
		pets = pets[:genericMaxPets]
	}
	return pets, nil
}

func looksLikePetImage(src string) bool {
	lower := strings.ToLower(src)
	for _, hint := range petImageHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
