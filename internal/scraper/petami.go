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

// PetamiScraper scrapes listings from the 펫아미 board-style shop site.
// The site renders thumbnails as background-image styles and navigates
// through onclick attributes instead of plain anchors.
type PetamiScraper struct {
	BaseScraper
}

// NewPetamiScraper creates a scraper for the petami shop
func NewPetamiScraper(s shop.PetShop, cacheSvc cache.CacheService, blockTime time.Duration) *PetamiScraper {
	return &PetamiScraper{
		BaseScraper: NewBaseScraper(s, cacheSvc, blockTime),
	}
}

// GetName returns the scraper's name
func (c *PetamiScraper) GetName() string {
	return "PetamiScraper"
}

// ScrapePets parses the petami board list into Pet records.
// Fetch and parse failures degrade to an empty result.
func (c *PetamiScraper) ScrapePets() ([]Pet, error) {
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

	list := doc.Find("#zboard_list > ul").First()
	if list.Length() == 0 {
		list = doc.Find("ul.board_list, ul[class*='list']").First()
	}
	if list.Length() == 0 {
		return []Pet{}, nil
	}

	var pets []Pet
	list.Find("li").Each(func(i int, s *goquery.Selection) {
		name := helpers.CleanText(s.Find(".zbl_info_title, .title").First().Text())
		priceText := s.Find(".zbl_info_price, .price, [class*='price']").First().Text()
		if name == "" || priceText == "" {
			return
		}

		// Thumbnail lives in a background-image style attribute
		var image string
		if style, exists := s.Find("div.zbl_thumb_box, .thumb").First().Attr("style"); exists {
			image = helpers.ExtractStyleImageURL(style)
		}

		// Detail link comes from the onclick attribute; kept in the
		// description since the Pet record carries no link field
		description := helpers.CleanText(s.Text())
		if onclick, exists := s.Attr("onclick"); exists {
			if detail := helpers.ExtractOnclickURL(onclick); detail != "" {
				description = helpers.MakeAbsoluteURL(detail, c.Shop.URL)
			}
		}

		pets = append(pets, c.newPet(
			i,
			name,
			helpers.CleanText(s.Find(".zbl_info_sub, .sub").First().Text()),
			ageUnknown,
			strings.TrimSpace(s.Find("[class*='gender'], [class*='sex']").First().Text()),
			priceText,
			image,
			description,
			"dog",
			"지역 미상",
		))
	})

	return pets, nil
}
