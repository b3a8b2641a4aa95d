package scraper

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"petfinder/crawlworker/internal/shop"
)

func TestPetJScrapePets(t *testing.T) {
	html := `
	<html><body>
		<div class="pet-list-item">
			<h3 class="pet-name">보리</h3>
			<span class="pet-breed">비숑</span>
			<span class="pet-age">3개월</span>
			<span class="gender">암컷</span>
			<span class="pet-price">1,500,000원</span>
			<img src="https://cdn.petj.test/bori.jpg" />
		</div>
		<div class="pet-list-item">
			<h3 class="pet-name">콩이</h3>
			<span class="pet-price">80만원</span>
		</div>
	</body></html>`

	s := shop.PetShop{ID: "petj", Name: "펫제이", URL: "https://petj.test", Type: shop.TypeDog, Enabled: true}
	c := NewPetJScraper(s, nil, 0)
	c.fetchFunc = func() (io.Reader, error) {
		return strings.NewReader(html), nil
	}

	pets, err := c.ScrapePets()
	assert.NoError(t, err)
	assert.Len(t, pets, 2)

	assert.Equal(t, "petj-0", pets[0].ID)
	assert.Equal(t, "보리", pets[0].Name)
	assert.Equal(t, "비숑", pets[0].Breed)
	assert.Equal(t, "3개월", pets[0].Age)
	assert.Equal(t, "암컷", pets[0].Gender)
	assert.Equal(t, 1500000, pets[0].Price)
	assert.Equal(t, "https://cdn.petj.test/bori.jpg", pets[0].Image)

	assert.Equal(t, "petj-1", pets[1].ID)
	assert.Equal(t, 80, pets[1].Price)
}

func TestPetJEmptyPageProducesNoPets(t *testing.T) {
	s := shop.PetShop{ID: "petj", Name: "펫제이", URL: "https://petj.test"}
	c := NewPetJScraper(s, nil, 0)
	c.fetchFunc = func() (io.Reader, error) {
		return strings.NewReader("<html><body><p>점검중입니다</p></body></html>"), nil
	}

	pets, err := c.ScrapePets()
	assert.NoError(t, err)
	assert.Empty(t, pets)
}
