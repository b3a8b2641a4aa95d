package scraper

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"petfinder/crawlworker/internal/shop"
)

func TestPetamiScrapePets(t *testing.T) {
	html := `
	<html><body>
		<div id="zboard_list">
			<ul>
				<li onclick="location.href='view.php?id=412'">
					<div class="zbl_thumb_box" style="background-image:url('/data/thumb/412.jpg')"></div>
					<div class="zbl_info_title">토이푸들 여아</div>
					<div class="zbl_info_sub">토이푸들</div>
					<div class="zbl_info_price">1,000,000원</div>
				</li>
				<li onclick="location.href='view.php?id=413'">
					<div class="zbl_thumb_box"></div>
					<div class="zbl_info_title">포메라니안 남아</div>
					<div class="zbl_info_price">650,000원</div>
				</li>
			</ul>
		</div>
	</body></html>`

	s := shop.PetShop{ID: "petami", Name: "펫아미", URL: "http://petami.test/shop/list.php", Type: shop.TypeDog, Enabled: true}
	c := NewPetamiScraper(s, nil, 0)
	c.fetchFunc = func() (io.Reader, error) {
		return strings.NewReader(html), nil
	}

	pets, err := c.ScrapePets()
	assert.NoError(t, err)
	assert.Len(t, pets, 2)

	assert.Equal(t, "petami-0", pets[0].ID)
	assert.Equal(t, "토이푸들 여아", pets[0].Name)
	assert.Equal(t, "토이푸들", pets[0].Breed)
	assert.Equal(t, ageUnknown, pets[0].Age)
	assert.Equal(t, 1000000, pets[0].Price)
	assert.Equal(t, "http://petami.test/data/thumb/412.jpg", pets[0].Image)
	assert.Equal(t, "http://petami.test/shop/view.php?id=412", pets[0].Description)
	assert.Equal(t, "지역 미상", pets[0].Location)

	assert.Equal(t, "petami-1", pets[1].ID)
	assert.Equal(t, breedUnknown, pets[1].Breed)
	assert.Empty(t, pets[1].Image)
}

func TestPetamiFallsBackToClassList(t *testing.T) {
	html := `
	<html><body>
		<ul class="board_list">
			<li>
				<div class="title">말티즈 아기</div>
				<div class="price">700,000원</div>
			</li>
		</ul>
	</body></html>`

	s := shop.PetShop{ID: "petami", Name: "펫아미", URL: "http://petami.test"}
	c := NewPetamiScraper(s, nil, 0)
	c.fetchFunc = func() (io.Reader, error) {
		return strings.NewReader(html), nil
	}

	pets, err := c.ScrapePets()
	assert.NoError(t, err)
	assert.Len(t, pets, 1)
	assert.Equal(t, "말티즈 아기", pets[0].Name)
	assert.Equal(t, 700000, pets[0].Price)
}

func TestPetamiNoListDegradesToEmpty(t *testing.T) {
	s := shop.PetShop{ID: "petami", Name: "펫아미", URL: "http://petami.test"}
	c := NewPetamiScraper(s, nil, 0)
	c.fetchFunc = func() (io.Reader, error) {
		return strings.NewReader("<html><body><div>리뉴얼 준비중</div></body></html>"), nil
	}

	pets, err := c.ScrapePets()
	assert.NoError(t, err)
	assert.Empty(t, pets)
}
