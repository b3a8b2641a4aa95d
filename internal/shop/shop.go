package shop

// PetType describes which species a shop carries
type PetType string

const (
	TypeDog  PetType = "dog"
	TypeCat  PetType = "cat"
	TypeBoth PetType = "both"
)

// PetShop is a static registry entry for a partner shop site
type PetShop struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	URL     string  `json:"url"`
	Type    PetType `json:"type"`
	Enabled bool    `json:"enabled"`
}

// petShops is the static shop registry, defined at process start and never
// mutated at runtime.
var petShops = []PetShop{
	{ID: "babymong", Name: "베이비몽", URL: "https://www.babymong.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "petj", Name: "펫제이", URL: "https://www.pet-j.net", Type: TypeBoth, Enabled: true},
	{ID: "ispet", Name: "이즈펫", URL: "https://is-pet.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "minipet", Name: "미니펫/미니캣", URL: "https://minicatmobile.co.kr", Type: TypeCat, Enabled: true},
	{ID: "petami", Name: "펫아미", URL: "https://petami.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "styledogcat", Name: "알로하펍앤코", URL: "https://styledogcat.com", Type: TypeBoth, Enabled: true},
	{ID: "dorothypet", Name: "도로시펫", URL: "https://dorothypet.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "meyoupet", Name: "미유펫", URL: "https://meyoupet-gwangju.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "cattery", Name: "캐터리", URL: "https://cattery.co.kr", Type: TypeCat, Enabled: true},
	{ID: "dogmaru", Name: "도그마루", URL: "https://dogmaru.co.kr", Type: TypeDog, Enabled: true},
	{ID: "garfield", Name: "가필드고양이", URL: "https://xn--o39aqqt5q33r9ecc46a.com", Type: TypeCat, Enabled: true},
	{ID: "petlounge", Name: "펫라운지", URL: "https://www.pet-lounge.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "lovepet", Name: "러브펫", URL: "https://www.lovepet.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "puppyland", Name: "퍼피랜드", URL: "https://www.puppyland.co.kr", Type: TypeDog, Enabled: true},
	{ID: "angelpet", Name: "엔젤펫", URL: "https://www.angelpet.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "happypet", Name: "해피펫", URL: "https://www.happypet.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "puppypet", Name: "퍼피펫", URL: "https://www.puppypet.co.kr", Type: TypeDog, Enabled: true},
	{ID: "queenspet", Name: "퀸즈펫", URL: "https://www.queenspet.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "petbay", Name: "펫베이", URL: "https://www.petbay.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "royalpet", Name: "로얄펫", URL: "https://www.royalpet.co.kr", Type: TypeBoth, Enabled: true},
	{ID: "catjoa", Name: "캣조아", URL: "https://www.catjoa.com", Type: TypeCat, Enabled: true},
	{ID: "minicat", Name: "미니캣", URL: "https://www.minicat.co.kr", Type: TypeCat, Enabled: true},
	{ID: "kittyland", Name: "키티랜드", URL: "https://www.kittyland.co.kr", Type: TypeCat, Enabled: true},
	{ID: "catplanet", Name: "캣플래닛", URL: "https://www.catplanet.co.kr", Type: TypeCat, Enabled: true},
	{ID: "catvillage", Name: "캣빌리지", URL: "https://www.catvillage.co.kr", Type: TypeCat, Enabled: true},
}

// Shops returns a copy of the full registry
func Shops() []PetShop {
	shops := make([]PetShop, len(petShops))
	copy(shops, petShops)
	return shops
}

// EnabledShops returns the registry entries with Enabled set
func EnabledShops() []PetShop {
	var enabled []PetShop
	for _, s := range petShops {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled
}

// Find looks up a shop by id
func Find(id string) (PetShop, bool) {
	for _, s := range petShops {
		if s.ID == id {
			return s, true
		}
	}
	return PetShop{}, false
}
