package scraper

// Pet represents a normalized pet listing scraped from a shop site
type Pet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Age         string `json:"age"`
	Gender      string `json:"gender"` // "수컷" | "암컷"
	Price       int    `json:"price"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Shop        string `json:"shop"`
	ShopURL     string `json:"shopUrl"`
	ShopID      string `json:"shopId"`
	Type        string `json:"type"` // "dog" | "cat"
	Description string `json:"description"`
	Vaccinated  bool   `json:"vaccinated"`
	Registered  bool   `json:"registered"`
	CrawledAt   string `json:"crawledAt"`
}

// CrawlResult is the per-shop outcome of a single crawl pass
type CrawlResult struct {
	Success  bool   `json:"success"`
	ShopID   string `json:"shopId"`
	ShopName string `json:"shopName"`
	Pets     []Pet  `json:"pets"`
	Error    string `json:"error,omitempty"`
	Count    int    `json:"count"`
}

// Scraper is the contract every per-shop scraper implements.
// ScrapePets degrades fetch and parse failures to an empty list; a non-nil
// error only signals an unexpected condition the scraper could not contain.
type Scraper interface {
	// ScrapePets retrieves the normalized listings from the shop page
	ScrapePets() ([]Pet, error)

	// GetName returns the scraper's name for logging and identification
	GetName() string

	// GetShopID returns the id of the shop this scraper targets
	GetShopID() string
}

// breedUnknown is the sentinel breed used when a listing carries no breed text
const breedUnknown = "품종 미상"

// ageUnknown is the fallback age text for listings without age information
const ageUnknown = "나이 미상"
