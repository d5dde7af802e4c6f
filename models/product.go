package models

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Default price range of the storefront price slider.
const (
	MinPriceDefault = 0
	MaxPriceDefault = 1000
)

type FilterOptions struct {
	Categories  []string `json:"categories"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	SearchQuery string   `json:"search_query"`
}

// DefaultFilterOptions matches everything: no category restriction, full
// price range, no search text.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		MinPrice: MinPriceDefault,
		MaxPrice: MaxPriceDefault,
	}
}
