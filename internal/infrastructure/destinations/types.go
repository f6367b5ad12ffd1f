package destinations

// Destination is one sellable destination from the external products API.
type Destination struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	Status    int        `json:"status"`
	Type      string     `json:"type"`
	ImageURL  string     `json:"image_url"`
	Provider  string     `json:"provider"`
	Plans     []Plan     `json:"plans"`
	Coverages []Coverage `json:"coverages"`
	Countries []Country  `json:"countries"`
}

// Plan fields arrive inconsistently from the source: DataAmount may be null
// while IsUnlimited stays 0, or the "unlimited" marker may only appear in
// free text. Classification over these fields lives in the importer, not
// here.
type Plan struct {
	ID          int      `json:"id"`
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Data        string   `json:"data"`
	PublicPrice float64  `json:"public_price"`
	Duration    int      `json:"duration"`
	DataAmount  *float64 `json:"data_amount"`
	IsUnlimited int      `json:"is_unlimited"`
	Description string   `json:"description"`
	ExtraInfo   *string  `json:"extra_info"`
	Voice       *string  `json:"voice"`
	Text        *string  `json:"text"`
}

type Coverage struct {
	CountryName string    `json:"country_name"`
	Networks    []Network `json:"networks"`
}

type Network struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

type Country struct {
	CountryCode string `json:"country_code"`
	Name        string `json:"name"`
	Image       string `json:"image"`
}

type apiResponse struct {
	Success bool          `json:"success"`
	Data    []Destination `json:"data"`
	Meta    apiMeta       `json:"meta"`
}

type apiMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}
