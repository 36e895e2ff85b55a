package models

// User represents a logged-in portal user
type User struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// BidRecord represents one bid in a session's ledger.
// Amount 0 is the placeholder value for seeded bidders that have not bid yet.
type BidRecord struct {
	BidID            string `json:"bid_id"`
	SessionID        string `json:"session_id"`
	BidderName       string `json:"bidder_name"`
	Amount           int64  `json:"amount"`
	SubmittedAtLabel string `json:"submitted_at_label"`
	IsHighest        bool   `json:"is_highest"`
}

// MarketSample is one point in a session's derived price/volume history
type MarketSample struct {
	TimeLabel string `json:"time_label"`
	Price     int64  `json:"price"`
	Volume    int64  `json:"volume"`
	Change    int64  `json:"change"`
}

// Auction represents a bulk auction lot visible to industrial buyers
type Auction struct {
	AuctionID       string `json:"auction_id"`
	Product         string `json:"product"`
	Quantity        string `json:"quantity"`
	Location        string `json:"location"`
	Status          string `json:"status"` // "ongoing" or "upcoming"
	StartTime       string `json:"start_time,omitempty"`
	DurationSeconds int64  `json:"duration_seconds,omitempty"`
	BasePrice       int64  `json:"base_price"`
	Description     string `json:"description,omitempty"`
}

// Product represents a consumer marketplace product
type Product struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Farmer    string `json:"farmer"`
	Price     int64  `json:"price"`
	Unit      string `json:"unit"`
	Location  string `json:"location"`
	Organic   bool   `json:"organic"`
}

// CartItem represents one product line in a consumer's cart
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// CropListing represents a crop a farmer has put up for sale
type CropListing struct {
	ListingID     string `json:"listing_id"`
	CropName      string `json:"crop_name"`
	Quantity      string `json:"quantity"`
	Unit          string `json:"unit"`
	ExpectedPrice int64  `json:"expected_price"`
	HarvestDate   string `json:"harvest_date,omitempty"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"`
}

// WasteProduct represents agricultural waste offered to industry
type WasteProduct struct {
	WasteID      string `json:"waste_id"`
	Name         string `json:"name"`
	Farmer       string `json:"farmer"`
	OriginalCrop string `json:"original_crop"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
	PriceRange   string `json:"price_range"`
	Location     string `json:"location"`
	Status       string `json:"status"`
}
