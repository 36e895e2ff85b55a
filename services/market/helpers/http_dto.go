package helpers

// Request/Response DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type AddCropRequest struct {
	CropName      string `json:"crop_name"`
	Quantity      string `json:"quantity"`
	Unit          string `json:"unit"`
	ExpectedPrice int64  `json:"expected_price"`
	HarvestDate   string `json:"harvest_date"`
	Description   string `json:"description"`
}

type AddWasteRequest struct {
	Name         string `json:"name"`
	Farmer       string `json:"farmer"`
	OriginalCrop string `json:"original_crop"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
	PriceRange   string `json:"price_range"`
	Location     string `json:"location"`
}

type OpenSessionRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
}

// PlaceBidRequest leaves the amount unvalidated at the binding layer so a
// missing or non-positive amount surfaces as a bid rejection, not a payload
// error.
type PlaceBidRequest struct {
	Bidder string `json:"bidder" binding:"required"`
	Amount int64  `json:"amount"`
}

type BidResponse struct {
	BidID            string `json:"bid_id"`
	SessionID        string `json:"session_id"`
	BidderName       string `json:"bidder_name"`
	Amount           int64  `json:"amount"`
	AmountDisplay    string `json:"amount_display"`
	SubmittedAtLabel string `json:"submitted_at_label"`
	IsHighest        bool   `json:"is_highest"`
}

type CartResponse struct {
	Items        any    `json:"items"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

type CheckoutResponse struct {
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}
