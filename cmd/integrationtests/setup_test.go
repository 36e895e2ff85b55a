package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "agrimarket/internal/auctionService"
	auth "agrimarket/internal/authService"
	catalog "agrimarket/internal/catalogService"
	farm "agrimarket/internal/farmService"
	model "agrimarket/internal/models"
	"agrimarket/internal/notify"
	"agrimarket/internal/repository"
	"agrimarket/internal/server"

	"github.com/gin-gonic/gin"
)

// testDefaults mirrors the demo configuration: one-hour-ish countdown,
// seeded bidders, and no simulator script so tests control every bid.
func testDefaults() auction.Defaults {
	return auction.Defaults{
		DurationSeconds: 3542,
		ReferenceHigh:   217200,
		WalletBalance:   250000,
		TopBidderCount:  3,
		SeedBidders:     []string{"Arnav", "Disha", "Krrish"},
	}
}

// SetupTestRouter initializes the router with an in-memory repository,
// optionally seeded with products, auctions, and waste listings.
func SetupTestRouter(seed func(*repository.MemoryRepo)) (*gin.Engine, *auction.AuctionService) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	if seed != nil {
		seed(repo)
	}

	notifier := notify.NewLogNotifier()
	auctionSvc := auction.NewAuctionService(repo, testDefaults(), notifier)

	router := server.SetupRouter(server.Services{
		Auth:    auth.NewAuthService(notifier),
		Catalog: catalog.NewCatalogService(repo, 5000, notifier),
		Farm:    farm.NewFarmService(repo, notifier),
		Auction: auctionSvc,
	})
	return router, auctionSvc
}

// seedDemoMarket loads a small slice of the demo catalog and auction lots.
func seedDemoMarket(repo *repository.MemoryRepo) {
	repo.AddProduct(model.Product{ProductID: "p1", Name: "Organic Tomatoes", Farmer: "Rajesh Sharma", Price: 45, Unit: "1 KG", Location: "Rajasthan", Organic: true})
	repo.AddProduct(model.Product{ProductID: "p2", Name: "Fresh Spinach", Farmer: "Meera Devi", Price: 25, Unit: "500g Bundle", Location: "Punjab", Organic: true})
	repo.AddProduct(model.Product{ProductID: "p3", Name: "Basmati Rice", Farmer: "Suresh Gupta", Price: 120, Unit: "5 KG", Location: "Punjab", Organic: false})

	repo.AddAuction(model.Auction{AuctionID: "a1", Product: "Premium Wheat", Quantity: "50 tons", Location: "Golden Fields Farm, Kansas, USA", Status: "ongoing", BasePrice: 200000})
	repo.AddAuction(model.Auction{AuctionID: "a2", Product: "Organic Basmati Rice", Quantity: "30 tons", Location: "Punjab Farms, India", Status: "upcoming", StartTime: "2:30 PM", BasePrice: 150000})
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
