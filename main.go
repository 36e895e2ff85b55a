package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	auction "agrimarket/internal/auctionService"
	auth "agrimarket/internal/authService"
	catalog "agrimarket/internal/catalogService"
	"agrimarket/internal/config"
	farm "agrimarket/internal/farmService"
	model "agrimarket/internal/models"
	"agrimarket/internal/notify"
	"agrimarket/internal/repository"
	"agrimarket/internal/server"
	"agrimarket/internal/session"
	"agrimarket/utils"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional, defaults apply)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.Logging.Level)

	repo := repository.NewMemoryRepo()
	seedMarketplace(repo)

	notifier := notify.NewLogNotifier()

	auctionSvc := auction.NewAuctionService(repo, auctionDefaults(cfg), notifier)
	defer auctionSvc.Shutdown()

	router := server.SetupRouter(server.Services{
		Auth:    auth.NewAuthService(notifier),
		Catalog: catalog.NewCatalogService(repo, cfg.Wallet.ConsumerBalance, notifier),
		Farm:    farm.NewFarmService(repo, notifier),
		Auction: auctionSvc,
	})

	go handleShutdown(auctionSvc)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("Starting marketplace server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// auctionDefaults translates config into session defaults, including the
// synthetic bidder script.
func auctionDefaults(cfg *config.Config) auction.Defaults {
	var script []session.SyntheticBid
	if cfg.Simulator.Enabled {
		for _, bid := range cfg.Simulator.Bids {
			script = append(script, session.SyntheticBid{
				Bidder:       bid.Bidder,
				Amount:       bid.Amount,
				AfterSeconds: cfg.Simulator.DelaySeconds,
			})
		}
	}
	return auction.Defaults{
		DurationSeconds: cfg.Session.DurationSeconds,
		ReferenceHigh:   cfg.Session.ReferenceHigh,
		WalletBalance:   cfg.Wallet.IndustryBalance,
		TopBidderCount:  cfg.Session.TopBidderCount,
		SeedBidders:     cfg.Session.SeedBidders,
		Script:          script,
	}
}

// seedMarketplace loads the demo catalog, auction lots, and waste listings
func seedMarketplace(repo *repository.MemoryRepo) {
	products := []model.Product{
		{ProductID: "p1", Name: "Organic Tomatoes", Farmer: "Rajesh Sharma", Price: 45, Unit: "1 KG", Location: "Rajasthan", Organic: true},
		{ProductID: "p2", Name: "Fresh Spinach", Farmer: "Meera Devi", Price: 25, Unit: "500g Bundle", Location: "Punjab", Organic: true},
		{ProductID: "p3", Name: "Basmati Rice", Farmer: "Suresh Gupta", Price: 120, Unit: "5 KG", Location: "Punjab", Organic: false},
		{ProductID: "p4", Name: "Fresh Carrots", Farmer: "Amit Kumar", Price: 35, Unit: "1 KG", Location: "Maharashtra", Organic: true},
		{ProductID: "p5", Name: "Organic Potatoes", Farmer: "Ravi Singh", Price: 30, Unit: "2 KG", Location: "Uttar Pradesh", Organic: true},
		{ProductID: "p6", Name: "Fresh Onions", Farmer: "Sunita Devi", Price: 40, Unit: "1 KG", Location: "Karnataka", Organic: false},
		{ProductID: "p7", Name: "Green Beans", Farmer: "Kiran Kumar", Price: 60, Unit: "500g", Location: "Tamil Nadu", Organic: true},
		{ProductID: "p8", Name: "Wheat Flour", Farmer: "Harish Grain Mills", Price: 45, Unit: "1 KG", Location: "Madhya Pradesh", Organic: false},
	}
	for _, product := range products {
		repo.AddProduct(product)
	}

	auctions := []model.Auction{
		{AuctionID: "a1", Product: "Premium Wheat", Quantity: "50 tons", Location: "Golden Fields Farm, Kansas, USA", Status: "ongoing", BasePrice: 200000, Description: "High-quality wheat suitable for bread making"},
		{AuctionID: "a2", Product: "Organic Basmati Rice", Quantity: "30 tons", Location: "Punjab Farms, India", Status: "upcoming", StartTime: "2:30 PM", BasePrice: 150000},
		{AuctionID: "a3", Product: "Fresh Tomatoes", Quantity: "25 tons", Location: "Maharashtra Farms, India", Status: "upcoming", StartTime: "4:00 PM", BasePrice: 75000},
	}
	for _, lot := range auctions {
		repo.AddAuction(lot)
	}

	waste := []model.WasteProduct{
		{WasteID: "w1", Name: "Grape Waste for Wine Industry", Farmer: "Rajesh Vineyard", OriginalCrop: "Grapes", Quantity: "200", Unit: "Tons", PriceRange: "₹500-800/Ton", Location: "Maharashtra", Status: "Available"},
		{WasteID: "w2", Name: "Wheat Straw for Paper Industry", Farmer: "Punjab Farms", OriginalCrop: "Wheat", Quantity: "150", Unit: "Tons", PriceRange: "₹300-500/Ton", Location: "Punjab", Status: "Available"},
		{WasteID: "w3", Name: "Corn Husks for Biofuel", Farmer: "Green Valley Co-op", OriginalCrop: "Corn", Quantity: "300", Unit: "Tons", PriceRange: "₹200-400/Ton", Location: "Karnataka", Status: "Available"},
	}
	for _, w := range waste {
		if err := repo.AddWasteProduct(w); err != nil {
			utils.Error("failed to seed waste product", map[string]any{"waste_id": w.WasteID, "error": err.Error()})
		}
	}
}

// handleShutdown stops live session runners on SIGINT/SIGTERM
func handleShutdown(auctionSvc *auction.AuctionService) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	utils.Info("shutting down", nil)
	auctionSvc.Shutdown()
	os.Exit(0)
}
