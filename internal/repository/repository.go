package repository

import (
	"fmt"
	"sync"

	"agrimarket/internal/marketerrors"
	model "agrimarket/internal/models"
	"agrimarket/internal/session"
)

// MarketDB defines the storage interface for the marketplace. Everything is
// per-process state; nothing survives a restart.
type MarketDB interface {
	ListProducts() ([]model.Product, error)
	GetProduct(productID string) (model.Product, error)

	GetCart(userID string) ([]model.CartItem, error)
	SaveCart(userID string, items []model.CartItem) error
	ClearCart(userID string) error

	AddCropListing(listing model.CropListing) error
	ListCropListings() ([]model.CropListing, error)

	AddWasteProduct(waste model.WasteProduct) error
	ListWasteProducts() ([]model.WasteProduct, error)

	ListAuctions() ([]model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)

	PutSession(sess *session.Session) error
	GetSession(sessionID string) (*session.Session, error)
	RemoveSession(sessionID string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu            sync.RWMutex
	products      map[string]model.Product
	productOrder  []string
	carts         map[string][]model.CartItem
	cropListings  []model.CropListing
	wasteProducts []model.WasteProduct
	auctions      map[string]model.Auction
	auctionOrder  []string
	sessions      map[string]*session.Session
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products: make(map[string]model.Product),
		carts:    make(map[string][]model.CartItem),
		auctions: make(map[string]model.Auction),
		sessions: make(map[string]*session.Session),
	}
}

// ListProducts returns all seeded products in insertion order
func (r *MemoryRepo) ListProducts() ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.productOrder))
	for _, id := range r.productOrder {
		products = append(products, r.products[id])
	}
	return products, nil
}

// GetProduct returns one product by ID
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, marketerrors.ErrProductNotFound)
	}
	return product, nil
}

// GetCart returns a copy of a user's cart; an unknown user has an empty cart
func (r *MemoryRepo) GetCart(userID string) ([]model.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.CartItem(nil), r.carts[userID]...), nil
}

// SaveCart replaces a user's cart contents
func (r *MemoryRepo) SaveCart(userID string, items []model.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[userID] = append([]model.CartItem(nil), items...)
	return nil
}

// ClearCart empties a user's cart
func (r *MemoryRepo) ClearCart(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}

// AddCropListing records a farmer's crop listing, newest first
func (r *MemoryRepo) AddCropListing(listing model.CropListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cropListings = append([]model.CropListing{listing}, r.cropListings...)
	return nil
}

// ListCropListings returns all crop listings, newest first
func (r *MemoryRepo) ListCropListings() ([]model.CropListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.CropListing(nil), r.cropListings...), nil
}

// AddWasteProduct records a waste listing, newest first
func (r *MemoryRepo) AddWasteProduct(waste model.WasteProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wasteProducts = append([]model.WasteProduct{waste}, r.wasteProducts...)
	return nil
}

// ListWasteProducts returns all waste listings, newest first
func (r *MemoryRepo) ListWasteProducts() ([]model.WasteProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.WasteProduct(nil), r.wasteProducts...), nil
}

// ListAuctions returns all auction lots in insertion order
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctionOrder))
	for _, id := range r.auctionOrder {
		auctions = append(auctions, r.auctions[id])
	}
	return auctions, nil
}

// GetAuction returns one auction lot by ID
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// PutSession stores a live bidding session
func (r *MemoryRepo) PutSession(sess *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sess.ID()] = sess
	return nil
}

// GetSession returns a live bidding session by ID
func (r *MemoryRepo) GetSession(sessionID string) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("get session %s: %w", sessionID, marketerrors.ErrSessionNotFound)
	}
	return sess, nil
}

// RemoveSession drops a torn-down session
func (r *MemoryRepo) RemoveSession(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return fmt.Errorf("remove session %s: %w", sessionID, marketerrors.ErrSessionNotFound)
	}
	delete(r.sessions, sessionID)
	return nil
}

// AddProduct seeds a product. Intended for startup seeding and tests.
func (r *MemoryRepo) AddProduct(product model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ProductID]; !ok {
		r.productOrder = append(r.productOrder, product.ProductID)
	}
	r.products[product.ProductID] = product
}

// AddAuction seeds an auction lot. Intended for startup seeding and tests.
func (r *MemoryRepo) AddAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		r.auctionOrder = append(r.auctionOrder, auction.AuctionID)
	}
	r.auctions[auction.AuctionID] = auction
}
