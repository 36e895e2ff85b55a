package catalog

import (
	"fmt"

	"agrimarket/internal/marketerrors"
	model "agrimarket/internal/models"
	"agrimarket/internal/notify"
	"agrimarket/internal/repository"
	"agrimarket/utils"
)

// allStates is the filter value that disables state filtering
const allStates = "All States"

// CatalogService exposes the consumer marketplace: product browsing and a
// per-user cart with a wallet-checked checkout.
type CatalogService struct {
	repo          repository.MarketDB
	walletBalance int64 // fixed consumer wallet ceiling for the demo
	notifier      notify.Notifier
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.MarketDB, walletBalance int64, notifier notify.Notifier) *CatalogService {
	return &CatalogService{
		repo:          repo,
		walletBalance: walletBalance,
		notifier:      notifier,
	}
}

// ListProducts returns the catalog, optionally filtered by state
func (s *CatalogService) ListProducts(state string) ([]model.Product, error) {
	products, err := s.repo.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	if state == "" || state == allStates {
		return products, nil
	}
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Location == state {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// AddToCart puts a product in the user's cart, merging quantities when the
// product is already there.
func (s *CatalogService) AddToCart(userID, productID string, quantity int64) ([]model.CartItem, error) {
	if userID == "" || productID == "" {
		return nil, fmt.Errorf("service: %w - missing userID or productID", marketerrors.ErrInvalidInput)
	}
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to add product %s to cart: %w", productID, err)
	}

	items, err := s.repo.GetCart(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read cart for user %s: %w", userID, err)
	}

	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}

	if err := s.repo.SaveCart(userID, items); err != nil {
		return nil, fmt.Errorf("service: failed to save cart for user %s: %w", userID, err)
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Added to Cart",
		Message:  fmt.Sprintf("%s (%d) has been added to your cart", product.Name, quantity),
		Severity: notify.SeverityInfo,
	})
	return items, nil
}

// UpdateQuantity sets a cart line's quantity; zero or less removes the line
func (s *CatalogService) UpdateQuantity(userID, productID string, quantity int64) ([]model.CartItem, error) {
	if quantity <= 0 {
		return s.RemoveFromCart(userID, productID)
	}

	items, err := s.repo.GetCart(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read cart for user %s: %w", userID, err)
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			if err := s.repo.SaveCart(userID, items); err != nil {
				return nil, fmt.Errorf("service: failed to save cart for user %s: %w", userID, err)
			}
			return items, nil
		}
	}
	return nil, fmt.Errorf("service: product %s: %w", productID, marketerrors.ErrCartItemMissing)
}

// RemoveFromCart drops a product line from the user's cart
func (s *CatalogService) RemoveFromCart(userID, productID string) ([]model.CartItem, error) {
	items, err := s.repo.GetCart(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read cart for user %s: %w", userID, err)
	}

	kept := make([]model.CartItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil, fmt.Errorf("service: product %s: %w", productID, marketerrors.ErrCartItemMissing)
	}

	if err := s.repo.SaveCart(userID, kept); err != nil {
		return nil, fmt.Errorf("service: failed to save cart for user %s: %w", userID, err)
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Item Removed",
		Message:  "Item has been removed from your cart",
		Severity: notify.SeverityInfo,
	})
	return kept, nil
}

// GetCart returns the user's cart lines and their total
func (s *CatalogService) GetCart(userID string) ([]model.CartItem, int64, error) {
	items, err := s.repo.GetCart(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to read cart for user %s: %w", userID, err)
	}
	return items, cartTotal(items), nil
}

// Checkout verifies the cart total against the wallet ceiling; success
// clears the cart and returns the amount charged.
func (s *CatalogService) Checkout(userID string) (int64, error) {
	items, err := s.repo.GetCart(userID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to read cart for user %s: %w", userID, err)
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("service: cart for user %s is empty: %w", userID, marketerrors.ErrInvalidInput)
	}

	total := cartTotal(items)
	if total > s.walletBalance {
		s.notifier.Notify(notify.Notification{
			Title:    "Insufficient Balance",
			Message:  fmt.Sprintf("Your cart total %s exceeds your wallet balance", utils.FormatINR(total)),
			Severity: notify.SeverityDestructive,
		})
		return 0, fmt.Errorf("service: cart total %d exceeds wallet %d: %w", total, s.walletBalance, marketerrors.ErrInsufficientFunds)
	}

	if err := s.repo.ClearCart(userID); err != nil {
		return 0, fmt.Errorf("service: failed to clear cart for user %s: %w", userID, err)
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Order Placed",
		Message:  fmt.Sprintf("Your order of %s has been placed", utils.FormatINR(total)),
		Severity: notify.SeverityInfo,
	})
	return total, nil
}

func cartTotal(items []model.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}
