package farm

import (
	"fmt"

	"agrimarket/internal/marketerrors"
	model "agrimarket/internal/models"
	"agrimarket/internal/notify"
	"agrimarket/internal/repository"
	"agrimarket/utils"
)

// FarmService lets farmers list crops and waste products. Validation stops
// at required-field checks, matching the reference forms.
type FarmService struct {
	repo     repository.MarketDB
	notifier notify.Notifier
}

// NewFarmService creates a new FarmService instance
func NewFarmService(repo repository.MarketDB, notifier notify.Notifier) *FarmService {
	return &FarmService{repo: repo, notifier: notifier}
}

// AddCropListing validates required fields and records a new crop listing
func (s *FarmService) AddCropListing(listing model.CropListing) (model.CropListing, error) {
	if err := requireFields(map[string]string{
		"crop_name": listing.CropName,
		"quantity":  listing.Quantity,
	}); err != nil {
		return model.CropListing{}, err
	}
	if listing.ExpectedPrice <= 0 {
		return model.CropListing{}, fmt.Errorf("service: %w - expected_price", marketerrors.ErrMissingFields)
	}

	listing.ListingID = utils.GenerateID()
	listing.Status = "Active"
	if err := s.repo.AddCropListing(listing); err != nil {
		return model.CropListing{}, fmt.Errorf("service: failed to add crop listing: %w", err)
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Crop Listed",
		Message:  fmt.Sprintf("%s has been listed for sale", listing.CropName),
		Severity: notify.SeverityInfo,
	})
	return listing, nil
}

// ListCropListings returns all crop listings, newest first
func (s *FarmService) ListCropListings() ([]model.CropListing, error) {
	listings, err := s.repo.ListCropListings()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list crops: %w", err)
	}
	return listings, nil
}

// AddWasteListing validates required fields and records a waste product
func (s *FarmService) AddWasteListing(waste model.WasteProduct) (model.WasteProduct, error) {
	if err := requireFields(map[string]string{
		"name":        waste.Name,
		"quantity":    waste.Quantity,
		"price_range": waste.PriceRange,
	}); err != nil {
		return model.WasteProduct{}, err
	}

	waste.WasteID = utils.GenerateID()
	waste.Status = "Available"
	if err := s.repo.AddWasteProduct(waste); err != nil {
		return model.WasteProduct{}, fmt.Errorf("service: failed to add waste listing: %w", err)
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Waste Product Listed",
		Message:  fmt.Sprintf("%s is now available to industrial buyers", waste.Name),
		Severity: notify.SeverityInfo,
	})
	return waste, nil
}

// ListWasteProducts returns all waste listings, newest first
func (s *FarmService) ListWasteProducts() ([]model.WasteProduct, error) {
	waste, err := s.repo.ListWasteProducts()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list waste products: %w", err)
	}
	return waste, nil
}

// requireFields reports the first empty required field
func requireFields(fields map[string]string) error {
	// check in a stable order for deterministic messages
	for _, name := range []string{"crop_name", "name", "quantity", "price_range"} {
		value, ok := fields[name]
		if ok && value == "" {
			return fmt.Errorf("service: %w - %s", marketerrors.ErrMissingFields, name)
		}
	}
	return nil
}
