package handler

import (
	"net/http"

	model "agrimarket/internal/models"
	"agrimarket/services/market/helpers"
	"agrimarket/utils"

	"github.com/gin-gonic/gin"
)

type FarmServiceInterface interface {
	AddCropListing(listing model.CropListing) (model.CropListing, error)
	ListCropListings() ([]model.CropListing, error)
	AddWasteListing(waste model.WasteProduct) (model.WasteProduct, error)
	ListWasteProducts() ([]model.WasteProduct, error)
}

type FarmHandler struct {
	service FarmServiceInterface
}

func NewFarmHandler(service FarmServiceInterface) *FarmHandler {
	return &FarmHandler{service: service}
}

// AddCropHandler handles POST /farmer/crops
func (h *FarmHandler) AddCropHandler(c *gin.Context) {
	var req helpers.AddCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCropHandler", err)
		return
	}

	listing, err := h.service.AddCropListing(model.CropListing{
		CropName:      req.CropName,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		ExpectedPrice: req.ExpectedPrice,
		HarvestDate:   req.HarvestDate,
		Description:   req.Description,
	})
	if err != nil {
		helpers.RespondError(c, "AddCropHandler", err, map[string]any{"crop_name": req.CropName})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "crop listed successfully")
	helpers.LogSuccess("AddCropHandler", "crop listed successfully", map[string]any{
		"listing_id": listing.ListingID,
		"crop_name":  listing.CropName,
	})
}

// ListCropsHandler handles GET /farmer/crops
func (h *FarmHandler) ListCropsHandler(c *gin.Context) {
	listings, err := h.service.ListCropListings()
	if err != nil {
		helpers.RespondError(c, "ListCropsHandler", err, nil)
		return
	}

	if listings == nil {
		listings = []model.CropListing{}
	}
	utils.JSONResponse(c, http.StatusOK, listings, "crop listings retrieved successfully")
}

// AddWasteHandler handles POST /farmer/waste
func (h *FarmHandler) AddWasteHandler(c *gin.Context) {
	var req helpers.AddWasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddWasteHandler", err)
		return
	}

	waste, err := h.service.AddWasteListing(model.WasteProduct{
		Name:         req.Name,
		Farmer:       req.Farmer,
		OriginalCrop: req.OriginalCrop,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PriceRange:   req.PriceRange,
		Location:     req.Location,
	})
	if err != nil {
		helpers.RespondError(c, "AddWasteHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, waste, "waste product listed successfully")
	helpers.LogSuccess("AddWasteHandler", "waste product listed successfully", map[string]any{
		"waste_id": waste.WasteID,
		"name":     waste.Name,
	})
}

// ListWasteProductsHandler handles GET /industry/waste-products
func (h *FarmHandler) ListWasteProductsHandler(c *gin.Context) {
	waste, err := h.service.ListWasteProducts()
	if err != nil {
		helpers.RespondError(c, "ListWasteProductsHandler", err, nil)
		return
	}

	if waste == nil {
		waste = []model.WasteProduct{}
	}
	utils.JSONResponse(c, http.StatusOK, waste, "waste products retrieved successfully")
}
