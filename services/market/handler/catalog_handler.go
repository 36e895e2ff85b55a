package handler

import (
	"net/http"

	model "agrimarket/internal/models"
	"agrimarket/services/market/helpers"
	"agrimarket/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	ListProducts(state string) ([]model.Product, error)
	AddToCart(userID, productID string, quantity int64) ([]model.CartItem, error)
	UpdateQuantity(userID, productID string, quantity int64) ([]model.CartItem, error)
	RemoveFromCart(userID, productID string) ([]model.CartItem, error)
	GetCart(userID string) ([]model.CartItem, int64, error)
	Checkout(userID string) (int64, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListProductsHandler handles GET /products?state=
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	state := c.Query("state")
	products, err := h.service.ListProducts(state)
	if err != nil {
		helpers.RespondError(c, "ListProductsHandler", err, map[string]any{"state": state})
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// GetCartHandler handles GET /cart/:user_id
func (h *CatalogHandler) GetCartHandler(c *gin.Context) {
	userID := c.Param("user_id")
	items, total, err := h.service.GetCart(userID)
	if err != nil {
		helpers.RespondError(c, "GetCartHandler", err, map[string]any{"user_id": userID})
		return
	}

	if items == nil {
		items = []model.CartItem{}
	}
	utils.JSONResponse(c, http.StatusOK, helpers.CartResponse{
		Items:        items,
		Total:        total,
		TotalDisplay: utils.FormatINR(total),
	}, "cart retrieved successfully")
}

// AddCartItemHandler handles POST /cart/:user_id/items
func (h *CatalogHandler) AddCartItemHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCartItemHandler", err)
		return
	}

	items, err := h.service.AddToCart(userID, req.ProductID, req.Quantity)
	if err != nil {
		helpers.RespondError(c, "AddCartItemHandler", err, map[string]any{
			"user_id":    userID,
			"product_id": req.ProductID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, items, "item added to cart")
	helpers.LogSuccess("AddCartItemHandler", "item added to cart", map[string]any{
		"user_id":    userID,
		"product_id": req.ProductID,
		"items":      len(items),
	})
}

// UpdateCartItemHandler handles PATCH /cart/:user_id/items/:product_id
func (h *CatalogHandler) UpdateCartItemHandler(c *gin.Context) {
	userID := c.Param("user_id")
	productID := c.Param("product_id")

	var req helpers.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCartItemHandler", err)
		return
	}

	items, err := h.service.UpdateQuantity(userID, productID, req.Quantity)
	if err != nil {
		helpers.RespondError(c, "UpdateCartItemHandler", err, map[string]any{
			"user_id":    userID,
			"product_id": productID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "cart updated successfully")
}

// RemoveCartItemHandler handles DELETE /cart/:user_id/items/:product_id
func (h *CatalogHandler) RemoveCartItemHandler(c *gin.Context) {
	userID := c.Param("user_id")
	productID := c.Param("product_id")

	items, err := h.service.RemoveFromCart(userID, productID)
	if err != nil {
		helpers.RespondError(c, "RemoveCartItemHandler", err, map[string]any{
			"user_id":    userID,
			"product_id": productID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "item removed from cart")
}

// CheckoutHandler handles POST /cart/:user_id/checkout
func (h *CatalogHandler) CheckoutHandler(c *gin.Context) {
	userID := c.Param("user_id")

	total, err := h.service.Checkout(userID)
	if err != nil {
		helpers.RespondError(c, "CheckoutHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.CheckoutResponse{
		Total:        total,
		TotalDisplay: utils.FormatINR(total),
	}, "order placed successfully")
	helpers.LogSuccess("CheckoutHandler", "order placed successfully", map[string]any{
		"user_id": userID,
		"total":   total,
	})
}
