package handler

import (
	"net/http"

	auction "agrimarket/internal/auctionService"
	model "agrimarket/internal/models"
	"agrimarket/internal/session"
	"agrimarket/services/market/helpers"
	"agrimarket/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ListAuctions(status string) ([]model.Auction, error)
	OpenSession(auctionID string) (session.Snapshot, error)
	GetSession(sessionID string) (session.Snapshot, error)
	PlaceBid(sessionID, bidder string, amount int64) (model.BidRecord, error)
	TopBidders(sessionID string) ([]model.BidRecord, error)
	Bids(sessionID string) ([]model.BidRecord, error)
	MarketSeries(sessionID string) ([]model.MarketSample, error)
	Summary(sessionID string) (auction.Summary, error)
	CloseSession(sessionID string) error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /industry/auctions?status=
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	status := c.Query("status")
	auctions, err := h.service.ListAuctions(status)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{"status": status})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// OpenSessionHandler handles POST /sessions
func (h *AuctionHandler) OpenSessionHandler(c *gin.Context) {
	var req helpers.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OpenSessionHandler", err)
		return
	}

	snap, err := h.service.OpenSession(req.AuctionID)
	if err != nil {
		helpers.RespondError(c, "OpenSessionHandler", err, map[string]any{"auction_id": req.AuctionID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, snap, "bidding session opened")
	helpers.LogSuccess("OpenSessionHandler", "bidding session opened", map[string]any{
		"session_id": snap.SessionID,
		"auction_id": req.AuctionID,
	})
}

// GetSessionHandler handles GET /sessions/:session_id
func (h *AuctionHandler) GetSessionHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	snap, err := h.service.GetSession(sessionID)
	if err != nil {
		helpers.RespondError(c, "GetSessionHandler", err, map[string]any{"session_id": sessionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snap, "session retrieved successfully")
}

// PlaceBidHandler handles POST /sessions/:session_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(sessionID, req.Bidder, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"session_id": sessionID,
			"bidder":     req.Bidder,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"session_id": sessionID,
		"bidder":     bid.BidderName,
		"amount":     bid.Amount,
	})
}

// TopBiddersHandler handles GET /sessions/:session_id/bids/top
func (h *AuctionHandler) TopBiddersHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	top, err := h.service.TopBidders(sessionID)
	if err != nil {
		helpers.RespondError(c, "TopBiddersHandler", err, map[string]any{"session_id": sessionID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(top))
	for _, bid := range top {
		resp = append(resp, toBidResponse(bid))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "top bidders retrieved successfully")
}

// ListBidsHandler handles GET /sessions/:session_id/bids
func (h *AuctionHandler) ListBidsHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	bids, err := h.service.Bids(sessionID)
	if err != nil {
		helpers.RespondError(c, "ListBidsHandler", err, map[string]any{"session_id": sessionID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, toBidResponse(bid))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
}

// SeriesHandler handles GET /sessions/:session_id/series
func (h *AuctionHandler) SeriesHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	series, err := h.service.MarketSeries(sessionID)
	if err != nil {
		helpers.RespondError(c, "SeriesHandler", err, map[string]any{"session_id": sessionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, series, "market series retrieved successfully")
}

// SummaryHandler handles GET /sessions/:session_id/summary
func (h *AuctionHandler) SummaryHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	summary, err := h.service.Summary(sessionID)
	if err != nil {
		helpers.RespondError(c, "SummaryHandler", err, map[string]any{"session_id": sessionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, summary, "session summary retrieved successfully")
}

// CloseSessionHandler handles POST /sessions/:session_id/close
func (h *AuctionHandler) CloseSessionHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	if err := h.service.CloseSession(sessionID); err != nil {
		helpers.RespondError(c, "CloseSessionHandler", err, map[string]any{"session_id": sessionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "session closed successfully")
	helpers.LogSuccess("CloseSessionHandler", "session closed successfully", map[string]any{
		"session_id": sessionID,
	})
}

func toBidResponse(bid model.BidRecord) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:            bid.BidID,
		SessionID:        bid.SessionID,
		BidderName:       bid.BidderName,
		Amount:           bid.Amount,
		AmountDisplay:    utils.FormatINR(bid.Amount),
		SubmittedAtLabel: bid.SubmittedAtLabel,
		IsHighest:        bid.IsHighest,
	}
}
