package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrimarket/internal/marketerrors"
	model "agrimarket/internal/models"
	"agrimarket/internal/session"
	"agrimarket/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func executeJSON(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return parsed, w
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	h := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sessions/:session_id/bids", h.PlaceBidHandler)

	sessionID := uuid.NewString()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{Bidder: "Krrish", Amount: 201000},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(sessionID, "Krrish", int64(201000)).
					Return(model.BidRecord{
						BidID:            uuid.NewString(),
						SessionID:        sessionID,
						BidderName:       "Krrish",
						Amount:           201000,
						SubmittedAtLabel: "58:12",
						IsHighest:        true,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "Krrish", data["bidder_name"])
				require.Equal(t, float64(201000), data["amount"])
				require.Equal(t, "₹2,01,000", data["amount_display"])
				require.Equal(t, true, data["is_highest"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_bidder",
			requestBody:    helpers.PlaceBidRequest{Bidder: "", Amount: 201000},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "zero_amount_maps_to_bad_request",
			requestBody: helpers.PlaceBidRequest{Bidder: "Krrish", Amount: 0},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(sessionID, "Krrish", int64(0)).
					Return(model.BidRecord{}, fmt.Errorf("service: %w", marketerrors.ErrBidNonPositive))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "bid amount missing or not positive",
		},
		{
			name:        "not_higher_maps_to_conflict",
			requestBody: helpers.PlaceBidRequest{Bidder: "Krrish", Amount: 201000},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(sessionID, "Krrish", int64(201000)).
					Return(model.BidRecord{}, fmt.Errorf("service: %w", marketerrors.ErrBidNotHigher))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid not higher than current highest",
		},
		{
			name:        "exceeds_wallet_maps_to_payment_required",
			requestBody: helpers.PlaceBidRequest{Bidder: "Krrish", Amount: 260000},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(sessionID, "Krrish", int64(260000)).
					Return(model.BidRecord{}, fmt.Errorf("service: %w", marketerrors.ErrBidExceedsWallet))
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedMsg:    "bid exceeds wallet balance",
		},
		{
			name:        "closed_session_maps_to_conflict",
			requestBody: helpers.PlaceBidRequest{Bidder: "Krrish", Amount: 210000},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(sessionID, "Krrish", int64(210000)).
					Return(model.BidRecord{}, fmt.Errorf("service: %w", marketerrors.ErrSessionClosed))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bidding session closed",
		},
		{
			name:        "unknown_session_maps_to_not_found",
			requestBody: helpers.PlaceBidRequest{Bidder: "Krrish", Amount: 210000},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(sessionID, "Krrish", int64(210000)).
					Return(model.BidRecord{}, fmt.Errorf("service: %w", marketerrors.ErrSessionNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "session not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			parsed, w := executeJSON(t, router, http.MethodPost, "/sessions/"+sessionID+"/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, parsed["message"])

			if tc.validateData != nil {
				data, ok := parsed["data"].(map[string]any)
				require.True(t, ok)
				tc.validateData(t, data)
			}
		})
	}
}

// Test OpenSessionHandler
func TestOpenSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	h := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sessions", h.OpenSessionHandler)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			OpenSession("a1").
			Return(session.Snapshot{
				SessionID:     uuid.NewString(),
				Product:       "Premium Wheat",
				State:         session.StateBiddingActive,
				BasePrice:     200000,
				TimeRemaining: 3542,
				TimeLabel:     "59:02",
			}, nil)

		parsed, w := executeJSON(t, router, http.MethodPost, "/sessions", helpers.OpenSessionRequest{AuctionID: "a1"})
		require.Equal(t, http.StatusCreated, w.Code)
		data := parsed["data"].(map[string]any)
		require.Equal(t, "Premium Wheat", data["product"])
		require.Equal(t, "59:02", data["time_label"])
	})

	t.Run("missing_auction_id", func(t *testing.T) {
		parsed, w := executeJSON(t, router, http.MethodPost, "/sessions", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "invalid request payload", parsed["message"])
	})

	t.Run("upcoming_auction_conflict", func(t *testing.T) {
		mockService.EXPECT().
			OpenSession("a2").
			Return(session.Snapshot{}, fmt.Errorf("service: %w", marketerrors.ErrAuctionNotOpen))

		parsed, w := executeJSON(t, router, http.MethodPost, "/sessions", helpers.OpenSessionRequest{AuctionID: "a2"})
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, "auction is not open for bidding", parsed["message"])
	})
}

// Test TopBiddersHandler
func TestTopBiddersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	h := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/sessions/:session_id/bids/top", h.TopBiddersHandler)

	sessionID := uuid.NewString()
	mockService.EXPECT().
		TopBidders(sessionID).
		Return([]model.BidRecord{
			{BidID: "b2", BidderName: "Disha", Amount: 201000, IsHighest: true},
			{BidID: "b1", BidderName: "Arnav", Amount: 200500},
			{BidID: "s1", BidderName: "Krrish", Amount: 0, SubmittedAtLabel: "Starting"},
		}, nil)

	parsed, w := executeJSON(t, router, http.MethodGet, "/sessions/"+sessionID+"/bids/top", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := parsed["data"].([]any)
	require.Len(t, data, 3)
	first := data[0].(map[string]any)
	require.Equal(t, "Disha", first["bidder_name"])
	require.Equal(t, true, first["is_highest"])
}
