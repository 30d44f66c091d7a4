package auctions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/dto"
	"github.com/shubik-shop/auction/internal/service/auctionservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuctionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func openAuction() *domain.Auction {
	return &domain.Auction{
		ID:           1,
		ItemID:       42,
		StoreID:      7,
		State:        domain.OpenState,
		BasePrice:    10000,
		CurrentPrice: decimal.NewFromInt(12900),
		StartAt:      time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC),
		EndAt:        time.Date(2024, 12, 8, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody, _ := json.Marshal(dto.CreateAuctionRequestDTO{
		ItemID:    42,
		StoreID:   7,
		StartAt:   time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2024, 12, 8, 10, 0, 0, 0, time.UTC),
		BasePrice: 10000,
	})

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Auction is created",
			body: string(validBody),
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 42, 7, gomock.Any(), gomock.Any(), int64(10000)).
					Return(openAuction(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         "{not json",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid period",
			body: string(validBody),
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 42, 7, gomock.Any(), gomock.Any(), int64(10000)).
					Return(nil, auctionservice.ErrInvalidPeriod)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Item not found",
			body: string(validBody),
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 42, 7, gomock.Any(), gomock.Any(), int64(10000)).
					Return(nil, auctionservice.ErrItemNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Item already on auction",
			body: string(validBody),
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 42, 7, gomock.Any(), gomock.Any(), int64(10000)).
					Return(nil, auctionservice.ErrDuplicateActiveAuction)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: string(validBody),
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 42, 7, gomock.Any(), gomock.Any(), int64(10000)).
					Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auctions", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.AuctionResponseDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, 1, resp.ID)
				assert.Equal(t, domain.OpenState, resp.State)
				assert.Equal(t, "12900.00", resp.CurrentPrice)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Auction found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(openAuction(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid auction id",
			id:           "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Auction not found",
			id:   "9",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 9).Return(nil, auctionservice.ErrAuctionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal error",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/auctions/"+tt.id, nil), "auctionID", tt.id)
			rec := httptest.NewRecorder()

			handler.Get(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Auctions listed",
			url:  "/api/auctions",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), domain.AuctionFilter{}).
					Return([]domain.Auction{*openAuction()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Filtered by store",
			url:  "/api/auctions?store_id=7",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), domain.AuctionFilter{StoreID: 7}).
					Return([]domain.Auction{*openAuction()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No auctions",
			url:  "/api/auctions",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), domain.AuctionFilter{}).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal error",
			url:  "/api/auctions",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), domain.AuctionFilter{}).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestCloseHandler(t *testing.T) {
	handler, service := NewMock(t)

	closedPrice := decimal.NewFromInt(19350)
	closed := openAuction()
	closed.State = domain.AwaitingPaymentState
	closed.FinalPrice = &closedPrice

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Auction closed with winner",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Close(gomock.Any(), 1).Return(closed, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid auction id",
			id:           "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Auction not found",
			id:   "9",
			prepareMock: func() {
				service.EXPECT().Close(gomock.Any(), 9).Return(nil, auctionservice.ErrAuctionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Close on a non-open auction",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Close(gomock.Any(), 1).Return(nil, auctionservice.ErrInvalidState)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Close(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/auctions/"+tt.id+"/close", nil), "auctionID", tt.id)
			rec := httptest.NewRecorder()

			handler.Close(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.AuctionResponseDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, domain.AwaitingPaymentState, resp.State)
				assert.Equal(t, "19350.00", resp.FinalPrice)
			}
		})
	}
}
