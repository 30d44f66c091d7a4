package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/shubik-shop/auction/docs"
	"github.com/shubik-shop/auction/internal/service"
	"github.com/shubik-shop/auction/internal/service/auctionservice"
	"github.com/shubik-shop/auction/internal/service/bidservice"
	"github.com/shubik-shop/auction/internal/service/paymentservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	services := &service.Services{
		AuctionService: &auctionservice.Service{},
		BidService:     &bidservice.Service{},
		PaymentService: &paymentservice.Service{},
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctionHandler := NewMockAuctionHandler(ctrl)
	mockBidHandler := NewMockBidHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)

	mockAuctionHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().Close(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidHandler.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidHandler.EXPECT().ListBids(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Initiate(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Confirm(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuctionHandler: mockAuctionHandler,
		BidHandler:     mockBidHandler,
		PaymentHandler: mockPaymentHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auctions", http.StatusOK},
		{"GET", "/api/auctions", http.StatusOK},
		{"GET", "/api/auctions/1", http.StatusOK},
		{"POST", "/api/auctions/1/close", http.StatusOK},
		{"POST", "/api/auctions/1/bids", http.StatusOK},
		{"GET", "/api/auctions/1/bids", http.StatusOK},
		{"POST", "/api/auctions/1/payments", http.StatusOK},
		{"POST", "/api/payments/confirm", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
