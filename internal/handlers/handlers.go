package handlers

import (
	"net/http"

	_ "github.com/shubik-shop/auction/docs"
	auctionhandlers "github.com/shubik-shop/auction/internal/handlers/auctions"
	bidhandlers "github.com/shubik-shop/auction/internal/handlers/bids"
	paymenthandlers "github.com/shubik-shop/auction/internal/handlers/payments"
	"github.com/shubik-shop/auction/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuctionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
}

type BidHandler interface {
	PlaceBid(w http.ResponseWriter, r *http.Request)
	ListBids(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Initiate(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuctionHandler AuctionHandler
	BidHandler     BidHandler
	PaymentHandler PaymentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuctionHandler: auctionhandlers.New(s.AuctionService),
		BidHandler:     bidhandlers.New(s.BidService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auctions", func(r chi.Router) {
			r.Post("/", h.AuctionHandler.Create)
			r.Get("/", h.AuctionHandler.List)

			r.Route("/{auctionID}", func(r chi.Router) {
				r.Get("/", h.AuctionHandler.Get)
				r.Post("/close", h.AuctionHandler.Close)
				r.Route("/bids", func(r chi.Router) {
					r.Post("/", h.BidHandler.PlaceBid)
					r.Get("/", h.BidHandler.ListBids)
				})
				r.Post("/payments", h.PaymentHandler.Initiate)
			})
		})
		r.Post("/payments/confirm", h.PaymentHandler.Confirm)
	})

	return r
}
