package service

import (
	"github.com/shubik-shop/auction/internal/config"
	"github.com/shubik-shop/auction/internal/repo"
	"github.com/shubik-shop/auction/internal/service/auctionservice"
	"github.com/shubik-shop/auction/internal/service/bidservice"
	"github.com/shubik-shop/auction/internal/service/paymentservice"
	"github.com/shubik-shop/auction/pkg/clock"
)

type Services struct {
	AuctionService *auctionservice.Service
	BidService     *bidservice.Service
	PaymentService *paymentservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, gw paymentservice.Gateway, notifier auctionservice.Notifier) *Services {
	clk := clock.System{}
	auctionService := auctionservice.New(repo.AuctionRepo, repo.BidRepo, repo.ItemRepo, notifier, clk, repo.TXManager)
	bidService := bidservice.New(repo.BidRepo, repo.AuctionRepo, clk)
	paymentService := paymentservice.New(repo.SettlementRepo, repo.AuctionRepo, repo.BidRepo, auctionService, gw, clk, cfg.ReturnURL)

	return &Services{
		AuctionService: auctionService,
		BidService:     bidService,
		PaymentService: paymentService,
	}
}
