package repo

import (
	"github.com/shubik-shop/auction/internal/pg"
	auctionrepo "github.com/shubik-shop/auction/internal/repo/auction-repo"
	bidrepo "github.com/shubik-shop/auction/internal/repo/bid-repo"
	itemrepo "github.com/shubik-shop/auction/internal/repo/item-repo"
	settlementrepo "github.com/shubik-shop/auction/internal/repo/settlement-repo"
	"github.com/shubik-shop/auction/internal/service/auctionservice"
	"github.com/shubik-shop/auction/internal/service/bidservice"
	"github.com/shubik-shop/auction/internal/service/paymentservice"
)

type Repositories struct {
	AuctionRepo    auctionservice.Repo
	BidRepo        bidservice.Repo
	SettlementRepo paymentservice.SettlementRepo
	ItemRepo       auctionservice.ItemRepo
	TXManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	auctionRepo := auctionrepo.New(conn, txManager)
	bidRepo := bidrepo.New(conn, txManager)
	settlementRepo := settlementrepo.New(conn)
	itemRepo := itemrepo.New(conn)

	return &Repositories{
		AuctionRepo:    auctionRepo,
		BidRepo:        bidRepo,
		SettlementRepo: settlementRepo,
		ItemRepo:       itemRepo,
		TXManager:      txManager,
	}
}
