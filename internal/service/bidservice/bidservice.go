package bidservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/service/pricing"
	"github.com/shubik-shop/auction/pkg/clock"
	"go.uber.org/zap"
)

type Repo interface {
	SaveWithPrice(ctx context.Context, bid *domain.Bid, currentPrice decimal.Decimal) (bool, error)
	FindWinning(ctx context.Context, auctionID int) (*domain.Bid, error)
	FindByAuctionID(ctx context.Context, auctionID int) ([]domain.Bid, error)
}

type AuctionRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Auction, error)
}

type Service struct {
	repo        Repo
	auctionRepo AuctionRepo
	clock       clock.Clock
}

func New(repo Repo, auctionRepo AuctionRepo, clk clock.Clock) *Service {
	return &Service{
		repo:        repo,
		auctionRepo: auctionRepo,
		clock:       clk,
	}
}

var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAuctionClosed   = errors.New("auction is closed for bidding")
	ErrBidTooLow       = errors.New("bid amount is too low")
	ErrInvalidAmount   = errors.New("bid amount must be positive")
)

// PlaceBid appends a bid to the ledger. The new amount must beat the current
// winning bid, or reach the base price when the ledger is empty.
func (s *Service) PlaceBid(ctx context.Context, auctionID, bidderID int, amount int64) (*domain.Bid, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	auction, err := s.auctionRepo.FindByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	now := s.clock.Now()
	if auction.State != domain.OpenState || !now.Before(auction.EndAt) {
		zap.L().Info("bid rejected, auction closed", zap.Int("auctionID", auctionID))
		return nil, ErrAuctionClosed
	}

	winning, err := s.repo.FindWinning(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if winning != nil && amount <= winning.Amount {
		return nil, ErrBidTooLow
	}
	if winning == nil && amount < auction.BasePrice {
		return nil, ErrBidTooLow
	}

	currentPrice, err := pricing.Total(amount)
	if err != nil {
		return nil, err
	}

	bid := &domain.Bid{
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		PlacedAt:  now,
	}
	ok, err := s.repo.SaveWithPrice(ctx, bid, currentPrice)
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return nil, err
	}
	if !ok {
		// lost a race: the auction transitioned or a higher bid committed
		// between validation and the write; re-read to report the cause
		zap.L().Info("bid rejected by concurrent update", zap.Int("auctionID", auctionID))
		current, err := s.auctionRepo.FindByID(ctx, auctionID)
		if err != nil {
			return nil, err
		}
		if current == nil || current.State != domain.OpenState {
			return nil, ErrAuctionClosed
		}
		return nil, ErrBidTooLow
	}

	return bid, nil
}

func (s *Service) WinningBid(ctx context.Context, auctionID int) (*domain.Bid, error) {
	bid, err := s.repo.FindWinning(ctx, auctionID)
	if err != nil {
		zap.L().Error("failed to get winning bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (s *Service) ListBids(ctx context.Context, auctionID int) ([]domain.Bid, error) {
	auction, err := s.auctionRepo.FindByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	bids, err := s.repo.FindByAuctionID(ctx, auctionID)
	if err != nil {
		zap.L().Error("failed to get bids", zap.Error(err))
		return nil, err
	}
	return bids, nil
}
