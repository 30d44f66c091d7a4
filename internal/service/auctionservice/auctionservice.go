package auctionservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/events"
	"github.com/shubik-shop/auction/internal/pg"
	"github.com/shubik-shop/auction/internal/service/pricing"
	"github.com/shubik-shop/auction/pkg/clock"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, auction *domain.Auction) error
	FindByID(ctx context.Context, id int) (*domain.Auction, error)
	FindOpenByItemID(ctx context.Context, itemID int) (*domain.Auction, error)
	FindAll(ctx context.Context, filter domain.AuctionFilter) ([]domain.Auction, error)
	FindExpired(ctx context.Context, limit uint32) ([]domain.Auction, error)
	UpdateCurrentPrice(ctx context.Context, id int, price decimal.Decimal) error
	TransitionFromOpen(ctx context.Context, id int, state string, finalPrice decimal.Decimal) (bool, error)
	CompletePayment(ctx context.Context, id int, closedAt time.Time) (bool, error)
}

type BidRepo interface {
	FindWinning(ctx context.Context, auctionID int) (*domain.Bid, error)
}

type ItemRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Item, error)
	MarkReserved(ctx context.Context, id int) error
	Archive(ctx context.Context, id int) error
}

// Notifier hands the winner event to the external notification channel.
type Notifier interface {
	NotifyWinner(ctx context.Context, payload events.WinnerDeterminedPayload) error
}

type Service struct {
	repo      Repo
	bidRepo   BidRepo
	itemRepo  ItemRepo
	notifier  Notifier
	clock     clock.Clock
	txManager pg.TXManager
}

func New(repo Repo, bidRepo BidRepo, itemRepo ItemRepo, notifier Notifier, clk clock.Clock, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		bidRepo:   bidRepo,
		itemRepo:  itemRepo,
		notifier:  notifier,
		clock:     clk,
		txManager: txManager,
	}
}

var (
	ErrAuctionNotFound        = errors.New("auction not found")
	ErrItemNotFound           = errors.New("item not found")
	ErrInvalidPeriod          = errors.New("auction period is invalid")
	ErrDuplicateActiveAuction = errors.New("item already has an active auction")
	ErrInvalidState           = errors.New("invalid auction state for transition")
)

func (s *Service) Create(ctx context.Context, itemID, storeID int, startAt, endAt time.Time, basePrice int64) (*domain.Auction, error) {
	now := s.clock.Now()
	if !endAt.After(startAt) || !endAt.After(now) {
		return nil, ErrInvalidPeriod
	}

	currentPrice, err := pricing.Total(basePrice)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	existing, err := s.repo.FindOpenByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("item already has an active auction", zap.Int("itemID", itemID))
		return nil, ErrDuplicateActiveAuction
	}

	auction := &domain.Auction{
		ItemID:       itemID,
		StoreID:      storeID,
		State:        domain.OpenState,
		BasePrice:    basePrice,
		CurrentPrice: currentPrice,
		StartAt:      startAt,
		EndAt:        endAt,
		CreatedAt:    now,
	}
	// the auction row and the item reservation land together or not at all
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, auction); err != nil {
			zap.L().Error("can't save auction", zap.Error(err))
			return err
		}
		if err := s.itemRepo.MarkReserved(ctx, itemID); err != nil {
			zap.L().Error("can't mark item reserved", zap.Int("itemID", itemID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return auction, nil
}

// Get returns the auction, closing it lazily when the deadline has passed.
func (s *Service) Get(ctx context.Context, id int) (*domain.Auction, error) {
	auction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	if auction.State == domain.OpenState && !s.clock.Now().Before(auction.EndAt) {
		closed, err := s.Close(ctx, id)
		if err == nil {
			return closed, nil
		}
		if !errors.Is(err, ErrInvalidState) {
			return nil, err
		}
		// lost the race against another closer, re-read the final state
		auction, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if auction == nil {
			return nil, ErrAuctionNotFound
		}
	}

	return auction, nil
}

func (s *Service) List(ctx context.Context, filter domain.AuctionFilter) ([]domain.Auction, error) {
	auctions, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		zap.L().Error("failed to get auctions", zap.Error(err))
		return nil, err
	}
	return auctions, nil
}

// FindExpired lists open auctions past their deadline, for the sweeper.
func (s *Service) FindExpired(ctx context.Context, limit uint32) ([]domain.Auction, error) {
	return s.repo.FindExpired(ctx, limit)
}

// Close finishes an expired auction: with a winning bid it moves to
// AWAITING_PAYMENT at total settlement price and emits the winner event,
// without bids it closes at base price. The compare-and-set in the repo
// guarantees the transition runs at most once under concurrent callers.
func (s *Service) Close(ctx context.Context, id int) (*domain.Auction, error) {
	auction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}
	if auction.State != domain.OpenState {
		return nil, ErrInvalidState
	}
	if s.clock.Now().Before(auction.EndAt) {
		zap.L().Info("auction deadline not reached", zap.Int("auctionID", id))
		return nil, ErrInvalidState
	}

	winner, err := s.bidRepo.FindWinning(ctx, id)
	if err != nil {
		return nil, err
	}

	if winner == nil {
		finalPrice := decimal.NewFromInt(auction.BasePrice)
		ok, err := s.repo.TransitionFromOpen(ctx, id, domain.ClosedState, finalPrice)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidState
		}
		auction.State = domain.ClosedState
		auction.FinalPrice = &finalPrice
		return auction, nil
	}

	finalPrice, err := pricing.Total(winner.Amount)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.TransitionFromOpen(ctx, id, domain.AwaitingPaymentState, finalPrice)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidState
	}
	auction.State = domain.AwaitingPaymentState
	auction.FinalPrice = &finalPrice

	s.notifyWinner(ctx, auction, winner)

	return auction, nil
}

// CompletePayment finishes the settled auction and hands the item over for
// archival. Valid only from AWAITING_PAYMENT.
func (s *Service) CompletePayment(ctx context.Context, id int) (*domain.Auction, error) {
	auction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	now := s.clock.Now()
	ok, err := s.repo.CompletePayment(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidState
	}
	auction.State = domain.ClosedState
	auction.EndAt = now

	if err := s.itemRepo.Archive(ctx, auction.ItemID); err != nil {
		// settlement is already final, archival is retried out of band
		zap.L().Error("can't archive sold item", zap.Int("itemID", auction.ItemID), zap.Error(err))
	}

	return auction, nil
}

func (s *Service) notifyWinner(ctx context.Context, auction *domain.Auction, winner *domain.Bid) {
	itemName := ""
	item, err := s.itemRepo.FindByID(ctx, auction.ItemID)
	if err == nil && item != nil {
		itemName = item.Name
	}

	payload := events.WinnerDeterminedPayload{
		AuctionID:  auction.ID,
		BidID:      winner.ID,
		BidderID:   winner.BidderID,
		ItemName:   itemName,
		FinalPrice: auction.FinalPrice.StringFixed(2),
	}
	if err := s.notifier.NotifyWinner(ctx, payload); err != nil {
		zap.L().Error("can't notify auction winner", zap.Int("auctionID", auction.ID), zap.Error(err))
	}
}
