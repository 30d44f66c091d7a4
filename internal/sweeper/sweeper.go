package sweeper

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shubik-shop/auction/internal/config"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/service/auctionservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var sweepingAuctions sync.Map

type AuctionService interface {
	FindExpired(ctx context.Context, limit uint32) ([]domain.Auction, error)
	Close(ctx context.Context, id int) (*domain.Auction, error)
}

// Service periodically forces the close transition on auctions past their
// deadline. A failing auction is logged and retried on the next cycle, it
// never blocks the rest of the sweep.
type Service struct {
	auctions      AuctionService
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, auctions AuctionService) *Service {
	return &Service{
		auctions:      auctions,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deadline sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	auctions, err := s.auctions.FindExpired(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired auctions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, auction := range auctions {
		auction := auction

		if _, loaded := sweepingAuctions.LoadOrStore(auction.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingAuctions.Delete(auction.ID)
				return s.handleAuction(ctx, auction)
			})
			if err != nil {
				sweepingAuctions.Delete(auction.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping auctions", zap.Error(err))
	}
}

func (s *Service) handleAuction(ctx context.Context, auction domain.Auction) error {
	closed, err := s.auctions.Close(ctx, auction.ID)
	if errors.Is(err, auctionservice.ErrInvalidState) {
		// someone else closed it between the sweep query and now
		zap.L().Debug("Auction already transitioned", zap.Int("auctionID", auction.ID))
		return nil
	}
	if err != nil {
		return err
	}

	zap.L().Info("Auction closed by sweeper",
		zap.Int("auctionID", auction.ID),
		zap.String("state", closed.State),
	)
	return nil
}
