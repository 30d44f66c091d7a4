package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shubik-shop/auction/internal/config"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/service/auctionservice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func NewMock(t *testing.T) (*Service, *MockAuctionService) {
	cfg := &config.Config{SweepInterval: 10 * time.Millisecond}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := NewMockAuctionService(ctrl)
	service := New(cfg, auctions)
	return service, auctions
}

func TestService_Start(t *testing.T) {
	service, auctions := NewMock(t)
	auctions.EXPECT().FindExpired(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
}

func TestService_sweep(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(auctions *MockAuctionService, pool *MockWorkerPoolI)
	}{
		{
			name: "closes expired auctions",
			prepareMock: func(auctions *MockAuctionService, pool *MockWorkerPoolI) {
				auctions.EXPECT().FindExpired(gomock.Any(), uint32(1000)).
					Return([]domain.Auction{{ID: 101}, {ID: 102}}, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task Task) error {
						return task()
					}).Times(2)
				auctions.EXPECT().Close(gomock.Any(), 101).
					Return(&domain.Auction{ID: 101, State: domain.ClosedState}, nil)
				auctions.EXPECT().Close(gomock.Any(), 102).
					Return(&domain.Auction{ID: 102, State: domain.AwaitingPaymentState}, nil)
			},
		},
		{
			name: "fails to fetch expired auctions",
			prepareMock: func(auctions *MockAuctionService, pool *MockWorkerPoolI) {
				auctions.EXPECT().FindExpired(gomock.Any(), uint32(1000)).
					Return(nil, errors.New("some error"))
			},
		},
		{
			name: "worker pool rejects the task",
			prepareMock: func(auctions *MockAuctionService, pool *MockWorkerPoolI) {
				auctions.EXPECT().FindExpired(gomock.Any(), uint32(1000)).
					Return([]domain.Auction{{ID: 103}}, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
					Return(errors.New("pool is closed"))
			},
		},
		{
			name: "already transitioned auction is skipped quietly",
			prepareMock: func(auctions *MockAuctionService, pool *MockWorkerPoolI) {
				auctions.EXPECT().FindExpired(gomock.Any(), uint32(1000)).
					Return([]domain.Auction{{ID: 104}}, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task Task) error {
						return task()
					})
				auctions.EXPECT().Close(gomock.Any(), 104).
					Return(nil, auctionservice.ErrInvalidState)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auctions := NewMockAuctionService(ctrl)
			pool := NewMockWorkerPoolI(ctrl)
			tt.prepareMock(auctions, pool)

			service := &Service{
				auctions:      auctions,
				limit:         1000,
				workerPool:    pool,
				sweepInterval: time.Minute,
			}

			zap.ReplaceGlobals(zap.NewExample())
			service.sweep(context.Background())
		})
	}
}

func TestService_sweepSkipsInFlightAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := NewMockAuctionService(ctrl)
	pool := NewMockWorkerPoolI(ctrl)

	sweepingAuctions.Store(105, struct{}{})
	defer sweepingAuctions.Delete(105)

	auctions.EXPECT().FindExpired(gomock.Any(), uint32(1000)).
		Return([]domain.Auction{{ID: 105}}, nil)

	service := &Service{
		auctions:      auctions,
		limit:         1000,
		workerPool:    pool,
		sweepInterval: time.Minute,
	}

	service.sweep(context.Background())
}

func TestService_handleAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := NewMockAuctionService(ctrl)
	service := &Service{auctions: auctions}

	auctions.EXPECT().Close(gomock.Any(), 1).
		Return(&domain.Auction{ID: 1, State: domain.ClosedState}, nil)
	assert.NoError(t, service.handleAuction(context.Background(), domain.Auction{ID: 1}))

	auctions.EXPECT().Close(gomock.Any(), 1).
		Return(nil, auctionservice.ErrInvalidState)
	assert.NoError(t, service.handleAuction(context.Background(), domain.Auction{ID: 1}))

	auctions.EXPECT().Close(gomock.Any(), 1).
		Return(nil, errors.New("some error"))
	assert.Error(t, service.handleAuction(context.Background(), domain.Auction{ID: 1}))
}
