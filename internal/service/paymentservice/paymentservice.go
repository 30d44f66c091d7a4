package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/gateway"
	settlementrepo "github.com/shubik-shop/auction/internal/repo/settlement-repo"
	"github.com/shubik-shop/auction/internal/service/pricing"
	"github.com/shubik-shop/auction/pkg/clock"
	"go.uber.org/zap"
)

type SettlementRepo interface {
	Save(ctx context.Context, settlement *domain.Settlement) error
	FindByToken(ctx context.Context, token string) (*domain.Settlement, error)
	FindPendingByAuctionID(ctx context.Context, auctionID int) (*domain.Settlement, error)
	MarkCompleted(ctx context.Context, id int, at time.Time) (bool, error)
}

type AuctionRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Auction, error)
}

type BidRepo interface {
	FindWinning(ctx context.Context, auctionID int) (*domain.Bid, error)
}

// AuctionCompleter drives the AWAITING_PAYMENT -> CLOSED transition once the
// gateway confirms the payment.
type AuctionCompleter interface {
	CompletePayment(ctx context.Context, id int) (*domain.Auction, error)
}

// Gateway is the external payment collaborator (create/commit handshake).
type Gateway interface {
	Create(ctx context.Context, buyOrder, sessionID string, amount decimal.Decimal, returnURL string) (*gateway.CreateResponse, error)
	Commit(ctx context.Context, token string) (gateway.CommitStatus, error)
}

type Service struct {
	repo        SettlementRepo
	auctionRepo AuctionRepo
	bidRepo     BidRepo
	auctions    AuctionCompleter
	gateway     Gateway
	clock       clock.Clock
	returnURL   string
}

func New(repo SettlementRepo, auctionRepo AuctionRepo, bidRepo BidRepo, auctions AuctionCompleter, gw Gateway, clk clock.Clock, returnURL string) *Service {
	return &Service{
		repo:        repo,
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
		auctions:    auctions,
		gateway:     gw,
		clock:       clk,
		returnURL:   returnURL,
	}
}

var (
	ErrAuctionNotFound       = errors.New("auction not found")
	ErrInvalidState          = errors.New("auction is not awaiting payment")
	ErrNoBidsToSettle        = errors.New("no bids to settle")
	ErrPaymentAlreadyPending = errors.New("payment already pending")
	ErrSettlementNotFound    = errors.New("settlement not found")
	ErrNotAuthorized         = errors.New("payment was not authorized")
	ErrGateway               = errors.New("payment gateway error")
)

// Initiate starts the two-phase handshake: it registers the transaction at
// the gateway and only then records the pending settlement, so a gateway
// failure leaves no partial state. Returns the payer redirect URL.
func (s *Service) Initiate(ctx context.Context, auctionID int) (string, error) {
	auction, err := s.auctionRepo.FindByID(ctx, auctionID)
	if err != nil {
		return "", err
	}
	if auction == nil {
		return "", ErrAuctionNotFound
	}
	if auction.State != domain.AwaitingPaymentState {
		return "", ErrInvalidState
	}

	winner, err := s.bidRepo.FindWinning(ctx, auctionID)
	if err != nil {
		return "", err
	}
	if winner == nil {
		return "", ErrNoBidsToSettle
	}

	pending, err := s.repo.FindPendingByAuctionID(ctx, auctionID)
	if err != nil {
		return "", err
	}
	if pending != nil {
		zap.L().Info("payment already pending", zap.Int("auctionID", auctionID))
		return "", ErrPaymentAlreadyPending
	}

	amount, err := pricing.Total(winner.Amount)
	if err != nil {
		return "", err
	}
	tax, err := pricing.Tax(winner.Amount)
	if err != nil {
		return "", err
	}
	commission, err := pricing.Commission(winner.Amount)
	if err != nil {
		return "", err
	}

	buyOrder := fmt.Sprintf("%d-%d", auction.ID, winner.ID)
	sessionID := "session-" + uuid.NewString()

	resp, err := s.gateway.Create(ctx, buyOrder, sessionID, amount, s.returnURL)
	if err != nil {
		zap.L().Error("gateway create failed", zap.Int("auctionID", auctionID), zap.Error(err))
		return "", errors.Join(ErrGateway, err)
	}

	now := s.clock.Now()
	settlement := &domain.Settlement{
		AuctionID:  auction.ID,
		BidID:      winner.ID,
		State:      domain.PendingSettlement,
		Token:      resp.Token,
		Amount:     amount,
		Tax:        tax,
		Commission: commission,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Save(ctx, settlement); err != nil {
		if errors.Is(err, settlementrepo.ErrDuplicatePending) {
			// a concurrent Initiate won the race after our pending check
			zap.L().Info("payment already pending", zap.Int("auctionID", auctionID))
			return "", ErrPaymentAlreadyPending
		}
		// the gateway transaction exists without a local row; the token
		// lookup in Confirm is the reconciliation path
		zap.L().Error("can't save settlement after gateway create",
			zap.Int("auctionID", auctionID), zap.String("token", resp.Token), zap.Error(err))
		return "", err
	}

	return resp.URL + "?token_ws=" + resp.Token, nil
}

// Confirm finishes the handshake for the given token. Confirming an already
// completed settlement is a no-op success.
func (s *Service) Confirm(ctx context.Context, token string) (*domain.Settlement, error) {
	settlement, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}
	if settlement.State == domain.CompletedSettlement {
		return settlement, nil
	}

	status, err := s.gateway.Commit(ctx, token)
	if err != nil {
		// settlement stays pending, the caller retries with the same token
		zap.L().Error("gateway commit failed", zap.String("token", token), zap.Error(err))
		return nil, errors.Join(ErrGateway, err)
	}
	if status != gateway.StatusAuthorized {
		zap.L().Info("payment not authorized", zap.Int("auctionID", settlement.AuctionID))
		return nil, ErrNotAuthorized
	}

	now := s.clock.Now()
	ok, err := s.repo.MarkCompleted(ctx, settlement.ID, now)
	if err != nil {
		return nil, err
	}
	settlement.State = domain.CompletedSettlement
	settlement.UpdatedAt = now
	if !ok {
		// a concurrent confirm got there first, side effects already ran
		return settlement, nil
	}

	if _, err := s.auctions.CompletePayment(ctx, settlement.AuctionID); err != nil {
		zap.L().Error("can't complete auction after payment",
			zap.Int("auctionID", settlement.AuctionID), zap.Error(err))
	}

	return settlement, nil
}
