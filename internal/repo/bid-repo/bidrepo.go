package bidrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

var errStaleLedger = errors.New("auction state changed during bid placement")

// SaveWithPrice appends the bid and updates the auction's current price in
// one transaction, so no reader observes a bid without its price update.
// The price update is a compare-and-set: it only lands while the auction is
// still OPEN and no higher price was committed in between. When the guard
// fails the transaction rolls back, the bid included, and ok is false.
func (r *Repository) SaveWithPrice(ctx context.Context, bid *domain.Bid, currentPrice decimal.Decimal) (bool, error) {
	insertQuery := `
        INSERT INTO bids (auction_id, bidder_id, amount, placed_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	updateQuery := `
        UPDATE auctions
        SET current_price = $1
        WHERE id = $2 AND state = 'OPEN' AND current_price <= $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertQuery, bid.AuctionID, bid.BidderID, bid.Amount, bid.PlacedAt).Scan(&bid.ID)
		if err != nil {
			zap.L().Error("can't save bid", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, updateQuery, currentPrice, bid.AuctionID)
		if err != nil {
			zap.L().Error("can't update auction price for bid", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return errStaleLedger
		}
		return nil
	})
	if errors.Is(err, errStaleLedger) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindWinning returns the highest bid; ties go to the earliest one.
func (r *Repository) FindWinning(ctx context.Context, auctionID int) (*domain.Bid, error) {
	query := `
        SELECT *
        FROM bids
        WHERE auction_id = $1
        ORDER BY amount DESC, placed_at ASC, id ASC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, auctionID)

	var bid domain.Bid
	err := row.Scan(&bid.ID, &bid.AuctionID, &bid.BidderID, &bid.Amount, &bid.PlacedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find winning bid", zap.Error(err))
		return nil, err
	}
	return &bid, nil
}

func (r *Repository) FindByAuctionID(ctx context.Context, auctionID int) ([]domain.Bid, error) {
	query := `
        SELECT *
        FROM bids
        WHERE auction_id = $1
        ORDER BY placed_at DESC
    `
	rows, err := r.db.Query(ctx, query, auctionID)
	if err != nil {
		zap.L().Error("can't get bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		err := rows.Scan(&bid.ID, &bid.AuctionID, &bid.BidderID, &bid.Amount, &bid.PlacedAt)
		if err != nil {
			zap.L().Error("can't scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}
