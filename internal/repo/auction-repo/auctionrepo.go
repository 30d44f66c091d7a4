package auctionrepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) Save(ctx context.Context, auction *domain.Auction) error {
	query := `
        INSERT INTO auctions (item_id, store_id, state, base_price, current_price, start_at, end_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			auction.ItemID, auction.StoreID, auction.State, auction.BasePrice,
			auction.CurrentPrice, auction.StartAt, auction.EndAt, auction.CreatedAt,
		).Scan(&auction.ID)
		if err != nil {
			zap.L().Error("can't save auction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Auction, error) {
	query := `
        SELECT *
        FROM auctions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var auction domain.Auction
	err := row.Scan(&auction.ID, &auction.ItemID, &auction.StoreID, &auction.State, &auction.BasePrice,
		&auction.CurrentPrice, &auction.FinalPrice, &auction.StartAt, &auction.EndAt, &auction.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find auction", zap.Error(err))
		return nil, err
	}
	return &auction, nil
}

func (r *Repository) FindOpenByItemID(ctx context.Context, itemID int) (*domain.Auction, error) {
	query := `
        SELECT *
        FROM auctions
        WHERE item_id = $1 AND state = 'OPEN'
    `
	row := r.db.QueryRow(ctx, query, itemID)

	var auction domain.Auction
	err := row.Scan(&auction.ID, &auction.ItemID, &auction.StoreID, &auction.State, &auction.BasePrice,
		&auction.CurrentPrice, &auction.FinalPrice, &auction.StartAt, &auction.EndAt, &auction.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find open auction for item", zap.Error(err))
		return nil, err
	}
	return &auction, nil
}

func (r *Repository) FindAll(ctx context.Context, filter domain.AuctionFilter) ([]domain.Auction, error) {
	query := `
        SELECT *
        FROM auctions
        WHERE ($1 = 0 OR store_id = $1) AND ($2 = 0 OR item_id = $2)
        ORDER BY start_at DESC
    `
	rows, err := r.db.Query(ctx, query, filter.StoreID, filter.ItemID)
	if err != nil {
		zap.L().Error("can't get auctions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var auctions []domain.Auction
	for rows.Next() {
		var auction domain.Auction
		err := rows.Scan(&auction.ID, &auction.ItemID, &auction.StoreID, &auction.State, &auction.BasePrice,
			&auction.CurrentPrice, &auction.FinalPrice, &auction.StartAt, &auction.EndAt, &auction.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan auction row", zap.Error(err))
			return nil, err
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}

func (r *Repository) FindExpired(ctx context.Context, limit uint32) ([]domain.Auction, error) {
	query := `
        SELECT *
        FROM auctions
        WHERE state = 'OPEN' AND end_at <= NOW()
        ORDER BY end_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get expired auctions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var auctions []domain.Auction
	for rows.Next() {
		var auction domain.Auction
		err := rows.Scan(&auction.ID, &auction.ItemID, &auction.StoreID, &auction.State, &auction.BasePrice,
			&auction.CurrentPrice, &auction.FinalPrice, &auction.StartAt, &auction.EndAt, &auction.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan expired auction row", zap.Error(err))
			return nil, err
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}

func (r *Repository) UpdateCurrentPrice(ctx context.Context, id int, price decimal.Decimal) error {
	query := `
        UPDATE auctions
        SET current_price = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, price, id)
	if err != nil {
		zap.L().Error("can't update current price", zap.Error(err))
		return err
	}
	return nil
}

// TransitionFromOpen performs the check-then-set atomically: the row is
// updated only while still OPEN, so exactly one of two racing callers wins.
func (r *Repository) TransitionFromOpen(ctx context.Context, id int, state string, finalPrice decimal.Decimal) (bool, error) {
	query := `
        UPDATE auctions
        SET state = $1, final_price = $2
        WHERE id = $3 AND state = 'OPEN'
    `
	tag, err := r.db.Exec(ctx, query, state, finalPrice, id)
	if err != nil {
		zap.L().Error("can't transition auction from open", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CompletePayment moves AWAITING_PAYMENT to CLOSED and records the actual
// close time.
func (r *Repository) CompletePayment(ctx context.Context, id int, closedAt time.Time) (bool, error) {
	query := `
        UPDATE auctions
        SET state = 'CLOSED', end_at = $1
        WHERE id = $2 AND state = 'AWAITING_PAYMENT'
    `
	tag, err := r.db.Exec(ctx, query, closedAt, id)
	if err != nil {
		zap.L().Error("can't complete auction payment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
