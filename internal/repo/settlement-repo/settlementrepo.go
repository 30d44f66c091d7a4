package settlementrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicatePending is returned when the partial unique index on pending
// settlements rejects a second PENDING row for the same auction.
var ErrDuplicatePending = errors.New("auction already has a pending settlement")

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, settlement *domain.Settlement) error {
	query := `
        INSERT INTO settlements (auction_id, bid_id, state, token, amount, tax, commission, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		settlement.AuctionID, settlement.BidID, settlement.State, settlement.Token,
		settlement.Amount, settlement.Tax, settlement.Commission,
		settlement.CreatedAt, settlement.UpdatedAt,
	).Scan(&settlement.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicatePending
		}
		zap.L().Error("can't save settlement", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*domain.Settlement, error) {
	query := `
        SELECT *
        FROM settlements
        WHERE token = $1
    `
	row := r.db.QueryRow(ctx, query, token)

	var settlement domain.Settlement
	err := row.Scan(&settlement.ID, &settlement.AuctionID, &settlement.BidID, &settlement.State,
		&settlement.Token, &settlement.Amount, &settlement.Tax, &settlement.Commission,
		&settlement.CreatedAt, &settlement.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find settlement by token", zap.Error(err))
		return nil, err
	}
	return &settlement, nil
}

func (r *Repository) FindPendingByAuctionID(ctx context.Context, auctionID int) (*domain.Settlement, error) {
	query := `
        SELECT *
        FROM settlements
        WHERE auction_id = $1 AND state = 'PENDING'
    `
	row := r.db.QueryRow(ctx, query, auctionID)

	var settlement domain.Settlement
	err := row.Scan(&settlement.ID, &settlement.AuctionID, &settlement.BidID, &settlement.State,
		&settlement.Token, &settlement.Amount, &settlement.Tax, &settlement.Commission,
		&settlement.CreatedAt, &settlement.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pending settlement", zap.Error(err))
		return nil, err
	}
	return &settlement, nil
}

// MarkCompleted flips a pending settlement exactly once.
func (r *Repository) MarkCompleted(ctx context.Context, id int, at time.Time) (bool, error) {
	query := `
        UPDATE settlements
        SET state = 'COMPLETED', updated_at = $1
        WHERE id = $2 AND state = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		zap.L().Error("can't mark settlement completed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
