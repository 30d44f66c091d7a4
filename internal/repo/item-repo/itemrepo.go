package itemrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Item, error) {
	query := `
        SELECT *
        FROM items
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var item domain.Item
	err := row.Scan(&item.ID, &item.StoreID, &item.Name, &item.Reserved, &item.Archived, &item.AddedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) MarkReserved(ctx context.Context, id int) error {
	query := `
        UPDATE items
        SET reserved = TRUE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark item reserved", zap.Error(err))
		return err
	}
	return nil
}

// Archive takes the sold item out of the catalog after settlement.
func (r *Repository) Archive(ctx context.Context, id int) error {
	query := `
        UPDATE items
        SET archived = TRUE, reserved = FALSE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't archive item", zap.Error(err))
		return err
	}
	return nil
}
