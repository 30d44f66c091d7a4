package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shubik-shop/auction/internal/pg"
	auctionrepo "github.com/shubik-shop/auction/internal/repo/auction-repo"
	bidrepo "github.com/shubik-shop/auction/internal/repo/bid-repo"
	itemrepo "github.com/shubik-shop/auction/internal/repo/item-repo"
	settlementrepo "github.com/shubik-shop/auction/internal/repo/settlement-repo"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.AuctionRepo)
	assert.NotNil(t, repo.BidRepo)
	assert.NotNil(t, repo.SettlementRepo)
	assert.NotNil(t, repo.ItemRepo)

	assert.IsType(t, &auctionrepo.Repository{}, repo.AuctionRepo)
	assert.IsType(t, &bidrepo.Repository{}, repo.BidRepo)
	assert.IsType(t, &settlementrepo.Repository{}, repo.SettlementRepo)
	assert.IsType(t, &itemrepo.Repository{}, repo.ItemRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
