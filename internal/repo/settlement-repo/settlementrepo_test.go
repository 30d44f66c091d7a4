package settlementrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/stretchr/testify/assert"
)

var settlementColumns = []string{"id", "auction_id", "bid_id", "state", "token", "amount", "tax", "commission", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func testSettlement(timeNow time.Time) *domain.Settlement {
	return &domain.Settlement{
		AuctionID:  1,
		BidID:      3,
		State:      domain.PendingSettlement,
		Token:      "tok-1",
		Amount:     decimal.NewFromInt(19350),
		Tax:        decimal.NewFromInt(2850),
		Commission: decimal.NewFromInt(1500),
		CreatedAt:  timeNow,
		UpdatedAt:  timeNow,
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name          string
		mockSetup     func()
		expectErr     bool
		expectedError error
	}{
		{
			name: "Settlement saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO settlements (auction_id, bid_id, state, token, amount, tax, commission, created_at, updated_at)`)).
					WithArgs(1, 3, domain.PendingSettlement, "tok-1",
						decimal.NewFromInt(19350), decimal.NewFromInt(2850), decimal.NewFromInt(1500),
						timeNow, timeNow).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))
			},
			expectErr: false,
		},
		{
			name: "Pending settlement already exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO settlements (auction_id, bid_id, state, token, amount, tax, commission, created_at, updated_at)`)).
					WithArgs(1, 3, domain.PendingSettlement, "tok-1",
						decimal.NewFromInt(19350), decimal.NewFromInt(2850), decimal.NewFromInt(1500),
						timeNow, timeNow).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_settlements_pending"})
			},
			expectErr:     true,
			expectedError: ErrDuplicatePending,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO settlements (auction_id, bid_id, state, token, amount, tax, commission, created_at, updated_at)`)).
					WithArgs(1, 3, domain.PendingSettlement, "tok-1",
						decimal.NewFromInt(19350), decimal.NewFromInt(2850), decimal.NewFromInt(1500),
						timeNow, timeNow).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			settlement := testSettlement(timeNow)
			err := repo.Save(context.Background(), settlement)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 9, settlement.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByToken(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		token     string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:  "Settlement exists",
			token: "tok-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(settlementColumns).
					AddRow(9, 1, 3, domain.PendingSettlement, "tok-1",
						decimal.NewFromInt(19350), decimal.NewFromInt(2850), decimal.NewFromInt(1500),
						timeNow, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE token = $1`)).
					WithArgs("tok-1").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name:  "Settlement does not exist",
			token: "tok-9",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE token = $1`)).
					WithArgs("tok-9").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name:  "Database error",
			token: "tok-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE token = $1`)).
					WithArgs("tok-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			settlement, err := repo.FindByToken(context.Background(), tt.token)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, settlement)
				assert.Equal(t, tt.token, settlement.Token)
			} else {
				assert.Nil(t, settlement)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindPendingByAuctionID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	rows := pgxmock.NewRows(settlementColumns).
		AddRow(9, 1, 3, domain.PendingSettlement, "tok-1",
			decimal.NewFromInt(19350), decimal.NewFromInt(2850), decimal.NewFromInt(1500),
			timeNow, timeNow)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE auction_id = $1 AND state = 'PENDING'`)).
		WithArgs(1).
		WillReturnRows(rows)

	settlement, err := repo.FindPendingByAuctionID(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, settlement)
	assert.Equal(t, domain.PendingSettlement, settlement.State)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE auction_id = $1 AND state = 'PENDING'`)).
		WithArgs(2).
		WillReturnError(pgx.ErrNoRows)

	settlement, err = repo.FindPendingByAuctionID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, settlement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectOK  bool
		expectErr bool
	}{
		{
			name: "Pending settlement is completed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET state = 'COMPLETED', updated_at = $1`)).
					WithArgs(timeNow, 9).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectOK: true,
		},
		{
			name: "Settlement already completed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET state = 'COMPLETED', updated_at = $1`)).
					WithArgs(timeNow, 9).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectOK: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET state = 'COMPLETED', updated_at = $1`)).
					WithArgs(timeNow, 9).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.MarkCompleted(context.Background(), 9, timeNow)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectOK, ok)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
