package itemrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Item
	}{
		{
			name: "Item exists",
			id:   2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "store_id", "name", "reserved", "archived", "added_at"}).
					AddRow(2, 3, "lamp", false, false, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM items`)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			result: &domain.Item{ID: 2, StoreID: 3, Name: "lamp", AddedAt: timeNow},
		},
		{
			name: "Item does not exist",
			id:   9,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM items`)).
					WithArgs(9).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM items`)).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			item, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, item)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkReserved(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET reserved = TRUE`)).
		WithArgs(2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkReserved(context.Background(), 2)
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`SET reserved = TRUE`)).
		WithArgs(2).
		WillReturnError(errors.New("database error"))

	err = repo.MarkReserved(context.Background(), 2)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Archive(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET archived = TRUE, reserved = FALSE`)).
		WithArgs(2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Archive(context.Background(), 2)
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`SET archived = TRUE, reserved = FALSE`)).
		WithArgs(2).
		WillReturnError(errors.New("database error"))

	err = repo.Archive(context.Background(), 2)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
