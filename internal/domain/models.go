package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// OpenState auction accepts bids until the deadline;
	OpenState string = "OPEN"
	// AwaitingPaymentState auction closed with a winner, payment not completed;
	AwaitingPaymentState string = "AWAITING_PAYMENT"
	// ClosedState terminal state, no transitions leave it;
	ClosedState string = "CLOSED"
)

const (
	// PendingSettlement transaction created at the gateway, not yet confirmed;
	PendingSettlement string = "PENDING"
	// CompletedSettlement gateway authorized the payment;
	CompletedSettlement string = "COMPLETED"
	// FailedSettlement gateway rejected the payment;
	FailedSettlement string = "FAILED"
)

// AuctionFilter narrows auction listings; zero values mean no filter.
type AuctionFilter struct {
	StoreID int
	ItemID  int
}

type Item struct {
	ID       int       `db:"id"`
	StoreID  int       `db:"store_id"`
	Name     string    `db:"name"`
	Reserved bool      `db:"reserved"`
	Archived bool      `db:"archived"`
	AddedAt  time.Time `db:"added_at"`
}

type Auction struct {
	ID           int              `db:"id"`
	ItemID       int              `db:"item_id"`
	StoreID      int              `db:"store_id"`
	State        string           `db:"state"`
	BasePrice    int64            `db:"base_price"`
	CurrentPrice decimal.Decimal  `db:"current_price"`
	FinalPrice   *decimal.Decimal `db:"final_price"`
	StartAt      time.Time        `db:"start_at"`
	EndAt        time.Time        `db:"end_at"`
	CreatedAt    time.Time        `db:"created_at"`
}

type Bid struct {
	ID        int       `db:"id"`
	AuctionID int       `db:"auction_id"`
	BidderID  int       `db:"bidder_id"`
	Amount    int64     `db:"amount"`
	PlacedAt  time.Time `db:"placed_at"`
}

type Settlement struct {
	ID         int             `db:"id"`
	AuctionID  int             `db:"auction_id"`
	BidID      int             `db:"bid_id"`
	State      string          `db:"state"`
	Token      string          `db:"token"`
	Amount     decimal.Decimal `db:"amount"`
	Tax        decimal.Decimal `db:"tax"`
	Commission decimal.Decimal `db:"commission"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}
