package events

import (
	"encoding/json"
	"time"
)

const (
	EventWinnerDetermined = "WinnerDetermined"

	producerName = "auction-settlement"
)

type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

// WinnerDeterminedPayload is delivered to the external notification channel
// once an auction closes with a winning bid.
type WinnerDeterminedPayload struct {
	AuctionID  int    `json:"auction_id"`
	BidID      int    `json:"bid_id"`
	BidderID   int    `json:"bidder_id"`
	ItemName   string `json:"item_name"`
	FinalPrice string `json:"final_price"`
}
