package dto

type PlaceBidRequestDTO struct {
	BidderID int   `json:"bidder_id" example:"15"`
	Amount   int64 `json:"amount" example:"15000"`
}

type BidResponseDTO struct {
	ID        int    `json:"id" example:"3"`
	AuctionID int    `json:"auction_id" example:"1"`
	BidderID  int    `json:"bidder_id" example:"15"`
	Amount    int64  `json:"amount" example:"15000"`
	PlacedAt  string `json:"placed_at" example:"2024-12-05T16:09:57Z"`
}
