package dto

import "time"

type CreateAuctionRequestDTO struct {
	ItemID    int       `json:"item_id" example:"42"`
	StoreID   int       `json:"store_id" example:"7"`
	StartAt   time.Time `json:"start_at" example:"2024-12-01T10:00:00Z"`
	EndAt     time.Time `json:"end_at" example:"2024-12-08T10:00:00Z"`
	BasePrice int64     `json:"base_price" example:"10000"`
}

type AuctionResponseDTO struct {
	ID           int    `json:"id" example:"1"`
	ItemID       int    `json:"item_id" example:"42"`
	StoreID      int    `json:"store_id" example:"7"`
	State        string `json:"state" example:"OPEN"`
	BasePrice    int64  `json:"base_price" example:"10000"`
	CurrentPrice string `json:"current_price" example:"12900.00"`
	FinalPrice   string `json:"final_price,omitempty" example:"19350.00"`
	StartAt      string `json:"start_at" example:"2024-12-01T10:00:00Z"`
	EndAt        string `json:"end_at" example:"2024-12-08T10:00:00Z"`
}
