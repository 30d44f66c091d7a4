package dto

type InitiatePaymentResponseDTO struct {
	URL string `json:"url" example:"https://webpay.example/init?token_ws=01ab"`
}

type ConfirmPaymentRequestDTO struct {
	TokenWS string `json:"token_ws" example:"01ab"`
}

type SettlementResponseDTO struct {
	ID         int    `json:"id" example:"1"`
	AuctionID  int    `json:"auction_id" example:"1"`
	BidID      int    `json:"bid_id" example:"3"`
	State      string `json:"state" example:"COMPLETED"`
	Amount     string `json:"amount" example:"19350.00"`
	Tax        string `json:"tax" example:"2850.00"`
	Commission string `json:"commission" example:"1500.00"`
}
