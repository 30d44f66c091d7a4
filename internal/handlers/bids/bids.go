package bids

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/dto"
	"github.com/shubik-shop/auction/internal/service/bidservice"
	"github.com/shubik-shop/auction/pkg/utils"
)

type Service interface {
	PlaceBid(ctx context.Context, auctionID, bidderID int, amount int64) (*domain.Bid, error)
	ListBids(ctx context.Context, auctionID int) ([]domain.Bid, error)
}

type BidHandler struct {
	bidService Service
}

func New(bidService Service) *BidHandler {
	return &BidHandler{
		bidService: bidService,
	}
}

// PlaceBid godoc
//
//	@Summary		Place a bid
//	@Description	Record a bid against an open auction; the amount must beat the current winning bid
//	@Tags			Bids
//	@Accept			json
//	@Produce		json
//	@Param			auctionID	path		int						true	"Auction ID"
//	@Param			request		body		dto.PlaceBidRequestDTO	true	"Bid to place"
//	@Success		201			{object}	dto.BidResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body or amount"
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		409			{object}	utils.Response	"Auction closed or bid too low"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/bids [post]
func (h *BidHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	var req dto.PlaceBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bid, err := h.bidService.PlaceBid(r.Context(), auctionID, req.BidderID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, bidservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, bidservice.ErrAuctionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, bidservice.ErrAuctionClosed), errors.Is(err, bidservice.ErrBidTooLow):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.BidResponseDTO{
		ID:        bid.ID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		PlacedAt:  bid.PlacedAt.Format(time.RFC3339),
	})
}

// ListBids godoc
//
//	@Summary		List bids for an auction
//	@Description	Retrieve the bid ledger for an auction, newest first
//	@Tags			Bids
//	@Produce		json
//	@Param			auctionID	path		int	true	"Auction ID"
//	@Success		200			{array}		dto.BidResponseDTO
//	@Failure		204			{object}	utils.Response	"No data available"
//	@Failure		400			{object}	utils.Response	"Invalid auction id"
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/bids [get]
func (h *BidHandler) ListBids(w http.ResponseWriter, r *http.Request) {
	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	bids, err := h.bidService.ListBids(r.Context(), auctionID)
	if err != nil {
		if errors.Is(err, bidservice.ErrAuctionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(bids) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.BidResponseDTO
	for _, bid := range bids {
		response = append(response, dto.BidResponseDTO{
			ID:        bid.ID,
			AuctionID: bid.AuctionID,
			BidderID:  bid.BidderID,
			Amount:    bid.Amount,
			PlacedAt:  bid.PlacedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
