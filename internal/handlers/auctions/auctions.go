package auctions

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
	"github.com/shubik-shop/auction/internal/service/auctionservice"
	"github.com/shubik-shop/auction/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, itemID, storeID int, startAt, endAt time.Time, basePrice int64) (*domain.Auction, error)
	Get(ctx context.Context, id int) (*domain.Auction, error)
	List(ctx context.Context, filter domain.AuctionFilter) ([]domain.Auction, error)
	Close(ctx context.Context, id int) (*domain.Auction, error)
}

type AuctionHandler struct {
	auctionService Service
}

func New(auctionService Service) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
	}
}

// Create godoc
//
//	@Summary		Create a new auction
//	@Description	Open a timed auction for a catalog item with a base price
//	@Tags			Auctions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAuctionRequestDTO	true	"Auction to create"
//	@Success		201		{object}	dto.AuctionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or period"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		409		{object}	utils.Response	"Item already has an active auction"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions [post]
func (h *AuctionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAuctionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	auction, err := h.auctionService.Create(r.Context(), req.ItemID, req.StoreID, req.StartAt, req.EndAt, req.BasePrice)
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrInvalidPeriod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auctionservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionservice.ErrDuplicateActiveAuction):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(auction))
}

// Get godoc
//
//	@Summary		Get an auction
//	@Description	Retrieve an auction by id; an expired open auction is closed on read
//	@Tags			Auctions
//	@Produce		json
//	@Param			auctionID	path		int	true	"Auction ID"
//	@Success		200			{object}	dto.AuctionResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid auction id"
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID} [get]
func (h *AuctionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	auction, err := h.auctionService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, auctionservice.ErrAuctionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(auction))
}

// List godoc
//
//	@Summary		List auctions
//	@Description	List auctions, optionally filtered by store or item
//	@Tags			Auctions
//	@Produce		json
//	@Param			store_id	query		int	false	"Store filter"
//	@Param			item_id		query		int	false	"Item filter"
//	@Success		200			{array}		dto.AuctionResponseDTO
//	@Failure		204			{object}	utils.Response	"No data available"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions [get]
func (h *AuctionHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.AuctionFilter
	if v := r.URL.Query().Get("store_id"); v != "" {
		filter.StoreID, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("item_id"); v != "" {
		filter.ItemID, _ = strconv.Atoi(v)
	}

	auctions, err := h.auctionService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(auctions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.AuctionResponseDTO, 0, len(auctions))
	for i := range auctions {
		response = append(response, toResponseDTO(&auctions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Close godoc
//
//	@Summary		Close an auction
//	@Description	Force the close transition on an auction past its deadline
//	@Tags			Auctions
//	@Produce		json
//	@Param			auctionID	path		int	true	"Auction ID"
//	@Success		200			{object}	dto.AuctionResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid auction id"
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		409			{object}	utils.Response	"Auction is not open or deadline not reached"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/close [post]
func (h *AuctionHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	auction, err := h.auctionService.Close(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrAuctionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionservice.ErrInvalidState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(auction))
}

func toResponseDTO(auction *domain.Auction) dto.AuctionResponseDTO {
	resp := dto.AuctionResponseDTO{
		ID:           auction.ID,
		ItemID:       auction.ItemID,
		StoreID:      auction.StoreID,
		State:        auction.State,
		BasePrice:    auction.BasePrice,
		CurrentPrice: auction.CurrentPrice.StringFixed(2),
		StartAt:      auction.StartAt.Format(time.RFC3339),
		EndAt:        auction.EndAt.Format(time.RFC3339),
	}
	if auction.FinalPrice != nil {
		resp.FinalPrice = auction.FinalPrice.StringFixed(2)
	}
	return resp
}
