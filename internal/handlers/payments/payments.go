package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shubik-shop/auction/internal/domain"
	"github.com/shubik-shop/auction/internal/dto"
	"github.com/shubik-shop/auction/internal/service/paymentservice"
	"github.com/shubik-shop/auction/pkg/utils"
)

type Service interface {
	Initiate(ctx context.Context, auctionID int) (string, error)
	Confirm(ctx context.Context, token string) (*domain.Settlement, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Initiate godoc
//
//	@Summary		Initiate payment for a won auction
//	@Description	Create the gateway transaction for the winning bid and return the payer redirect URL
//	@Tags			Payments
//	@Produce		json
//	@Param			auctionID	path		int	true	"Auction ID"
//	@Success		200			{object}	dto.InitiatePaymentResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid auction id"
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		409			{object}	utils.Response	"Not awaiting payment, no bids, or payment already pending"
//	@Failure		502			{object}	utils.Response	"Payment gateway error"
//	@Router			/api/auctions/{auctionID}/payments [post]
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	url, err := h.paymentService.Initiate(r.Context(), auctionID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrAuctionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrInvalidState),
			errors.Is(err, paymentservice.ErrNoBidsToSettle),
			errors.Is(err, paymentservice.ErrPaymentAlreadyPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, paymentservice.ErrGateway):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InitiatePaymentResponseDTO{URL: url})
}

// Confirm godoc
//
//	@Summary		Confirm a payment
//	@Description	Commit the gateway transaction behind the token; repeating a confirmed token is a no-op success
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmPaymentRequestDTO	true	"Gateway token"
//	@Success		200		{object}	dto.SettlementResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing token"
//	@Failure		402		{object}	utils.Response	"Payment was not authorized"
//	@Failure		404		{object}	utils.Response	"Settlement not found"
//	@Failure		502		{object}	utils.Response	"Payment gateway error"
//	@Router			/api/payments/confirm [post]
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TokenWS == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Payment token is required")
		return
	}

	settlement, err := h.paymentService.Confirm(r.Context(), req.TokenWS)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrSettlementNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrNotAuthorized):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, paymentservice.ErrGateway):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponseDTO{
		ID:         settlement.ID,
		AuctionID:  settlement.AuctionID,
		BidID:      settlement.BidID,
		State:      settlement.State,
		Amount:     settlement.Amount.StringFixed(2),
		Tax:        settlement.Tax.StringFixed(2),
		Commission: settlement.Commission.StringFixed(2),
	})
}
