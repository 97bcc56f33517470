package order_payment_initialize_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/service/order"
	"marketplace/internal/service/payment"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.Component("order_payment_initialize_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var initDTO dto.PaymentInitialize
	if err := json.NewDecoder(r.Body).Decode(&initDTO); err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	var email string
	if initDTO.Email != nil {
		email = *initDTO.Email
	}

	result, err := h.service.InitiatePayment(r.Context(), orderID, email)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation),
			errors.Is(err, payment.ErrValidation),
			errors.Is(err, order.ErrServiceOwnerMissing):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrServiceNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrAlreadyPaid),
			errors.Is(err, order.ErrReferenceMismatch):
			presenter.WriteError(w, h.log, http.StatusConflict, err)
		case errors.Is(err, payment.ErrProviderUnavailable):
			h.log.Warn("payment provider unavailable", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteUnavailable(w, h.log)
		case errors.Is(err, payment.ErrProviderRejected):
			h.log.Warn("payment provider rejected initialization", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteError(w, h.log, http.StatusBadGateway, err)
		default:
			h.log.Error("initiate payment", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, dto.PaymentInitializeResponse{
		OrderId:          result.OrderID,
		AuthorizationUrl: result.AuthorizationURL,
		AccessCode:       result.AccessCode,
		Reference:        result.Reference,
		Amount:           result.AmountMinor,
	})
}
