package payment_verify_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
		log:     log.With(logger.Component("payment_verify_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	orderID := r.URL.Query().Get("order_id")

	result, err := h.service.VerifyPayment(r.Context(), reference, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation),
			errors.Is(err, payment.ErrValidation):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, payment.ErrPaymentNotSuccessful):
			presenter.WriteError(w, h.log, http.StatusPaymentRequired, err)
		case errors.Is(err, order.ErrAlreadyPaid),
			errors.Is(err, order.ErrReferenceMismatch),
			errors.Is(err, order.ErrInvalidTransition):
			presenter.WriteError(w, h.log, http.StatusConflict, err)
		case errors.Is(err, payment.ErrProviderUnavailable):
			h.log.Warn("payment provider unavailable", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteUnavailable(w, h.log)
		case errors.Is(err, payment.ErrProviderRejected):
			presenter.WriteError(w, h.log, http.StatusBadGateway, err)
		default:
			h.log.Error("verify payment", logger.Err(err),
				logger.NewField("order_id", orderID),
				logger.NewField("reference", reference),
			)
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.Order(*result))
}
