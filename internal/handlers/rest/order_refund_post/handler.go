package order_refund_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.Component("order_refund_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var refundDTO dto.Refund
	if err := json.NewDecoder(r.Body).Decode(&refundDTO); err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	result, err := h.service.RefundOrder(r.Context(), entities.RefundRequest{
		OrderID: orderID,
		Reason:  pointer.Get(refundDTO.Reason),
		Actor:   pointer.Get(refundDTO.RefundedBy),
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, order.ErrRefundNotEligible),
			errors.Is(err, order.ErrAlreadyRefunded):
			presenter.WriteError(w, h.log, http.StatusConflict, err)
		default:
			h.log.Error("refund order", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.Order(*result))
}
