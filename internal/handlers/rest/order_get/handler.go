package order_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
		log:     log.With(logger.Component("order_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	result, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			h.log.Error("get order", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.Order(*result))
}
