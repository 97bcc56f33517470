package order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

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
		log:     log.With(logger.Component("order_status_patch")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var statusDTO dto.OrderStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	var decision entities.OrderStatusType
	if statusDTO.Status != nil {
		decision = entities.OrderStatusType(*statusDTO.Status)
	}

	result, err := h.service.SetOrderStatus(r.Context(), orderID, decision)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, order.ErrInvalidTransition):
			presenter.WriteError(w, h.log, http.StatusConflict, err)
		default:
			h.log.Error("set order status", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.Order(*result))
}
