package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
		log:     log.With(logger.Component("orders_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&orderCreateDTO); err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	details, err := h.service.PlaceOrder(r.Context(), entities.OrderModify{
		ServiceID:  orderCreateDTO.ServiceId,
		CustomerID: orderCreateDTO.CustomerId,
		Quantity:   orderCreateDTO.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation),
			errors.Is(err, order.ErrServiceOwnerMissing):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrServiceNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			h.log.Error("place order", logger.Err(err))
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusCreated, dto.OrderCreateResponse{
		Order:   presenter.Order(details.Order),
		Service: presenter.Service(details.Service),
	})
}
