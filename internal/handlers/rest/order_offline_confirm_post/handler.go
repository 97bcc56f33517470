package order_offline_confirm_post

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
		log:     log.With(logger.Component("order_offline_confirm_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var confirmDTO dto.OfflineConfirm
	if err := json.NewDecoder(r.Body).Decode(&confirmDTO); err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	result, err := h.service.ConfirmOfflinePayment(r.Context(), entities.OfflineConfirmation{
		OrderID:     orderID,
		ConfirmedBy: pointer.Get(confirmDTO.ConfirmedBy),
		Proof:       pointer.Get(confirmDTO.Proof),
		Notes:       pointer.Get(confirmDTO.Notes),
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrAlreadyPaid):
			presenter.WriteError(w, h.log, http.StatusConflict, err)
		default:
			h.log.Error("confirm offline payment", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.Order(*result))
}
