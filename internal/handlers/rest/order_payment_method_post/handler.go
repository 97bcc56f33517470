package order_payment_method_post

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
		log:     log.With(logger.Component("order_payment_method_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var methodDTO dto.PaymentMethodSelect
	if err := json.NewDecoder(r.Body).Decode(&methodDTO); err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	var method entities.PaymentMethodType
	if methodDTO.PaymentMethod != nil {
		method = entities.PaymentMethodType(*methodDTO.PaymentMethod)
	}

	selection, err := h.service.SelectPaymentMethod(r.Context(), orderID, method)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrServiceNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrAlreadyPaid):
			presenter.WriteError(w, h.log, http.StatusConflict, err)
		default:
			h.log.Error("select payment method", logger.Err(err), logger.NewField("order_id", orderID))
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, dto.PaymentMethodResponse{
		Order:            presenter.Order(selection.Order),
		PlatformFee:      selection.PlatformFee.StringFixed(2),
		VendorReceives:   selection.VendorReceives.StringFixed(2),
		TotalAmount:      selection.TotalAmount.StringFixed(2),
		RequiresRedirect: selection.RequiresRedirect,
	})
}
