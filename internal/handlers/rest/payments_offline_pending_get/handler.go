package payments_offline_pending_get

import (
	"errors"
	"net/http"

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
		log:     log.With(logger.Component("payments_offline_pending_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var vendorID *string
	if v := r.URL.Query().Get("vendor_id"); v != "" {
		vendorID = &v
	}

	orders, err := h.service.ListPendingOfflinePayments(r.Context(), vendorID)
	if err != nil {
		if errors.Is(err, order.ErrValidation) {
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
			return
		}
		h.log.Error("list pending offline payments", logger.Err(err))
		presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, dto.OrderList{Orders: presenter.Orders(orders)})
}
