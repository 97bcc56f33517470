package vendor_orders_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
		log:     log.With(logger.Component("vendor_orders_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["vendor_id"]

	orders, err := h.service.ListVendorOrders(r.Context(), vendorID)
	if err != nil {
		if errors.Is(err, order.ErrValidation) {
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
			return
		}
		h.log.Error("list vendor orders", logger.Err(err), logger.NewField("vendor_id", vendorID))
		presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, dto.OrderList{Orders: presenter.Orders(orders)})
}
