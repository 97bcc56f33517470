package orders_get

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

// Handler постраничный список заказов для администратора.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.Component("orders_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	page, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		if errors.Is(err, order.ErrValidation) {
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
			return
		}
		h.log.Error("list orders", logger.Err(err))
		presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, dto.OrdersPage{
		Orders:      presenter.Orders(page.Orders),
		Page:        page.Page,
		Limit:       page.Limit,
		TotalOrders: page.Total,
		TotalPages:  page.TotalPages,
	})
}

func parseFilter(query url.Values) (entities.OrderFilter, error) {
	var filter entities.OrderFilter

	if status := query.Get("status"); status != "" {
		s := entities.OrderStatusType(status)
		filter.Status = &s
	}

	var err error
	if filter.Page, err = parseUint(query, "page"); err != nil {
		return filter, err
	}
	if filter.Limit, err = parseUint(query, "limit"); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseUint(query url.Values, key string) (uint64, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return v, nil
}
