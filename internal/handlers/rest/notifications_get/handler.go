package notifications_get

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/service/notification"
	"marketplace/pkg/logger"
)

var errAmbiguousRecipient = errors.New("exactly one of customer_id or vendor_id is required")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.Component("notifications_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	notifications, err := h.service.ListNotifications(r.Context(), filter)
	if err != nil {
		if errors.Is(err, notification.ErrValidation) {
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
			return
		}
		h.log.Error("list notifications", logger.Err(err))
		presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, dto.NotificationList{
		Notifications: presenter.Notifications(notifications),
	})
}

func parseFilter(query url.Values) (entities.NotificationFilter, error) {
	var filter entities.NotificationFilter

	customerID, vendorID := query.Get("customer_id"), query.Get("vendor_id")
	switch {
	case customerID != "" && vendorID == "":
		filter.Recipient = entities.CustomerRecipient(customerID)
	case vendorID != "" && customerID == "":
		filter.Recipient = entities.VendorRecipient(vendorID)
	default:
		return filter, errAmbiguousRecipient
	}

	if raw := query.Get("unread"); raw != "" {
		unread, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("unread must be a boolean")
		}
		filter.UnreadOnly = unread
	}
	return filter, nil
}
