package notification_read_patch

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/service/notification"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.Component("notification_read_patch")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["notification_id"]

	result, err := h.service.MarkRead(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrValidation):
			presenter.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, notification.ErrNotificationNotFound):
			presenter.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			h.log.Error("mark notification read", logger.Err(err), logger.NewField("notification_id", id))
			presenter.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.Notification(*result))
}
