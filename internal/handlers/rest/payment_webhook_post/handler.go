package payment_webhook_post

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"marketplace/internal/gateway/http/paystack"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/service/payment"
	"marketplace/pkg/logger"
)

const maxPayloadSize = 1 << 20

// Handler принимает вебхук провайдера. Подпись считается по сырому телу,
// поэтому оно читается целиком и передаётся без перекодирования.
type Handler struct {
	log            handlerLogger
	service        Service
	processTimeout time.Duration
}

func New(log handlerLogger, service Service, processTimeout time.Duration) *Handler {
	return &Handler{
		log:            log.With(logger.Component("payment_webhook_post")),
		service:        service,
		processTimeout: processTimeout,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
	if err != nil {
		presenter.WriteError(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	// провайдер может оборвать соединение после доставки, обработку доводим до конца
	ctx := context.WithoutCancel(r.Context())
	if h.processTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.processTimeout)
		defer cancel()
	}

	err = h.service.HandleWebhook(ctx, payload, r.Header.Get(paystack.SignatureHeader))
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			h.log.Warn("webhook with invalid signature", logger.NewField("remote_addr", r.RemoteAddr))
			presenter.WriteError(w, h.log, http.StatusUnauthorized, err)
			return
		}
		h.log.Error("handle webhook", logger.Err(err))
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, dto.WebhookAck{Received: true})
}
