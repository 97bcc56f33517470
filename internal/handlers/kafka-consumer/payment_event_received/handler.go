package payment_event_received

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"marketplace/internal/gateway/http/paystack"
	"marketplace/internal/service/payment"
	"marketplace/pkg/logger"
)

// Handler применяет вебхуки провайдера, пересланные в Kafka: тело сообщения
// содержит исходный payload, заголовок x-paystack-signature его подпись.
type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	return &Handler{
		paymentService:           paymentService,
		log:                      log.With(logger.Component("payment_event_received")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.webhook: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("payment.webhook: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без
// коммита оффсета: сообщение будет перечитано после ребаланса.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	signature := signatureHeader(message.Headers)
	if signature == "" {
		msgLog.Warn("payment.webhook: message without signature header, skipped")
		sess.MarkMessage(message, "")
		return false
	}

	err := h.paymentService.HandleWebhook(ctx, message.Value, signature)
	switch {
	case err == nil:
	case errors.Is(err, payment.ErrInvalidSignature):
		msgLog.Warn("payment.webhook: invalid signature, skipped")
	default:
		msgLog.Error("payment.webhook: failed to handle event", logger.Err(err))
	}

	if ctx.Err() != nil && sess.Context().Err() != nil {
		msgLog.Warn("payment.webhook: session closed during processing, message will be reprocessed")
		return true
	}

	sess.MarkMessage(message, "")
	return false
}

func signatureHeader(headers []*sarama.RecordHeader) string {
	for _, h := range headers {
		if h != nil && strings.EqualFold(string(h.Key), paystack.SignatureHeader) {
			return string(h.Value)
		}
	}
	return ""
}
