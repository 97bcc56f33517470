package payment_reconcile

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	ReconcilePendingPayments(ctx context.Context) (int, error)
}

// PaymentReconcile периодически добивает онлайн-оплаты, по которым не пришёл вебхук.
type PaymentReconcile struct {
	service  Service
	log      logger.Logger
	interval time.Duration
}

func New(service Service, log logger.Logger, interval time.Duration) *PaymentReconcile {
	return &PaymentReconcile{
		service:  service,
		log:      log.With(logger.Component("task_payment_reconcile")),
		interval: interval,
	}
}

func (p *PaymentReconcile) TTL() time.Duration {
	return p.interval
}

func (p *PaymentReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	completed, err := p.service.ReconcilePendingPayments(ctxWithTimeout)
	if err != nil {
		return err
	}

	if completed > 0 {
		p.log.Info("reconciled payments", logger.NewField("completed", completed))
	}
	return nil
}

func (p *PaymentReconcile) Info() string {
	return "payment reconcile"
}
