package tx

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
	timeout  time.Duration
}

// New создаёт менеджер транзакций. timeout <= 0 отключает ограничение по времени.
func New(db pgxv5.Transactional, timeout time.Duration) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		timeout:  timeout,
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	opts := []settings.Opt{}
	if m.timeout > 0 {
		opts = append(opts, settings.WithTimeout(m.timeout))
	}

	txSettings := pgxv5.MustSettings(
		settings.Must(opts...),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do выполняет fn в READ COMMITTED. Переходы по одному заказу сериализуются
// блокировкой строки (SELECT ... FOR UPDATE) внутри fn.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.ReadCommitted, fn)
}
