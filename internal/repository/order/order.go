package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

const tableOrders = "orders"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	m := FromDomainModify(&orderModifyEntity)

	builder := qb.Insert(tableOrders).
		Columns(
			"id", "service_id", "customer_id", "vendor_id", "quantity",
			"status", "is_paid", "payment_method", "payment_status", "created_at",
		).
		Values(
			m.ID, m.ServiceID, m.CustomerID, m.VendorID, m.Quantity,
			m.Status, m.IsPaid, m.PaymentMethod, m.PaymentStatus, m.CreatedAt,
		).
		Suffix(returning())

	var orderModel OrderDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(orderModel.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrServiceNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate блокирует строку до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*entities.Order, error) {
	builder := qb.Select(orderColumns...).
		From(tableOrders).
		Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	var orderModel OrderDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepr) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	return r.update(ctx, orderModifyEntity, nil)
}

// MarkPaid условное обновление: строка меняется только если заказ ещё не
// оплачен. Проигравшая сторона гонки получает ErrAlreadyPaid.
func (r *Repository) MarkPaid(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	paid, err := r.update(ctx, orderModifyEntity, sq.Eq{"is_paid": false})
	if err == nil {
		return paid, nil
	}
	if !errors.Is(err, order.ErrOrderNotFound) {
		return nil, err
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderModifyEntity.ID).
		Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository mark paid error: %w", err)
	}
	if !exists {
		return nil, order.ErrOrderNotFound
	}
	return nil, order.ErrAlreadyPaid
}

func (r *Repository) update(ctx context.Context, orderModifyEntity entities.OrderModify, condition sq.Sqlizer) (*entities.Order, error) {
	m := FromDomainModify(&orderModifyEntity)
	if m.ID == nil {
		return nil, fmt.Errorf("order repository update: %w", order.ErrInvalidOrderID)
	}

	clauses := m.setClauses()
	if len(clauses) == 0 {
		return nil, fmt.Errorf("order repository update: no fields to update: %w", order.ErrMissingRequiredFields)
	}

	builder := qb.Update(tableOrders).
		SetMap(clauses).
		Where(sq.Eq{"id": m.ID})
	if condition != nil {
		builder = builder.Where(condition)
	}
	builder = builder.Suffix(returning())

	var orderModel OrderDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrReferenceMismatch
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, uint64, error) {
	where := sq.And{}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}
	if filter.VendorID != nil {
		where = append(where, sq.Eq{"vendor_id": *filter.VendorID})
	}

	var total uint64
	countBuilder := qb.Select("COUNT(*)").From(tableOrders).Where(where)
	if err := r.querier.QueryRowBuilder(ctx, countBuilder).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	builder := qb.Select(orderColumns...).
		From(tableOrders).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.Limit).
		Offset((page - 1) * filter.Limit)

	orders, err := r.query(ctx, builder)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *Repository) ListPendingOffline(ctx context.Context, vendorID *string) ([]entities.Order, error) {
	builder := qb.Select(orderColumns...).
		From(tableOrders).
		Where(sq.Eq{
			"payment_method": entities.PaymentMethodOffline.String(),
			"payment_status": entities.PaymentPendingConfirmation.String(),
			"status":         entities.OrderApproved.String(),
			"is_paid":        false,
		}).
		OrderBy("created_at ASC", "id ASC")
	if vendorID != nil {
		builder = builder.Where(sq.Eq{"vendor_id": *vendorID})
	}

	return r.query(ctx, builder)
}

// ListAwaitingOnline неподтверждённые онлайн-оплаты, начатые и последний раз
// проверенные раньше cutoff. Ни разу не проверенные идут первыми, поэтому
// зависшие у провайдера заказы не занимают весь батч.
func (r *Repository) ListAwaitingOnline(ctx context.Context, cutoff time.Time, limit uint64) ([]entities.Order, error) {
	builder := qb.Select(orderColumns...).
		From(tableOrders).
		Where(sq.Eq{
			"payment_method": entities.PaymentMethodOnline.String(),
			"payment_status": entities.PaymentPending.String(),
			"status":         entities.OrderApproved.String(),
			"is_paid":        false,
		}).
		Where(sq.NotEq{"payment_reference": nil}).
		Where(sq.Lt{"payment_started_at": cutoff}).
		Where(sq.Or{
			sq.Eq{"payment_checked_at": nil},
			sq.Lt{"payment_checked_at": cutoff},
		}).
		OrderBy("payment_checked_at ASC NULLS FIRST", "payment_started_at ASC").
		Limit(limit)

	return r.query(ctx, builder)
}

func (r *Repository) query(ctx context.Context, builder sq.SelectBuilder) ([]entities.Order, error) {
	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository query error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(orderModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(&orderModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

func returning() string {
	return "RETURNING " + joinColumns(orderColumns)
}
