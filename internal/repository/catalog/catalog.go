package catalog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ServiceDB struct {
	ID      string
	Name    string
	Price   decimal.Decimal
	OwnerID *string
}

// Repository чтение каталога услуг. Каталогом владеет другой сервис,
// здесь только выборка цены и владельца.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	builder := qb.Select("id", "service_name", "price", "service_owner_id").
		From("services").
		Where(sq.Eq{"id": id})

	var serviceModel ServiceDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(
		&serviceModel.ID,
		&serviceModel.Name,
		&serviceModel.Price,
		&serviceModel.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrServiceNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get error: %w", err)
	}

	return &entities.Service{
		ID:      serviceModel.ID,
		Name:    serviceModel.Name,
		Price:   serviceModel.Price,
		OwnerID: serviceModel.OwnerID,
	}, nil
}
