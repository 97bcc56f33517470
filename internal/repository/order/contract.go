package order

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	QueryBuilder(ctx context.Context, b sq.Sqlizer) (pgx.Rows, error)
	QueryRowBuilder(ctx context.Context, b sq.Sqlizer) pgx.Row
}
