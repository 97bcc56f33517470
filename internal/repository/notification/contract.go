package notification

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	ExecBuilder(ctx context.Context, b sq.Sqlizer) (pgconn.CommandTag, error)
	QueryBuilder(ctx context.Context, b sq.Sqlizer) (pgx.Rows, error)
	QueryRowBuilder(ctx context.Context, b sq.Sqlizer) pgx.Row
}
