package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type Querier interface {
	QueryRowBuilder(ctx context.Context, b sq.Sqlizer) pgx.Row
}
