package postgres

import (
	"context"
	"fmt"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// Dialect is the postgres dialect sqlboiler generates for psql models.
var Dialect = drivers.Dialect{
	LQ: '"',
	RQ: '"',

	UseIndexPlaceholders:    true,
	UseLastInsertID:         false,
	UseSchema:               false,
	UseDefaultKeyword:       true,
	UseAutoColumns:          false,
	UseTopClause:            false,
	UseOutputClause:         false,
	UseCaseWhenExistsClause: false,
}

// NewQuery builds a query from mods without generated models.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &Dialect)
	qm.Apply(q, mods...)
	return q
}

// Count runs SELECT COUNT(*) for mods.
func Count(ctx context.Context, exec boil.ContextExecutor, mods ...qm.QueryMod) (int64, error) {
	q := NewQuery(mods...)
	queries.SetSelect(q, nil)
	queries.SetCount(q)

	var count int64
	if err := q.QueryRowContext(ctx, exec).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateAll applies cols to every row matched by mods and returns the
// number of affected rows.
func UpdateAll(ctx context.Context, exec boil.ContextExecutor, cols map[string]interface{}, mods ...qm.QueryMod) (int64, error) {
	q := NewQuery(mods...)
	queries.SetUpdate(q, cols)

	res, err := q.ExecContext(ctx, exec)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ValidateIDs rejects non-positive identifiers.
func ValidateIDs(ids []int64) error {
	for i, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: id at index %d is %d", ErrInvalidObjectIDs, i, id)
		}
	}
	return nil
}

// ConvertToInterface converts a slice of ids to a slice of interfaces.
// This is useful for SQLBoiler's WhereIn queries.
func ConvertToInterface(slice []int64) []interface{} {
	interfaces := make([]interface{}, len(slice))
	for i, v := range slice {
		interfaces[i] = v
	}
	return interfaces
}
