package repository

import (
	sq "github.com/Masterminds/squirrel"
)

// psql renders $n placeholders for lib/pq.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// UpdateBuilder assembles an UPDATE statement from the subset of fields a
// caller actually supplied. Column names always come from the repository
// that owns the table, never from request data.
type UpdateBuilder struct {
	stmt     sq.UpdateBuilder
	idColumn string
	sets     int
}

func NewUpdateBuilder(table, idColumn string) *UpdateBuilder {
	return &UpdateBuilder{stmt: psql.Update(table), idColumn: idColumn}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.stmt = b.stmt.Set(column, value)
	b.sets++

	return b
}

// SetIfPresent adds column only when value is non-nil.
func SetIfPresent[T any](b *UpdateBuilder, column string, value *T) *UpdateBuilder {
	if value == nil {
		return b
	}

	return b.Set(column, *value)
}

// Empty reports whether no field has been set.
func (b *UpdateBuilder) Empty() bool {
	return b.sets == 0
}

// Build returns the statement and its arguments. touch lists timestamp
// columns to set to NOW(); returning is the column list after RETURNING.
func (b *UpdateBuilder) Build(id any, returning string, touch ...string) (string, []any, error) {
	stmt := b.stmt
	for _, column := range touch {
		stmt = stmt.Set(column, sq.Expr("NOW()"))
	}

	stmt = stmt.Where(sq.Eq{b.idColumn: id})
	if returning != "" {
		stmt = stmt.Suffix("RETURNING " + returning)
	}

	return stmt.ToSql()
}
