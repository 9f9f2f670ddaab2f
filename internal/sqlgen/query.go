package sqlgen

import (
	"fmt"
	"strings"

	apperrors "github.com/PayRam/go-jobly/errors"
)

// Query represents a SQL statement with its bound arguments
type Query struct {
	SQL  string
	Args []interface{}
}

// Insert builds INSERT INTO table (cols) VALUES ($1, ...) [RETURNING ...].
func Insert(table string, fields Fields, columns ColumnMap, returning []string) (*Query, error) {
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("", "no data to insert")
	}

	cols := make([]string, len(fields))
	placeholders := make([]string, len(fields))
	args := make([]interface{}, len(fields))
	for i, field := range fields {
		cols[i] = quoteIdentifier(columns.Column(field.Name))
		placeholders[i] = placeholder(i + 1)
		args[i] = field.Value
	}

	parts := []string{
		fmt.Sprintf("INSERT INTO %s (%s)", quoteIdentifier(table), strings.Join(cols, ", ")),
		fmt.Sprintf("VALUES (%s)", strings.Join(placeholders, ", ")),
	}
	parts = appendReturning(parts, returning)

	return &Query{SQL: strings.Join(parts, " "), Args: args}, nil
}

// Update builds a partial UPDATE of the row whose keyColumn equals key.
// The key is bound as the parameter after the SET values.
func Update(table string, fields Fields, columns ColumnMap, keyColumn string, key interface{}, returning []string) (*Query, error) {
	assignment, err := CompileUpdate(fields, columns)
	if err != nil {
		return nil, err
	}

	parts := []string{
		fmt.Sprintf("UPDATE %s", quoteIdentifier(table)),
		"SET " + assignment.SetCols,
		fmt.Sprintf("WHERE %s = %s", quoteIdentifier(keyColumn), placeholder(assignment.NextIndex())),
	}
	parts = appendReturning(parts, returning)

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: append(assignment.Values, key),
	}, nil
}

// Delete builds DELETE FROM table WHERE keyColumn = $1.
func Delete(table, keyColumn string, key interface{}) *Query {
	return &Query{
		SQL:  fmt.Sprintf("DELETE FROM %s WHERE %s = $1", quoteIdentifier(table), quoteIdentifier(keyColumn)),
		Args: []interface{}{key},
	}
}

// Count builds SELECT COUNT(*) FROM table with an optional predicate.
func Count(table string, where *Predicate) (*Query, error) {
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdentifier(table))
	if where == nil {
		return &Query{SQL: sql}, nil
	}

	clause, args, err := where.Build()
	if err != nil {
		return nil, err
	}
	if clause != "" {
		sql += " " + clause
	}
	return &Query{SQL: sql, Args: args}, nil
}

// SelectQuery describes a single-table SELECT
type SelectQuery struct {
	Table   string
	Columns []string
	Where   *Predicate
	OrderBy []string
	Limit   *int
	Offset  *int
}

// Build renders the statement. LIMIT and OFFSET are bound after the predicate
// args. OFFSET is only rendered together with a LIMIT, as sqlite requires.
func (q SelectQuery) Build() (*Query, error) {
	var parts []string
	var args []interface{}

	if len(q.Columns) == 0 {
		parts = append(parts, "SELECT *")
	} else {
		parts = append(parts, "SELECT "+strings.Join(quoteIdentifiers(q.Columns), ", "))
	}
	parts = append(parts, "FROM "+quoteIdentifier(q.Table))

	if q.Where != nil {
		clause, whereArgs, err := q.Where.Build()
		if err != nil {
			return nil, err
		}
		if clause != "" {
			parts = append(parts, clause)
			args = append(args, whereArgs...)
		}
	}

	if len(q.OrderBy) > 0 {
		parts = append(parts, "ORDER BY "+strings.Join(quoteIdentifiers(q.OrderBy), ", "))
	}

	if q.Limit != nil && *q.Limit > 0 {
		args = append(args, *q.Limit)
		parts = append(parts, "LIMIT "+placeholder(len(args)))

		if q.Offset != nil && *q.Offset > 0 {
			args = append(args, *q.Offset)
			parts = append(parts, "OFFSET "+placeholder(len(args)))
		}
	}

	return &Query{SQL: strings.Join(parts, " "), Args: args}, nil
}

func appendReturning(parts []string, returning []string) []string {
	if len(returning) == 0 {
		return parts
	}
	return append(parts, "RETURNING "+strings.Join(quoteIdentifiers(returning), ", "))
}
