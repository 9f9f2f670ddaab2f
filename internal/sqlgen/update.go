// Package sqlgen builds parameterized SQL fragments and statements.
//
// Values never reach the statement text: every value is bound as a $n
// placeholder whose index matches its position in the returned args.
// Identifiers (tables, columns) are caller constants and are double-quoted.
package sqlgen

import (
	"fmt"
	"strings"

	apperrors "github.com/PayRam/go-jobly/errors"
)

// Field is one requested column assignment
type Field struct {
	Name  string
	Value interface{}
}

// Fields is an ordered set of assignments. Order is the order fields were set.
type Fields []Field

// Set appends name=value, or replaces the value in place if name is already set.
func (f Fields) Set(name string, value interface{}) Fields {
	for i := range f {
		if f[i].Name == name {
			f[i].Value = value
			return f
		}
	}
	return append(f, Field{Name: name, Value: value})
}

// Names returns the field names in order
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}
	return names
}

// ColumnMap translates request field names to physical column names
type ColumnMap map[string]string

// Column returns the mapped column for field, or field itself when unmapped.
func (m ColumnMap) Column(field string) string {
	if col, ok := m[field]; ok && col != "" {
		return col
	}
	return field
}

// Assignment is a compiled SET list and its bound values.
// SetCols holds `"col"=$1, "col2"=$2`; Values[i] binds to $(i+1).
type Assignment struct {
	SetCols string
	Values  []interface{}
}

// NextIndex is the placeholder index for the first parameter after the SET list.
func (a *Assignment) NextIndex() int {
	return len(a.Values) + 1
}

// CompileUpdate builds the SET fragment of a partial UPDATE from fields.
func CompileUpdate(fields Fields, columns ColumnMap) (*Assignment, error) {
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("", "no data to update")
	}

	cols := make([]string, len(fields))
	values := make([]interface{}, len(fields))
	for i, field := range fields {
		cols[i] = fmt.Sprintf("%s=%s", quoteIdentifier(columns.Column(field.Name)), placeholder(i+1))
		values[i] = field.Value
	}

	return &Assignment{
		SetCols: strings.Join(cols, ", "),
		Values:  values,
	}, nil
}

func placeholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteIdentifiers(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteIdentifier(name)
	}
	return quoted
}
