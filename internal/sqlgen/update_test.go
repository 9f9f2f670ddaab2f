package sqlgen_test

import (
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/sqlgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileUpdate_MapsColumns(t *testing.T) {
	fields := sqlgen.Fields{}.
		Set("firstName", "Bender").
		Set("lastName", "The Robot")
	columns := sqlgen.ColumnMap{"firstName": "first_name", "lastName": "last_name"}

	assignment, err := sqlgen.CompileUpdate(fields, columns)
	require.NoError(t, err)

	assert.Equal(t, `"first_name"=$1, "last_name"=$2`, assignment.SetCols)
	assert.Equal(t, []interface{}{"Bender", "The Robot"}, assignment.Values)
	assert.Equal(t, 3, assignment.NextIndex())
}

func TestCompileUpdate_EmptyFields(t *testing.T) {
	for _, columns := range []sqlgen.ColumnMap{nil, {}, {"firstName": "first_name"}} {
		assignment, err := sqlgen.CompileUpdate(sqlgen.Fields{}, columns)
		assert.Nil(t, assignment)
		require.Error(t, err)
		assert.True(t, apperrors.IsBadRequest(err))
		assert.Contains(t, err.Error(), "no data to update")
	}

	_, err := sqlgen.CompileUpdate(nil, nil)
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCompileUpdate_UnmappedFieldKeepsName(t *testing.T) {
	fields := sqlgen.Fields{}.
		Set("numEmployees", 10).
		Set("Description", "case kept")

	assignment, err := sqlgen.CompileUpdate(fields, sqlgen.ColumnMap{"numEmployees": "num_employees"})
	require.NoError(t, err)

	assert.Equal(t, `"num_employees"=$1, "Description"=$2`, assignment.SetCols)
}

func TestCompileUpdate_ZeroValuesParticipate(t *testing.T) {
	fields := sqlgen.Fields{}.
		Set("salary", 0).
		Set("equity", nil).
		Set("isAdmin", false)

	assignment, err := sqlgen.CompileUpdate(fields, sqlgen.ColumnMap{"isAdmin": "is_admin"})
	require.NoError(t, err)

	assert.Equal(t, `"salary"=$1, "equity"=$2, "is_admin"=$3`, assignment.SetCols)
	assert.Equal(t, []interface{}{0, nil, false}, assignment.Values)
}

func TestCompileUpdate_PlaceholdersAlignWithValues(t *testing.T) {
	for n := 1; n <= 12; n++ {
		fields := sqlgen.Fields{}
		for i := 0; i < n; i++ {
			fields = fields.Set(fmt.Sprintf("f%d", i), i*10)
		}

		assignment, err := sqlgen.CompileUpdate(fields, nil)
		require.NoError(t, err)

		parts := strings.Split(assignment.SetCols, ", ")
		require.Len(t, parts, n)
		require.Len(t, assignment.Values, n)
		for i, part := range parts {
			assert.Equal(t, fmt.Sprintf(`"f%d"=$%d`, i, i+1), part)
			assert.Equal(t, i*10, assignment.Values[i])
		}
	}
}

func TestCompileUpdate_Idempotent(t *testing.T) {
	fields := sqlgen.Fields{}.Set("title", "Iron Man").Set("salary", 200)
	columns := sqlgen.ColumnMap{}

	first, err := sqlgen.CompileUpdate(fields, columns)
	require.NoError(t, err)
	second, err := sqlgen.CompileUpdate(fields, columns)
	require.NoError(t, err)

	assert.Equal(t, first.SetCols, second.SetCols)
	assert.Equal(t, first.Values, second.Values)
}

func TestFields_SetReplacesInPlace(t *testing.T) {
	fields := sqlgen.Fields{}.
		Set("title", "a").
		Set("salary", 1).
		Set("title", "b")

	assert.Equal(t, []string{"title", "salary"}, fields.Names())
	assert.Equal(t, "b", fields[0].Value)
}

func TestColumnMap_Column(t *testing.T) {
	columns := sqlgen.ColumnMap{"logoUrl": "logo_url", "blank": ""}

	assert.Equal(t, "logo_url", columns.Column("logoUrl"))
	assert.Equal(t, "name", columns.Column("name"))
	assert.Equal(t, "blank", columns.Column("blank"))

	var none sqlgen.ColumnMap
	assert.Equal(t, "handle", none.Column("handle"))
}
