package request_test

import (
	"net/url"
	"testing"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/request"
	"github.com/PayRam/go-jobly/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileJobFilter(t *testing.T) {
	tests := []struct {
		name           string
		req            request.GetJobsRequest
		wantClause     string
		wantArgs       []interface{}
		wantConditions int
	}{
		{
			name:       "no criteria",
			req:        request.GetJobsRequest{},
			wantClause: "",
		},
		{
			name:           "minSalary and hasEquity",
			req:            request.GetJobsRequest{MinSalary: utils.Ptr(1000), HasEquity: utils.Ptr(true)},
			wantClause:     "WHERE salary >= $1 AND equity IS NOT NULL AND equity > 0",
			wantArgs:       []interface{}{1000},
			wantConditions: 2,
		},
		{
			name: "all criteria",
			req: request.GetJobsRequest{
				Title:         utils.Ptr("Beard Squire"),
				MinSalary:     utils.Ptr(2100),
				HasEquity:     utils.Ptr(true),
				CompanyHandle: utils.Ptr("c3"),
			},
			wantClause:     "WHERE title = $1 AND salary >= $2 AND equity IS NOT NULL AND equity > 0 AND company_handle = $3",
			wantArgs:       []interface{}{"Beard Squire", 2100, "c3"},
			wantConditions: 4,
		},
		{
			name:       "hasEquity false does not filter",
			req:        request.GetJobsRequest{HasEquity: utils.Ptr(false)},
			wantClause: "",
		},
		{
			name:           "zero minSalary is a criterion",
			req:            request.GetJobsRequest{MinSalary: utils.Ptr(0)},
			wantClause:     "WHERE salary >= $1",
			wantArgs:       []interface{}{0},
			wantConditions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := request.CompileJobFilter(tt.req)
			clause, args, err := p.Build()
			require.NoError(t, err)

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
			assert.Len(t, p.Conditions(), tt.wantConditions)
		})
	}
}

func TestCompileCompanyFilter(t *testing.T) {
	p := request.CompileCompanyFilter(request.GetCompaniesRequest{
		NameLike:     utils.Ptr("net"),
		MinEmployees: utils.Ptr(10),
		MaxEmployees: utils.Ptr(500),
	})

	clause, args, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, `WHERE LOWER(name) LIKE LOWER($1) ESCAPE '\' AND num_employees >= $2 AND num_employees <= $3`, clause)
	assert.Equal(t, []interface{}{"%net%", 10, 500}, args)
}

func TestCompileCompanyFilter_PatternIsBound(t *testing.T) {
	p := request.CompileCompanyFilter(request.GetCompaniesRequest{
		NameLike: utils.Ptr("x'; DROP TABLE companies; --"),
	})

	clause, args, err := p.Build()
	require.NoError(t, err)
	assert.NotContains(t, clause, "DROP")
	assert.Equal(t, []interface{}{"%x'; DROP TABLE companies; --%"}, args)
}

func TestCompileFilters_EscapeLikeWildcards(t *testing.T) {
	tests := []struct {
		nameLike string
		want     string
	}{
		{"_", `%\_%`},
		{"50%", `%50\%%`},
		{`a\b`, `%a\\b%`},
		{"plain", "%plain%"},
	}

	for _, tt := range tests {
		t.Run(tt.nameLike, func(t *testing.T) {
			_, args, err := request.CompileCompanyFilter(request.GetCompaniesRequest{NameLike: utils.Ptr(tt.nameLike)}).Build()
			require.NoError(t, err)
			assert.Equal(t, []interface{}{tt.want}, args)

			_, args, err = request.CompileUserFilter(request.GetUsersRequest{NameLike: utils.Ptr(tt.nameLike)}).Build()
			require.NoError(t, err)
			assert.Equal(t, []interface{}{tt.want, tt.want}, args)
		})
	}
}

func TestCompileUserFilter(t *testing.T) {
	p := request.CompileUserFilter(request.GetUsersRequest{
		NameLike: utils.Ptr("u1"),
		IsAdmin:  utils.Ptr(false),
	})

	clause, args, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, `WHERE (LOWER(first_name) LIKE LOWER($1) ESCAPE '\' OR LOWER(last_name) LIKE LOWER($2) ESCAPE '\') AND is_admin = $3`, clause)
	assert.Equal(t, []interface{}{"%u1%", "%u1%", false}, args)
}

func TestGetCompaniesRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       request.GetCompaniesRequest
		wantField string
	}{
		{"empty", request.GetCompaniesRequest{}, ""},
		{"negative min", request.GetCompaniesRequest{MinEmployees: utils.Ptr(-1)}, "minEmployees"},
		{"negative max", request.GetCompaniesRequest{MaxEmployees: utils.Ptr(-1)}, "maxEmployees"},
		{"inverted range", request.GetCompaniesRequest{MinEmployees: utils.Ptr(500), MaxEmployees: utils.Ptr(200)}, "minEmployees"},
		{"equal bounds", request.GetCompaniesRequest{MinEmployees: utils.Ptr(3), MaxEmployees: utils.Ptr(3)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.True(t, apperrors.IsBadRequest(err))
		})
	}
}

func TestParseGetCompaniesQuery(t *testing.T) {
	req, err := request.ParseGetCompaniesQuery(url.Values{
		"name":         {"c"},
		"minEmployees": {"1"},
		"maxEmployees": {"2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "c", *req.NameLike)
	assert.Equal(t, 1, *req.MinEmployees)
	assert.Equal(t, 2, *req.MaxEmployees)

	req, err = request.ParseGetCompaniesQuery(url.Values{"nameLike": {"a"}, "name": {"b"}})
	require.NoError(t, err)
	assert.Equal(t, "a", *req.NameLike)

	for _, raw := range []string{"fa", "-1", ".3"} {
		_, err := request.ParseGetCompaniesQuery(url.Values{"minEmployees": {raw}})
		assert.True(t, apperrors.IsBadRequest(err), "minEmployees=%s", raw)

		_, err = request.ParseGetCompaniesQuery(url.Values{"maxEmployees": {raw}})
		assert.True(t, apperrors.IsBadRequest(err), "maxEmployees=%s", raw)
	}

	_, err = request.ParseGetCompaniesQuery(url.Values{"minEmployees": {"500"}, "maxEmployees": {"200"}})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestParseGetJobsQuery(t *testing.T) {
	req, err := request.ParseGetJobsQuery(url.Values{"minSalary": {"1200"}, "hasEquity": {"true"}})
	require.NoError(t, err)
	assert.Nil(t, req.Title)
	assert.Equal(t, 1200, *req.MinSalary)
	assert.True(t, *req.HasEquity)

	_, err = request.ParseGetJobsQuery(url.Values{"minSalary": {"lots"}})
	assert.True(t, apperrors.IsBadRequest(err))

	_, err = request.ParseGetJobsQuery(url.Values{"hasEquity": {"maybe"}})
	assert.True(t, apperrors.IsBadRequest(err))

	_, err = request.ParseGetJobsQuery(url.Values{"offset": {"10"}})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestUpdateJobFields_KeepsZeroValues(t *testing.T) {
	fields := request.UpdateJobFields(request.UpdateJobRequest{
		Salary: utils.Ptr(0),
		Equity: utils.Ptr(decimal.Zero),
	})

	assert.Equal(t, []string{"salary", "equity"}, fields.Names())
	assert.Equal(t, 0, fields[0].Value)
	assert.True(t, decimal.Zero.Equal(fields[1].Value.(decimal.Decimal)))

	assert.Empty(t, request.UpdateJobFields(request.UpdateJobRequest{}))
}

func TestUpdateJobRequest_Validate(t *testing.T) {
	assert.NoError(t, request.UpdateJobRequest{Equity: utils.Ptr(decimal.RequireFromString("0.5"))}.Validate())
	assert.True(t, apperrors.IsBadRequest(request.UpdateJobRequest{Equity: utils.Ptr(decimal.NewFromInt(300))}.Validate()))
	assert.True(t, apperrors.IsBadRequest(request.UpdateJobRequest{Salary: utils.Ptr(-1)}.Validate()))
	assert.True(t, apperrors.IsBadRequest(request.UpdateJobRequest{CompanyHandle: utils.Ptr("c2")}.Validate()))
}

func TestCreateCompanyRequest_Validate(t *testing.T) {
	valid := request.CreateCompanyRequest{
		Handle:       "new",
		Name:         "New",
		Description:  "DescNew",
		NumEmployees: utils.Ptr(10),
		LogoURL:      utils.Ptr("http://new.img"),
	}
	assert.NoError(t, valid.Validate())

	missing := request.CreateCompanyRequest{Handle: "new"}
	assert.True(t, apperrors.IsBadRequest(missing.Validate()))

	badURL := valid
	badURL.LogoURL = utils.Ptr("not-a-url")
	assert.True(t, apperrors.IsBadRequest(badURL.Validate()))
}

func TestUpdateUserFields(t *testing.T) {
	fields := request.UpdateUserFields(request.UpdateUserRequest{
		FirstName: utils.Ptr("Bender"),
		LastName:  utils.Ptr("The Robot"),
		IsAdmin:   utils.Ptr(false),
	})

	assert.Equal(t, []string{"firstName", "lastName", "isAdmin"}, fields.Names())
	assert.Equal(t, false, fields[2].Value)
}

func TestCreateUserRequest_Validate(t *testing.T) {
	req := request.CreateUserRequest{
		Username:  "u-new",
		Password:  "password-new",
		FirstName: "First-new",
		LastName:  "Last-newL",
		Email:     "new@email.com",
	}
	assert.NoError(t, req.Validate())

	req.Email = "not-an-email"
	assert.True(t, apperrors.IsBadRequest(req.Validate()))
}
