package request

import (
	"net/url"
	"strconv"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/sqlgen"
	"github.com/shopspring/decimal"
)

var maxEquity = decimal.NewFromInt(1)

type CreateJobRequest struct {
	Title         string           `json:"title" binding:"required"`
	Salary        *int             `json:"salary"`
	Equity        *decimal.Decimal `json:"equity"` // fraction in [0, 1]
	CompanyHandle string           `json:"companyHandle" binding:"required"`
}

func (r CreateJobRequest) Validate() error {
	if r.Title == "" {
		return apperrors.NewValidationError("title", "is required")
	}
	if err := validateHandle("companyHandle", r.CompanyHandle); err != nil {
		return err
	}
	return validateCompensation(r.Salary, r.Equity)
}

func CreateJobFields(req CreateJobRequest) sqlgen.Fields {
	fields := sqlgen.Fields{}.Set("title", req.Title)
	if req.Salary != nil {
		fields = fields.Set("salary", *req.Salary)
	}
	if req.Equity != nil {
		fields = fields.Set("equity", *req.Equity)
	}
	return fields.Set("companyHandle", req.CompanyHandle)
}

type UpdateJobRequest struct {
	ID            *uint            `json:"id"`            // rejected
	CompanyHandle *string          `json:"companyHandle"` // rejected; a job cannot move
	Title         *string          `json:"title"`
	Salary        *int             `json:"salary"`
	Equity        *decimal.Decimal `json:"equity"`
}

func (r UpdateJobRequest) Validate() error {
	if r.ID != nil {
		return apperrors.NewValidationError("id", "cannot be changed")
	}
	if r.CompanyHandle != nil {
		return apperrors.NewValidationError("companyHandle", "cannot be changed")
	}
	if r.Title != nil && *r.Title == "" {
		return apperrors.NewValidationError("title", "cannot be empty")
	}
	return validateCompensation(r.Salary, r.Equity)
}

// UpdateJobFields collects the present fields of req. A salary or equity of 0
// is present and is written.
func UpdateJobFields(req UpdateJobRequest) sqlgen.Fields {
	fields := sqlgen.Fields{}
	if req.Title != nil {
		fields = fields.Set("title", *req.Title)
	}
	if req.Salary != nil {
		fields = fields.Set("salary", *req.Salary)
	}
	if req.Equity != nil {
		fields = fields.Set("equity", *req.Equity)
	}
	return fields
}

type GetJobsRequest struct {
	Title                *string              `form:"title"` // exact match
	MinSalary            *int                 `form:"minSalary"`
	HasEquity            *bool                `form:"hasEquity"` // true keeps jobs with equity > 0; false does not filter
	CompanyHandle        *string              `form:"companyHandle"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func (r GetJobsRequest) Validate() error {
	if r.MinSalary != nil && *r.MinSalary < 0 {
		return apperrors.NewValidationError("minSalary", "must be a non-negative integer")
	}
	return r.PaginationConditions.Validate()
}

// CompileJobFilter turns the present criteria into a predicate, evaluated as
// title, minSalary, hasEquity, companyHandle. hasEquity binds no parameter.
func CompileJobFilter(req GetJobsRequest) *sqlgen.Predicate {
	p := sqlgen.NewPredicate()
	if req.Title != nil {
		p.Where("title = ?", *req.Title)
	}
	if req.MinSalary != nil {
		p.Where("salary >= ?", *req.MinSalary)
	}
	if req.HasEquity != nil && *req.HasEquity {
		p.Where("equity IS NOT NULL AND equity > 0")
	}
	if req.CompanyHandle != nil {
		p.Where("company_handle = ?", *req.CompanyHandle)
	}
	return p
}

func ParseGetJobsQuery(values url.Values) (GetJobsRequest, error) {
	var req GetJobsRequest
	var err error

	if title := values.Get("title"); title != "" {
		req.Title = &title
	}
	if req.MinSalary, err = parseNonNegativeInt(values, "minSalary"); err != nil {
		return req, err
	}
	if raw := values.Get("hasEquity"); raw != "" {
		hasEquity, err := strconv.ParseBool(raw)
		if err != nil {
			return req, apperrors.NewValidationError("hasEquity", "must be true or false")
		}
		req.HasEquity = &hasEquity
	}
	if handle := values.Get("companyHandle"); handle != "" {
		req.CompanyHandle = &handle
	}
	if req.PaginationConditions, err = parsePagination(values); err != nil {
		return req, err
	}
	return req, req.Validate()
}

func validateCompensation(salary *int, equity *decimal.Decimal) error {
	if salary != nil && *salary < 0 {
		return apperrors.NewValidationError("salary", "must be greater or equal to 0")
	}
	if equity != nil && (equity.IsNegative() || equity.GreaterThan(maxEquity)) {
		return apperrors.NewValidationError("equity", "must be between 0 and 1")
	}
	return nil
}
