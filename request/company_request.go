package request

import (
	"net/url"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/sqlgen"
)

type CreateCompanyRequest struct {
	Handle       string  `json:"handle" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

func (r CreateCompanyRequest) Validate() error {
	if err := validateHandle("handle", r.Handle); err != nil {
		return err
	}
	if r.Name == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if r.Description == "" {
		return apperrors.NewValidationError("description", "is required")
	}
	if r.NumEmployees != nil && *r.NumEmployees < 0 {
		return apperrors.NewValidationError("numEmployees", "must be a non-negative integer")
	}
	if r.LogoURL != nil {
		if err := validateURL("logoUrl", *r.LogoURL); err != nil {
			return err
		}
	}
	return nil
}

// CreateCompanyFields lists the columns of a new company row. Absent optional
// fields are left to the column default.
func CreateCompanyFields(req CreateCompanyRequest) sqlgen.Fields {
	fields := sqlgen.Fields{}.
		Set("handle", req.Handle).
		Set("name", req.Name).
		Set("description", req.Description)
	if req.NumEmployees != nil {
		fields = fields.Set("numEmployees", *req.NumEmployees)
	}
	if req.LogoURL != nil {
		fields = fields.Set("logoUrl", *req.LogoURL)
	}
	return fields
}

type UpdateCompanyRequest struct {
	Handle       *string `json:"handle"` // rejected; the handle is the key
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

func (r UpdateCompanyRequest) Validate() error {
	if r.Handle != nil {
		return apperrors.NewValidationError("handle", "cannot be changed")
	}
	if r.Name != nil && *r.Name == "" {
		return apperrors.NewValidationError("name", "cannot be empty")
	}
	if r.NumEmployees != nil && *r.NumEmployees < 0 {
		return apperrors.NewValidationError("numEmployees", "must be a non-negative integer")
	}
	if r.LogoURL != nil {
		if err := validateURL("logoUrl", *r.LogoURL); err != nil {
			return err
		}
	}
	return nil
}

// UpdateCompanyFields collects the present fields of req, in declaration order.
func UpdateCompanyFields(req UpdateCompanyRequest) sqlgen.Fields {
	fields := sqlgen.Fields{}
	if req.Name != nil {
		fields = fields.Set("name", *req.Name)
	}
	if req.Description != nil {
		fields = fields.Set("description", *req.Description)
	}
	if req.NumEmployees != nil {
		fields = fields.Set("numEmployees", *req.NumEmployees)
	}
	if req.LogoURL != nil {
		fields = fields.Set("logoUrl", *req.LogoURL)
	}
	return fields
}

type GetCompaniesRequest struct {
	NameLike             *string              `form:"nameLike"` // case-insensitive partial match
	MinEmployees         *int                 `form:"minEmployees"`
	MaxEmployees         *int                 `form:"maxEmployees"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func (r GetCompaniesRequest) Validate() error {
	if r.MinEmployees != nil && *r.MinEmployees < 0 {
		return apperrors.NewValidationError("minEmployees", "must be a non-negative integer")
	}
	if r.MaxEmployees != nil && *r.MaxEmployees < 0 {
		return apperrors.NewValidationError("maxEmployees", "must be a non-negative integer")
	}
	if r.MinEmployees != nil && r.MaxEmployees != nil && *r.MinEmployees > *r.MaxEmployees {
		return apperrors.NewValidationError("minEmployees", "cannot be greater than maxEmployees")
	}
	return r.PaginationConditions.Validate()
}

// CompileCompanyFilter turns the present criteria into a predicate, evaluated
// as nameLike, minEmployees, maxEmployees.
func CompileCompanyFilter(req GetCompaniesRequest) *sqlgen.Predicate {
	p := sqlgen.NewPredicate()
	if req.NameLike != nil {
		p.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, containsPattern(*req.NameLike))
	}
	if req.MinEmployees != nil {
		p.Where("num_employees >= ?", *req.MinEmployees)
	}
	if req.MaxEmployees != nil {
		p.Where("num_employees <= ?", *req.MaxEmployees)
	}
	return p
}

// ParseGetCompaniesQuery reads company search criteria from a query string.
// Both nameLike and name are accepted for the name filter.
func ParseGetCompaniesQuery(values url.Values) (GetCompaniesRequest, error) {
	var req GetCompaniesRequest
	var err error

	if name := firstNonEmpty(values.Get("nameLike"), values.Get("name")); name != "" {
		req.NameLike = &name
	}
	if req.MinEmployees, err = parseNonNegativeInt(values, "minEmployees"); err != nil {
		return req, err
	}
	if req.MaxEmployees, err = parseNonNegativeInt(values, "maxEmployees"); err != nil {
		return req, err
	}
	if req.PaginationConditions, err = parsePagination(values); err != nil {
		return req, err
	}
	return req, req.Validate()
}
