package request

import (
	"net/mail"
	"net/url"
	"strconv"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/sqlgen"
)

const minPasswordLength = 5

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	IsAdmin   bool   `json:"isAdmin"`
}

func (r CreateUserRequest) Validate() error {
	if err := validateHandle("username", r.Username); err != nil {
		return err
	}
	if len(r.Password) < minPasswordLength {
		return apperrors.NewValidationError("password", "must be at least 5 characters")
	}
	if r.FirstName == "" {
		return apperrors.NewValidationError("firstName", "is required")
	}
	if r.LastName == "" {
		return apperrors.NewValidationError("lastName", "is required")
	}
	return validateEmail(r.Email)
}

// CreateUserFields lists the columns of a new user row. The caller replaces
// the password with its hash before inserting.
func CreateUserFields(req CreateUserRequest) sqlgen.Fields {
	return sqlgen.Fields{}.
		Set("username", req.Username).
		Set("password", req.Password).
		Set("firstName", req.FirstName).
		Set("lastName", req.LastName).
		Set("email", req.Email).
		Set("isAdmin", req.IsAdmin)
}

type UpdateUserRequest struct {
	Username  *string `json:"username"` // rejected
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	IsAdmin   *bool   `json:"isAdmin"`
}

func (r UpdateUserRequest) Validate() error {
	if r.Username != nil {
		return apperrors.NewValidationError("username", "cannot be changed")
	}
	if r.Password != nil && len(*r.Password) < minPasswordLength {
		return apperrors.NewValidationError("password", "must be at least 5 characters")
	}
	if r.FirstName != nil && *r.FirstName == "" {
		return apperrors.NewValidationError("firstName", "cannot be empty")
	}
	if r.LastName != nil && *r.LastName == "" {
		return apperrors.NewValidationError("lastName", "cannot be empty")
	}
	if r.Email != nil {
		return validateEmail(*r.Email)
	}
	return nil
}

// UpdateUserFields collects the present fields of req. isAdmin=false is present.
func UpdateUserFields(req UpdateUserRequest) sqlgen.Fields {
	fields := sqlgen.Fields{}
	if req.Password != nil {
		fields = fields.Set("password", *req.Password)
	}
	if req.FirstName != nil {
		fields = fields.Set("firstName", *req.FirstName)
	}
	if req.LastName != nil {
		fields = fields.Set("lastName", *req.LastName)
	}
	if req.Email != nil {
		fields = fields.Set("email", *req.Email)
	}
	if req.IsAdmin != nil {
		fields = fields.Set("isAdmin", *req.IsAdmin)
	}
	return fields
}

type GetUsersRequest struct {
	NameLike             *string              `form:"nameLike"` // partial match on first or last name
	Email                *string              `form:"email"`
	IsAdmin              *bool                `form:"isAdmin"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func (r GetUsersRequest) Validate() error {
	return r.PaginationConditions.Validate()
}

func CompileUserFilter(req GetUsersRequest) *sqlgen.Predicate {
	p := sqlgen.NewPredicate()
	if req.NameLike != nil {
		pattern := containsPattern(*req.NameLike)
		p.Where(`(LOWER(first_name) LIKE LOWER(?) ESCAPE '\' OR LOWER(last_name) LIKE LOWER(?) ESCAPE '\')`, pattern, pattern)
	}
	if req.Email != nil {
		p.Where("email = ?", *req.Email)
	}
	if req.IsAdmin != nil {
		p.Where("is_admin = ?", *req.IsAdmin)
	}
	return p
}

func ParseGetUsersQuery(values url.Values) (GetUsersRequest, error) {
	var req GetUsersRequest
	var err error

	if name := values.Get("nameLike"); name != "" {
		req.NameLike = &name
	}
	if email := values.Get("email"); email != "" {
		req.Email = &email
	}
	if raw := values.Get("isAdmin"); raw != "" {
		isAdmin, err := strconv.ParseBool(raw)
		if err != nil {
			return req, apperrors.NewValidationError("isAdmin", "must be true or false")
		}
		req.IsAdmin = &isAdmin
	}
	if req.PaginationConditions, err = parsePagination(values); err != nil {
		return req, err
	}
	return req, req.Validate()
}

func validateEmail(email string) error {
	if email == "" {
		return apperrors.NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.NewValidationError("email", "invalid email format")
	}
	return nil
}
