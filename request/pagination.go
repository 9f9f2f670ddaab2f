package request

import (
	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/sqlgen"
)

type PaginationConditions struct {
	Limit  *int `form:"limit"`  // Pagination limit
	Offset *int `form:"offset"` // Rows to skip; only applied together with Limit
}

func (p PaginationConditions) Validate() error {
	if p.Limit != nil && *p.Limit < 0 {
		return apperrors.NewValidationError("limit", "must be a non-negative integer")
	}
	if p.Offset != nil && *p.Offset < 0 {
		return apperrors.NewValidationError("offset", "must be a non-negative integer")
	}
	if p.Offset != nil && *p.Offset > 0 && (p.Limit == nil || *p.Limit == 0) {
		return apperrors.NewValidationError("offset", "requires a limit")
	}
	return nil
}

// ApplyPaginationConditions copies the page window onto a select
func ApplyPaginationConditions(query sqlgen.SelectQuery, conditions PaginationConditions) sqlgen.SelectQuery {
	query.Limit = conditions.Limit
	query.Offset = conditions.Offset
	return query
}
