package request

import (
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/PayRam/go-jobly/errors"
)

const maxHandleLength = 25

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a LIKE pattern matching s anywhere. Wildcards in s
// match literally; the condition must declare ESCAPE '\'.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func validateHandle(field, value string) error {
	if value == "" {
		return apperrors.NewValidationError(field, "is required")
	}
	if len(value) > maxHandleLength {
		return apperrors.NewValidationError(field, "must be at most 25 characters")
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.NewValidationError(field, "must be an absolute URL")
	}
	return nil
}

// parseNonNegativeInt reads an optional integer parameter. Empty means absent;
// anything that is not a whole number >= 0 names the field in the error.
func parseNonNegativeInt(values url.Values, field string) (*int, error) {
	raw := values.Get(field)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, apperrors.NewValidationError(field, "must be a non-negative integer")
	}
	return &n, nil
}

func parsePagination(values url.Values) (PaginationConditions, error) {
	var p PaginationConditions
	var err error
	if p.Limit, err = parseNonNegativeInt(values, "limit"); err != nil {
		return p, err
	}
	if p.Offset, err = parseNonNegativeInt(values, "offset"); err != nil {
		return p, err
	}
	return p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
