package response

import (
	"github.com/PayRam/go-jobly/models"
	"github.com/shopspring/decimal"
)

// CompanyDetail is a company with the jobs it posts
type CompanyDetail struct {
	models.Company
	Jobs []JobSummary `json:"jobs"`
}

// JobSummary is a job without its company handle
type JobSummary struct {
	ID     uint             `json:"id"`
	Title  string           `json:"title"`
	Salary *int             `json:"salary"`
	Equity *decimal.Decimal `json:"equity"`
}

// UserDetail is a user with the ids of the jobs they applied to
type UserDetail struct {
	models.User
	Jobs []uint `json:"jobs"`
}

// Application is the result of applying to a job
type Application struct {
	Username string `json:"username"`
	Applied  uint   `json:"applied"`
}
