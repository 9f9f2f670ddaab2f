package models

import (
	"github.com/shopspring/decimal"
)

type Company struct {
	Handle       string  `gorm:"primaryKey;size:25" json:"handle"`
	Name         string  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	NumEmployees *int    `gorm:"check:num_employees >= 0" json:"numEmployees"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	LogoURL      *string `gorm:"column:logo_url;type:text" json:"logoUrl"`
}

func (Company) TableName() string {
	return "companies"
}

// Job is an opening at a company. Equity is a fraction in [0, 1].
type Job struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Title         string           `gorm:"type:text;not null" json:"title"`
	Salary        *int             `gorm:"check:salary >= 0" json:"salary"`
	Equity        *decimal.Decimal `gorm:"type:numeric;check:equity <= 1.0" json:"equity"`
	CompanyHandle string           `gorm:"size:25;not null;index" json:"companyHandle"`

	Company *Company `gorm:"foreignKey:CompanyHandle;references:Handle;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

type User struct {
	Username  string `gorm:"primaryKey;size:25" json:"username"`
	Password  string `gorm:"type:text;not null" json:"-"`
	FirstName string `gorm:"type:text;not null" json:"firstName"`
	LastName  string `gorm:"type:text;not null" json:"lastName"`
	Email     string `gorm:"type:text;not null" json:"email"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"isAdmin"`

	Applications []Application `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Application records that a user applied to a job
type Application struct {
	Username string `gorm:"primaryKey;size:25" json:"username"`
	JobID    uint   `gorm:"primaryKey" json:"jobId"`

	Job *Job `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
