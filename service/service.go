package service

import (
	"context"

	"github.com/PayRam/go-jobly/models"
	"github.com/PayRam/go-jobly/request"
	"github.com/PayRam/go-jobly/response"
)

// CompanyService handles operations related to companies
type CompanyService interface {
	CreateCompany(ctx context.Context, req request.CreateCompanyRequest) (*models.Company, error)
	GetCompany(ctx context.Context, handle string) (*response.CompanyDetail, error)
	GetAllCompanies(ctx context.Context) ([]models.Company, error)
	GetCompanies(ctx context.Context, req request.GetCompaniesRequest) ([]models.Company, error)
	UpdateCompany(ctx context.Context, handle string, req request.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, handle string) error
	CompanyExists(ctx context.Context, handle string) (bool, error)
}

// JobService handles operations related to jobs
type JobService interface {
	CreateJob(ctx context.Context, req request.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id uint) (*models.Job, error)
	GetAllJobs(ctx context.Context) ([]models.Job, error)
	GetJobs(ctx context.Context, req request.GetJobsRequest) ([]models.Job, error)
	GetJobsByCompany(ctx context.Context, handle string) ([]response.JobSummary, error)
	UpdateJob(ctx context.Context, id uint, req request.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id uint) error
	JobExists(ctx context.Context, id uint) (bool, error)
}

// UserService handles operations related to users and their applications
type UserService interface {
	CreateUser(ctx context.Context, req request.CreateUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, username string) (*response.UserDetail, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUsers(ctx context.Context, req request.GetUsersRequest) ([]models.User, error)
	UpdateUser(ctx context.Context, username string, req request.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	UserExists(ctx context.Context, username string) (bool, error)
	ApplyToJob(ctx context.Context, username string, jobID uint) (*response.Application, error)
}
