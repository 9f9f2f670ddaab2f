package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/db"
	"github.com/PayRam/go-jobly/internal/sqlgen"
	"github.com/PayRam/go-jobly/models"
	"github.com/PayRam/go-jobly/request"
	"github.com/PayRam/go-jobly/response"
	"github.com/PayRam/go-jobly/service"
)

const jobsTable = "jobs"

var (
	jobColumns = sqlgen.ColumnMap{
		"companyHandle": "company_handle",
	}
	jobSelect = []string{"id", "title", "salary", "equity", "company_handle"}
)

type jobService struct {
	Store db.Store
}

var _ service.JobService = &jobService{}

func NewJobService(store db.Store) *jobService {
	return &jobService{Store: store}
}

// CreateJob inserts a job. Posting to a company that does not exist is a bad request.
func (s *jobService) CreateJob(ctx context.Context, req request.CreateJobRequest) (*models.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query, err := sqlgen.Insert(jobsTable, request.CreateJobFields(req), jobColumns, jobSelect)
	if err != nil {
		return nil, err
	}

	var job models.Job
	if _, err := s.Store.Query(ctx, &job, query); err != nil {
		var ce *apperrors.ConstraintError
		if errors.As(err, &ce) {
			if ce.Kind == apperrors.ForeignKey {
				return nil, fmt.Errorf("company %s does not exist: %w", req.CompanyHandle, err)
			}
			return nil, fmt.Errorf("cannot create job: %w", err)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

func (s *jobService) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	query, err := sqlgen.SelectQuery{
		Table:   jobsTable,
		Columns: jobSelect,
		Where:   sqlgen.NewPredicate().Where("id = ?", id),
	}.Build()
	if err != nil {
		return nil, err
	}

	var job models.Job
	n, err := s.Store.Query(ctx, &job, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	if n == 0 {
		return nil, apperrors.NewNotFoundError("job", jobKey(id))
	}
	return &job, nil
}

func (s *jobService) GetAllJobs(ctx context.Context) ([]models.Job, error) {
	return s.list(ctx, sqlgen.SelectQuery{
		Table:   jobsTable,
		Columns: jobSelect,
		OrderBy: []string{"id"},
	})
}

// GetJobs lists jobs matching every present criterion. With no criteria it
// lists all jobs.
func (s *jobService) GetJobs(ctx context.Context, req request.GetJobsRequest) ([]models.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := sqlgen.SelectQuery{
		Table:   jobsTable,
		Columns: jobSelect,
		Where:   request.CompileJobFilter(req),
		OrderBy: []string{"id"},
	}
	return s.list(ctx, request.ApplyPaginationConditions(query, req.PaginationConditions))
}

func (s *jobService) GetJobsByCompany(ctx context.Context, handle string) ([]response.JobSummary, error) {
	return jobsByCompany(ctx, s.Store, handle)
}

// UpdateJob applies the present fields of req to job id
func (s *jobService) UpdateJob(ctx context.Context, id uint, req request.UpdateJobRequest) (*models.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query, err := sqlgen.Update(jobsTable, request.UpdateJobFields(req), jobColumns, "id", id, jobSelect)
	if err != nil {
		return nil, err
	}

	var job models.Job
	n, err := s.Store.Query(ctx, &job, query)
	if err != nil {
		if apperrors.IsConstraintViolation(err) {
			return nil, fmt.Errorf("invalid inputs for job %d: %w", id, err)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	if n == 0 {
		return nil, apperrors.NewNotFoundError("job", jobKey(id))
	}
	return &job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id uint) error {
	n, err := s.Store.Exec(ctx, sqlgen.Delete(jobsTable, "id", id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError("job", jobKey(id))
	}
	return nil
}

func (s *jobService) JobExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, s.Store, jobsTable, "id", id)
}

func (s *jobService) list(ctx context.Context, sel sqlgen.SelectQuery) ([]models.Job, error) {
	query, err := sel.Build()
	if err != nil {
		return nil, err
	}

	jobs := []models.Job{}
	if _, err := s.Store.Query(ctx, &jobs, query); err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	return jobs, nil
}

func jobKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
