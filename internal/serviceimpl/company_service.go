package serviceimpl

import (
	"context"
	"fmt"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/db"
	"github.com/PayRam/go-jobly/internal/sqlgen"
	"github.com/PayRam/go-jobly/models"
	"github.com/PayRam/go-jobly/request"
	"github.com/PayRam/go-jobly/response"
	"github.com/PayRam/go-jobly/service"
)

const companiesTable = "companies"

var (
	companyColumns = sqlgen.ColumnMap{
		"numEmployees": "num_employees",
		"logoUrl":      "logo_url",
	}
	companySelect = []string{"handle", "name", "description", "num_employees", "logo_url"}
)

type companyService struct {
	Store db.Store
}

var _ service.CompanyService = &companyService{}

func NewCompanyService(store db.Store) *companyService {
	return &companyService{Store: store}
}

// CreateCompany inserts a company. A taken handle or name is a bad request.
func (s *companyService) CreateCompany(ctx context.Context, req request.CreateCompanyRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query, err := sqlgen.Insert(companiesTable, request.CreateCompanyFields(req), companyColumns, companySelect)
	if err != nil {
		return nil, err
	}

	var company models.Company
	if _, err := s.Store.Query(ctx, &company, query); err != nil {
		if apperrors.IsConstraintViolation(err) {
			return nil, fmt.Errorf("duplicate company %s: %w", req.Handle, err)
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &company, nil
}

// GetCompany returns the company with its jobs
func (s *companyService) GetCompany(ctx context.Context, handle string) (*response.CompanyDetail, error) {
	company, err := s.findByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	jobs, err := jobsByCompany(ctx, s.Store, handle)
	if err != nil {
		return nil, err
	}

	return &response.CompanyDetail{Company: *company, Jobs: jobs}, nil
}

func (s *companyService) GetAllCompanies(ctx context.Context) ([]models.Company, error) {
	return s.list(ctx, sqlgen.SelectQuery{
		Table:   companiesTable,
		Columns: companySelect,
		OrderBy: []string{"name"},
	})
}

// GetCompanies lists companies matching every present criterion. With no
// criteria it lists all companies.
func (s *companyService) GetCompanies(ctx context.Context, req request.GetCompaniesRequest) ([]models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := sqlgen.SelectQuery{
		Table:   companiesTable,
		Columns: companySelect,
		Where:   request.CompileCompanyFilter(req),
		OrderBy: []string{"name"},
	}
	return s.list(ctx, request.ApplyPaginationConditions(query, req.PaginationConditions))
}

// UpdateCompany applies the present fields of req. The handle cannot change.
func (s *companyService) UpdateCompany(ctx context.Context, handle string, req request.UpdateCompanyRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query, err := sqlgen.Update(companiesTable, request.UpdateCompanyFields(req), companyColumns, "handle", handle, companySelect)
	if err != nil {
		return nil, err
	}

	var company models.Company
	n, err := s.Store.Query(ctx, &company, query)
	if err != nil {
		if apperrors.IsConstraintViolation(err) {
			return nil, fmt.Errorf("cannot update company %s: %w", handle, err)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	if n == 0 {
		return nil, apperrors.NewNotFoundError("company", handle)
	}
	return &company, nil
}

// DeleteCompany removes the company; its jobs go with it.
func (s *companyService) DeleteCompany(ctx context.Context, handle string) error {
	n, err := s.Store.Exec(ctx, sqlgen.Delete(companiesTable, "handle", handle))
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError("company", handle)
	}
	return nil
}

func (s *companyService) CompanyExists(ctx context.Context, handle string) (bool, error) {
	return exists(ctx, s.Store, companiesTable, "handle", handle)
}

func (s *companyService) findByHandle(ctx context.Context, handle string) (*models.Company, error) {
	query, err := sqlgen.SelectQuery{
		Table:   companiesTable,
		Columns: companySelect,
		Where:   sqlgen.NewPredicate().Where("handle = ?", handle),
	}.Build()
	if err != nil {
		return nil, err
	}

	var company models.Company
	n, err := s.Store.Query(ctx, &company, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	if n == 0 {
		return nil, apperrors.NewNotFoundError("company", handle)
	}
	return &company, nil
}

func (s *companyService) list(ctx context.Context, sel sqlgen.SelectQuery) ([]models.Company, error) {
	query, err := sel.Build()
	if err != nil {
		return nil, err
	}

	companies := []models.Company{}
	if _, err := s.Store.Query(ctx, &companies, query); err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	return companies, nil
}
