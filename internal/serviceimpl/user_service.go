package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/db"
	"github.com/PayRam/go-jobly/internal/sqlgen"
	"github.com/PayRam/go-jobly/models"
	"github.com/PayRam/go-jobly/request"
	"github.com/PayRam/go-jobly/response"
	"github.com/PayRam/go-jobly/service"
	"golang.org/x/crypto/bcrypt"
)

const (
	usersTable        = "users"
	applicationsTable = "applications"
)

var (
	userColumns = sqlgen.ColumnMap{
		"firstName": "first_name",
		"lastName":  "last_name",
		"isAdmin":   "is_admin",
	}
	applicationColumns = sqlgen.ColumnMap{
		"jobId": "job_id",
	}
	// password is never selected back out
	userSelect = []string{"username", "first_name", "last_name", "email", "is_admin"}
)

type userService struct {
	Store      db.Store
	BcryptCost int
}

var _ service.UserService = &userService{}

func NewUserService(store db.Store, bcryptCost int) *userService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{Store: store, BcryptCost: bcryptCost}
}

// CreateUser stores a new user with a hashed password
func (s *userService) CreateUser(ctx context.Context, req request.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields, err := s.hashPassword(request.CreateUserFields(req))
	if err != nil {
		return nil, err
	}

	query, err := sqlgen.Insert(usersTable, fields, userColumns, userSelect)
	if err != nil {
		return nil, err
	}

	var user models.User
	if _, err := s.Store.Query(ctx, &user, query); err != nil {
		if apperrors.IsConstraintViolation(err) {
			return nil, fmt.Errorf("duplicate username %s: %w", req.Username, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate checks the password of username. Unknown users and wrong
// passwords fail the same way.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	query, err := sqlgen.SelectQuery{
		Table:   usersTable,
		Columns: append([]string{"password"}, userSelect...),
		Where:   sqlgen.NewPredicate().Where("username = ?", username),
	}.Build()
	if err != nil {
		return nil, err
	}

	var user models.User
	n, err := s.Store.Query(ctx, &user, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if n == 0 || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.NewUnauthorizedError("invalid username/password")
	}

	user.Password = ""
	return &user, nil
}

// GetUser returns the user with the ids of the jobs they applied to
func (s *userService) GetUser(ctx context.Context, username string) (*response.UserDetail, error) {
	query, err := sqlgen.SelectQuery{
		Table:   usersTable,
		Columns: userSelect,
		Where:   sqlgen.NewPredicate().Where("username = ?", username),
	}.Build()
	if err != nil {
		return nil, err
	}

	var user models.User
	n, err := s.Store.Query(ctx, &user, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if n == 0 {
		return nil, apperrors.NewNotFoundError("user", username)
	}

	query, err = sqlgen.SelectQuery{
		Table:   applicationsTable,
		Columns: []string{"job_id"},
		Where:   sqlgen.NewPredicate().Where("username = ?", username),
		OrderBy: []string{"job_id"},
	}.Build()
	if err != nil {
		return nil, err
	}

	jobIDs := []uint{}
	if _, err := s.Store.Query(ctx, &jobIDs, query); err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	return &response.UserDetail{User: user, Jobs: jobIDs}, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.list(ctx, sqlgen.SelectQuery{
		Table:   usersTable,
		Columns: userSelect,
		OrderBy: []string{"username"},
	})
}

func (s *userService) GetUsers(ctx context.Context, req request.GetUsersRequest) ([]models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := sqlgen.SelectQuery{
		Table:   usersTable,
		Columns: userSelect,
		Where:   request.CompileUserFilter(req),
		OrderBy: []string{"username"},
	}
	return s.list(ctx, request.ApplyPaginationConditions(query, req.PaginationConditions))
}

// UpdateUser applies the present fields of req. A new password is hashed
// before it is stored.
func (s *userService) UpdateUser(ctx context.Context, username string, req request.UpdateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields, err := s.hashPassword(request.UpdateUserFields(req))
	if err != nil {
		return nil, err
	}

	query, err := sqlgen.Update(usersTable, fields, userColumns, "username", username, userSelect)
	if err != nil {
		return nil, err
	}

	var user models.User
	n, err := s.Store.Query(ctx, &user, query)
	if err != nil {
		if apperrors.IsConstraintViolation(err) {
			return nil, fmt.Errorf("cannot update user %s: %w", username, err)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return nil, apperrors.NewNotFoundError("user", username)
	}
	return &user, nil
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	n, err := s.Store.Exec(ctx, sqlgen.Delete(usersTable, "username", username))
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError("user", username)
	}
	return nil
}

func (s *userService) UserExists(ctx context.Context, username string) (bool, error) {
	return exists(ctx, s.Store, usersTable, "username", username)
}

// ApplyToJob records that username applied to jobID. Both must exist and
// applying twice is a bad request.
func (s *userService) ApplyToJob(ctx context.Context, username string, jobID uint) (*response.Application, error) {
	ok, err := exists(ctx, s.Store, jobsTable, "id", jobID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewNotFoundError("job", jobKey(jobID))
	}

	ok, err = exists(ctx, s.Store, usersTable, "username", username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewNotFoundError("user", username)
	}

	fields := sqlgen.Fields{}.
		Set("username", username).
		Set("jobId", jobID)
	query, err := sqlgen.Insert(applicationsTable, fields, applicationColumns, nil)
	if err != nil {
		return nil, err
	}

	if _, err := s.Store.Exec(ctx, query); err != nil {
		var ce *apperrors.ConstraintError
		if errors.As(err, &ce) && ce.Kind == apperrors.Unique {
			return nil, fmt.Errorf("%s already applied to job %d: %w", username, jobID, err)
		}
		return nil, fmt.Errorf("failed to apply to job: %w", err)
	}

	return &response.Application{Username: username, Applied: jobID}, nil
}

func (s *userService) hashPassword(fields sqlgen.Fields) (sqlgen.Fields, error) {
	for _, f := range fields {
		if f.Name != "password" {
			continue
		}
		password, ok := f.Value.(string)
		if !ok {
			return nil, apperrors.NewValidationError("password", "must be a string")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		return fields.Set("password", string(hashed)), nil
	}
	return fields, nil
}

func (s *userService) list(ctx context.Context, sel sqlgen.SelectQuery) ([]models.User, error) {
	query, err := sel.Build()
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if _, err := s.Store.Query(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
