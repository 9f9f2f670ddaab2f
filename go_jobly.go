package go_jobly

import (
	db2 "github.com/PayRam/go-jobly/internal/db"
	"github.com/PayRam/go-jobly/internal/serviceimpl"
	"github.com/PayRam/go-jobly/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type JoblyService struct {
	Companies service.CompanyService
	Jobs      service.JobService
	Users     service.UserService
}

type options struct {
	bcryptCost int
}

type Option func(*options)

// WithBcryptCost sets the cost used to hash user passwords
func WithBcryptCost(cost int) Option {
	return func(o *options) {
		o.bcryptCost = cost
	}
}

func NewJoblyService(db *gorm.DB, opts ...Option) *JoblyService {
	o := options{bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&o)
	}

	db2.Migrate(db)
	store := db2.NewStore(db)
	return &JoblyService{
		Companies: serviceimpl.NewCompanyService(store),
		Jobs:      serviceimpl.NewJobService(store),
		Users:     serviceimpl.NewUserService(store, o.bcryptCost),
	}
}
