package jobdescriptions

import "context"

// Repo persists destination records per company.
type Repo interface {
	Insert(ctx context.Context, jd JobDescription) error
	ListByCompany(ctx context.Context, companyID int64) ([]JobDescription, error)
}

// CompanyChecker reports whether a company exists.
type CompanyChecker interface {
	CompanyExists(ctx context.Context, companyID int64) (bool, error)
}
