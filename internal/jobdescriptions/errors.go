package jobdescriptions

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrCompanyNotFound = errors.New("company not found")
)
