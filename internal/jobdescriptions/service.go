package jobdescriptions

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jd-backend/internal/extract"
	"jd-backend/internal/shared/metrics"
	"jd-backend/internal/shared/storage/object"
)

// UploadResult is the basic record extracted from an upload.
type UploadResult struct {
	Record      map[string]any
	DocumentKey string
}

// Service ties the pipeline stages to storage and persistence.
type Service struct {
	Store     object.Store
	Extractor *Extractor
	Enhancer  *Enhancer
	Repo      Repo
	Companies CompanyChecker
	Now       func() time.Time
}

// Upload stores the original document under owner and extracts a basic
// record from it. Unrecognized formats are rejected before anything is stored.
func (s *Service) Upload(ctx context.Context, owner, fileName string, r io.Reader) (UploadResult, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return UploadResult{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if _, ok := extract.DetectFormat(fileName); !ok {
		return UploadResult{}, fmt.Errorf("%w: %s", extract.ErrUnsupportedFormat, fileName)
	}

	obj, err := s.Store.Put(ctx, owner, fileName, r)
	if err != nil {
		return UploadResult{}, err
	}

	text, err := extract.FromObject(ctx, s.Store, obj.Key, fileName)
	if err != nil {
		metrics.IncExtract()
		metrics.IncExtractFailed()
		logStageError(stageExtract, fileName, err)
		return UploadResult{}, err
	}

	rec, err := s.Extractor.FromText(ctx, text, fileName)
	if err != nil {
		return UploadResult{}, err
	}
	return UploadResult{Record: rec, DocumentKey: obj.Key}, nil
}

// Enhance runs the enhancement stage and maps the result.
func (s *Service) Enhance(ctx context.Context, basic map[string]any) (EnhancementResult, error) {
	return s.Enhancer.ProcessJobDescription(ctx, basic)
}

// Submit persists a destination record for an existing company. description
// overrides the stored summary when set.
func (s *Service) Submit(ctx context.Context, form DestinationRecord, description string) (JobDescription, error) {
	if form.CompanyID == nil || *form.CompanyID <= 0 {
		return JobDescription{}, fmt.Errorf("%w: company_id is required", ErrInvalidInput)
	}
	form.Title = strings.TrimSpace(form.Title)
	if form.Title == "" {
		return JobDescription{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if s.Companies != nil {
		ok, err := s.Companies.CompanyExists(ctx, *form.CompanyID)
		if err != nil {
			return JobDescription{}, err
		}
		if !ok {
			return JobDescription{}, ErrCompanyNotFound
		}
	}

	if strings.TrimSpace(description) == "" {
		description = form.JobSummary
	}
	jd := JobDescription{
		ID:          uuid.NewString(),
		CompanyID:   *form.CompanyID,
		Title:       form.Title,
		Description: description,
		FormData:    form,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Repo.Insert(ctx, jd); err != nil {
		return JobDescription{}, err
	}
	return jd, nil
}

// ListByCompany returns the stored job descriptions of a company.
func (s *Service) ListByCompany(ctx context.Context, companyID int64) ([]JobDescription, error) {
	if companyID <= 0 {
		return nil, fmt.Errorf("%w: company id must be positive", ErrInvalidInput)
	}
	return s.Repo.ListByCompany(ctx, companyID)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
