package jobdescriptions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert stores jd with its full form as JSONB.
func (r *PGRepo) Insert(ctx context.Context, jd JobDescription) error {
	const query = `
INSERT INTO job_descriptions (
    id,
    company_id,
    title,
    description,
    form_data,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	form, err := json.Marshal(jd.FormData)
	if err != nil {
		return fmt.Errorf("marshal form data: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		jd.ID,
		jd.CompanyID,
		jd.Title,
		jd.Description,
		form,
		jd.CreatedAt,
	)
	return err
}

// ListByCompany returns a company's job descriptions, newest first.
func (r *PGRepo) ListByCompany(ctx context.Context, companyID int64) ([]JobDescription, error) {
	const query = `
SELECT id, company_id, title, description, form_data, created_at
FROM job_descriptions
WHERE company_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []JobDescription{}
	for rows.Next() {
		var jd JobDescription
		var form []byte
		if err := rows.Scan(&jd.ID, &jd.CompanyID, &jd.Title, &jd.Description, &form, &jd.CreatedAt); err != nil {
			return nil, err
		}
		if len(form) > 0 {
			if err := json.Unmarshal(form, &jd.FormData); err != nil {
				return nil, fmt.Errorf("decode form data id=%s: %w", jd.ID, err)
			}
		}
		out = append(out, jd)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
