package companies

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const companyColumns = `id, user_id, name, address, description, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, c Company) (Company, error) {
	const query = `
INSERT INTO companies (user_id, name, address, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING ` + companyColumns
	out, err := scanCompany(r.DB.QueryRowContext(ctx, query,
		c.UserID,
		c.Name,
		c.Address,
		nullableString(c.Description),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Company{}, ErrExists
		}
		return Company{}, err
	}
	return out, nil
}

func (r *PGRepo) Update(ctx context.Context, c Company) (Company, error) {
	const query = `
UPDATE companies
SET name = $2, address = $3, description = $4, updated_at = now()
WHERE id = $1
RETURNING ` + companyColumns
	return scanCompany(r.DB.QueryRowContext(ctx, query,
		c.ID,
		c.Name,
		c.Address,
		nullableString(c.Description),
	))
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (Company, error) {
	const query = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) GetByUserID(ctx context.Context, userID string) (Company, error) {
	const query = `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 LIMIT 1`
	return scanCompany(r.DB.QueryRowContext(ctx, query, userID))
}

func scanCompany(row *sql.Row) (Company, error) {
	var c Company
	var description sql.NullString
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Address, &description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		return Company{}, err
	}
	if description.Valid {
		c.Description = description.String
	}
	return c, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
