package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"employer-hub/pkg/employer"
)

// EmployerRepository implements employer.Repository backed by PostgreSQL (pgx).
type EmployerRepository struct {
	pool *pgxpool.Pool
}

func NewEmployerRepository(pool *pgxpool.Pool) (*EmployerRepository, error) {
	r := &EmployerRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *EmployerRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS employers (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	company_name TEXT NOT NULL,
	company_size TEXT NOT NULL,
	industry TEXT NOT NULL,
	company_location TEXT NOT NULL,
	company_logo TEXT,
	created_by UUID,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_employers_created_at ON employers(created_at DESC);
`)
	return err
}

const employerColumns = `id, name, email, company_name, company_size, industry,
	company_location, COALESCE(company_logo, ''), created_by, created_at`

func scanEmployer(row pgx.Row) (employer.Employer, error) {
	var e employer.Employer
	var created time.Time
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.CompanyName, &e.CompanySize,
		&e.Industry, &e.CompanyLocation, &e.CompanyLogo, &e.CreatedBy, &created)
	if err != nil {
		return employer.Employer{}, err
	}
	e.CreatedAt = created.UTC()
	return e, nil
}

func (r *EmployerRepository) Create(ctx context.Context, e employer.Employer) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO employers (id, name, email, company_name, company_size, industry,
	company_location, company_logo, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)
`, e.ID, e.Name, e.Email, e.CompanyName, e.CompanySize, e.Industry,
		e.CompanyLocation, e.CompanyLogo, e.CreatedBy, e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return employer.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *EmployerRepository) GetByID(ctx context.Context, id uuid.UUID) (employer.Employer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+employerColumns+` FROM employers WHERE id = $1`, id)
	e, err := scanEmployer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return employer.Employer{}, employer.ErrNotFound
	}
	return e, err
}

func (r *EmployerRepository) GetByEmail(ctx context.Context, email string) (employer.Employer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+employerColumns+` FROM employers WHERE email = $1`, email)
	e, err := scanEmployer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return employer.Employer{}, employer.ErrNotFound
	}
	return e, err
}

func (r *EmployerRepository) List(ctx context.Context) ([]employer.Employer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+employerColumns+` FROM employers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []employer.Employer
	for rows.Next() {
		e, err := scanEmployer(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *EmployerRepository) Update(ctx context.Context, id uuid.UUID, upd employer.Update) (employer.Employer, error) {
	var set []string
	var args []any
	add := func(col, val string) {
		if val != "" {
			args = append(args, val)
			set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}
	add("name", upd.Name)
	add("email", upd.Email)
	add("company_name", upd.CompanyName)
	add("company_size", upd.CompanySize)
	add("industry", upd.Industry)
	add("company_location", upd.CompanyLocation)
	add("company_logo", upd.CompanyLogo)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE employers SET %s WHERE id = $%d RETURNING `+employerColumns,
		strings.Join(set, ", "), len(args))

	row := r.pool.QueryRow(ctx, query, args...)
	e, err := scanEmployer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employer.Employer{}, employer.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employer.Employer{}, employer.ErrEmailTaken
		}
		return employer.Employer{}, err
	}
	return e, nil
}

func (r *EmployerRepository) Delete(ctx context.Context, id uuid.UUID) (employer.Employer, error) {
	row := r.pool.QueryRow(ctx, `DELETE FROM employers WHERE id = $1 RETURNING `+employerColumns, id)
	e, err := scanEmployer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return employer.Employer{}, employer.ErrNotFound
	}
	return e, err
}
