package postgres

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/gohire/recruitment-service/internal/errors"
	"github.com/gohire/recruitment-service/internal/recruitment/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectPerson = `
	SELECT p.person_id, p.name, p.surname, p.email, p.pnr, p.username, p.password, r.name
	FROM person p
	JOIN role r ON r.role_id = p.role_id
`

func scanPerson(row pgx.Row) (*domain.Person, error) {
	var p domain.Person
	var role string
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.PersonNumber, &p.Username, &p.PasswordHash, &role); err != nil {
		return nil, err
	}
	p.Role = domain.Role(role)
	return &p, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	row := r.db.QueryRow(ctx, selectPerson+` WHERE p.username = $1 LIMIT 1`, username)

	person, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person by username: %w", err)
	}
	return person, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	row := r.db.QueryRow(ctx, selectPerson+` WHERE p.person_id = $1`, id)

	person, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person by id: %w", err)
	}
	return person, nil
}

// CreateApplicant inserts the person with the applicant role and an
// unhandled application in one transaction.
func (r *PostgresRepository) CreateApplicant(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO person (name, surname, email, pnr, username, password, role_id)
		SELECT $1, $2, $3, $4, $5, $6, role_id FROM role WHERE name = $7
		RETURNING person_id
	`, person.FirstName, person.LastName, person.Email, person.PersonNumber,
		person.Username, person.PasswordHash, string(domain.RoleApplicant)).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert person: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO application (person_id, status) VALUES ($1, $2)`,
		id, string(domain.StatusUnhandled)); err != nil {
		return nil, fmt.Errorf("failed to insert application: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit applicant: %w", err)
	}

	created := *person
	created.ID = id
	created.Role = domain.RoleApplicant
	return &created, nil
}

func (r *PostgresRepository) ListApplicants(ctx context.Context) ([]domain.Applicant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.person_id, p.name, p.surname, a.status
		FROM application a
		JOIN person p ON p.person_id = a.person_id
		ORDER BY p.person_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applicants: %w", err)
	}
	defer rows.Close()

	applicants := []domain.Applicant{}
	for rows.Next() {
		var a domain.Applicant
		var status string
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &status); err != nil {
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		a.Status = domain.ApplicationStatus(status)
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applicants: %w", err)
	}
	return applicants, nil
}

// UpdateStatusIfUnhandled is a single conditional UPDATE, so two concurrent
// decisions on the same applicant cannot both succeed. The follow-up SELECT
// only classifies a miss.
func (r *PostgresRepository) UpdateStatusIfUnhandled(ctx context.Context, applicantID int64, status domain.ApplicationStatus) (*domain.Applicant, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE application a
		SET status = $1
		FROM person p
		WHERE a.person_id = $2 AND a.status = $3 AND p.person_id = a.person_id
		RETURNING p.person_id, p.name, p.surname, a.status
	`, string(status), applicantID, string(domain.StatusUnhandled))

	var a domain.Applicant
	var newStatus string
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &newStatus)
	if err == nil {
		a.Status = domain.ApplicationStatus(newStatus)
		return &a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	var current string
	err = r.db.QueryRow(ctx, `SELECT status FROM application WHERE person_id = $1`, applicantID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("failed to read application status: %w", err)
	}
	return nil, apperrors.ErrApplicationAlreadyHandled
}
