package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"employee-directory/internal/models"
)

const dateLayout = "2006-01-02"

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("employee with this email already exists")

type EmployeeStore interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, d models.Draft) (models.Employee, error)
	Ping(ctx context.Context) error
}

type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, phone_number, department, date_of_joining, role
		FROM employees
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query employees")
	}
	defer rows.Close()

	result := make([]models.Employee, 0)
	for rows.Next() {
		var (
			e      models.Employee
			id     string
			joined time.Time
		)
		if err := rows.Scan(&id, &e.Name, &e.Email, &e.PhoneNumber, &e.Department, &joined, &e.Role); err != nil {
			return nil, errors.Wrap(err, "scan employee")
		}
		e.ID = models.EmployeeID(id)
		e.DateOfJoining = joined.Format(dateLayout)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate employees")
	}
	return result, nil
}

// Create inserts a validated draft. The id is generated here; the client
// never supplies one.
func (s *PgStore) Create(ctx context.Context, d models.Draft) (models.Employee, error) {
	joined, err := time.Parse(dateLayout, d.DateOfJoining)
	if err != nil {
		return models.Employee{}, errors.Wrap(err, "parse date_of_joining")
	}

	id := uuid.NewString()
	_, err = s.pool.Exec(ctx, `
		INSERT INTO employees (id, name, email, phone_number, department, date_of_joining, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, d.Name, d.Email, d.PhoneNumber, d.Department, joined, d.Role)
	if err != nil {
		if isUniqueViolation(err, "employees_email_key") {
			return models.Employee{}, ErrDuplicateEmail
		}
		return models.Employee{}, errors.Wrap(err, "insert employee")
	}

	return models.Employee{
		ID:            models.EmployeeID(id),
		Name:          d.Name,
		Email:         d.Email,
		PhoneNumber:   d.PhoneNumber,
		Department:    d.Department,
		DateOfJoining: joined.Format(dateLayout),
		Role:          d.Role,
	}, nil
}

func (s *PgStore) Ping(ctx context.Context) error {
	var one int
	if err := s.pool.QueryRow(ctx, "select 1").Scan(&one); err != nil {
		return errors.Wrap(err, "ping")
	}
	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return false
}

var _ EmployeeStore = (*PgStore)(nil)
