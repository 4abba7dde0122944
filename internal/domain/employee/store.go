package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, employeeID string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(employee_number, ''), first_name, last_name, email,
           COALESCE(designation, ''), COALESCE(department, ''),
           hire_date, base_salary, created_at
    FROM employees
    WHERE id = $1
  `, employeeID).Scan(&emp.ID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName,
		&emp.Email, &emp.Designation, &emp.Department, &emp.HireDate, &emp.BaseSalary, &emp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// GetCompensation returns the employee's base salary, failing rather than
// defaulting to zero when none is configured.
func (s *Store) GetCompensation(ctx context.Context, employeeID string) (Compensation, error) {
	var salary *float64
	err := s.DB.QueryRow(ctx, "SELECT base_salary FROM employees WHERE id = $1", employeeID).Scan(&salary)
	if errors.Is(err, pgx.ErrNoRows) {
		return Compensation{}, ErrNotFound
	}
	if err != nil {
		return Compensation{}, err
	}
	if salary == nil || *salary <= 0 {
		return Compensation{}, ErrMissingCompensation
	}
	return Compensation{EmployeeID: employeeID, BaseSalary: *salary}, nil
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(employee_number, ''), first_name, last_name, email,
           COALESCE(designation, ''), COALESCE(department, ''),
           hire_date, base_salary, created_at
    FROM employees
    ORDER BY last_name, first_name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName,
			&emp.Email, &emp.Designation, &emp.Department, &emp.HireDate, &emp.BaseSalary, &emp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}
