package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/calendar"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ForMonth returns the employee's records restricted to one calendar month,
// the shape Summarize expects.
func (s *Store) ForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Record, error) {
	start, end := calendar.MonthBounds(year, month)
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, date, status, check_in, check_out, created_at
    FROM attendance_records
    WHERE employee_id = $1 AND date BETWEEN $2 AND $3
    ORDER BY date
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Date, &record.Status,
			&record.CheckIn, &record.CheckOut, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) Create(ctx context.Context, record Record) (Record, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records (employee_id, date, status, check_in, check_out)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id, created_at
  `, record.EmployeeID, record.Date, record.Status, record.CheckIn, record.CheckOut).
		Scan(&record.ID, &record.CreatedAt)
	if isUniqueViolation(err) {
		return Record{}, ErrDuplicate
	}
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

// UpdateStatus is the HR status-correction path; records are otherwise
// immutable once created.
func (s *Store) UpdateStatus(ctx context.Context, recordID, status string) (Record, error) {
	var record Record
	err := s.DB.QueryRow(ctx, `
    UPDATE attendance_records SET status = $1
    WHERE id = $2
    RETURNING id, employee_id, date, status, check_in, check_out, created_at
  `, status, recordID).Scan(&record.ID, &record.EmployeeID, &record.Date, &record.Status,
		&record.CheckIn, &record.CheckOut, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

// BulkImport inserts a batch inside one transaction, skipping rows that
// collide with an existing employee+date pair. Returns the inserted count.
func (s *Store) BulkImport(ctx context.Context, records []Record) (int, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inserted := 0
	for _, record := range records {
		tag, err := tx.Exec(ctx, `
      INSERT INTO attendance_records (employee_id, date, status, check_in, check_out)
      VALUES ($1,$2,$3,$4,$5)
      ON CONFLICT (employee_id, date) DO NOTHING
    `, record.EmployeeID, record.Date, record.Status, record.CheckIn, record.CheckOut)
		if err != nil {
			return 0, err
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
