package leave

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const requestColumns = `id, employee_id, start_date, end_date, leave_type, reason, status,
  COALESCE(admin_notes, ''), submitted_at, reviewed_at, COALESCE(reviewed_by, '')`

func scanRequest(row pgx.Row) (Request, error) {
	var req Request
	err := row.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Type,
		&req.Reason, &req.Status, &req.AdminNotes, &req.SubmittedAt, &req.ReviewedAt, &req.ReviewedBy)
	return req, err
}

func (s *Store) Get(ctx context.Context, requestID string) (Request, error) {
	req, err := scanRequest(s.DB.QueryRow(ctx,
		"SELECT "+requestColumns+" FROM leave_requests WHERE id = $1", requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Store) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	query := "SELECT " + requestColumns + " FROM leave_requests WHERE 1=1"
	countQuery := "SELECT COUNT(1) FROM leave_requests WHERE 1=1"
	var args []any

	addFilter := func(clause, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		pos := len(args)
		query += clause + positional(pos)
		countQuery += clause + positional(pos)
	}
	addFilter(" AND employee_id = ", filter.EmployeeID)
	addFilter(" AND status = ", filter.Status)
	addFilter(" AND leave_type = ", filter.Type)

	var total int
	if err := s.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return ListResult{}, err
	}

	query += " ORDER BY submitted_at DESC"
	args = append(args, filter.Limit, filter.Offset)
	query += " LIMIT " + positional(len(args)-1) + " OFFSET " + positional(len(args))

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return ListResult{}, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return ListResult{}, err
		}
		requests = append(requests, req)
	}
	return ListResult{Requests: requests, Total: total}, rows.Err()
}

func (s *Store) ApprovedForEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.queryRequests(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE employee_id = $1 AND status = $2
    ORDER BY start_date
  `, employeeID, StatusApproved)
}

func (s *Store) ApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Request, error) {
	return s.queryRequests(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE employee_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $4
    ORDER BY start_date
  `, employeeID, StatusApproved, end, start)
}

func (s *Store) Create(ctx context.Context, req Request) (Request, error) {
	created, err := scanRequest(s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, leave_type, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING `+requestColumns+`
  `, req.EmployeeID, req.StartDate, req.EndDate, req.Type, req.Reason, req.Status))
	if err != nil {
		return Request{}, err
	}
	return created, nil
}

// Decide flips a Pending request to its terminal status. Approvals for one
// employee are serialized inside the transaction: the row lock covers only
// the request being decided, so the overlap re-check additionally takes a
// per-employee advisory lock that is held until commit. Two overlapping
// requests decided concurrently therefore re-check one at a time, and the
// loser sees the winner's Approved row. The approved_no_overlap exclusion
// constraint backstops the same invariant in the schema.
func (s *Store) Decide(ctx context.Context, requestID, status, notes, reviewer string) (Request, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Request{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanRequest(tx.QueryRow(ctx,
		"SELECT "+requestColumns+" FROM leave_requests WHERE id = $1 FOR UPDATE", requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, err
	}
	if current.Status != StatusPending {
		return Request{}, ErrInvalidTransition
	}

	if status == StatusApproved {
		if _, err := tx.Exec(ctx,
			"SELECT pg_advisory_xact_lock(hashtext($1::text))", current.EmployeeID); err != nil {
			return Request{}, err
		}

		var conflicting int
		err = tx.QueryRow(ctx, `
      SELECT COUNT(1)
      FROM leave_requests
      WHERE employee_id = $1 AND status = $2 AND id <> $3
        AND start_date <= $4 AND end_date >= $5
    `, current.EmployeeID, StatusApproved, requestID, current.EndDate, current.StartDate).Scan(&conflicting)
		if err != nil {
			return Request{}, err
		}
		if conflicting > 0 {
			return Request{}, ErrOverlap
		}
	}

	decided, err := scanRequest(tx.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $1, admin_notes = NULLIF($2, ''), reviewed_at = now(), reviewed_by = $3
    WHERE id = $4
    RETURNING `+requestColumns+`
  `, status, notes, reviewer, requestID))
	if isExclusionViolation(err) {
		return Request{}, ErrOverlap
	}
	if err != nil {
		return Request{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		if isExclusionViolation(err) {
			return Request{}, ErrOverlap
		}
		return Request{}, err
	}
	return decided, nil
}

// Delete is the administrative override, not a workflow transition.
func (s *Store) Delete(ctx context.Context, requestID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM leave_requests WHERE id = $1", requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SummaryStats(ctx context.Context) (SummaryStats, error) {
	var stats SummaryStats
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COUNT(1) FILTER (WHERE status = $1),
           COUNT(1) FILTER (WHERE status = $2),
           COUNT(1) FILTER (WHERE status = $3)
    FROM leave_requests
  `, StatusPending, StatusApproved, StatusRejected).
		Scan(&stats.Total, &stats.Pending, &stats.Approved, &stats.Rejected)
	if err != nil {
		return SummaryStats{}, err
	}
	return stats, nil
}

func (s *Store) queryRequests(ctx context.Context, query string, args ...any) ([]Request, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func positional(n int) string {
	return "$" + strconv.Itoa(n)
}

// 23P01 is raised by the approved_no_overlap exclusion constraint.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
