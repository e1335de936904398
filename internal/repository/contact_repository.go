package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"threadline/web/internal/model"
)

type sqliteContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) ContactRepository {
	return &sqliteContactRepository{db: db}
}

func (r *sqliteContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (id, name, email, subject, message, company, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Email, s.Subject, s.Message,
		nullString(s.Company), nullString(s.Phone), s.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert contact submission: %w", err)
	}
	return nil
}

func (r *sqliteContactRepository) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	query := `SELECT id, name, email, subject, message, company, phone, created_at
		FROM contact_submissions WHERE id = ?`
	s, err := scanSubmission(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sqliteContactRepository) List(ctx context.Context, limit, offset int) ([]model.ContactSubmission, error) {
	query := `SELECT id, name, email, subject, message, company, phone, created_at
		FROM contact_submissions ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []model.ContactSubmission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *s)
	}
	return submissions, rows.Err()
}

func (r *sqliteContactRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_submissions").Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	var company, phone sql.NullString
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &company, &phone, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Company = company.String
	s.Phone = phone.String
	return &s, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
