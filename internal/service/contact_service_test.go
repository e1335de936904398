package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/model"
	"threadline/web/internal/repository"
	"threadline/web/internal/service"
)

func setupContactService(t *testing.T) (*service.ContactService, *sql.DB, sqlmock.Sqlmock, *clock.Mock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	mc := clock.NewMock()
	mc.Set(time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC))
	return service.NewContactService(repository.NewContactRepository(db), mc, nil), db, mockDB, mc
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Trimmed and stored", func(t *testing.T) {
		svc, db, mockDB, mc := setupContactService(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectExec("INSERT INTO contact_submissions").
			WithArgs(sqlmock.AnyArg(), "Ada Lovelace", "ada@example.com", "partnership",
				"We would like to partner on a capsule.", sql.NullString{String: "Atelier A", Valid: true}, sql.NullString{}, mc.Now().UTC()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		sub, err := svc.Submit(ctx, model.ContactRequest{
			Name:    "  Ada Lovelace ",
			Email:   "ada@example.com",
			Subject: "partnership",
			Message: "  We would like to partner on a capsule.  ",
			Company: "Atelier A",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, sub.ID)
		assert.Equal(t, "Ada Lovelace", sub.Name)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Failure - Storage error is internal", func(t *testing.T) {
		svc, db, mockDB, _ := setupContactService(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectExec("INSERT INTO contact_submissions").WillReturnError(errors.New("database is locked"))

		_, err := svc.Submit(ctx, model.ContactRequest{Name: "A", Email: "a@b.co", Subject: "general", Message: "Hello there team"})
		assert.ErrorIs(t, err, app_errors.ErrInternal)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()
	svc, db, mockDB, _ := setupContactService(t)
	defer func() { _ = db.Close() }()

	cols := []string{"id", "name", "email", "subject", "message", "company", "phone", "created_at"}
	mockDB.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))
	mockDB.ExpectQuery("FROM contact_submissions").WithArgs(15, 15).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("s-16", "Bo", "bo@example.com", "support", "Upload keeps failing.", nil, nil, time.Now()).
			AddRow("s-17", "Cy", "cy@example.com", "other", "Just saying hello!", nil, nil, time.Now()))

	p, err := svc.List(ctx, 2, 15)
	require.NoError(t, err)
	assert.Len(t, p.Data, 2)
	assert.Equal(t, 2, p.Meta.LastPage)
	assert.False(t, p.Meta.HasNext())
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestContactService_GetNotFound(t *testing.T) {
	svc, db, mockDB, _ := setupContactService(t)
	defer func() { _ = db.Close() }()

	mockDB.ExpectQuery("FROM contact_submissions WHERE id").WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}
