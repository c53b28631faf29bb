package users

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	user := User{
		ID:         "google:123",
		Email:      "asha@example.com",
		FullName:   "Asha Rao",
		PictureURL: "https://example.com/p.jpg",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID,
			user.Email,
			user.FullName,
			nil, // given_name
			nil, // family_name
			user.PictureURL,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), user); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, email").
		WithArgs("google:missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "google:missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
