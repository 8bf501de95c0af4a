package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mlevkova/bijoux-shop/internal/logger"
)

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, 2)
	repo := &categoryRepository{
		db:     db,
		logger: logger.Nop(),
	}
	return repo, mock
}

func TestGetAllCategories_ReturnsSeededSet(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	rows := sqlmock.
		NewRows([]string{"categoryid", "categoryname"}).
		AddRow(1, "bracelets").
		AddRow(2, "earrings").
		AddRow(3, "necklaces").
		AddRow(4, "other")

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnRows(rows)

	categories, err := repo.GetAllCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(categories))
	}

	seen := map[int64]string{}
	for _, c := range categories {
		if prev, dup := seen[c.CategoryID]; dup {
			t.Fatalf("duplicate category id %d (%q and %q)", c.CategoryID, prev, c.CategoryName)
		}
		seen[c.CategoryID] = c.CategoryName
	}
}

func TestGetAllCategories_EmptyTableIsNotFound(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"categoryid", "categoryname"}))

	_, err := repo.GetAllCategories(context.Background())
	if !errors.Is(err, ErrNoCategoriesFound) {
		t.Fatalf("expected ErrNoCategoriesFound, got %v", err)
	}
}

func TestGetAllCategories_QueryError(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAllCategories(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
