package employee_test

import (
	"context"
	"testing"

	"go-empms/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	return employee.NewRepository(gormDB), mock
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := setupRepoTest(t)

	rows := sqlmock.NewRows([]string{"id", "name", "username", "department", "salary"}).
		AddRow(42, "Ann", "ann1", "Eng", 5000.0)
	mock.ExpectQuery(`SELECT (.+) FROM "employees" WHERE id =`).WillReturnRows(rows)

	empl, err := repo.FindByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, uint(42), empl.ID)
	assert.Equal(t, "ann1", empl.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT (.+) FROM "employees" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "username", "department", "salary"}))

	_, err := repo.FindByID(context.Background(), 99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := setupRepoTest(t)

	rows := sqlmock.NewRows([]string{"id", "name", "username", "department", "salary"}).
		AddRow(1, "Ann", "ann1", "Eng", 5000.0).
		AddRow(2, "Bob", "bob1", "Ops", 4000.0)
	mock.ExpectQuery(`SELECT (.+) FROM "employees"`).WillReturnRows(rows)

	empls, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, empls, 2)
}

func TestRepository_Save_Insert(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	empl := &employee.Employee{Name: "Ann", Username: "ann1", Department: "Eng", Salary: 5000}
	err := repo.Save(context.Background(), empl)

	assert.NoError(t, err)
	assert.Equal(t, uint(42), empl.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "employees"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), &employee.Employee{ID: 42})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
