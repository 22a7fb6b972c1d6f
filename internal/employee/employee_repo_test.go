package employee_test

import (
	"context"
	"regexp"
	"testing"

	"hris-backoffice/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDirectory(t *testing.T) (employee.Directory, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	return employee.NewRepository(gdb), mock
}

func TestDirectory_CountActiveByCompany(t *testing.T) {
	dir, mock := newDirectory(t)
	companyID := uuid.NewString()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE .*employment_status = .*"employees"\."deleted_at" IS NULL`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	total, err := dir.CountActiveByCompany(context.Background(), companyID)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectory_ListActiveByCompany(t *testing.T) {
	dir, mock := newDirectory(t)
	companyID := uuid.New()
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE .*` + regexp.QuoteMeta(`ORDER BY full_name ASC,id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "full_name", "employment_status"}).
			AddRow(first, companyID, "Ayu", employee.StatusActive).
			AddRow(second, companyID, "Budi", employee.StatusActive))

	rows, total, err := dir.ListActiveByCompany(context.Background(), companyID.String(), 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, first, rows[0].ID)
		assert.Equal(t, "Budi", rows[1].FullName)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDirectory_BelongsToCompany(t *testing.T) {
	dir, mock := newDirectory(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE .*id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := dir.BelongsToCompany(context.Background(), uuid.NewString(), uuid.NewString())

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
