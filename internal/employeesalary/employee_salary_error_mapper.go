package employeesalary

import (
	"errors"

	employeesalaryerrors "hris-backoffice/internal/employeesalary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeesalaryerrors.ErrSalaryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_salary_employee" {
		return employeesalaryerrors.ErrSalaryAlreadyExists
	}

	return err
}
