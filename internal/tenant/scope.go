package tenant

import (
	"net/http"

	"hris-backoffice/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"company_id tidak valid",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id tidak valid",
		http.StatusBadRequest,
	)
)

// Scope restricts a query to one tenant. An empty id never widens the query.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

func ValidateCompanyID(companyID string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return ErrInvalidCompanyID
	}
	return nil
}

// Validate checks both identifiers before any storage access.
func Validate(companyID, employeeID string) error {
	if err := ValidateCompanyID(companyID); err != nil {
		return err
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return ErrInvalidEmployeeID
	}
	return nil
}
