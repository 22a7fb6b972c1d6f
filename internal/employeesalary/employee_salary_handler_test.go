package employeesalary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-backoffice/internal/employeesalary"
	employeesalaryerrors "hris-backoffice/internal/employeesalary/errors"
	"hris-backoffice/internal/employeesalary/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEmployeeSalaryHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := employeesalary.NewHandler(svc)
	companyID, employeeID := uuid.NewString(), uuid.NewString()

	svc.EXPECT().Get(gomock.Any(), companyID, employeeID).Return(employeesalary.EmployeeSalaryResponse{}, employeesalaryerrors.ErrSalaryNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employee-salaries/"+employeeID, nil)
	c.Params = gin.Params{{Key: "employee_id", Value: employeeID}}
	c.Set("company_id", companyID)

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeSalaryHandler_Upsert(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	h := employeesalary.NewHandler(svc)
	companyID, employeeID := uuid.NewString(), uuid.NewString()

	svc.EXPECT().Upsert(gomock.Any(), companyID, employeeID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ string, req employeesalary.UpsertEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
			assert.True(t, req.BaseSalary.Equal(decimal.NewFromInt(7000)))
			assert.True(t, req.Overtime.Equal(decimal.RequireFromString("125.50")))
			return employeesalary.EmployeeSalaryResponse{EmployeeID: employeeID, BaseSalary: req.BaseSalary}, nil
		},
	)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/employee-salaries/"+employeeID,
		strings.NewReader(`{"base_salary":"7000","overtime":125.50}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "employee_id", Value: employeeID}}
	c.Set("company_id", companyID)

	h.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), employeeID)
}
