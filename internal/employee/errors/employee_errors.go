package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this email already exists",
		http.StatusConflict,
	)
	ErrPhoneAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this phone number already exists",
		http.StatusConflict,
	)
	ErrProfileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"exactly one role profile matching employee_type is required",
		http.StatusBadRequest,
	)
	ErrProfileTypeMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"role profile does not match the employee type",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid joining date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
