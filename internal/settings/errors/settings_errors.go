package settingserrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"setting not found",
		http.StatusNotFound,
	)
)
