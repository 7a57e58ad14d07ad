package apperror

import (
	"errors"
	"net/http"
	"os"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP converts any service error into an HTTP-ready shape. Errors that are
// not AppErrors collapse into INTERNAL_ERROR; their underlying detail is only
// exposed outside production.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		httpErr := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Err != nil && !isProduction() {
			httpErr.Details = appErr.Err.Error()
		}
		return httpErr
	}

	httpErr := HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
	if err != nil && !isProduction() {
		httpErr.Details = err.Error()
	}
	return httpErr
}

func isProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
