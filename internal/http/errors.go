package httpx

import (
	"net/http"

	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
)

// WriteAppError maps an application error code onto an HTTP status and
// writes the standard error envelope. Unknown errors become 500s.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}

	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeConflict:
		status = http.StatusConflict
	case apperrors.ErrCodeValidation:
		status = http.StatusBadRequest
	case apperrors.ErrCodeUpstream:
		status = http.StatusBadGateway
	}

	WriteError(w, ErrorParams{Code: status, ErrCode: string(code), Err: err})
}
