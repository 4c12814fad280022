package server

import (
	"encoding/json"
	"net/http"

	pinerrors "github.com/pinwall/pinwall/pkg/errors"
)

// errorResponse is the JSON envelope for API errors.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses and writes the
// error envelope. Unknown errors become opaque 500s so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	code := pinerrors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case pinerrors.ErrCodeInvalidInput,
		pinerrors.ErrCodeInvalidBoard,
		pinerrors.ErrCodeInvalidStrategy,
		pinerrors.ErrCodeInvalidDimensions,
		pinerrors.ErrCodeInvalidName,
		pinerrors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case pinerrors.ErrCodeNotFound,
		pinerrors.ErrCodeBoardNotFound,
		pinerrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case pinerrors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}

	body := errorBody{Code: string(code), Message: pinerrors.UserMessage(err)}
	if code == "" || status == http.StatusInternalServerError {
		body.Code = string(pinerrors.ErrCodeInternal)
		body.Message = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: body})
}
