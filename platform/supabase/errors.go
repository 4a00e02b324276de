package supabase

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

// CodeNoRows is returned by the data api when a single row was requested and zero or many matched
const CodeNoRows = "PGRST116"

// Error is a failure reported by the platform
type Error struct {
	Status  int
	Code    string
	Message string
	Details string
	Hint    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsNoRows reports whether err is a single-row assertion failure
func IsNoRows(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeNoRows
}

// StatusOf returns the http status of a platform error, 0 for any other error
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// auth and data apis do not agree on an error body, this covers both
type errorBody struct {
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
	Message          string          `json:"message"`
	Msg              string          `json:"msg"`
	Err              string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
	Details          string          `json:"details"`
	Hint             string          `json:"hint"`
}

func decodeError(status int, data []byte) error {
	e := &Error{Status: status}

	var b errorBody
	if err := json.Unmarshal(data, &b); err != nil {
		e.Message = http.StatusText(status)
		return e
	}

	var code string
	if err := json.Unmarshal(b.Code, &code); err != nil {
		code = ""
	}
	e.Code = firstOf(code, b.ErrorCode, b.Err)
	if e.Code == "" && len(b.Code) > 0 {
		if n, err := strconv.Atoi(string(b.Code)); err == nil {
			e.Code = strconv.Itoa(n)
		}
	}
	e.Message = firstOf(b.Message, b.Msg, b.ErrorDescription, b.Err, http.StatusText(status))
	e.Details = b.Details
	e.Hint = b.Hint
	return e
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
