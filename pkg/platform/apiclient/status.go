package apiclient

import (
	"fmt"
	"maps"
)

// StatusTable turns an HTTP status into an error code and default message when
// the API response carries no structured error body.
type StatusTable struct {
	Codes    map[int]string
	Messages map[int]string
}

// BaseStatusTable holds the rows every client shares. Domain clients override
// 404 with their own not-found code.
func BaseStatusTable() StatusTable {
	return StatusTable{
		Codes: map[int]string{
			400: CodeBadRequest,
			401: CodeUnauthorized,
			403: CodeForbidden,
			429: CodeRateLimited,
			500: CodeInternalServerError,
			502: CodeBadGateway,
			503: CodeServiceUnavailable,
		},
		Messages: map[int]string{
			400: "Invalid request parameters",
			401: "Invalid or missing API key",
			403: "Access forbidden",
			429: "Rate limit exceeded",
			500: "Internal server error",
			502: "Bad gateway",
			503: "Service temporarily unavailable",
		},
	}
}

// With returns a copy of the table with one row replaced.
func (t StatusTable) With(status int, code, message string) StatusTable {
	out := StatusTable{
		Codes:    maps.Clone(t.Codes),
		Messages: maps.Clone(t.Messages),
	}
	if out.Codes == nil {
		out.Codes = map[int]string{}
	}
	if out.Messages == nil {
		out.Messages = map[int]string{}
	}
	out.Codes[status] = code
	out.Messages[status] = message
	return out
}

// Code returns the error code for status, HTTP_ERROR when unlisted.
func (t StatusTable) Code(status int) string {
	if code, ok := t.Codes[status]; ok {
		return code
	}
	return CodeHTTPError
}

// Message returns the default message for status.
func (t StatusTable) Message(status int) string {
	if msg, ok := t.Messages[status]; ok {
		return msg
	}
	return fmt.Sprintf("HTTP error %d", status)
}
