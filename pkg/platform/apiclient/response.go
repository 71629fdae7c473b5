package apiclient

// Response is the envelope returned by every client call. Exactly one of Data
// and Error is set.
type Response[T any] struct {
	Status int       `json:"status"`
	Data   *T        `json:"data,omitempty"`
	Error  *APIError `json:"error,omitempty"`
}

// OK reports whether the call produced data.
func (r Response[T]) OK() bool {
	return r.Error == nil && r.Data != nil
}

// ErrorCode returns the error code, or "" on success.
func (r Response[T]) ErrorCode() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Code
}

// Err exposes the envelope error as a Go error for callers that prefer the
// usual `if err != nil` flow.
func (r Response[T]) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// Invalid builds the envelope for input rejected before any request is sent.
func Invalid[T any](code, message string) Response[T] {
	return Response[T]{
		Status: StatusInvalid,
		Error:  &APIError{Code: code, Message: message},
	}
}

func failure[T any](status int, err *APIError) Response[T] {
	return Response[T]{Status: status, Error: err}
}
