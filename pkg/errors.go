package pkg

// AppError is the error shape returned by HTTP handlers.
//
// Code is a stable machine-readable identifier; Message is safe to show to API
// consumers. Err keeps the underlying cause for logging, never serialized.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewDomainErrorSimple builds an AppError without an underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// WithDetails attaches extra serializable context to the HTTP error body.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// HTTPErrorBody is the JSON error envelope.
type HTTPErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// ToHTTPError converts the AppError into the JSON body sent to clients.
func (e *AppError) ToHTTPError() HTTPErrorBody {
	return HTTPErrorBody{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}
