package pkg

// AppError is the HTTP-facing error envelope. Handlers map use case errors
// into one of these; the domain packages never see it.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []ErrorDetail
}

// ErrorDetail is one field-level problem of a validation failure. A response
// carries every failing field at once so forms can annotate all of them in a
// single round trip.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError is the serialized error body.
type HTTPError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches field-level details and returns the error for
// chaining.
func (e *AppError) WithDetails(details []ErrorDetail) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
